package workerpool

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// DefaultSize is the default worker pool size.
const DefaultSize = 8

// Pool bounds how many tasks submitted through Run or MapReduce may
// execute concurrently.
type Pool struct {
	size int
}

// New returns a Pool that runs at most size tasks concurrently. A
// non-positive size falls back to DefaultSize.
func New(size int) *Pool {
	if size <= 0 {
		size = DefaultSize
	}
	return &Pool{size: size}
}

// NumCPU returns the number of logical CPUs, a common choice for
// Pool's size in CPU-bound callers.
func NumCPU() int {
	return runtime.NumCPU()
}

// Size returns the pool's configured concurrency bound.
func (p *Pool) Size() int {
	return p.size
}

// Run executes n independent tasks indexed [0,n), at most p.Size()
// concurrently. It is a barrier: Run does not return until every
// task has completed, the first error has been captured and the
// shared context cancelled, or a panicking task's recovered panic
// has been turned into an error. Task order is not guaranteed and
// must not be relied upon; tasks must not assume anything about
// which others run concurrently with them.
func (p *Pool) Run(ctx context.Context, n int, task func(ctx context.Context, i int) error) error {
	if n <= 0 {
		return nil
	}
	g, gctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, p.size)
	for i := 0; i < n; i++ {
		i := i
		select {
		case sem <- struct{}{}:
		case <-gctx.Done():
			return g.Wait()
		}
		g.Go(func() (err error) {
			defer func() { <-sem }()
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("workerpool: task %d panicked: %v", i, r)
				}
			}()
			return task(gctx, i)
		})
	}
	return g.Wait()
}

// MapReduce splits [0,n) into at most Pool.Size() contiguous chunks,
// computes mapFn over each chunk concurrently, and folds the partial
// results with reduce. reduce must be associative and commutative, so
// the result never depends on chunk scheduling order.
func MapReduce[T any](p *Pool, ctx context.Context, n int, zero T,
	mapFn func(ctx context.Context, lo, hi int) (T, error),
	reduce func(a, b T) T,
) (T, error) {
	if n == 0 {
		return zero, nil
	}
	chunks := p.size
	if chunks > n {
		chunks = n
	}
	chunkSize := (n + chunks - 1) / chunks
	partials := make([]T, chunks)
	for i := range partials {
		partials[i] = zero
	}

	err := p.Run(ctx, chunks, func(ctx context.Context, c int) error {
		lo := c * chunkSize
		hi := lo + chunkSize
		if hi > n {
			hi = n
		}
		if lo >= hi {
			return nil
		}
		v, err := mapFn(ctx, lo, hi)
		if err != nil {
			return err
		}
		partials[c] = v
		return nil
	})
	if err != nil {
		var zeroT T
		return zeroT, err
	}

	acc := zero
	for _, v := range partials {
		acc = reduce(acc, v)
	}
	return acc, nil
}
