package workerpool

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
)

func TestRunExecutesAllTasks(t *testing.T) {
	p := New(4)
	var count int64
	err := p.Run(context.Background(), 100, func(ctx context.Context, i int) error {
		atomic.AddInt64(&count, 1)
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 100 {
		t.Errorf("expected 100 tasks run, got %d", count)
	}
}

func TestRunPropagatesError(t *testing.T) {
	p := New(2)
	sentinel := errors.New("boom")
	err := p.Run(context.Background(), 10, func(ctx context.Context, i int) error {
		if i == 5 {
			return sentinel
		}
		return nil
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel error, got %v", err)
	}
}

func TestRunConvertsPanicToError(t *testing.T) {
	p := New(2)
	err := p.Run(context.Background(), 3, func(ctx context.Context, i int) error {
		if i == 1 {
			panic("kaboom")
		}
		return nil
	})
	if err == nil {
		t.Fatalf("expected panic to surface as an error")
	}
}

func TestMapReduceSumsChunks(t *testing.T) {
	p := New(3)
	n := 97
	sum, err := MapReduce(p, context.Background(), n, 0,
		func(ctx context.Context, lo, hi int) (int, error) {
			s := 0
			for i := lo; i < hi; i++ {
				s += i
			}
			return s, nil
		},
		func(a, b int) int { return a + b },
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := n * (n - 1) / 2
	if sum != want {
		t.Errorf("expected %d, got %d", want, sum)
	}
}
