package gf2fn

import (
	"context"
	"fmt"

	"github.com/giuliop/gf2fn/bitvec"
	"github.com/giuliop/gf2fn/gf2err"
	"github.com/giuliop/gf2fn/workerpool"
)

// Apply evaluates f at v: XORs together the contribution of every
// monomial satisfied by v. Panics if v.Len() != f.InputLength(), the
// same programmer-error convention bitvec.BitVec.Xor uses for shape
// mismatches, since Apply is on Function's hot evaluation path;
// ErrShapeMismatch is reserved for construction and algebra
// operations, which run far less often.
func (f *Function) Apply(v bitvec.BitVec) bitvec.BitVec {
	if v.Len() != f.inputLen {
		panic(fmt.Sprintf("gf2fn: Apply input length %d != %d", v.Len(), f.inputLen))
	}
	acc := bitvec.New(f.outputLen)
	for i, m := range f.monomials {
		if v.EvalMonomial(m.Support()) {
			acc = acc.Xor(f.contributions[i])
		}
	}
	return acc
}

// ApplyTwo evaluates f at the concatenation of a and b (a occupying
// the low input bits, b the high ones). len(a)+len(b) must equal
// f.InputLength().
func (f *Function) ApplyTwo(a, b bitvec.BitVec) bitvec.BitVec {
	v := a.Extend(a.Len() + b.Len())
	for _, i := range b.SetBits() {
		v = v.Set(a.Len() + i)
	}
	return f.Apply(v)
}

// ApplyParallel evaluates f at v the same as Apply, chunking the
// monomial list across pool and reducing partial results with Xor. A
// nil pool uses a pool of workerpool.DefaultSize workers. Useful for
// Functions carrying enough monomials that single-threaded evaluation
// is the bottleneck.
func (f *Function) ApplyParallel(pool *workerpool.Pool, v bitvec.BitVec) (bitvec.BitVec, error) {
	if v.Len() != f.inputLen {
		return bitvec.BitVec{}, fmt.Errorf("%w: Apply input length %d != %d",
			gf2err.ErrShapeMismatch, v.Len(), f.inputLen)
	}
	if pool == nil {
		pool = workerpool.New(workerpool.DefaultSize)
	}
	zero := bitvec.New(f.outputLen)
	return workerpool.MapReduce(pool, context.Background(), len(f.monomials), zero,
		func(_ context.Context, lo, hi int) (bitvec.BitVec, error) {
			acc := zero
			for i := lo; i < hi; i++ {
				if v.EvalMonomial(f.monomials[i].Support()) {
					acc = acc.Xor(f.contributions[i])
				}
			}
			return acc, nil
		},
		func(a, b bitvec.BitVec) bitvec.BitVec { return a.Xor(b) },
	)
}
