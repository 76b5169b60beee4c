package compose

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/giuliop/gf2fn/bitvec"
	"github.com/giuliop/gf2fn/gf2err"
	"github.com/giuliop/gf2fn/monomap"
	"github.com/giuliop/gf2fn/monomial"
)

// growingBasis is a shared-mutable indexed list of inner monomials:
// appends are serialized by a single mutex so the bijection
// list[indices[p]] == p always holds, readers only ever observing an
// index after its append has been published.
type growingBasis struct {
	mu      sync.Mutex
	list    []monomial.Monomial
	indices map[string]int

	productsComputed int64 // atomic, for Metrics.CandidatesConsidered
}

func newGrowingBasis(seed []monomial.Monomial) *growingBasis {
	b := &growingBasis{indices: make(map[string]int, len(seed))}
	for _, m := range seed {
		b.indexOf(m)
	}
	return b
}

// indexOf returns m's index into the basis, appending m if it is not
// already present.
func (b *growingBasis) indexOf(m monomial.Monomial) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if idx, ok := b.indices[m.Key()]; ok {
		return idx
	}
	idx := len(b.list)
	b.list = append(b.list, m)
	b.indices[m.Key()] = idx
	return idx
}

func (b *growingBasis) length() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.list)
}

func (b *growingBasis) at(i int) monomial.Monomial {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.list[i]
}

// product computes a BitVec-level product over a growing basis: for
// every pair of set bits (i,j) of u,v, compute the product monomial,
// look up or append its index, and toggle that bit in the result.
func (b *growingBasis) product(u, v bitvec.BitVec) bitvec.BitVec {
	toggled := make(map[int]bool)
	for _, i := range u.SetBits() {
		mi := b.at(i)
		for _, j := range v.SetBits() {
			mj := b.at(j)
			atomic.AddInt64(&b.productsComputed, 1)
			p := monomial.Product(mi, mj)
			k := b.indexOf(p)
			toggled[k] = !toggled[k]
		}
	}
	r := bitvec.New(b.length())
	for k, on := range toggled {
		if on {
			r.SetInPlace(k)
		}
	}
	return r
}

// rowVector returns the BitVec over b's current indices representing
// inner_i, the polynomial producing inner output bit i, expressed as
// the set of inner monomials whose contribution has bit i set.
func rowVector(inner Input, i int, b *growingBasis) bitvec.BitVec {
	v := bitvec.New(b.length())
	for k, m := range inner.Monomials {
		if inner.Contributions[k].Get(i) {
			v.SetInPlace(b.indexOf(m))
		}
	}
	return v
}

// expandMonomial expresses outer monomial m as a BitVec over b's
// (possibly growing) indices, by multiplying together inner_i for
// every variable i in m's support.
func expandMonomial(inner Input, m monomial.Monomial, b *growingBasis) bitvec.BitVec {
	vars := m.Support().SetBits()
	if len(vars) == 0 {
		v := bitvec.New(b.length())
		v.SetInPlace(b.indexOf(monomial.Constant(inner.InputLen)))
		return v
	}
	acc := rowVector(inner, vars[0], b)
	for _, vi := range vars[1:] {
		acc = b.product(acc, rowVector(inner, vi, b))
	}
	return acc
}

// composeViaBasis composes via a growing shared basis of inner
// monomials and BitVec-level products, in place of the
// set-of-monomials memo composeViaSets uses.
func (c *Composer) composeViaBasis(ctx context.Context, outer, inner Input) (Input, Metrics, error) {
	seed := make([]monomial.Monomial, 0, len(inner.Monomials)+1)
	seed = append(seed, monomial.Constant(inner.InputLen))
	seed = append(seed, inner.Monomials...)
	basis := newGrowingBasis(seed)

	distinct := make(map[string]monomial.Monomial)
	for _, m := range outer.Monomials {
		distinct[m.Key()] = m
	}
	distinctList := make([]monomial.Monomial, 0, len(distinct))
	for _, m := range distinct {
		distinctList = append(distinctList, m)
	}

	vectors := make([]bitvec.BitVec, len(distinctList))
	err := c.pool.Run(ctx, len(distinctList), func(_ context.Context, idx int) error {
		vectors[idx] = expandMonomial(inner, distinctList[idx], basis)
		return nil
	})
	if err != nil {
		return Input{}, Metrics{}, fmt.Errorf("%w: basis expansion: %v", gf2err.ErrWorkerFault, err)
	}

	finalLen := basis.length()
	expansionByKey := make(map[string]bitvec.BitVec, len(distinctList))
	for i, m := range distinctList {
		expansionByKey[m.Key()] = vectors[i].Extend(finalLen)
	}

	composed := monomap.New(outer.OutputLen)
	for row := 0; row < outer.OutputLen; row++ {
		acc := bitvec.New(finalLen)
		for k, m := range outer.Monomials {
			if outer.Contributions[k].Get(row) {
				acc = acc.Xor(expansionByKey[m.Key()])
			}
		}
		for _, idx := range acc.SetBits() {
			composed.SetBit(basis.at(idx), row)
		}
	}

	monomials, contributions := composed.ToArrays()
	metrics := Metrics{
		BasisSize:            finalLen,
		CandidatesConsidered: int(atomic.LoadInt64(&basis.productsComputed)),
	}
	return Input{InputLen: inner.InputLen, OutputLen: outer.OutputLen, Monomials: monomials, Contributions: contributions},
		metrics, nil
}
