package gf2fn

import (
	"fmt"
	"math/rand"

	"github.com/giuliop/gf2fn/bitvec"
	"github.com/giuliop/gf2fn/gf2err"
	"github.com/giuliop/gf2fn/monomial"
)

// RandomSparse returns a random Function over inputLen input
// variables and outputLen output bits with up to monomialCount
// distinct monomials, each of order at most maxOrder, and a random
// nonzero contribution. Duplicate monomial draws collapse via XOR as
// usual, so the result may have fewer than monomialCount terms. rng
// is the caller's source of randomness; pass rand.New(rand.NewSource(seed))
// for reproducible fixtures.
func RandomSparse(inputLen, outputLen, monomialCount, maxOrder int, rng *rand.Rand) (*Function, error) {
	if inputLen <= 0 || outputLen <= 0 {
		return nil, fmt.Errorf("%w: RandomSparse requires positive input and output lengths", gf2err.ErrShapeMismatch)
	}
	if maxOrder < 0 || maxOrder > inputLen {
		return nil, fmt.Errorf("%w: maxOrder %d out of range [0,%d]", gf2err.ErrShapeMismatch, maxOrder, inputLen)
	}
	b := NewBuilder(inputLen, outputLen)
	for k := 0; k < monomialCount; k++ {
		order := rng.Intn(maxOrder + 1)
		m := randomMonomial(inputLen, order, rng)
		c := randomNonzero(outputLen, rng)
		b.Add(m, c)
	}
	return b.Build()
}

func randomMonomial(inputLen, order int, rng *rand.Rand) monomial.Monomial {
	perm := rng.Perm(inputLen)
	support := bitvec.New(inputLen)
	for _, i := range perm[:order] {
		support = support.Set(i)
	}
	return monomial.FromSupport(support)
}

func randomNonzero(length int, rng *rand.Rand) bitvec.BitVec {
	v := bitvec.New(length)
	for v.IsZero() {
		for i := 0; i < length; i++ {
			if rng.Intn(2) == 1 {
				v = v.Set(i)
			}
		}
	}
	return v
}
