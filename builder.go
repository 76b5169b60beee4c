package gf2fn

import (
	"fmt"

	"github.com/giuliop/gf2fn/bitvec"
	"github.com/giuliop/gf2fn/gf2err"
	"github.com/giuliop/gf2fn/monomap"
	"github.com/giuliop/gf2fn/monomial"
)

// Builder accumulates (monomial, contribution) terms and produces a
// canonical Function, XORing contributions together when the same
// monomial is added more than once.
type Builder struct {
	inputLen  int
	outputLen int
	entries   *monomap.MonomialMap
	err       error
}

// NewBuilder returns an empty Builder for a Function over inputLen
// input variables and outputLen output bits.
func NewBuilder(inputLen, outputLen int) *Builder {
	return &Builder{inputLen: inputLen, outputLen: outputLen, entries: monomap.New(outputLen)}
}

// Add XORs contribution into the term for m, inserting it if m has
// not been added before. Add is a no-op once the Builder has recorded
// a shape error; Build will surface it.
func (b *Builder) Add(m monomial.Monomial, contribution bitvec.BitVec) *Builder {
	if b.err != nil {
		return b
	}
	if m.Len() != b.inputLen {
		b.err = fmt.Errorf("%w: monomial %s has length %d, want %d",
			gf2err.ErrShapeMismatch, m, m.Len(), b.inputLen)
		return b
	}
	if contribution.Len() != b.outputLen {
		b.err = fmt.Errorf("%w: contribution for %s has length %d, want %d",
			gf2err.ErrShapeMismatch, m, contribution.Len(), b.outputLen)
		return b
	}
	b.entries.XorInto(m, contribution)
	return b
}

// AddBit sets a single output bit of m's contribution, building
// contributions row by row (see monomap.MonomialMap.SetBit).
func (b *Builder) AddBit(m monomial.Monomial, bit int) *Builder {
	if b.err != nil {
		return b
	}
	if m.Len() != b.inputLen {
		b.err = fmt.Errorf("%w: monomial %s has length %d, want %d",
			gf2err.ErrShapeMismatch, m, m.Len(), b.inputLen)
		return b
	}
	if bit < 0 || bit >= b.outputLen {
		b.err = fmt.Errorf("%w: output bit %d out of range [0,%d)", gf2err.ErrShapeMismatch, bit, b.outputLen)
		return b
	}
	b.entries.SetBit(m, bit)
	return b
}

// Build returns the canonical Function accumulated so far, or the
// first shape error recorded by Add/AddBit.
func (b *Builder) Build() (*Function, error) {
	if b.err != nil {
		return nil, b.err
	}
	return fromMap(b.inputLen, b.entries), nil
}
