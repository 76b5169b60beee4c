package gf2fn

import (
	"fmt"
	"sort"
	"strings"

	"github.com/giuliop/gf2fn/bitvec"
	"github.com/giuliop/gf2fn/gf2err"
	"github.com/giuliop/gf2fn/monomap"
	"github.com/giuliop/gf2fn/monomial"
)

// Function is a sparse vector-valued Boolean polynomial: a set of
// distinct Monomials over inputLen variables, each XORing its
// contribution BitVec of length outputLen into the result. It is
// always kept in canonical form: no two entries share a monomial, and
// no entry carries an all-zero contribution.
type Function struct {
	inputLen      int
	outputLen     int
	monomials     []monomial.Monomial
	contributions []bitvec.BitVec
}

// New builds a Function from parallel monomials/contributions arrays,
// canonicalizing them: monomials appearing more than once have their
// contributions XORed together, and any resulting all-zero
// contribution is dropped. Every monomial must have length inputLen
// and every contribution length outputLen, or New returns
// gf2err.ErrShapeMismatch.
func New(inputLen, outputLen int, monomials []monomial.Monomial, contributions []bitvec.BitVec) (*Function, error) {
	if len(monomials) != len(contributions) {
		return nil, fmt.Errorf("%w: %d monomials but %d contributions",
			gf2err.ErrShapeMismatch, len(monomials), len(contributions))
	}
	m := monomap.New(outputLen)
	for i, mono := range monomials {
		if mono.Len() != inputLen {
			return nil, fmt.Errorf("%w: monomial %s has length %d, want %d",
				gf2err.ErrShapeMismatch, mono, mono.Len(), inputLen)
		}
		if contributions[i].Len() != outputLen {
			return nil, fmt.Errorf("%w: contribution for %s has length %d, want %d",
				gf2err.ErrShapeMismatch, mono, contributions[i].Len(), outputLen)
		}
		m.XorInto(mono, contributions[i])
	}
	return fromMap(inputLen, m), nil
}

// FromMonomialMap builds a Function from an already-accumulated
// MonomialMap, which carries outputLen itself. inputLen must be
// supplied separately since a MonomialMap does not track it (an empty
// map has no monomial to read a length from).
func FromMonomialMap(inputLen int, m *monomap.MonomialMap) (*Function, error) {
	monomials, _ := m.ToArrays()
	for _, mono := range monomials {
		if mono.Len() != inputLen {
			return nil, fmt.Errorf("%w: monomial %s has length %d, want %d",
				gf2err.ErrShapeMismatch, mono, mono.Len(), inputLen)
		}
	}
	return fromMap(inputLen, m), nil
}

func fromMap(inputLen int, m *monomap.MonomialMap) *Function {
	monomials, contributions := m.ToArrays()
	return &Function{
		inputLen:      inputLen,
		outputLen:     m.OutputLength(),
		monomials:     monomials,
		contributions: contributions,
	}
}

// InputLength returns the number of input variables f is defined
// over.
func (f *Function) InputLength() int {
	return f.inputLen
}

// OutputLength returns the width of f's output BitVec.
func (f *Function) OutputLength() int {
	return f.outputLen
}

// TotalMonomialCount returns the sum, over every distinct monomial,
// of the number of output bits it contributes to — i.e. the total
// number of (monomial, output bit) terms in f's canonical form, not
// just len(monomials).
func (f *Function) TotalMonomialCount() int {
	total := 0
	for _, c := range f.contributions {
		total += c.Cardinality()
	}
	return total
}

// MaximumMonomialOrder returns the highest Cardinality among f's
// monomials, or 0 if f has none.
func (f *Function) MaximumMonomialOrder() int {
	max := 0
	for _, m := range f.monomials {
		if m.Cardinality() > max {
			max = m.Cardinality()
		}
	}
	return max
}

// Monomials returns a read-only copy of f's monomials, in the same
// order as Contributions.
func (f *Function) Monomials() []monomial.Monomial {
	out := make([]monomial.Monomial, len(f.monomials))
	copy(out, f.monomials)
	return out
}

// Contributions returns a read-only copy of f's contribution vectors,
// in the same order as Monomials.
func (f *Function) Contributions() []bitvec.BitVec {
	out := make([]bitvec.BitVec, len(f.contributions))
	copy(out, f.contributions)
	return out
}

// toMap rebuilds f's canonical form as a MonomialMap, for use by
// operations (Xor, Equal) that need a fresh map rather than mutating
// f.
func (f *Function) toMap() *monomap.MonomialMap {
	m := monomap.New(f.outputLen)
	for i, mono := range f.monomials {
		m.Set(mono, f.contributions[i])
	}
	return m
}

// Equal reports whether f and other are the same canonical Function:
// same declared shape and the same monomial-to-contribution mapping,
// independent of storage order.
func (f *Function) Equal(other *Function) bool {
	if f.inputLen != other.inputLen || f.outputLen != other.outputLen {
		return false
	}
	if len(f.monomials) != len(other.monomials) {
		return false
	}
	om := other.toMap()
	for i, mono := range f.monomials {
		c, ok := om.Get(mono)
		if !ok || !c.Equal(f.contributions[i]) {
			return false
		}
	}
	return true
}

// String renders f as a sum of monomial*contribution terms, sorted by
// monomial key for reproducible output; e.g. "x0*x1 -> 0010".
func (f *Function) String() string {
	type row struct {
		key, text string
	}
	rows := make([]row, len(f.monomials))
	for i, m := range f.monomials {
		rows[i] = row{key: m.Key(), text: fmt.Sprintf("%s -> %s", m, f.contributions[i])}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].key < rows[j].key })
	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = r.text
	}
	return strings.Join(lines, "\n")
}
