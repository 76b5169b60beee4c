package monomap

import (
	"github.com/giuliop/gf2fn/bitvec"
	"github.com/giuliop/gf2fn/monomial"
)

// entry pairs the canonical Monomial value with its accumulated
// contribution, so MonomialMap can hand back the actual Monomial
// values on enumeration (a plain map[string]bitvec.BitVec would lose
// them behind their packed string keys).
type entry struct {
	monomial     monomial.Monomial
	contribution bitvec.BitVec
}

// MonomialMap accumulates a contribution BitVec of fixed length
// outputLen for each distinct Monomial seen.
type MonomialMap struct {
	outputLen int
	entries   map[string]entry
}

// New returns an empty MonomialMap whose contributions have length
// outputLen.
func New(outputLen int) *MonomialMap {
	return &MonomialMap{outputLen: outputLen, entries: make(map[string]entry)}
}

// OutputLength returns the fixed contribution length of m.
func (m *MonomialMap) OutputLength() int {
	return m.outputLen
}

// Len returns the number of distinct monomials currently stored,
// including any with an all-zero contribution (those are dropped
// only at ToArrays/FilterNilContributions time).
func (m *MonomialMap) Len() int {
	return len(m.entries)
}

// Get returns the contribution stored for mono and whether it is
// present.
func (m *MonomialMap) Get(mono monomial.Monomial) (bitvec.BitVec, bool) {
	e, ok := m.entries[mono.Key()]
	if !ok {
		return bitvec.BitVec{}, false
	}
	return e.contribution, true
}

// Set stores contribution for mono, overwriting any previous value.
func (m *MonomialMap) Set(mono monomial.Monomial, contribution bitvec.BitVec) {
	m.entries[mono.Key()] = entry{monomial: mono, contribution: contribution}
}

// XorInto XORs contribution into whatever is currently stored for
// mono, inserting a zero vector first if mono is absent. This is the
// accumulation step used throughout XOR, AND and Composition.
func (m *MonomialMap) XorInto(mono monomial.Monomial, contribution bitvec.BitVec) {
	e, ok := m.entries[mono.Key()]
	if !ok {
		e = entry{monomial: mono, contribution: bitvec.New(m.outputLen)}
	}
	e.contribution = e.contribution.Xor(contribution)
	m.entries[mono.Key()] = e
}

// SetBit sets a single output bit of mono's contribution, inserting
// a zero vector first if mono is absent. Used by the Composer's
// recombination stage, which builds contributions one output row at
// a time.
func (m *MonomialMap) SetBit(mono monomial.Monomial, bit int) {
	e, ok := m.entries[mono.Key()]
	if !ok {
		e = entry{monomial: mono, contribution: bitvec.New(m.outputLen)}
	}
	e.contribution = e.contribution.Set(bit)
	m.entries[mono.Key()] = e
}

// Clone returns an independent copy of m.
func (m *MonomialMap) Clone() *MonomialMap {
	out := New(m.outputLen)
	for k, e := range m.entries {
		out.entries[k] = e
	}
	return out
}

// FilterNilContributions removes every entry whose contribution is
// all-zero, in place.
func (m *MonomialMap) FilterNilContributions() {
	for k, e := range m.entries {
		if e.contribution.IsZero() {
			delete(m.entries, k)
		}
	}
}

// ToArrays converts m to canonical-form parallel monomials and
// contributions arrays, dropping all-zero contributions. Ordering of
// the result is unspecified (Go map iteration order); callers must
// not depend on it.
func (m *MonomialMap) ToArrays() ([]monomial.Monomial, []bitvec.BitVec) {
	m.FilterNilContributions()
	monomials := make([]monomial.Monomial, 0, len(m.entries))
	contributions := make([]bitvec.BitVec, 0, len(m.entries))
	for _, e := range m.entries {
		monomials = append(monomials, e.monomial)
		contributions = append(contributions, e.contribution)
	}
	return monomials, contributions
}

// RemoveNilContributions returns the subsequence of monomials and
// contributions with all-zero contributions dropped, without
// requiring a MonomialMap. A standalone canonicalization utility for
// callers holding raw parallel arrays (e.g. a Builder that never went
// through XorInto).
func RemoveNilContributions(monomials []monomial.Monomial, contributions []bitvec.BitVec) (
	[]monomial.Monomial, []bitvec.BitVec) {

	outM := make([]monomial.Monomial, 0, len(monomials))
	outC := make([]bitvec.BitVec, 0, len(contributions))
	for i, c := range contributions {
		if !c.IsZero() {
			outM = append(outM, monomials[i])
			outC = append(outC, c)
		}
	}
	return outM, outC
}

// ContributionsToMonomials returns, for a given output row, the
// monomials whose contribution has that bit set.
func ContributionsToMonomials(row int, monomials []monomial.Monomial, contributions []bitvec.BitVec) []monomial.Monomial {
	var out []monomial.Monomial
	for i, c := range contributions {
		if c.Get(row) {
			out = append(out, monomials[i])
		}
	}
	return out
}
