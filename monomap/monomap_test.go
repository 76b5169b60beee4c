package monomap

import (
	"testing"

	"github.com/giuliop/gf2fn/bitvec"
	"github.com/giuliop/gf2fn/monomial"
)

func TestXorIntoAccumulatesAndCancels(t *testing.T) {
	m := New(2)
	x0 := monomial.Linear(3, 0)
	m.XorInto(x0, bitvec.FromBits(2, 0))
	m.XorInto(x0, bitvec.FromBits(2, 0))
	// cancelled out, should be nil after filtering
	monomials, contributions := m.ToArrays()
	if len(monomials) != 0 || len(contributions) != 0 {
		t.Fatalf("expected cancellation to all-zero, got %d entries", len(monomials))
	}
}

func TestToArraysDropsZeroContributions(t *testing.T) {
	m := New(1)
	x0 := monomial.Linear(2, 0)
	x1 := monomial.Linear(2, 1)
	m.Set(x0, bitvec.New(1))
	m.Set(x1, bitvec.FromBits(1, 0))
	monomials, contributions := m.ToArrays()
	if len(monomials) != 1 || !monomials[0].Equal(x1) || !contributions[0].Get(0) {
		t.Fatalf("expected only x1 to survive, got %v", monomials)
	}
}

func TestSetBitBuildsRowByRow(t *testing.T) {
	m := New(3)
	x0 := monomial.Linear(1, 0)
	m.SetBit(x0, 0)
	m.SetBit(x0, 2)
	c, ok := m.Get(x0)
	if !ok || !c.Get(0) || c.Get(1) || !c.Get(2) {
		t.Fatalf("unexpected contribution %v", c)
	}
}

func TestRemoveNilContributions(t *testing.T) {
	x0 := monomial.Linear(1, 0)
	x1 := monomial.Linear(1, 0)
	ms := []monomial.Monomial{x0, x1}
	cs := []bitvec.BitVec{bitvec.New(1), bitvec.FromBits(1, 0)}
	outM, outC := RemoveNilContributions(ms, cs)
	if len(outM) != 1 || !outC[0].Get(0) {
		t.Fatalf("expected only the non-zero entry to survive")
	}
}
