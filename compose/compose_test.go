package compose

import (
	"context"
	"testing"

	"github.com/giuliop/gf2fn/bitvec"
	"github.com/giuliop/gf2fn/monomial"
	"github.com/giuliop/gf2fn/workerpool"
)

// quadraticFixture builds a worked composition example: outer
// h(y0,y1) = y0*y1 (contribution bit 3 set of a 4-bit output), inner
// g(x0,x1,x2) = (x0 xor x2, x1).
func quadraticFixture() (outer, inner Input) {
	y0y1 := monomial.Product(monomial.Linear(2, 0), monomial.Linear(2, 1))
	outer = Input{
		InputLen:      2,
		OutputLen:     4,
		Monomials:     []monomial.Monomial{y0y1},
		Contributions: []bitvec.BitVec{bitvec.FromBits(4, 3)},
	}

	x0 := monomial.Linear(3, 0)
	x1 := monomial.Linear(3, 1)
	x2 := monomial.Linear(3, 2)
	inner = Input{
		InputLen:  3,
		OutputLen: 2,
		Monomials: []monomial.Monomial{x0, x2, x1},
		Contributions: []bitvec.BitVec{
			bitvec.FromBits(2, 0), // x0 contributes to y0 (row 0)
			bitvec.FromBits(2, 0), // x2 contributes to y0 (row 0)
			bitvec.FromBits(2, 1), // x1 contributes to y1 (row 1)
		},
	}
	return outer, inner
}

func evalComposed(t *testing.T, out Input, v bitvec.BitVec) bitvec.BitVec {
	t.Helper()
	acc := bitvec.New(out.OutputLen)
	for k, m := range out.Monomials {
		if v.EvalMonomial(m.Support()) {
			acc = acc.Xor(out.Contributions[k])
		}
	}
	return acc
}

func testQuadratic(t *testing.T, strategy Strategy) {
	outer, inner := quadraticFixture()
	c := NewComposer(workerpool.New(4), WithStrategy(strategy))
	got, _, err := c.Compose(context.Background(), outer, inner)
	if err != nil {
		t.Fatalf("compose failed: %v", err)
	}
	if got.InputLen != 3 || got.OutputLen != 4 {
		t.Fatalf("unexpected shape: in=%d out=%d", got.InputLen, got.OutputLen)
	}
	if len(got.Monomials) != 2 {
		t.Fatalf("expected 2 monomials, got %d: %v", len(got.Monomials), got.Monomials)
	}
	x0x1 := monomial.Product(monomial.Linear(3, 0), monomial.Linear(3, 1))
	x1x2 := monomial.Product(monomial.Linear(3, 1), monomial.Linear(3, 2))
	found := map[string]bool{}
	for k, m := range got.Monomials {
		found[m.Key()] = true
		if !got.Contributions[k].Equal(bitvec.FromBits(4, 3)) {
			t.Errorf("expected contribution bit 3 set only, got %s", got.Contributions[k])
		}
	}
	if !found[x0x1.Key()] || !found[x1x2.Key()] {
		t.Fatalf("expected monomials {x0x1, x1x2}, got %v", got.Monomials)
	}

	cases := []struct {
		v    string
		want bool
	}{
		{"111", false},
		{"110", true},
		{"011", true},
	}
	for _, tc := range cases {
		v := bitvec.FromBitString(tc.v)
		out := evalComposed(t, got, v)
		if out.Get(3) != tc.want {
			t.Errorf("apply(%s): got %v, want %v", tc.v, out.Get(3), tc.want)
		}
	}
}

func TestComposeQuadraticSets(t *testing.T) {
	testQuadratic(t, StrategySets)
}

func TestComposeQuadraticBasis(t *testing.T) {
	testQuadratic(t, StrategyBasis)
}

func TestComposeShapeMismatch(t *testing.T) {
	outer, inner := quadraticFixture()
	inner.OutputLen = 3 // break the contract outer.InputLen == inner.OutputLen
	c := NewComposer(nil)
	_, _, err := c.Compose(context.Background(), outer, inner)
	if err == nil {
		t.Fatalf("expected shape mismatch error")
	}
}

// TestComposeStrategiesAgree runs the quadratic composition fixture
// through both strategies and checks they produce the same
// observable function (same Apply for every input): both strategies
// must be equivalent.
func TestComposeStrategiesAgree(t *testing.T) {
	outer, inner := quadraticFixture()
	sets, _, err := NewComposer(nil, WithStrategy(StrategySets)).Compose(context.Background(), outer, inner)
	if err != nil {
		t.Fatalf("sets strategy failed: %v", err)
	}
	basis, _, err := NewComposer(nil, WithStrategy(StrategyBasis)).Compose(context.Background(), outer, inner)
	if err != nil {
		t.Fatalf("basis strategy failed: %v", err)
	}
	for i := 0; i < 8; i++ {
		v := bitvec.New(3)
		for b := 0; b < 3; b++ {
			if i&(1<<b) != 0 {
				v = v.Set(b)
			}
		}
		a := evalComposed(t, sets, v)
		b := evalComposed(t, basis, v)
		if !a.Equal(b) {
			t.Errorf("strategies disagree on input %s: sets=%s basis=%s", v, a, b)
		}
	}
}
