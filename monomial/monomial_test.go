package monomial

import "testing"

func TestProductIsUnionAndIdempotent(t *testing.T) {
	x0 := Linear(4, 0)
	x1 := Linear(4, 1)
	p := Product(x0, x1)
	if p.Cardinality() != 2 || !p.HasVariable(0) || !p.HasVariable(1) {
		t.Fatalf("expected x0*x1, got %s", p)
	}
	if !Product(x0, x0).Equal(x0) {
		t.Errorf("expected product idempotence: x0*x0 == x0")
	}
}

func TestDivide(t *testing.T) {
	x01 := Product(Linear(4, 0), Linear(4, 1))
	x0 := Linear(4, 0)
	q, ok := Divide(x01, x0)
	if !ok || !q.Equal(Linear(4, 1)) {
		t.Fatalf("expected x0*x1 / x0 == x1, got %s, ok=%v", q, ok)
	}
	_, ok = Divide(x0, x01)
	if ok {
		t.Errorf("expected x0 / (x0*x1) to not divide")
	}
}

func TestHasFactor(t *testing.T) {
	x012 := Product(Product(Linear(5, 0), Linear(5, 1)), Linear(5, 2))
	if !x012.HasFactor(Linear(5, 1)) {
		t.Errorf("expected x0x1x2 to have factor x1")
	}
	if x012.HasFactor(Linear(5, 3)) {
		t.Errorf("expected x0x1x2 to not have factor x3")
	}
}

func TestConstantIsIdentityForProduct(t *testing.T) {
	c := Constant(3)
	x1 := Linear(3, 1)
	if !Product(c, x1).Equal(x1) {
		t.Errorf("expected 1*x1 == x1")
	}
}

func TestXorSymmetricDifference(t *testing.T) {
	x01 := Product(Linear(4, 0), Linear(4, 1))
	x0 := Linear(4, 0)
	got := Xor(x01, x0)
	if !got.Equal(Linear(4, 1)) {
		t.Errorf("expected (x0x1) xor x0 == x1, got %s", got)
	}
}

func TestKeyEqualityMatchesValueEquality(t *testing.T) {
	a := Product(Linear(4, 0), Linear(4, 2))
	b := Product(Linear(4, 2), Linear(4, 0))
	if a.Key() != b.Key() {
		t.Errorf("expected equal monomials to share a map key")
	}
}
