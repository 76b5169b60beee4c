package bitvec

import "testing"

func TestGetSetClear(t *testing.T) {
	v := New(8)
	if !v.IsZero() {
		t.Fatalf("expected zero vector")
	}
	v = v.Set(3)
	if !v.Get(3) {
		t.Errorf("expected bit 3 set")
	}
	if v.Cardinality() != 1 {
		t.Errorf("expected cardinality 1, got %d", v.Cardinality())
	}
	v = v.Clear(3)
	if v.Get(3) {
		t.Errorf("expected bit 3 cleared")
	}
	if !v.IsZero() {
		t.Errorf("expected zero vector after clear")
	}
}

func TestXorAnd(t *testing.T) {
	a := FromBits(4, 0, 1)
	b := FromBits(4, 1, 2)
	if got, want := a.Xor(b), FromBits(4, 0, 2); !got.Equal(want) {
		t.Errorf("xor: got %s, want %s", got, want)
	}
	if got, want := a.And(b), FromBits(4, 1); !got.Equal(want) {
		t.Errorf("and: got %s, want %s", got, want)
	}
}

func TestXorMismatchedLengthPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on length mismatch")
		}
	}()
	New(4).Xor(New(8))
}

func TestExtend(t *testing.T) {
	v := FromBits(4, 1) // 0100 lsb-first -> bit 1 set
	ext := v.Extend(8)
	if ext.Len() != 8 {
		t.Fatalf("expected length 8, got %d", ext.Len())
	}
	for i := 0; i < 4; i++ {
		if ext.Get(i) != v.Get(i) {
			t.Errorf("bit %d: extend changed low half", i)
		}
	}
	for i := 4; i < 8; i++ {
		if ext.Get(i) {
			t.Errorf("bit %d: expected zero in extended high half", i)
		}
	}
}

func TestFromBitString(t *testing.T) {
	v := FromBitString("1011")
	if !v.Get(0) || v.Get(1) || !v.Get(2) || !v.Get(3) {
		t.Errorf("unexpected bits: %s", v)
	}
	if v.String() != "1011" {
		t.Errorf("round trip failed: got %s", v.String())
	}
}

func TestEvalMonomial(t *testing.T) {
	m := FromBits(4, 0, 2)
	if !FromBitString("1011").EvalMonomial(m) {
		t.Errorf("expected monomial x0x2 to evaluate true on 1011")
	}
	if FromBitString("1000").EvalMonomial(m) {
		t.Errorf("expected monomial x0x2 to evaluate false on 1000")
	}
}

func TestKeyDistinguishesLength(t *testing.T) {
	a := New(4)
	b := New(8)
	if a.Key() == b.Key() {
		t.Errorf("expected different keys for different lengths")
	}
}
