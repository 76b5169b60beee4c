package monomial

import (
	"strconv"

	"github.com/giuliop/gf2fn/bitvec"
)

// Monomial is a BitVec(n) interpreted as the support of a product of
// input variables x_i, i in support.
type Monomial struct {
	support bitvec.BitVec
}

// New returns the constant monomial 1 over n variables (all-zero
// support). Equivalent to Constant(n).
func New(n int) Monomial {
	return Monomial{support: bitvec.New(n)}
}

// Constant returns the constant monomial 1 over n variables.
func Constant(n int) Monomial {
	return New(n)
}

// Linear returns the monomial x_i over n variables.
func Linear(n, i int) Monomial {
	return Monomial{support: bitvec.New(n).Set(i)}
}

// FromSupport wraps an existing BitVec as a Monomial, taking
// ownership of v's content (callers must not mutate v afterwards
// through a SetInPlace-style call).
func FromSupport(v bitvec.BitVec) Monomial {
	return Monomial{support: v}
}

// Support returns the underlying BitVec of m's support. Callers must
// treat it as read-only.
func (m Monomial) Support() bitvec.BitVec {
	return m.support
}

// Len returns the number of variables m is defined over.
func (m Monomial) Len() int {
	return m.support.Len()
}

// Cardinality returns the order (degree) of m: the number of
// variables appearing in it.
func (m Monomial) Cardinality() int {
	return m.support.Cardinality()
}

// IsConstant reports whether m is the constant monomial 1.
func (m Monomial) IsConstant() bool {
	return m.support.IsZero()
}

// HasVariable reports whether x_i appears in m.
func (m Monomial) HasVariable(i int) bool {
	return m.support.Get(i)
}

// Product returns the monomial a*b: the union of their supports.
// Idempotent (Product(m, m) == m) because GF(2) multiplication of a
// variable by itself is itself.
func Product(a, b Monomial) Monomial {
	return Monomial{support: orSupports(a.support, b.support)}
}

// orSupports computes the bitwise OR of two equal-length supports.
// BitVec does not expose Or directly (multiplication is modeled as
// union, distinct from Xor/And); built from Xor and And:
// a|b == (a^b)^(a&b).
func orSupports(a, b bitvec.BitVec) bitvec.BitVec {
	return a.Xor(b).Xor(a.And(b))
}

// Divide returns a/b and true iff support(b) is a subset of
// support(a); otherwise returns the zero value and false.
func Divide(a, b Monomial) (Monomial, bool) {
	if !a.HasFactor(b) {
		return Monomial{}, false
	}
	// a & ^b == a ^ (a & b), since (a&b) subset of a.
	ab := a.support.And(b.support)
	return Monomial{support: a.support.Xor(ab)}, true
}

// HasFactor reports whether support(b) is a subset of support(a),
// i.e. whether b divides a.
func (a Monomial) HasFactor(b Monomial) bool {
	return a.support.And(b.support).Equal(b.support)
}

// Xor returns the monomial whose support is the symmetric difference
// of a and b's supports. Not a polynomial-ring operation in its own
// right. The Composer's remainder recovery does not call it: it uses
// Divide, which gives the same support whenever b divides a.
func Xor(a, b Monomial) Monomial {
	return Monomial{support: a.support.Xor(b.support)}
}

// Equal reports whether a and b have the same length and support.
func (a Monomial) Equal(b Monomial) bool {
	return a.support.Equal(b.support)
}

// Key returns a representation of m suitable for use as a Go map
// key, so Monomials can be used in maps keyed by value equality of
// support.
func (m Monomial) Key() string {
	return m.support.Key()
}

// String renders m as a product of variables, e.g. "x0*x2", or "1"
// for the constant monomial.
func (m Monomial) String() string {
	if m.IsConstant() {
		return "1"
	}
	s := ""
	for _, i := range m.support.SetBits() {
		if s != "" {
			s += "*"
		}
		s += "x" + strconv.Itoa(i)
	}
	return s
}
