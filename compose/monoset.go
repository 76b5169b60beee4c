package compose

import "github.com/giuliop/gf2fn/monomial"

// monoSet represents a set of inner-basis Monomials, the value side
// of the expansions memo: Monomial(n_o) -> Set<Monomial(n_i)>. Keyed
// by Monomial.Key so membership and toggling are O(1).
type monoSet map[string]monomial.Monomial

func newMonoSet() monoSet {
	return make(monoSet)
}

// toggle flips m's membership in s, in place.
func (s monoSet) toggle(m monomial.Monomial) {
	k := m.Key()
	if _, ok := s[k]; ok {
		delete(s, k)
	} else {
		s[k] = m
	}
}

// symmetricDifference returns a new set that is a xor b.
func symmetricDifference(a, b monoSet) monoSet {
	out := make(monoSet, len(a)+len(b))
	for k, m := range a {
		out[k] = m
	}
	for _, m := range b {
		out.toggle(m)
	}
	return out
}

// setProduct computes the expansion of (sum of a) * (sum of b) in
// GF(2)[x]/(x_i^2 - x_i): the multiset xor of all pairwise
// supports-union.
func setProduct(a, b monoSet) monoSet {
	out := newMonoSet()
	for _, x := range a {
		for _, y := range b {
			out.toggle(monomial.Product(x, y))
		}
	}
	return out
}
