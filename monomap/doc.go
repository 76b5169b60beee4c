/*
package monomap implements MonomialMap, a mutable Monomial -> BitVec
scratchpad used while building a Function: XOR, AND and Composition
all accumulate contributions in one of these before being
canonicalized into the parallel monomials/contributions arrays a
Function carries.

Canonical form requires no all-zero contribution and no duplicate
monomial; MonomialMap enforces the second by construction (it is a
map) and the first via FilterNilContributions / RemoveNilContributions
at conversion time, exposed as a standalone external-facing utility.
*/
package monomap
