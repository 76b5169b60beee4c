/*
package monomial represents a product of distinct GF(2) input
variables as the bit vector of its support: Monomial(n) encodes the
term prod_{i in support} x_i. Because x_i^2 = x_i over GF(2),
multiplying two monomials is the union (OR) of their supports, never
XOR — XOR on supports is a different operation (symmetric
difference) and is exposed as Xor, not Product. The Composer's
remainder step divides with Divide and does not call Xor.

The all-zeros Monomial is the constant term 1.
*/
package monomial
