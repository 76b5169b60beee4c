/*
package bitvec provides a fixed-length bit vector over GF(2), the
storage primitive every other package in this module builds on.

A BitVec's length is fixed at construction; every operation that
combines two BitVecs (Xor, And) requires equal length and panics
otherwise, since by the time two BitVecs meet in this package their
lengths have already been validated by the caller (Function.Xor,
Function.And) as a public-API shape-mismatch error. A bad length
reaching bitvec is a programmer error in this module, not a user
input error.

Words are exposed read-only via Elements for eval_monomial-style AND
masks; callers must not mutate the returned slice.
*/
package bitvec
