package gf2fn

import (
	"fmt"

	"github.com/giuliop/gf2fn/bitvec"
	"github.com/giuliop/gf2fn/gf2err"
	"github.com/giuliop/gf2fn/monomial"
)

// TruncatedIdentity returns the Function over n input variables whose
// output bit j equals input variable x_(start+j), for j in
// [0, stop-start]: the projection of a subrange of the input straight
// through to the output, used to pick out or reorder a slice of
// variables ahead of a composition. Requires 0 <= start <= stop < n.
func TruncatedIdentity(start, stop, n int) (*Function, error) {
	if start < 0 || stop < start || stop >= n {
		return nil, fmt.Errorf("%w: TruncatedIdentity(%d,%d,%d) out of range",
			gf2err.ErrShapeMismatch, start, stop, n)
	}
	outputLen := stop - start + 1
	monomials := make([]monomial.Monomial, outputLen)
	contributions := make([]bitvec.BitVec, outputLen)
	for j := 0; j < outputLen; j++ {
		monomials[j] = monomial.Linear(n, start+j)
		contributions[j] = bitvec.New(outputLen).Set(j)
	}
	return New(n, outputLen, monomials, contributions)
}
