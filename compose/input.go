package compose

import (
	"fmt"

	"github.com/giuliop/gf2fn/bitvec"
	"github.com/giuliop/gf2fn/gf2err"
	"github.com/giuliop/gf2fn/monomial"
)

// Input is the minimal view of a Function Composer needs: parallel
// monomials/contributions arrays plus the two declared lengths. It
// lets compose stay decoupled from gf2fn.Function so the dependency
// between the two packages runs one way.
type Input struct {
	InputLen      int
	OutputLen     int
	Monomials     []monomial.Monomial
	Contributions []bitvec.BitVec
}

func validateComposeShapes(outer, inner Input) error {
	if len(outer.Monomials) != len(outer.Contributions) {
		return fmt.Errorf("%w: outer has %d monomials but %d contributions",
			gf2err.ErrShapeMismatch, len(outer.Monomials), len(outer.Contributions))
	}
	if len(inner.Monomials) != len(inner.Contributions) {
		return fmt.Errorf("%w: inner has %d monomials but %d contributions",
			gf2err.ErrShapeMismatch, len(inner.Monomials), len(inner.Contributions))
	}
	if outer.InputLen != inner.OutputLen {
		return fmt.Errorf("%w: outer input length %d != inner output length %d",
			gf2err.ErrShapeMismatch, outer.InputLen, inner.OutputLen)
	}
	return nil
}
