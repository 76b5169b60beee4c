package gf2fn

import (
	"fmt"

	"github.com/giuliop/gf2fn/gf2err"
	"github.com/giuliop/gf2fn/monomap"
	"github.com/giuliop/gf2fn/monomial"
)

func checkSameShape(f, g *Function) error {
	if f.inputLen != g.inputLen || f.outputLen != g.outputLen {
		return fmt.Errorf("%w: shapes (in=%d,out=%d) and (in=%d,out=%d) differ",
			gf2err.ErrShapeMismatch, f.inputLen, f.outputLen, g.inputLen, g.outputLen)
	}
	return nil
}

// Xor returns f+rhs (pointwise XOR): the Function whose apply is
// f.Apply(v) xor rhs.Apply(v) for every v. Requires f and rhs to share
// both input and output length.
func (f *Function) Xor(rhs *Function) (*Function, error) {
	if err := checkSameShape(f, rhs); err != nil {
		return nil, err
	}
	m := f.toMap()
	for i, mono := range rhs.monomials {
		m.XorInto(mono, rhs.contributions[i])
	}
	return fromMap(f.inputLen, m), nil
}

// And returns the pointwise AND of f and rhs: for every pair of terms
// (mf, cf) in f and (mg, cg) in rhs, the product monomial mf*mg
// contributes cf&cg, XORed across every such pair. Requires f and rhs
// to share both input and output length.
func (f *Function) And(rhs *Function) (*Function, error) {
	if err := checkSameShape(f, rhs); err != nil {
		return nil, err
	}
	m := monomap.New(f.outputLen)
	for i, mf := range f.monomials {
		for j, mg := range rhs.monomials {
			product := monomial.Product(mf, mg)
			contribution := f.contributions[i].And(rhs.contributions[j])
			m.XorInto(product, contribution)
		}
	}
	return fromMap(f.inputLen, m), nil
}
