package gf2fn

import (
	"context"
	"fmt"

	"github.com/giuliop/gf2fn/compose"
	"github.com/giuliop/gf2fn/gf2err"
	"github.com/giuliop/gf2fn/monomap"
	"github.com/giuliop/gf2fn/monomial"
	"github.com/giuliop/gf2fn/workerpool"
)

func (f *Function) toInput() compose.Input {
	return compose.Input{
		InputLen:      f.inputLen,
		OutputLen:     f.outputLen,
		Monomials:     f.Monomials(),
		Contributions: f.Contributions(),
	}
}

func fromInput(in compose.Input) *Function {
	return &Function{
		inputLen:      in.InputLen,
		outputLen:     in.OutputLen,
		monomials:     in.Monomials,
		contributions: in.Contributions,
	}
}

// Compose returns f(inner(x)): a Function over inner's input
// variables equivalent to evaluating inner first and feeding its
// output into f. Requires f.InputLength() == inner.OutputLength().
// A nil pool uses a pool of workerpool.DefaultSize workers.
func (f *Function) Compose(pool *workerpool.Pool, inner *Function, opts ...compose.Option) (*Function, error) {
	c := compose.NewComposer(pool, opts...)
	out, _, err := c.Compose(context.Background(), f.toInput(), inner.toInput())
	if err != nil {
		return nil, err
	}
	return fromInput(out), nil
}

// ComposeTwo returns f(lhs(x), rhs(x)): lhs and rhs are concatenated
// into a single inner Function (lhs reading the low half of the
// combined input, rhs the high half) and composed with f. Equivalent
// to f.Compose(pool, Concatenate(lhs, rhs)).
func (f *Function) ComposeTwo(pool *workerpool.Pool, lhs, rhs *Function, opts ...compose.Option) (*Function, error) {
	inner, err := Concatenate(lhs, rhs)
	if err != nil {
		return nil, err
	}
	return f.Compose(pool, inner, opts...)
}

// Concatenate returns the Function over lhs.InputLength()+
// rhs.InputLength() variables whose low output bits equal
// lhs(x_low) and whose high output bits equal rhs(x_high), where
// x_low is lhs's share of the combined input and x_high is rhs's.
// Used to build the inner Function ComposeTwo needs from two
// independently-defined operands.
func Concatenate(lhs, rhs *Function) (*Function, error) {
	combinedIn := lhs.inputLen + rhs.inputLen
	combinedOut := lhs.outputLen + rhs.outputLen

	m := monomap.New(combinedOut)
	for i, mono := range lhs.monomials {
		shifted := monomial.FromSupport(mono.Support().Extend(combinedIn))
		contribution := lhs.contributions[i].Extend(combinedOut)
		m.XorInto(shifted, contribution)
	}
	for i, mono := range rhs.monomials {
		shifted := monomial.FromSupport(mono.Support().ShiftedInto(combinedIn, lhs.inputLen))
		contribution := rhs.contributions[i].ShiftedInto(combinedOut, lhs.outputLen)
		m.XorInto(shifted, contribution)
	}
	return FromMonomialMap(combinedIn, m)
}

// Extend returns f reinterpreted over newLen input variables: every
// monomial's support is zero-padded into the high bits, so the
// additional variables never appear in any term. newLen must be >=
// f.InputLength().
func (f *Function) Extend(newLen int) (*Function, error) {
	if newLen < f.inputLen {
		return nil, fmt.Errorf("%w: Extend to shorter length %d < %d", gf2err.ErrShapeMismatch, newLen, f.inputLen)
	}
	monomials := make([]monomial.Monomial, len(f.monomials))
	for i, mono := range f.monomials {
		monomials[i] = monomial.FromSupport(mono.Support().Extend(newLen))
	}
	return New(newLen, f.outputLen, monomials, f.Contributions())
}
