// Package gf2err holds the sentinel errors shared by the public
// Function API and the Composer's internals, so callers can
// errors.Is against a stable identity regardless of which package
// raised the error.
package gf2err

import "errors"

var (
	// ErrShapeMismatch signals XOR/AND with unequal input or output
	// lengths, or Compose where outer.InputLength() != inner.OutputLength().
	ErrShapeMismatch = errors.New("gf2fn: shape mismatch")

	// ErrInvariantViolation signals a required monomial whose
	// expansion could not be derived during composition. Fatal; the
	// caller should not retry with the same inputs.
	ErrInvariantViolation = errors.New("gf2fn: internal invariant violation")

	// ErrWorkerFault signals a worker pool task panicked or failed
	// during a Composer stage.
	ErrWorkerFault = errors.New("gf2fn: worker fault")
)
