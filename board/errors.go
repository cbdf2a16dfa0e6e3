package board

import "errors"

var (
	// ErrMalformedPosition is wrapped by every FEN parse failure.
	ErrMalformedPosition = errors.New("malformed position")
	// ErrIllegalMove is returned by Play for a move the generator does not produce.
	ErrIllegalMove = errors.New("illegal move")
	// ErrInvariantViolated is wrapped by Validate.
	ErrInvariantViolated = errors.New("position invariant violated")
)
