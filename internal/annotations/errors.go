package annotations

import "errors"

// Parse failures are classified with sentinel errors so callers can
// distinguish vocabulary problems from malformed numerics via errors.Is.
// classes.ErrUnknownClassCode joins these for unresolvable action codes.
var (
	// ErrMalformedTiming reports an action timing token that is not a
	// floating-point literal.
	ErrMalformedTiming = errors.New("malformed action timing")

	// ErrMalformedInteger reports a non-empty quality or relevance field that
	// is not an integer.
	ErrMalformedInteger = errors.New("malformed integer field")

	// ErrMalformedRow reports a structurally unusable row: a missing expected
	// column or a non-numeric length field.
	ErrMalformedRow = errors.New("malformed annotation row")
)
