package calculation

import "errors"

// The error taxonomy is small: the recurrence itself has no failure modes,
// so everything is caught before the pass starts, except the merge check.
var (
	// ErrInvalidHorizon is returned when the plan horizon is below one year.
	ErrInvalidHorizon = errors.New("horizon must be at least one year")

	// ErrInvalidRate is returned when an annual rate is -100% or below,
	// which has no monthly-equivalent rate.
	ErrInvalidRate = errors.New("annual rate must be greater than -100%")

	// ErrMergeDomainMismatch is returned when the two engines' year ranges
	// diverge. Both engines run over the same horizon, so this indicates an
	// internal consistency bug rather than bad user input.
	ErrMergeDomainMismatch = errors.New("investment and savings series cover different year ranges")
)
