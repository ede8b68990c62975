package aliasdist

import "errors"

var (
	// ErrInvalidWeight is returned when a weight is negative, NaN, or infinite.
	ErrInvalidWeight = errors.New("aliasdist: weights must be non-negative finite numbers")

	// ErrNullDistribution is returned when no weights are given or all weights sum to zero.
	ErrNullDistribution = errors.New("aliasdist: distribution has no probability mass")
)
