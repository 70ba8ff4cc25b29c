package mos

import "errors"

var (
	// ErrStepCount indicates non-positive large or small step counts.
	ErrStepCount = errors.New("mos: step counts must be positive")
	// ErrGeneratorRange indicates a generator outside [0, 1].
	ErrGeneratorRange = errors.New("mos: generator must lie in [0, 1]")
	// ErrRangeExceeded indicates a scale spanning more equaves than the
	// tiling supports.
	ErrRangeExceeded = errors.New("mos: requested node range exceeds the supported equave span")
	// ErrNotationRange indicates a notation step outside [0, n).
	ErrNotationRange = errors.New("mos: notation step out of range")
)
