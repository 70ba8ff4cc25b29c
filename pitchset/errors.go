package pitchset

import "errors"

var (
	// ErrDivisions indicates an equal temperament with a non-positive
	// number of divisions.
	ErrDivisions = errors.New("pitchset: number of divisions must be positive")
	// ErrBase indicates a harmonic series rooted on a non-positive harmonic.
	ErrBase = errors.New("pitchset: series base must be positive")
)
