package scale

import "errors"

var (
	// ErrNodeCount indicates a scale with no nodes was requested.
	ErrNodeCount = errors.New("scale: node count must be positive")
	// ErrRootIndex indicates the root index lies outside the node range.
	ErrRootIndex = errors.New("scale: root index out of range")
	// ErrIndexRange indicates a node index outside the scale.
	ErrIndexRange = errors.New("scale: node index out of range")
	// ErrEmptyPitchSet indicates tempering against an empty pitch set.
	ErrEmptyPitchSet = errors.New("scale: pitch set must be non-empty")
)
