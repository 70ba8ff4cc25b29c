package scale

import (
	"github.com/pitchgrid-io/scalatrix/lattice"
	"github.com/pitchgrid-io/scalatrix/pitchset"
)

// Node is one scale degree.
//
// NaturalCoord is the exact lattice point the degree came from; it never
// changes under retuning.  TuningCoord is its image in tuning space under
// the current transform (x = log₂ ratio to the root, y = strip position),
// and Pitch the resulting frequency in Hz.
//
// When the scale has been tempered, Tempered is set and TemperedPitch
// holds the pitch-set member the degree snapped to; ClosestPitch remembers
// the nearest member even after retuning clears the tempering.
type Node struct {
	NaturalCoord lattice.Vec2i
	TuningCoord  lattice.Vec2
	Pitch        float64

	Tempered      bool
	TemperedPitch pitchset.Pitch
	ClosestPitch  pitchset.Pitch
}
