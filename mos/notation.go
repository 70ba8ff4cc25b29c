package mos

import (
	"math"

	"github.com/pitchgrid-io/scalatrix/lattice"
)

// NodeInScale reports whether lattice point v belongs to the mode's
// window: its generator count, offset by the mode, falls within one
// equave's worth of degrees.
func (m *MOS) NodeInScale(v lattice.Vec2i) bool {
	d := v.X*m.b - v.Y*m.a + m.mode
	return d >= 0 && d < m.n
}

// NodeScaleDegree returns the degree of v within its equave, 0 ≤ d < n.
func (m *MOS) NodeScaleDegree(v lattice.Vec2i) int {
	return floorMod(v.X+v.Y, m.n)
}

// NodeEquaveNr returns which equave v falls in, 0 for the base equave.
func (m *MOS) NodeEquaveNr(v lattice.Vec2i) int {
	return floorDiv(v.X+v.Y, m.n)
}

// NodeAccidental returns the accidental count of v in the bright-generator
// convention: positive raises (sharp), negative lowers (flat).  Structural
// step vectors decide the orientation, so the count is stable under
// retuning.
func (m *MOS) NodeAccidental(v lattice.Vec2i) int {
	accSign := -1
	neutral := m.n0 - 2
	if m.structLVec.X == 1 {
		accSign = 1
		neutral = 1
	}
	nGen := v.X*m.b0 - v.Y*m.a0
	return accSign * int(math.Floor((float64(nGen+neutral)+0.5)/float64(m.n0)))
}

// CoordFromNotation converts notation (step, alter, octave) back to a
// lattice point: the base-scale degree, raised by alter structural chromas
// and shifted by octave equaves.  Inverse of the NodeScaleDegree /
// NodeAccidental / NodeEquaveNr triple on scale members.
//
// step must satisfy 0 ≤ step < n.
func (m *MOS) CoordFromNotation(step, alter, octave int) (lattice.Vec2i, error) {
	if step < 0 || step >= m.n {
		return lattice.Vec2i{}, ErrNotationRange
	}
	base, err := m.baseScale.Node(step)
	if err != nil {
		return lattice.Vec2i{}, err
	}
	v := base.NaturalCoord.
		Add(m.structChromaVec.Scale(alter)).
		Add(lattice.Vec2i{X: m.a, Y: m.b}.Scale(octave))
	return v, nil
}
