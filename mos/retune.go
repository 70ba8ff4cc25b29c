package mos

import (
	"fmt"

	"github.com/pitchgrid-io/scalatrix/lattice"
)

// recalcOnRetune installs a new tuning transform: the base scale keeps its
// lattice coordinates but re-reads pitches, and the scalar tuning state
// (equave, period, generator, step vectors) is re-measured from the map.
func (m *MOS) recalcOnRetune(a lattice.Transform) {
	m.baseScale.Retune(a)
	m.implied = a

	origin := a.ApplyLattice(lattice.Vec2i{}).X
	m.equave = a.ApplyLattice(lattice.Vec2i{X: m.a, Y: m.b}).X - origin
	m.period = a.ApplyLattice(lattice.Vec2i{X: m.a0, Y: m.b0}).X - origin
	m.generator = (a.ApplyLattice(m.vGen).X - origin) / m.period

	m.updateVectors()
}

// RetuneZeroPoint reapplies the current transform, undoing any tempering
// of the base scale.
func (m *MOS) RetuneZeroPoint() {
	m.recalcOnRetune(m.implied)
}

// RetuneOnePoint shifts all frequencies so lattice point v sounds at
// log2fr.  Intervals are preserved.
func (m *MOS) RetuneOnePoint(v lattice.Vec2i, log2fr float64) {
	a := m.implied
	a.Tx += log2fr - m.implied.ApplyLattice(v).X
	m.recalcOnRetune(a)
}

// RetuneTwoPoints rescales frequencies around a fixed point: fixed keeps
// its current pitch while v moves to log2fr, stretching all intervals by
// the same factor.
func (m *MOS) RetuneTwoPoints(fixed, v lattice.Vec2i, log2fr float64) {
	a := m.implied
	fixedLog2fr := a.ApplyLattice(fixed).X
	stretch := (log2fr - fixedLog2fr) / (a.ApplyLattice(v).X - fixedLog2fr)

	b := lattice.Identity()
	b.A = stretch
	a = b.Compose(a)
	a.Tx = fixedLog2fr - a.ApplyLattice(fixed).X
	m.recalcOnRetune(a)
}

// RetuneThreePoints solves a fresh transform pinning fixed1 and fixed2 to
// their current pitches while v moves to log2fr.  Unlike the one- and
// two-point retunes this can shear the strip, so it may fail when the
// three lattice points are collinear.
func (m *MOS) RetuneThreePoints(fixed1, fixed2, v lattice.Vec2i, log2fr float64) error {
	t1 := m.implied.ApplyLattice(fixed1)
	t2 := m.implied.ApplyLattice(fixed2)
	tv := m.implied.ApplyLattice(v)
	tv.X = log2fr

	a, err := lattice.FromThreeDots(fixed1.Vec(), fixed2.Vec(), v.Vec(), t1, t2, tv)
	if err != nil {
		return fmt.Errorf("mos: three-point retune: %w", err)
	}
	m.recalcOnRetune(a)
	return nil
}
