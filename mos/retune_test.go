package mos_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pitchgrid-io/scalatrix/lattice"
	"github.com/pitchgrid-io/scalatrix/pitchset"
)

// TestRetuneOnePoint shifts the whole tuning without touching intervals.
func TestRetuneOnePoint(t *testing.T) {
	m := diatonic(t)
	gen := lattice.Vec2i{X: 3, Y: 1}

	m.RetuneOnePoint(gen, 0.6)

	assert.InDelta(t, 0.6, m.ImpliedAffine().ApplyLattice(gen).X, 1e-9)
	// Intervals survive: equave, period and generator fraction measured
	// between lattice points are unchanged... except the origin moved.
	assert.InDelta(t, 1.0, m.Equave(), 1e-9)
	assert.InDelta(t, 1.0, m.Period(), 1e-9)
	assert.InDelta(t, 0.585, m.Generator(), 1e-9)
}

// TestRetuneTwoPoints stretches the equave while pinning the origin.
func TestRetuneTwoPoints(t *testing.T) {
	m := diatonic(t)
	origin := lattice.Vec2i{}
	equave := lattice.Vec2i{X: 5, Y: 2}

	m.RetuneTwoPoints(origin, equave, 1.2)

	assert.InDelta(t, 0.0, m.ImpliedAffine().ApplyLattice(origin).X, 1e-9)
	assert.InDelta(t, 1.2, m.Equave(), 1e-9)
	// A uniform stretch leaves the generator fraction alone.
	assert.InDelta(t, 0.585, m.Generator(), 1e-9)
}

// TestRetuneThreePoints pins origin and equave, moving only the generator:
// 0.6 of an unchanged period turns the structure into 5-limit-ish meantone.
func TestRetuneThreePoints(t *testing.T) {
	m := diatonic(t)
	origin := lattice.Vec2i{}
	equave := lattice.Vec2i{X: 5, Y: 2}
	gen := lattice.Vec2i{X: 3, Y: 1}

	require.NoError(t, m.RetuneThreePoints(origin, equave, gen, 0.6))

	assert.InDelta(t, 1.0, m.Equave(), 1e-9)
	assert.InDelta(t, 0.6, m.Generator(), 1e-9)
	assert.InDelta(t, 0.6, m.ImpliedAffine().ApplyLattice(gen).X, 1e-9)

	// Base scale pitches follow the new tuning.
	node, err := m.BaseScale().Node(4)
	require.NoError(t, err)
	assert.InDelta(t, 0.6, node.TuningCoord.X, 1e-9)
}

// TestRetuneZeroPoint undoes tempering of the base scale.
func TestRetuneZeroPoint(t *testing.T) {
	m := diatonic(t)

	twelve, err := pitchset.ET(12, 1.0, -0.5, 1.5)
	require.NoError(t, err)
	require.NoError(t, m.BaseScale().TemperTo(twelve))
	node, err := m.BaseScale().Node(4)
	require.NoError(t, err)
	require.True(t, node.Tempered)

	m.RetuneZeroPoint()

	node, err = m.BaseScale().Node(4)
	require.NoError(t, err)
	assert.False(t, node.Tempered)
	assert.InDelta(t, 0.585, node.TuningCoord.X, 1e-9)
}

// TestAdjustTuning retunes the same step counts while notation structure
// stays frozen.
func TestAdjustTuning(t *testing.T) {
	m := diatonic(t)

	require.NoError(t, m.AdjustTuning(1, 1.0, 0.59))

	assert.Equal(t, 5, m.A())
	assert.Equal(t, 2, m.B())
	assert.InDelta(t, 0.59, m.Generator(), 1e-12)
	assert.InDelta(t, 0.585, m.StructureGenerator(), 1e-12)
}

// TestAdjustTuningG retunes while notation structure stays frozen.
func TestAdjustTuningG(t *testing.T) {
	m := diatonic(t)
	structLarge := m.StructureLargeVec()
	structChroma := m.StructureChromaVec()

	// Flip to a dark generator: the tuned large step moves to (0,1).
	require.NoError(t, m.AdjustTuningG(3, 1, 0.415, 1.0, 1))

	assert.Equal(t, lattice.Vec2i{Y: 1}, m.LargeVec())
	assert.Equal(t, structLarge, m.StructureLargeVec())
	assert.Equal(t, structChroma, m.StructureChromaVec())
	assert.InDelta(t, 0.585, m.StructureGenerator(), 1e-12)
	assert.InDelta(t, 0.415, m.Generator(), 1e-12)
}
