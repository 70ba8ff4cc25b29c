package spectrum_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pitchgrid-io/scalatrix/spectrum"
)

func TestHarmonic(t *testing.T) {
	sp := spectrum.Harmonic(4, 0.5)
	require.Len(t, sp.Partials, 4)

	wantRatio := []float64{1, 2, 3, 4}
	wantAmp := []float64{1, 0.5, 0.25, 0.125}
	for i, p := range sp.Partials {
		assert.InDelta(t, wantRatio[i], p.Ratio, 1e-12, "partial %d", i)
		assert.InDelta(t, wantAmp[i], p.Amplitude, 1e-12, "partial %d", i)
	}
}

func TestHarmonic_Empty(t *testing.T) {
	assert.Empty(t, spectrum.Harmonic(0, spectrum.DefaultDecay).Partials)
}

func TestOddHarmonic(t *testing.T) {
	sp := spectrum.OddHarmonic(7, 0.5)
	require.Len(t, sp.Partials, 4)

	wantRatio := []float64{1, 3, 5, 7}
	for i, p := range sp.Partials {
		assert.InDelta(t, wantRatio[i], p.Ratio, 1e-12, "partial %d", i)
		assert.InDelta(t, math.Pow(0.5, wantRatio[i]-1), p.Amplitude, 1e-12, "partial %d", i)
	}
}

func TestPseudoharmonic(t *testing.T) {
	// Flatten prime 3 to a quarter-comma meantone twelfth: 1200*log2(3)
	// minus a quarter of the syntonic comma.
	threeCents := 1200*math.Log2(3) - 5.376572399
	sp := spectrum.Pseudoharmonic(9, spectrum.DefaultDecay, map[int]float64{3: threeCents})
	require.Len(t, sp.Partials, 9)

	adj := math.Exp2(threeCents/1200) / 3

	// Powers of two stay put, multiples of three shift once per factor.
	assert.InDelta(t, 2.0, sp.Partials[1].Ratio, 1e-12)
	assert.InDelta(t, 4.0, sp.Partials[3].Ratio, 1e-12)
	assert.InDelta(t, 3*adj, sp.Partials[2].Ratio, 1e-12)
	assert.InDelta(t, 6*adj, sp.Partials[5].Ratio, 1e-12)
	assert.InDelta(t, 9*adj*adj, sp.Partials[8].Ratio, 1e-12)

	// The adjusted twelfth sits below the pure one.
	assert.Less(t, sp.Partials[2].Ratio, 3.0)
}
