package labels_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pitchgrid-io/scalatrix/labels"
	"github.com/pitchgrid-io/scalatrix/lattice"
	"github.com/pitchgrid-io/scalatrix/mos"
	"github.com/pitchgrid-io/scalatrix/pitchset"
	"github.com/pitchgrid-io/scalatrix/scale"
)

func diatonic(t *testing.T) *mos.MOS {
	t.Helper()
	m, err := mos.New(5, 2, 1, 1.0, 0.585)
	require.NoError(t, err)
	return m
}

//------------------------------------------------------------------//
// Letters and digits
//------------------------------------------------------------------//

func TestLetter(t *testing.T) {
	m := diatonic(t)
	opts := labels.DefaultOptions()

	cases := []struct {
		name string
		v    lattice.Vec2i
		want string
	}{
		{"root is C", lattice.Vec2i{}, "C"},
		{"whole step up", lattice.Vec2i{X: 1}, "D"},
		{"fourth", lattice.Vec2i{X: 2, Y: 1}, "F"},
		{"fifth", lattice.Vec2i{X: 3, Y: 1}, "G"},
		{"chroma up", lattice.Vec2i{X: 1, Y: -1}, "♯C"},
		{"chroma down", lattice.Vec2i{X: -1, Y: 1}, "♭C"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, labels.Letter(m, tc.v, opts))
		})
	}
}

func TestLetter_AccidentalAfter(t *testing.T) {
	m := diatonic(t)
	opts := labels.DefaultOptions()
	opts.AccidentalAfter = true

	assert.Equal(t, "C♯", labels.Letter(m, lattice.Vec2i{X: 1, Y: -1}, opts))
}

func TestLetter_BaseEquave(t *testing.T) {
	m := diatonic(t)
	opts := labels.DefaultOptions()

	// Walking the base scale spells the naturals in order.
	want := []string{"C", "D", "E", "F", "G", "A", "B", "C"}
	for i, n := range m.BaseScale().Nodes() {
		assert.Equal(t, want[i], labels.Letter(m, n.NaturalCoord, opts), "node %d", i)
	}
}

func TestLetterWithOctave(t *testing.T) {
	m := diatonic(t)
	opts := labels.DefaultOptions()

	assert.Equal(t, "C4", labels.LetterWithOctave(m, lattice.Vec2i{}, opts))
	assert.Equal(t, "C5", labels.LetterWithOctave(m, lattice.Vec2i{X: 5, Y: 2}, opts))
	assert.Equal(t, "B3", labels.LetterWithOctave(m, lattice.Vec2i{X: 0, Y: -1}, opts))
}

func TestDigits(t *testing.T) {
	m := diatonic(t)
	opts := labels.DefaultOptions()
	fifth := lattice.Vec2i{X: 3, Y: 1}

	assert.Equal(t, "5", labels.Digit(m, fifth, opts))
	assert.Equal(t, "4", labels.DigitZeroBased(m, fifth, opts))
	assert.Equal(t, "♯1", labels.Digit(m, lattice.Vec2i{X: 1, Y: -1}, opts))
}

//------------------------------------------------------------------//
// Deviation
//------------------------------------------------------------------//

func TestDeviation(t *testing.T) {
	fifth := pitchset.Pitch{Label: "3:2", Log2fr: math.Log2(1.5)}

	t.Run("within threshold", func(t *testing.T) {
		n := scale.Node{ClosestPitch: fifth}
		n.TuningCoord.X = fifth.Log2fr + 0.0001
		assert.Equal(t, "3:2", labels.Deviation(n, 0.5, false))
	})

	t.Run("above threshold", func(t *testing.T) {
		n := scale.Node{ClosestPitch: fifth}
		n.TuningCoord.X = fifth.Log2fr + 0.01
		assert.Equal(t, "3:2+12.0ct", labels.Deviation(n, 0.5, false))
	})

	t.Run("tempered comparison", func(t *testing.T) {
		n := scale.Node{ClosestPitch: fifth, TemperedPitch: fifth}
		n.TuningCoord.X = fifth.Log2fr + 0.01
		assert.Equal(t, "3:2", labels.Deviation(n, 0.5, true))
	})

	t.Run("no reference pitch", func(t *testing.T) {
		assert.Equal(t, "", labels.Deviation(scale.Node{}, 0.5, false))
	})
}

//------------------------------------------------------------------//
// Calculator
//------------------------------------------------------------------//

func TestCalculator_Normalized(t *testing.T) {
	calc, err := labels.NewCalculator(labels.DefaultOptions())
	require.NoError(t, err)

	dia := diatonic(t)
	assert.Equal(t, "G", calc.Normalized(dia, lattice.Vec2i{X: 3, Y: 1}, false))
	assert.Equal(t, "5", calc.Normalized(dia, lattice.Vec2i{X: 3, Y: 1}, true))

	// The pentatonic generator borrows the diatonic fifth's letter via
	// the path mapping.
	penta, err := mos.New(3, 2, 1, 1.0, 0.585)
	require.NoError(t, err)
	assert.Equal(t, "C", calc.Normalized(penta, lattice.Vec2i{}, false))
	assert.Equal(t, "G", calc.Normalized(penta, lattice.Vec2i{X: 2, Y: 1}, false))

	// A generator outside the meantone window falls back to digits.
	hard, err := mos.New(5, 2, 1, 1.0, 0.62)
	require.NoError(t, err)
	assert.Equal(t, "5", calc.Normalized(hard, lattice.Vec2i{X: 3, Y: 1}, false))
}
