package labels

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pitchgrid-io/scalatrix/lattice"
	"github.com/pitchgrid-io/scalatrix/mos"
	"github.com/pitchgrid-io/scalatrix/scale"
)

// Convention selects which step vectors drive accidental spelling.
type Convention int

const (
	// Structural spells accidentals from the step vectors frozen at
	// parameter time; names are stable under retuning.
	Structural Convention = iota
	// Tuned spells accidentals from whichever step currently sounds
	// larger.
	Tuned
)

// Options configures label rendering.
//
// Fields:
//   - Convention      — Structural or Tuned accidental spelling.
//   - AccidentalAfter — "1♯" instead of "♯1".
//   - MiddleCOctave   — octave number assigned to the base equave.
type Options struct {
	Convention      Convention
	AccidentalAfter bool
	MiddleCOctave   int
}

// DefaultOptions returns structural spelling, accidentals before the
// degree, and middle C in octave 4.
func DefaultOptions() Options {
	return Options{Convention: Structural, MiddleCOctave: 4}
}

// accidental renders the ♭/♯ string for v under the chosen convention.
func accidental(m *mos.MOS, v lattice.Vec2i, conv Convention) string {
	large := m.StructureLargeVec()
	if conv == Tuned {
		large = m.LargeVec()
	}
	accSign, neutral := -1, m.N0()-2
	if large.X == 1 {
		accSign, neutral = 1, 1
	}
	nGen := v.X*m.B0() - v.Y*m.A0()
	acc := accSign * int(math.Floor((float64(nGen+neutral)+0.5)/float64(m.N0())))

	switch {
	case acc < 0:
		return strings.Repeat("♭", -acc)
	case acc > 0:
		return strings.Repeat("♯", acc)
	default:
		return ""
	}
}

func compose(degree, acc string, after bool) string {
	if after {
		return degree + acc
	}
	return acc + degree
}

// Digit labels v with its one-based degree number and accidentals.
func Digit(m *mos.MOS, v lattice.Vec2i, opts Options) string {
	deg := strconv.Itoa(m.NodeScaleDegree(v) + 1)
	return compose(deg, accidental(m, v, opts.Convention), opts.AccidentalAfter)
}

// DigitZeroBased labels v with its zero-based degree number and
// accidentals.
func DigitZeroBased(m *mos.MOS, v lattice.Vec2i, opts Options) string {
	deg := strconv.Itoa(m.NodeScaleDegree(v))
	return compose(deg, accidental(m, v, opts.Convention), opts.AccidentalAfter)
}

// Letter labels v with a letter name and accidentals.  Degree 0 of the
// base equave is "C", matching keyboard convention.
func Letter(m *mos.MOS, v lattice.Vec2i, opts Options) string {
	dia := (m.NodeScaleDegree(v) + 2) % m.N()
	letter := string(rune('A' + dia))
	return compose(letter, accidental(m, v, opts.Convention), opts.AccidentalAfter)
}

// LetterWithOctave appends the equave number to Letter, counted from
// Options.MiddleCOctave.
func LetterWithOctave(m *mos.MOS, v lattice.Vec2i, opts Options) string {
	return Letter(m, v, opts) + strconv.Itoa(opts.MiddleCOctave+m.NodeEquaveNr(v))
}

// Deviation labels a tempered node by its nearest pitch-set member,
// appending the deviation in cents when it exceeds thresholdCents.
// With compareTempered the snapped pitch is measured instead of the
// node's tuning coordinate.  Nodes without a reference pitch yield "".
func Deviation(n scale.Node, thresholdCents float64, compareTempered bool) string {
	ref := n.ClosestPitch
	if ref.Label == "" {
		return ""
	}
	actual := n.TuningCoord.X
	if compareTempered {
		actual = n.TemperedPitch.Log2fr
	}
	cents := 1200.0 * (actual - ref.Log2fr)
	if math.Abs(cents) < thresholdCents {
		return ref.Label
	}
	return fmt.Sprintf("%s%+.1fct", ref.Label, cents)
}
