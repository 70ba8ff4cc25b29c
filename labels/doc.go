// Package labels renders note names for MOS scale degrees: digits or
// letters with ♭/♯ accidentals, octave numbers, and deviation-in-cents
// suffixes against a tempering target.
//
// Two accidental conventions are supported.  Structural (the default)
// reads accidentals off the step vectors frozen when the structure was
// parameterized, so note names survive retuning; Tuned follows whichever
// step currently sounds larger.
//
// ⚙️ Usage:
//
//	import "github.com/pitchgrid-io/scalatrix/labels"
//
//	opts := labels.DefaultOptions()
//	name := labels.Letter(m, coord, opts)          // "C♯"
//	full := labels.LetterWithOctave(m, coord, opts) // "C♯4"
//
// The Calculator additionally normalizes note names across structures:
// diatonic-like tunings borrow the familiar seven letters regardless of
// their own step counts.
package labels
