// Package pitchset generates labeled collections of target pitches for
// tempering: equal temperaments, just-intonation ratio sets, and harmonic
// series segments.
//
// A pitch is a label plus a log₂ frequency ratio against some root.  Labels
// follow the conventions of microtonal notation software:
//
//	"7\12"  — step 7 of 12 equal divisions of the equave
//	"3:2"   — the just ratio 3/2
//
// Sets are always sorted ascending by ratio, so a scale can be tempered to
// its nearest members with a single pass.
//
// ⚙️ Usage:
//
//	import "github.com/pitchgrid-io/scalatrix/pitchset"
//
//	twelve, err := pitchset.ET(12, 1.0, -1.0, 2.0)
//	ji := pitchset.JI(pitchset.DefaultPrimes(3), 16, -1.0, 1.0)
//
// Pitch labels carry enough structure for simple algebra: adding two ratio
// pitches multiplies their fractions, scaling a pitch raises it to an
// integer power.  See Pitch.Add and Pitch.Scale.
package pitchset
