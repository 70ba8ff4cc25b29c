// Package consonance rates intervals against a timbre using the
// Plomp–Levelt model of sensory dissonance.
//
// 🚀 Pipeline
//
//	Pairwise partial roughness sums into a dissonance curve over cents.
//	The curve's smooth upper hull — a not-a-knot cubic spline through
//	knots found at curvature maxima — is subtracted back out, leaving the
//	"spiky" component: how far each interval dips below the ambient
//	roughness.  Normalized to the unison dip, the spiky depth maps to a
//	0..1 consonance value on a log scale.
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/pitchgrid-io/scalatrix/consonance"
//	  "github.com/pitchgrid-io/scalatrix/spectrum"
//	)
//
//	spec := spectrum.Harmonic(8, spectrum.DefaultDecay)
//	res := consonance.AnalyzeScale(spec, 261.63, intervals, 1200, 1200)
//	fmt.Println(res.Mean)
//
// The spline fitting uses gonum's interp package; everything here is
// pure computation, safe for concurrent use on distinct inputs.
package consonance
