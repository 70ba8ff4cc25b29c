// Package scalatrix generates and retunes microtonal scales from a single
// geometric idea: a scale is a path on a 2D integer lattice.
//
// 🚀 What is scalatrix?
//
//	An affine transform places the integer lattice in tuning space; the
//	points whose images fall inside the unit strip 0 ≤ y < 1, read off in
//	order of log-frequency, are the scale.  Moment-of-Symmetry structure,
//	retuning, tempering to pitch sets, note naming and consonance
//	analysis all build on that picture:
//		• lattice:    vectors, affine transforms, three-point solver,
//		              continued-fraction paths, strip basis search
//		• scale:      scale generation, retuning, tempering
//		• mos:        MOS structures — derivation, retune family,
//		              tiling, notation queries
//		• pitchset:   equal-tempered, just-intonation and harmonic
//		              tempering targets
//		• labels:     note names, accidentals, deviation labels
//		• spectrum:   timbre descriptions
//		• consonance: Plomp–Levelt dissonance curves, interval rating
//		• cmd:        the scalatrix demo CLI
//
// ✨ Why scalatrix?
//
//   - One model – every tuning operation is a transform of the same
//     lattice, so structure and intonation never drift apart
//   - Exact where it matters – integer transforms stay integral,
//     notation survives retuning
//   - Pure computation – no hidden state, results depend only on inputs
//
// ⚙️ Quick start:
//
//	import "github.com/pitchgrid-io/scalatrix/mos"
//
//	m, _ := mos.New(5, 2, 1, 1.0, 0.585)       // the diatonic structure
//	s, _ := m.GenerateScale(261.6255653, 12, 5) // 12 nodes around middle C
//	for _, n := range s.Nodes() {
//	  fmt.Println(n.NaturalCoord, n.Pitch)
//	}
//
// Each package carries its own documentation and runnable examples; start
// with mos and scale.
package scalatrix
