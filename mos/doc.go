// Package mos models Moment-of-Symmetry scale structures: two step sizes,
// a generator and a period, arranged so every generic interval comes in at
// most two specific sizes.
//
// 🚀 What is a MOS?
//
//	A MOS is described by step counts (a large, b small), a mode rotation,
//	an equave (the interval of equivalence, log₂) and a generator (as a
//	fraction of the period).  The step counts reduce by their gcd to a
//	primitive pair (a0, b0) repeated r times per equave.  The continued
//	fraction of a0/b0 yields the structure's refinement path, the
//	generator vector, and — via three canonical point correspondences —
//	the implied affine transform that embeds the structure in the lattice
//	strip picture of package scale.
//
// ✨ Key features:
//   - construction from step counts (New) or generator descent (FromG)
//   - a base scale spanning one equave plus its closure
//   - retuning: zero/one/two/three-point constraints, or new parameters
//     with AdjustTuning/AdjustTuningG while notation structure stays put
//   - scale tiling: periodic extension of the base scale to any node
//     range, plus squeeze-mapped scales for keyboard windows
//   - notation queries: scale membership, degree, equave number,
//     accidentals, and the notation → lattice inverse
//
// ⚙️ Usage:
//
//	import "github.com/pitchgrid-io/scalatrix/mos"
//
//	m, err := mos.New(5, 2, 1, 1.0, 0.585) // diatonic
//	if err != nil { ... }
//	s, err := m.GenerateScale(261.63, 12, 5)
//
// A MOS is not safe for concurrent mutation; callers serialize access.
package mos
