// Package lattice provides the geometric kernel for scale construction on
// a 2D integer lattice.
//
// 🚀 What lives here?
//
//	Scales are modeled as paths through the integer lattice ℤ²: an affine
//	transform places lattice points into tuning space (x = log₂ frequency,
//	y = strip position), and the points falling inside the horizontal strip
//	0 ≤ y < 1 form the scale, ordered by x.  This package supplies the
//	pieces that make that work:
//	  • Vec2i / Vec2            — exact lattice points & tuning-space points
//	  • Transform / IntTransform — real and exact-integer affine maps
//	  • FromThreeDots           — solve the affine map from 3 correspondences
//	  • Path                    — continued-fraction step sequence (Euclid)
//	  • ClosestWithinStrip      — nearest basis vectors for the strip walk
//
// ✨ Key features:
//   - exact integer transforms with unimodularity checks
//   - 6×6 three-point solver backed by gonum/mat
//   - three-gap basis search with a hard iteration bound
//
// ⚙️ Usage:
//
//	import "github.com/pitchgrid-io/scalatrix/lattice"
//
//	A, err := lattice.FromThreeDots(src1, src2, src3, dst1, dst2, dst3)
//	if err != nil {
//	  // handle ErrCollinear
//	}
//	r, s, err := lattice.ClosestWithinStrip(A)
//
// All operations are pure; values are safe to copy and share between
// goroutines as long as callers do not mutate them concurrently.
package lattice
