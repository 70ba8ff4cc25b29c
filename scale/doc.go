// Package scale realizes the central idea of the module: a scale is a path
// on a 2D integer lattice.
//
// 🚀 How a scale is built
//
//	An affine transform redistributes the lattice in tuning space, where
//	x is log₂ of the frequency ratio and y a transverse coordinate.  The
//	lattice points whose images land inside the horizontal strip
//	0 ≤ y < 1, ordered by x, form the scale.  The walk never searches:
//	by the three-gap theorem, two basis vectors (and their sum) found by
//	lattice.ClosestWithinStrip reach every strip point in order.
//
// ✨ Key features:
//   - Scale generation from an arbitrary affine transform
//   - retuning in place: new transform, same lattice coordinates
//   - tempering against a pitchset.Set (nearest-pitch snapping)
//
// ⚙️ Usage:
//
//	import "github.com/pitchgrid-io/scalatrix/scale"
//
//	s, err := scale.FromAffine(transform, 440.0, 12, 5)
//	if err != nil { ... }
//	for _, n := range s.Nodes() {
//	  fmt.Println(n.NaturalCoord, n.Pitch)
//	}
//
// A Scale is not safe for concurrent mutation; callers serialize access.
package scale
