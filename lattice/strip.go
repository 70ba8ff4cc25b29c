package lattice

// maxStripIter bounds the basis reduction loop.  Transforms produced from
// scale parameters converge in a handful of iterations; hitting the bound
// means the lattice maps (almost) parallel to the strip.
const maxStripIter = 64

// stripEps absorbs solver noise on the strip bounds: rational tunings put
// basis images exactly on the boundary.
const stripEps = 1e-9

// ClosestWithinStrip — nearest basis vectors for the strip walk.
//
// Description:
//
//	The scale walk steps through lattice points whose images stay inside
//	the horizontal strip 0 ≤ y < 1.  By the three-gap theorem the walk
//	only ever needs two step vectors r and s (and their sum): r moving up
//	within the strip (image y ≥ 0) and s moving down (image y ≤ 0), both
//	with |Δy| at most one strip width.  For the walk to visit every strip
//	point exactly one of r, s, r+s must fit at each node, which pins the
//	basis to y(r) - y(s) ≥ 1.
//
// Algorithm Outline:
//  1. Zero the translation; only the linear part matters for steps.
//  2. Start from the canonical basis r=(1,0), s=(0,1), negating each so
//     that r's image has y ≥ 0 and s's image has y ≤ 0.
//  3. While r overshoots (y > 1) or s undershoots (y < -1), fold the
//     vector with the smaller |y| into the offender, keeping the up/down
//     orientation invariant.
//  4. While both fit but together span less than a strip width
//     (y(r) - y(s) < 1), widen by replacing r with r-s.
//  5. Give up after maxStripIter rounds.
//
// Errors:
//   - ErrStripDegenerate — reduction did not converge within the bound.
func ClosestWithinStrip(m Transform) (r, s Vec2i, err error) {
	m.Tx, m.Ty = 0, 0

	r, s = Vec2i{X: 1}, Vec2i{Y: 1}
	if m.ApplyLattice(r).Y < 0 {
		r = r.Neg()
	}
	if m.ApplyLattice(s).Y > 0 {
		s = s.Neg()
	}

	for i := 0; i < maxStripIter; i++ {
		yr, ys := m.ApplyLattice(r).Y, m.ApplyLattice(s).Y
		switch {
		case yr > 1+stripEps || ys < -1-stripEps:
			if yr > -ys {
				r = r.Add(s)
			} else {
				s = s.Add(r)
			}
		case yr-ys < 1-stripEps:
			if yr < stripEps && -ys < stripEps {
				return Vec2i{}, Vec2i{}, ErrStripDegenerate
			}
			r = r.Sub(s)
		default:
			return r, s, nil
		}
	}
	return Vec2i{}, Vec2i{}, ErrStripDegenerate
}
