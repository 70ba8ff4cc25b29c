package lattice

// Path is a continued-fraction step sequence: the trace of the subtractive
// Euclidean algorithm on a coprime step-count pair, stored coarse-to-fine.
// Each entry records which of the two step counts absorbed the other at
// that refinement level.
type Path []bool

// NewPath traces the subtractive Euclidean algorithm on (a, b) down to
// (1, 1) and returns the refinement sequence in ascending depth order.
// Both counts must be positive; otherwise the path is empty.
func NewPath(a, b int) Path {
	if a < 1 || b < 1 {
		return nil
	}
	var p Path
	for a > 1 || b > 1 {
		if a > b {
			a -= b
			p = append(p, false)
		} else {
			b -= a
			p = append(p, true)
		}
	}
	for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
		p[i], p[j] = p[j], p[i]
	}
	return p
}

// Apply unfolds the path from the coarsest level, accumulating v through
// each refinement.  Applied to (1,0) this yields the generator vector.
func (p Path) Apply(v Vec2i) Vec2i {
	a, b := v.X, v.Y
	for _, step := range p {
		if step {
			b += a
		} else {
			a += b
		}
	}
	return Vec2i{a, b}
}

// ApplyReverse folds v back down the path, inverting Apply level by level
// from the finest refinement.
func (p Path) ApplyReverse(v Vec2i) Vec2i {
	a, b := v.X, v.Y
	for i := len(p) - 1; i >= 0; i-- {
		if p[i] {
			b -= a
		} else {
			a -= b
		}
	}
	return Vec2i{a, b}
}
