package lattice

import "math"

// singularEps is the determinant magnitude below which a real transform is
// treated as singular.
const singularEps = 1e-12

// Transform is a real 2D affine map
//
//	x' = A·x + B·y + Tx
//	y' = C·x + D·y + Ty
//
// used to place lattice points into tuning space.
type Transform struct {
	A, B, C, D, Tx, Ty float64
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{A: 1, D: 1}
}

// Apply maps a tuning-space point through the transform.
func (t Transform) Apply(v Vec2) Vec2 {
	return Vec2{
		X: t.A*v.X + t.B*v.Y + t.Tx,
		Y: t.C*v.X + t.D*v.Y + t.Ty,
	}
}

// ApplyLattice maps an integer lattice point into tuning space.
func (t Transform) ApplyLattice(v Vec2i) Vec2 {
	return t.Apply(v.Vec())
}

// Compose returns t ∘ o, the transform applying o first and t second.
func (t Transform) Compose(o Transform) Transform {
	return Transform{
		A:  t.A*o.A + t.B*o.C,
		B:  t.A*o.B + t.B*o.D,
		C:  t.C*o.A + t.D*o.C,
		D:  t.C*o.B + t.D*o.D,
		Tx: t.A*o.Tx + t.B*o.Ty + t.Tx,
		Ty: t.C*o.Tx + t.D*o.Ty + t.Ty,
	}
}

// Det returns the determinant of the linear part.
func (t Transform) Det() float64 {
	return t.A*t.D - t.B*t.C
}

// Inverse returns the inverse transform, or ErrSingular when the linear
// part is not invertible.
func (t Transform) Inverse() (Transform, error) {
	det := t.Det()
	if math.Abs(det) < singularEps {
		return Transform{}, ErrSingular
	}
	inv := Transform{
		A: t.D / det,
		B: -t.B / det,
		C: -t.C / det,
		D: t.A / det,
	}
	inv.Tx = -(inv.A*t.Tx + inv.B*t.Ty)
	inv.Ty = -(inv.C*t.Tx + inv.D*t.Ty)
	return inv, nil
}

// IntTransform is an exact integer affine map on the lattice.  The linear
// part of a lattice-to-lattice change of basis must be unimodular
// (determinant ±1) for its inverse to stay integral.
type IntTransform struct {
	A, B, C, D, Tx, Ty int
}

// IntIdentity returns the identity integer transform.
func IntIdentity() IntTransform {
	return IntTransform{A: 1, D: 1}
}

// Apply maps a lattice point through the transform.
func (t IntTransform) Apply(v Vec2i) Vec2i {
	return Vec2i{
		X: t.A*v.X + t.B*v.Y + t.Tx,
		Y: t.C*v.X + t.D*v.Y + t.Ty,
	}
}

// Compose returns t ∘ o, the transform applying o first and t second.
func (t IntTransform) Compose(o IntTransform) IntTransform {
	return IntTransform{
		A:  t.A*o.A + t.B*o.C,
		B:  t.A*o.B + t.B*o.D,
		C:  t.C*o.A + t.D*o.C,
		D:  t.C*o.B + t.D*o.D,
		Tx: t.A*o.Tx + t.B*o.Ty + t.Tx,
		Ty: t.C*o.Tx + t.D*o.Ty + t.Ty,
	}
}

// Det returns the determinant of the linear part.
func (t IntTransform) Det() int {
	return t.A*t.D - t.B*t.C
}

// Inverse returns the exact inverse, or ErrNotUnimodular when the
// determinant is not ±1.
func (t IntTransform) Inverse() (IntTransform, error) {
	det := t.Det()
	if det != 1 && det != -1 {
		return IntTransform{}, ErrNotUnimodular
	}
	inv := IntTransform{
		A: t.D * det,
		B: -t.B * det,
		C: -t.C * det,
		D: t.A * det,
	}
	inv.Tx = -(inv.A*t.Tx + inv.B*t.Ty)
	inv.Ty = -(inv.C*t.Tx + inv.D*t.Ty)
	return inv, nil
}

// Transform returns the same map with float64 coefficients.
func (t IntTransform) Transform() Transform {
	return Transform{
		A: float64(t.A), B: float64(t.B),
		C: float64(t.C), D: float64(t.D),
		Tx: float64(t.Tx), Ty: float64(t.Ty),
	}
}

// LinearFromTwoDots builds the exact linear map sending src1 → dst1 and
// src2 → dst2.  The source pair must form a unimodular lattice basis:
// ErrSingular if it is degenerate, ErrNotUnimodular if the determinant is
// not ±1 (the solution would not be integral).
func LinearFromTwoDots(src1, src2, dst1, dst2 Vec2i) (IntTransform, error) {
	det := src1.X*src2.Y - src1.Y*src2.X
	switch det {
	case 0:
		return IntTransform{}, ErrSingular
	case 1, -1:
		// ok
	default:
		return IntTransform{}, ErrNotUnimodular
	}
	return IntTransform{
		A: (dst1.X*src2.Y - dst2.X*src1.Y) / det,
		B: (src1.X*dst2.X - src2.X*dst1.X) / det,
		C: (dst1.Y*src2.Y - dst2.Y*src1.Y) / det,
		D: (src1.X*dst2.Y - src2.X*dst1.Y) / det,
	}, nil
}
