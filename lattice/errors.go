package lattice

import "errors"

var (
	// ErrSingular indicates a transform with zero determinant cannot be inverted.
	ErrSingular = errors.New("lattice: transform is singular")
	// ErrNotUnimodular indicates an integer transform whose determinant is not ±1.
	ErrNotUnimodular = errors.New("lattice: integer transform must have determinant ±1")
	// ErrCollinear indicates the three source or target points do not determine
	// a unique affine transform.
	ErrCollinear = errors.New("lattice: points are collinear, affine transform is underdetermined")
	// ErrStripDegenerate indicates the strip search failed to converge, i.e.
	// the transform maps the lattice (almost) parallel to the strip.
	ErrStripDegenerate = errors.New("lattice: strip search did not converge")
)
