package lattice

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// FromThreeDots — affine transform from three point correspondences.
//
// Description:
//
//	A 2D affine transform has six degrees of freedom, so it is exactly
//	determined by where it sends three points in general position.
//	Given sources a1,a2,a3 and targets b1,b2,b3, the coefficients solve
//	the 6×6 linear system with two rows per correspondence:
//
//	  [ aᵢ.x  aᵢ.y  1   0     0    0 ] [A  B  Tx]ᵀ = bᵢ.x
//	  [ 0     0     0   aᵢ.x  aᵢ.y 1 ] [C  D  Ty]ᵀ = bᵢ.y
//
// Errors:
//   - ErrCollinear — the sources are collinear and the system is singular.
func FromThreeDots(a1, a2, a3, b1, b2, b3 Vec2) (Transform, error) {
	m := mat.NewDense(6, 6, []float64{
		a1.X, a1.Y, 1, 0, 0, 0,
		0, 0, 0, a1.X, a1.Y, 1,
		a2.X, a2.Y, 1, 0, 0, 0,
		0, 0, 0, a2.X, a2.Y, 1,
		a3.X, a3.Y, 1, 0, 0, 0,
		0, 0, 0, a3.X, a3.Y, 1,
	})
	rhs := mat.NewVecDense(6, []float64{b1.X, b1.Y, b2.X, b2.Y, b3.X, b3.Y})

	var sol mat.VecDense
	if err := sol.SolveVec(m, rhs); err != nil {
		// An ill-conditioned but solvable system still yields a usable
		// transform; only outright singularity is fatal.
		var cond mat.Condition
		if !errors.As(err, &cond) {
			return Transform{}, ErrCollinear
		}
	}
	return Transform{
		A:  sol.AtVec(0),
		B:  sol.AtVec(1),
		Tx: sol.AtVec(2),
		C:  sol.AtVec(3),
		D:  sol.AtVec(4),
		Ty: sol.AtVec(5),
	}, nil
}
