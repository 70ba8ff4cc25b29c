package lattice_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pitchgrid-io/scalatrix/lattice"
)

//----------------------------------------------------------------------------//
// Transform Tests
//----------------------------------------------------------------------------//

// TestTransform_Apply verifies the affine map on both point types.
func TestTransform_Apply(t *testing.T) {
	tr := lattice.Transform{A: 2, B: 1, C: 0, D: 3, Tx: 0.5, Ty: -1}

	got := tr.Apply(lattice.Vec2{X: 1, Y: 2})
	assert.InDelta(t, 4.5, got.X, 1e-12)
	assert.InDelta(t, 5.0, got.Y, 1e-12)

	gotL := tr.ApplyLattice(lattice.Vec2i{X: 1, Y: 2})
	assert.Equal(t, got, gotL)
}

// TestTransform_Compose checks that Compose applies the right operand first.
func TestTransform_Compose(t *testing.T) {
	shift := lattice.Identity()
	shift.Tx = 1
	stretch := lattice.Identity()
	stretch.A = 2

	// stretch ∘ shift: x → 2(x+1)
	got := stretch.Compose(shift).Apply(lattice.Vec2{X: 3})
	assert.InDelta(t, 8.0, got.X, 1e-12)

	// shift ∘ stretch: x → 2x+1
	got = shift.Compose(stretch).Apply(lattice.Vec2{X: 3})
	assert.InDelta(t, 7.0, got.X, 1e-12)
}

// TestTransform_Inverse checks round-tripping and the singular error.
func TestTransform_Inverse(t *testing.T) {
	tr := lattice.Transform{A: 0.17, B: 0.075, C: 2.0 / 7, D: -5.0 / 7, Ty: 3.0 / 14}
	inv, err := tr.Inverse()
	require.NoError(t, err)

	p := lattice.Vec2{X: 0.3, Y: -0.7}
	back := inv.Apply(tr.Apply(p))
	assert.InDelta(t, p.X, back.X, 1e-9)
	assert.InDelta(t, p.Y, back.Y, 1e-9)

	_, err = lattice.Transform{A: 1, B: 2, C: 2, D: 4}.Inverse()
	assert.ErrorIs(t, err, lattice.ErrSingular)
}

//----------------------------------------------------------------------------//
// IntTransform Tests
//----------------------------------------------------------------------------//

// TestIntTransform_Inverse verifies exact inversion of unimodular maps and
// rejection of everything else.
func TestIntTransform_Inverse(t *testing.T) {
	tr := lattice.IntTransform{A: 3, B: 1, C: 5, D: 2, Tx: 4, Ty: -1} // det=1
	inv, err := tr.Inverse()
	require.NoError(t, err)

	v := lattice.Vec2i{X: -2, Y: 7}
	assert.Equal(t, v, inv.Apply(tr.Apply(v)))

	_, err = lattice.IntTransform{A: 2, D: 2}.Inverse() // det=4
	assert.ErrorIs(t, err, lattice.ErrNotUnimodular)
}

// TestLinearFromTwoDots builds the diatonic change of basis and checks it
// hits both correspondences.
func TestLinearFromTwoDots(t *testing.T) {
	src1, src2 := lattice.Vec2i{X: 1}, lattice.Vec2i{X: 1, Y: 1}
	dst1, dst2 := lattice.Vec2i{X: 3, Y: 1}, lattice.Vec2i{X: 5, Y: 2}

	tr, err := lattice.LinearFromTwoDots(src1, src2, dst1, dst2)
	require.NoError(t, err)
	assert.Equal(t, dst1, tr.Apply(src1))
	assert.Equal(t, dst2, tr.Apply(src2))

	_, err = lattice.LinearFromTwoDots(src1, lattice.Vec2i{X: 2}, dst1, dst2)
	if !errors.Is(err, lattice.ErrSingular) && !errors.Is(err, lattice.ErrNotUnimodular) {
		t.Errorf("degenerate basis: err = %v; want singular or not-unimodular", err)
	}
}

//----------------------------------------------------------------------------//
// FromThreeDots Tests
//----------------------------------------------------------------------------//

// TestFromThreeDots recovers a known transform from three correspondences.
func TestFromThreeDots(t *testing.T) {
	want := lattice.Transform{A: 0.17, B: 0.075, C: 2.0 / 7, D: -5.0 / 7, Ty: 3.0 / 14}
	src := []lattice.Vec2{{}, {X: 3, Y: 1}, {X: 5, Y: 2}}

	got, err := lattice.FromThreeDots(
		src[0], src[1], src[2],
		want.Apply(src[0]), want.Apply(src[1]), want.Apply(src[2]),
	)
	require.NoError(t, err)
	assert.InDelta(t, want.A, got.A, 1e-9)
	assert.InDelta(t, want.B, got.B, 1e-9)
	assert.InDelta(t, want.C, got.C, 1e-9)
	assert.InDelta(t, want.D, got.D, 1e-9)
	assert.InDelta(t, want.Tx, got.Tx, 1e-9)
	assert.InDelta(t, want.Ty, got.Ty, 1e-9)
}

// TestFromThreeDots_Collinear rejects collinear source points.
func TestFromThreeDots_Collinear(t *testing.T) {
	_, err := lattice.FromThreeDots(
		lattice.Vec2{}, lattice.Vec2{X: 1, Y: 1}, lattice.Vec2{X: 2, Y: 2},
		lattice.Vec2{}, lattice.Vec2{X: 1}, lattice.Vec2{X: 2},
	)
	assert.ErrorIs(t, err, lattice.ErrCollinear)
}
