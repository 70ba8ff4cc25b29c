package mos

import (
	"math"

	"github.com/pitchgrid-io/scalatrix/lattice"
	"github.com/pitchgrid-io/scalatrix/scale"
)

// MaxEquaveSpan bounds how many equaves a tiled scale may extend on
// either side of its root.
const MaxEquaveSpan = 128

// GenerateScale tiles the base scale periodically into a scale of n nodes
// with the root at index root.  Node i (relative to the root) copies base
// degree i mod n shifted by ⌊i/n⌋ equaves, both in lattice coordinates and
// in pitch, so tempering applied to the base scale carries over to every
// equave.
func (m *MOS) GenerateScale(baseFreq float64, n, root int) (*scale.Scale, error) {
	sc, err := scale.New(baseFreq, n, root)
	if err != nil {
		return nil, err
	}
	if root > MaxEquaveSpan*m.n || n-root > MaxEquaveSpan*m.n {
		return nil, ErrRangeExceeded
	}

	base := m.baseScale.Nodes()
	nodes := sc.Nodes()
	equaveVec := lattice.Vec2i{X: m.a, Y: m.b}

	for i := -root; i < n-root; i++ {
		ref := base[floorMod(i, m.n)]
		oct := floorDiv(i, m.n)

		node := &nodes[i+root]
		node.NaturalCoord = equaveVec.Scale(oct).Add(ref.NaturalCoord)
		node.TuningCoord = m.implied.ApplyLattice(node.NaturalCoord)
		node.TuningCoord.X = ref.TuningCoord.X + float64(oct)*m.equave
		node.Pitch = baseFreq * math.Exp2(node.TuningCoord.X)
		node.Tempered = ref.Tempered
		node.TemperedPitch = ref.TemperedPitch
	}
	return sc, nil
}

// RetuneScale rewrites the pitches of a previously generated scale from
// the current base scale tuning, keeping all lattice coordinates.  Use
// after a retune or after tempering the base scale.
func (m *MOS) RetuneScale(sc *scale.Scale, baseFreq float64) {
	sc.SetBaseFreq(baseFreq)
	base := m.baseScale.Nodes()
	nodes := sc.Nodes()
	root := sc.RootIdx()

	for i := range nodes {
		ref := base[floorMod(i-root, m.n)]
		oct := floorDiv(i-root, m.n)

		node := &nodes[i]
		node.TuningCoord.X = ref.TuningCoord.X + float64(oct)*m.equave
		node.Pitch = baseFreq * math.Exp2(node.TuningCoord.X)
		node.Tempered = ref.Tempered
		node.TemperedPitch = ref.TemperedPitch
	}
}

// GenerateMappedScale squeezes the structure into a keyboard window of
// the given step count before generating: the strip is y-stretched by
// n/steps and shifted by (offset - mode)/steps, so the n structural
// degrees spread across `steps` chromatic keys.  The window transform only
// touches the y row; pitches are unaffected, membership is.
func (m *MOS) GenerateMappedScale(steps int, offset, baseFreq float64, n, root int) (*scale.Scale, error) {
	if steps <= 0 {
		return nil, ErrStepCount
	}
	wo := offset - float64(m.mode)
	sf := float64(m.n) / float64(steps)

	ia := m.implied
	squeezed := lattice.Transform{
		A: ia.A, B: ia.B,
		C: sf * ia.C, D: sf * ia.D,
		Tx: ia.Tx,
		Ty: sf*ia.Ty + wo/float64(steps),
	}
	return scale.FromAffine(squeezed, baseFreq, n, root)
}
