package mos

import (
	"fmt"
	"math"

	"github.com/pitchgrid-io/scalatrix/lattice"
	"github.com/pitchgrid-io/scalatrix/scale"
)

// MOS is a Moment-of-Symmetry scale structure together with its tuning.
//
// The structural skeleton (step counts, path, generator vector, notation
// vectors) is fixed by AdjustParams and friends; the tuning layer (equave,
// period, generator, implied transform, base scale, large/small vectors)
// additionally moves under the retune operations.
type MOS struct {
	a, b, n    int // step counts per equave, n = a+b
	a0, b0, n0 int // primitive pair, n0 = a0+b0

	mode        int
	repetitions int
	depth       int

	equave    float64 // log₂ ratio of the interval of equivalence
	period    float64 // log₂ ratio of one primitive period, equave/repetitions
	generator float64 // fraction of the period

	path lattice.Path
	vGen lattice.Vec2i

	implied      lattice.Transform
	mosTransform lattice.IntTransform
	baseScale    *scale.Scale

	// Tuned step vectors: which lattice direction currently sounds larger.
	lVec, sVec, chromaVec lattice.Vec2i
	lFr, sFr, chromaFr    float64
	nL, nS                int

	// Structural counterparts frozen at parameter time; notation is
	// derived from these so accidentals stay put under retuning.
	structLVec, structSVec, structChromaVec lattice.Vec2i
	structGenerator                         float64
}

// New builds a MOS from step counts a (large) and b (small), mode
// rotation m, equave e (log₂) and generator g (fraction of the period).
func New(a, b, m int, e, g float64) (*MOS, error) {
	mos := &MOS{}
	if err := mos.AdjustParams(a, b, m, e, g); err != nil {
		return nil, err
	}
	return mos, nil
}

// FromG builds a MOS by generator descent: starting from the trivial pair
// (1, 1), depth refinement rounds split the larger step interval, each
// driven by where the generator falls.  repetitions scales the resulting
// primitive pair to the full per-equave counts.
func FromG(depth, m int, g, e float64, repetitions int) (*MOS, error) {
	mos := &MOS{}
	if err := mos.AdjustG(depth, m, g, e, repetitions); err != nil {
		return nil, err
	}
	return mos, nil
}

// AdjustParams re-derives the whole structure and tuning from scratch.
//
// Derivation:
//  1. reduce (a, b) by their gcd to the primitive pair (a0, b0);
//  2. trace the continued-fraction path of (a0, b0) and unfold the
//     generator vector from (1, 0);
//  3. solve the implied affine transform from three correspondences:
//     origin, generator vector and period vector against their strip
//     positions (the q-offsets center mode m's window on the strip);
//  4. regenerate the base scale (one equave plus closure, root at 0) and
//     the exact lattice change of basis mosTransform.
func (m *MOS) AdjustParams(a, b, mode int, e, g float64) error {
	if a <= 0 || b <= 0 {
		return ErrStepCount
	}
	if g < 0 || g > 1 {
		return ErrGeneratorRange
	}

	r := gcd(a, b)
	m.a, m.b, m.n = a, b, a+b
	m.a0, m.b0 = a/r, b/r
	m.n0 = m.a0 + m.b0
	m.mode = mode
	m.repetitions = r

	m.equave = e
	m.period = e / float64(r)
	m.generator = g

	m.path = lattice.NewPath(m.a0, m.b0)
	m.depth = len(m.path)
	m.vGen = m.path.Apply(lattice.Vec2i{X: 1})

	implied, err := m.calcImpliedAffine()
	if err != nil {
		return fmt.Errorf("mos: implied affine: %w", err)
	}
	m.implied = implied
	m.updateVectors()

	m.structLVec, m.structSVec = m.lVec, m.sVec
	m.structChromaVec = m.chromaVec
	m.structGenerator = g

	base, err := scale.FromAffine(implied, 1.0, m.n+1, 0)
	if err != nil {
		return fmt.Errorf("mos: base scale: %w", err)
	}
	m.baseScale = base

	mt, err := lattice.LinearFromTwoDots(
		lattice.Vec2i{X: 1}, lattice.Vec2i{X: 1, Y: 1},
		m.vGen, lattice.Vec2i{X: m.a0, Y: m.b0},
	)
	if err != nil {
		return fmt.Errorf("mos: lattice basis: %w", err)
	}
	m.mosTransform = mt
	return nil
}

// AdjustG re-derives the structure from generator descent parameters.
func (m *MOS) AdjustG(depth, mode int, g, e float64, repetitions int) error {
	a0, b0 := descend(depth, g)
	return m.AdjustParams(a0*repetitions, b0*repetitions, mode, e, g)
}

// AdjustTuning retunes the existing structure (step counts unchanged) to
// a new mode, equave and generator while freezing the notation structure:
// accidentals and notation conversions keep referring to the structural
// vectors captured by the last AdjustParams/AdjustG.
func (m *MOS) AdjustTuning(mode int, e, g float64) error {
	return m.freezeStructure(func() error {
		return m.AdjustParams(m.a, m.b, mode, e, g)
	})
}

// AdjustTuningG retunes to new descent parameters, likewise freezing the
// notation structure.
func (m *MOS) AdjustTuningG(depth, mode int, g, e float64, repetitions int) error {
	return m.freezeStructure(func() error {
		return m.AdjustG(depth, mode, g, e, repetitions)
	})
}

// freezeStructure runs a re-derivation while preserving the structural
// snapshot it would otherwise overwrite.
func (m *MOS) freezeStructure(adjust func() error) error {
	sL, sS, sC := m.structLVec, m.structSVec, m.structChromaVec
	sG := m.structGenerator
	if err := adjust(); err != nil {
		return err
	}
	m.structLVec, m.structSVec, m.structChromaVec = sL, sS, sC
	m.structGenerator = sG
	return nil
}

// descend runs the generator descent from the trivial pair (1, 1).
func descend(depth int, g float64) (a0, b0 int) {
	a0, b0 = 1, 1
	aLen, bLen := g, 1.0-g
	for i := 0; i < depth; i++ {
		if aLen > bLen {
			b0 += a0
			aLen -= bLen
		} else {
			a0 += b0
			bLen -= aLen
		}
	}
	return a0, b0
}

// calcImpliedAffine solves the transform placing the structure into the
// unit strip: the origin and the period vector share a strip height while
// the generator vector sits one gap above, with mode m selecting the
// window.  q is half a step gap.
func (m *MOS) calcImpliedAffine() (lattice.Transform, error) {
	q := 0.5 / float64(m.n0)
	mode := float64(m.mode)
	return lattice.FromThreeDots(
		lattice.Vec2{},
		m.vGen.Vec(),
		lattice.Vec2{X: float64(m.a0), Y: float64(m.b0)},
		lattice.Vec2{Y: q * (2*mode + 1)},
		lattice.Vec2{X: m.generator * m.period, Y: q * (2*mode + 3)},
		lattice.Vec2{X: m.period, Y: q * (2*mode + 1)},
	)
}

// updateVectors decides which lattice unit vector currently sounds as the
// large step, and derives the chroma (their difference).
func (m *MOS) updateVectors() {
	v1 := lattice.Vec2i{X: 1}
	v2 := lattice.Vec2i{Y: 1}
	fr1 := m.implied.ApplyLattice(v1).X
	fr2 := m.implied.ApplyLattice(v2).X
	if fr1 > fr2 {
		m.lVec, m.sVec = v1, v2
		m.lFr, m.sFr = fr1, fr2
		m.nL, m.nS = m.a, m.b
	} else {
		m.lVec, m.sVec = v2, v1
		m.lFr, m.sFr = fr2, fr1
		m.nL, m.nS = m.b, m.a
	}
	m.chromaVec = m.lVec.Sub(m.sVec)
	m.chromaFr = m.lFr - m.sFr
}

// CoordToFreq places an arbitrary (possibly fractional) lattice point in
// frequency space under the current tuning.
func (m *MOS) CoordToFreq(x, y, baseFreq float64) float64 {
	return baseFreq * math.Exp2(m.implied.Apply(lattice.Vec2{X: x, Y: y}).X)
}

// MapFromMOS carries a lattice point from another structure into this
// one: fold down the other's refinement path, unfold along ours.
func (m *MOS) MapFromMOS(other *MOS, v lattice.Vec2i) lattice.Vec2i {
	return m.path.Apply(other.path.ApplyReverse(v))
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// floorDiv and floorMod round toward negative infinity, so equave numbers
// and degrees behave on both sides of the root.
func floorDiv(a, n int) int {
	q := a / n
	if a%n != 0 && (a < 0) != (n < 0) {
		q--
	}
	return q
}

func floorMod(a, n int) int {
	return a - floorDiv(a, n)*n
}
