package mos

import (
	"github.com/pitchgrid-io/scalatrix/lattice"
	"github.com/pitchgrid-io/scalatrix/scale"
)

// A returns the number of large steps per equave.
func (m *MOS) A() int { return m.a }

// B returns the number of small steps per equave.
func (m *MOS) B() int { return m.b }

// N returns the total steps per equave, a+b.
func (m *MOS) N() int { return m.n }

// A0, B0 and N0 return the primitive (gcd-reduced) step counts.
func (m *MOS) A0() int { return m.a0 }
func (m *MOS) B0() int { return m.b0 }
func (m *MOS) N0() int { return m.n0 }

// Mode returns the mode rotation.
func (m *MOS) Mode() int { return m.mode }

// Repetitions returns how many primitive periods tile one equave.
func (m *MOS) Repetitions() int { return m.repetitions }

// Depth returns the refinement depth, len(Path()).
func (m *MOS) Depth() int { return m.depth }

// Equave returns the log₂ ratio of the interval of equivalence.
func (m *MOS) Equave() float64 { return m.equave }

// Period returns the log₂ ratio of one primitive period.
func (m *MOS) Period() float64 { return m.period }

// Generator returns the generator as a fraction of the period.
func (m *MOS) Generator() float64 { return m.generator }

// Path returns the continued-fraction refinement path.  Callers must not
// mutate it.
func (m *MOS) Path() lattice.Path { return m.path }

// GenVec returns the generator's lattice vector.
func (m *MOS) GenVec() lattice.Vec2i { return m.vGen }

// ImpliedAffine returns the transform embedding the structure in the
// lattice strip.
func (m *MOS) ImpliedAffine() lattice.Transform { return m.implied }

// MOSTransform returns the exact change of basis sending the step basis
// (1,0),(1,1) to the generator and period vectors.
func (m *MOS) MOSTransform() lattice.IntTransform { return m.mosTransform }

// BaseScale returns the live base scale: one equave of n+1 nodes rooted
// at index 0 on a base frequency of 1.
func (m *MOS) BaseScale() *scale.Scale { return m.baseScale }

// LargeVec and SmallVec return the lattice unit vectors currently sounding
// as the large and small step; ChromaVec is their difference.
func (m *MOS) LargeVec() lattice.Vec2i  { return m.lVec }
func (m *MOS) SmallVec() lattice.Vec2i  { return m.sVec }
func (m *MOS) ChromaVec() lattice.Vec2i { return m.chromaVec }

// LargeFr, SmallFr and ChromaFr return the log₂ sizes of the large step,
// small step and chroma under the current tuning.
func (m *MOS) LargeFr() float64  { return m.lFr }
func (m *MOS) SmallFr() float64  { return m.sFr }
func (m *MOS) ChromaFr() float64 { return m.chromaFr }

// NumLarge and NumSmall return how many large and small steps one equave
// holds under the current tuning.
func (m *MOS) NumLarge() int { return m.nL }
func (m *MOS) NumSmall() int { return m.nS }

// StructureLargeVec, StructureSmallVec and StructureChromaVec return the
// notation-defining step vectors frozen at parameter time.
func (m *MOS) StructureLargeVec() lattice.Vec2i  { return m.structLVec }
func (m *MOS) StructureSmallVec() lattice.Vec2i  { return m.structSVec }
func (m *MOS) StructureChromaVec() lattice.Vec2i { return m.structChromaVec }

// StructureGenerator returns the generator frozen at parameter time.
func (m *MOS) StructureGenerator() float64 { return m.structGenerator }
