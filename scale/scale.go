package scale

import (
	"math"

	"github.com/pitchgrid-io/scalatrix/lattice"
	"github.com/pitchgrid-io/scalatrix/pitchset"
)

// Scale is an ordered run of lattice nodes around a root.  The root node
// always sits at lattice origin (0,0) and sounds at the base frequency.
type Scale struct {
	nodes    []Node
	baseFreq float64
	rootIdx  int
}

// New allocates a blank scale of n nodes with the root at index rootIdx.
func New(baseFreq float64, n, rootIdx int) (*Scale, error) {
	if n <= 0 {
		return nil, ErrNodeCount
	}
	if rootIdx < 0 || rootIdx >= n {
		return nil, ErrRootIndex
	}
	return &Scale{
		nodes:    make([]Node, n),
		baseFreq: baseFreq,
		rootIdx:  rootIdx,
	}, nil
}

// FromAffine generates a scale of n nodes by walking the lattice strip
// defined by transform A.  The transform must be normalized so the origin
// maps to 0 ≤ y < 1; the root node is the origin itself.
func FromAffine(a lattice.Transform, baseFreq float64, n, rootIdx int) (*Scale, error) {
	s, err := New(baseFreq, n, rootIdx)
	if err != nil {
		return nil, err
	}
	if err := s.Recalc(a); err != nil {
		return nil, err
	}
	return s, nil
}

// Recalc — regenerate all nodes from a transform.
//
// Algorithm Outline:
//  1. Find the strip basis (r, s) for the linear part of A.
//  2. Place the root at lattice origin.
//  3. Walk forward: from each node, step by r, s, or r+s — whichever
//     keeps the image's y inside [0, 1).  The three-gap theorem
//     guarantees exactly one of the three does.
//  4. Walk backward from the root the same way with negated steps.
//
// Natural coordinates, tuning coordinates and pitches are all rewritten;
// tempering state is untouched (retune or temper afterwards as needed).
//
// Errors:
//   - lattice.ErrStripDegenerate — no strip basis exists for A.
func (s *Scale) Recalc(a lattice.Transform) error {
	r, sv, err := lattice.ClosestWithinStrip(a)
	if err != nil {
		return err
	}
	lin := a
	lin.Tx, lin.Ty = 0, 0
	zr, zs := lin.ApplyLattice(r), lin.ApplyLattice(sv)

	root := Node{
		NaturalCoord: lattice.Vec2i{},
		TuningCoord:  a.ApplyLattice(lattice.Vec2i{}),
		Pitch:        s.baseFreq,
	}
	s.nodes[s.rootIdx] = root

	last := root
	for i := 1; i < len(s.nodes)-s.rootIdx; i++ {
		y := last.TuningCoord.Y
		switch {
		case 0 <= y+zr.Y && y+zr.Y < 1:
			last.NaturalCoord = last.NaturalCoord.Add(r)
		case 0 <= y+zs.Y && y+zs.Y < 1:
			last.NaturalCoord = last.NaturalCoord.Add(sv)
		default:
			last.NaturalCoord = last.NaturalCoord.Add(r).Add(sv)
		}
		last.TuningCoord = a.ApplyLattice(last.NaturalCoord)
		last.Pitch = s.baseFreq * math.Exp2(last.TuningCoord.X)
		s.nodes[s.rootIdx+i] = last
	}

	last = root
	for i := -1; i >= -s.rootIdx; i-- {
		y := last.TuningCoord.Y
		switch {
		case 0 <= y-zr.Y && y-zr.Y < 1:
			last.NaturalCoord = last.NaturalCoord.Sub(r)
		case 0 <= y-zs.Y && y-zs.Y < 1:
			last.NaturalCoord = last.NaturalCoord.Sub(sv)
		default:
			last.NaturalCoord = last.NaturalCoord.Sub(r).Sub(sv)
		}
		last.TuningCoord = a.ApplyLattice(last.NaturalCoord)
		last.Pitch = s.baseFreq * math.Exp2(last.TuningCoord.X)
		s.nodes[s.rootIdx+i] = last
	}
	return nil
}

// Retune recomputes tuning coordinates and pitches from a new transform
// while keeping every node's lattice coordinate.  Any tempering is
// cleared, since the snapped pitches no longer correspond to the tuning.
func (s *Scale) Retune(a lattice.Transform) {
	for i := range s.nodes {
		n := &s.nodes[i]
		n.TuningCoord = a.ApplyLattice(n.NaturalCoord)
		n.Pitch = s.baseFreq * math.Exp2(n.TuningCoord.X)
		n.Tempered = false
	}
}

// TemperTo snaps every node to its nearest pitch in the set, by absolute
// log₂ distance.  Ties resolve to the lower pitch.  The node keeps its
// lattice and tuning coordinates; only the sounding pitch changes.
func (s *Scale) TemperTo(set pitchset.Set) error {
	if len(set) == 0 {
		return ErrEmptyPitchSet
	}
	for i := range s.nodes {
		n := &s.nodes[i]
		target := math.Log2(n.Pitch / s.baseFreq)

		best := set[0]
		bestDist := math.Abs(best.Log2fr - target)
		for _, p := range set[1:] {
			if d := math.Abs(p.Log2fr - target); d < bestDist {
				best, bestDist = p, d
			}
		}
		n.Pitch = s.baseFreq * math.Exp2(best.Log2fr)
		n.Tempered = true
		n.TemperedPitch = best
		n.ClosestPitch = best
	}
	return nil
}

// Node returns the node at index i with bounds checking.
func (s *Scale) Node(i int) (Node, error) {
	if i < 0 || i >= len(s.nodes) {
		return Node{}, ErrIndexRange
	}
	return s.nodes[i], nil
}

// Nodes exposes the backing node slice.  Mutations write through to the
// scale; the slice stays valid until the next Recalc.
func (s *Scale) Nodes() []Node { return s.nodes }

// Len returns the number of nodes.
func (s *Scale) Len() int { return len(s.nodes) }

// RootIdx returns the index of the root node.
func (s *Scale) RootIdx() int { return s.rootIdx }

// BaseFreq returns the root frequency in Hz.
func (s *Scale) BaseFreq() float64 { return s.baseFreq }

// SetBaseFreq rebases the scale on a new root frequency.  Pitches are not
// recomputed; callers follow up with Recalc or Retune.
func (s *Scale) SetBaseFreq(f float64) { s.baseFreq = f }
