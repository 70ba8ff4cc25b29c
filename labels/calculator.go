package labels

import (
	"github.com/pitchgrid-io/scalatrix/lattice"
	"github.com/pitchgrid-io/scalatrix/mos"
)

// Calculator normalizes note names across structures by holding a
// reference diatonic MOS (5 large, 2 small, mode 1).  Structures tuned
// close enough to meantone borrow the seven diatonic letters through a
// path mapping; everything else falls back to degree digits.
type Calculator struct {
	diatonic *mos.MOS
	opts     Options
}

// NewCalculator builds a Calculator with the given rendering options.
func NewCalculator(opts Options) (*Calculator, error) {
	d, err := mos.New(5, 2, 1, 1.0, 0.585)
	if err != nil {
		return nil, err
	}
	return &Calculator{diatonic: d, opts: opts}, nil
}

// diatonicLike reports whether m is close enough to meantone for letter
// names to be meaningful: generator between 4/7 and 3/5 of a roughly
// octave-sized equave.
func diatonicLike(m *mos.MOS) bool {
	g, e := m.Generator(), m.Equave()
	return g > 4.0/7 && g < 3.0/5 && e > 0.9 && e < 1.2
}

// Normalized names v in m: letters via the diatonic reference when the
// tuning is diatonic-like (unless forceDigits), degree digits otherwise.
func (c *Calculator) Normalized(m *mos.MOS, v lattice.Vec2i, forceDigits bool) string {
	if diatonicLike(m) && !forceDigits {
		return Letter(c.diatonic, c.diatonic.MapFromMOS(m, v), c.opts)
	}
	return Digit(m, v, c.opts)
}
