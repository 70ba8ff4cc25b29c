package consonance

import (
	"math"
	"sort"

	"github.com/pitchgrid-io/scalatrix/spectrum"
)

// Plomp–Levelt roughness model constants.
const (
	dStar = 0.24
	s1    = 0.0207
	s2    = 18.96
	c1    = 5.0
	c2    = -5.0
	a1    = -3.51
	a2    = -5.75
)

// Curve is a sampled dissonance curve over an interval range.
type Curve struct {
	Cents []float64
	PL    []float64
}

// dissonanceAt sums pairwise Plomp–Levelt roughness between all partials
// of the spectrum played at f0 and at f0 shifted by the given interval.
func dissonanceAt(spec spectrum.Spectrum, f0, cents float64) float64 {
	ratio := math.Exp2(cents / 1200.0)
	np := len(spec.Partials)

	type fa struct{ freq, amp float64 }
	all := make([]fa, 0, 2*np)
	for _, p := range spec.Partials {
		all = append(all, fa{f0 * p.Ratio, p.Amplitude})
	}
	for _, p := range spec.Partials {
		all = append(all, fa{f0 * ratio * p.Ratio, p.Amplitude})
	}
	sort.Slice(all, func(i, j int) bool { return all[i].freq < all[j].freq })

	diss := 0.0
	for i := range all {
		for j := i + 1; j < len(all); j++ {
			fLow, fHigh := all[i].freq, all[j].freq
			aMin := math.Min(all[i].amp, all[j].amp)
			s := dStar / (s1*fLow + s2)
			sf := s * (fHigh - fLow)
			diss += aMin * (c1*math.Exp(a1*sf) + c2*math.Exp(a2*sf))
		}
	}
	return diss
}

// ComputeCurve samples the dissonance of the spectrum at f0 against
// itself, over intervals from minCents to maxCents at the given
// resolution.
func ComputeCurve(spec spectrum.Spectrum, f0, minCents, maxCents, resolution float64) Curve {
	n := int((maxCents-minCents)/resolution) + 1
	c := Curve{
		Cents: make([]float64, n),
		PL:    make([]float64, n),
	}
	for i := 0; i < n; i++ {
		cents := minCents + float64(i)*(maxCents-minCents)/float64(n-1)
		c.Cents[i] = cents
		c.PL[i] = dissonanceAt(spec, f0, cents)
	}
	return c
}

// Value maps a normalized spiky depth (1 at the unison dip) to a 0..1
// consonance score on a log₁₀ scale: half the dip depth costs 0.15, a
// hundredth of it reaches zero.
func Value(spikyNormalized float64) float64 {
	return math.Max(0, 1+0.5*math.Log10(math.Max(spikyNormalized, 1e-10)))
}
