package consonance

import (
	"gonum.org/v1/gonum/floats"

	"github.com/pitchgrid-io/scalatrix/spectrum"
)

// Analysis margins: the curve is computed past the requested range so the
// hull is unbiased at the edges, and sampled twice per cent.
const (
	analysisMargin     = 300.0
	analysisResolution = 0.5
	hullOrder          = 3
	spikeThreshold     = 0.005
)

// Interval is a named scale interval to rate, in cents above the root.
type Interval struct {
	Name  string
	Cents float64
}

// IntervalConsonance is one rated interval.
type IntervalConsonance struct {
	Name       string
	Cents      float64
	Consonance float64
}

// Result is the consonance report for a set of intervals.
type Result struct {
	Intervals []IntervalConsonance
	Total     float64
	Mean      float64
}

// AnalyzeScale rates each interval of a scale against a timbre.
//
// The dissonance curve is computed over [-300, maxCents+300] cents, its
// spiky component extracted via ComputeHull3 and normalized to the unison
// dip; each interval at or below maxIntervalCents is then scored with
// Value at its (linearly interpolated) spiky depth.
func AnalyzeScale(spec spectrum.Spectrum, f0 float64, intervals []Interval,
	maxCents, maxIntervalCents float64) Result {

	ext := ComputeCurve(spec, f0, -analysisMargin, maxCents+analysisMargin, analysisResolution)
	hull := ComputeHull3(ext, hullOrder, spikeThreshold)

	// Crop to the display range.
	var cents, spiky []float64
	for i, c := range hull.Cents {
		if c >= 0 && c <= maxCents {
			cents = append(cents, c)
			spiky = append(spiky, hull.Spiky[i])
		}
	}
	if len(cents) == 0 {
		return Result{}
	}

	// Normalize to the unison dip.
	peak := 0.0
	for i, c := range cents {
		if c >= -0.5 && c <= 0.5 && spiky[i] > peak {
			peak = spiky[i]
		}
	}
	if peak <= 0 {
		peak = floats.Max(spiky)
	}
	if peak <= 0 {
		// Flat hull: nothing dips, every interval rates zero.
		peak = 1
	}

	var res Result
	for _, iv := range intervals {
		if iv.Cents > maxIntervalCents {
			continue
		}
		sv := 0.0
		for i := 0; i+1 < len(cents); i++ {
			if cents[i] <= iv.Cents && cents[i+1] >= iv.Cents {
				t := (iv.Cents - cents[i]) / (cents[i+1] - cents[i])
				sv = spiky[i] + t*(spiky[i+1]-spiky[i])
				break
			}
		}
		c := Value(sv / peak)
		res.Intervals = append(res.Intervals, IntervalConsonance{
			Name:       iv.Name,
			Cents:      iv.Cents,
			Consonance: c,
		})
		res.Total += c
	}
	if len(res.Intervals) > 0 {
		res.Mean = res.Total / float64(len(res.Intervals))
	}
	return res
}
