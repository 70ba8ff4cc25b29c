package consonance

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/interp"
)

// Hull is a dissonance curve with its smooth upper hull and the spiky
// residual (hull minus curve).
type Hull struct {
	Cents []float64
	PL    []float64
	Hull  []float64
	Spiky []float64
}

// gradient is the central-difference derivative with one-sided edges,
// over a uniform grid of spacing dx.
func gradient(f []float64, dx float64) []float64 {
	n := len(f)
	g := make([]float64, n)
	if n < 2 {
		return g
	}
	g[0] = (f[1] - f[0]) / dx
	g[n-1] = (f[n-1] - f[n-2]) / dx
	for i := 1; i < n-1; i++ {
		g[i] = (f[i+1] - f[i-1]) / (2 * dx)
	}
	return g
}

// localMaxima returns indices strictly greater than all neighbors within
// the given order on both sides.
func localMaxima(arr []float64, order int) []int {
	var maxima []int
	for i := order; i < len(arr)-order; i++ {
		isMax := true
		for j := i - order; j <= i+order; j++ {
			if j != i && arr[j] >= arr[i] {
				isMax = false
				break
			}
		}
		if isMax {
			maxima = append(maxima, i)
		}
	}
	return maxima
}

// selectKnots filters curvature maxima down to hull knots: spikes with
// curvature above the threshold are dropped, and if that leaves fewer
// than two knots the flattest half of the maxima is kept instead.
// Endpoints are appended when the outermost knots sit more than epMargin
// samples from the curve edges.
func selectKnots(maxIdx []int, d2 []float64, threshold float64, n, epMargin int) []int {
	var clean []int
	for _, idx := range maxIdx {
		if d2[idx] <= threshold {
			clean = append(clean, idx)
		}
	}
	if len(clean) < 2 {
		byVal := append([]int(nil), maxIdx...)
		sort.Slice(byVal, func(i, j int) bool { return d2[byVal[i]] < d2[byVal[j]] })
		keep := len(maxIdx) / 2
		if keep < 2 {
			keep = 2
		}
		if keep > len(byVal) {
			keep = len(byVal)
		}
		clean = append([]int(nil), byVal[:keep]...)
		sort.Ints(clean)
	}
	if len(clean) == 0 || clean[0] > epMargin {
		clean = append([]int{0}, clean...)
	}
	if clean[len(clean)-1] < n-epMargin {
		clean = append(clean, n-1)
	}
	return clean
}

// fitSpline fits a not-a-knot cubic through the knot indices of the
// curve, mirroring scipy's CubicSpline default boundary condition.
func fitSpline(c Curve, knots []int) (*interp.NotAKnotCubic, error) {
	kx := make([]float64, len(knots))
	ky := make([]float64, len(knots))
	for i, idx := range knots {
		kx[i] = c.Cents[idx]
		ky[i] = c.PL[idx]
	}
	var spline interp.NotAKnotCubic
	if err := spline.Fit(kx, ky); err != nil {
		return nil, err
	}
	return &spline, nil
}

// ComputeHull3 — smooth hull extraction from curvature knots.
//
// Algorithm Outline:
//  1. Take the second derivative of the dissonance curve.
//  2. Find its local maxima (strict, within ± order samples): candidate
//     knots where the curve bends upward between dips.
//  3. Drop sharp spikes (curvature above spikeThreshold); fall back to
//     the flattest half of the candidates when too few survive.  Pin the
//     curve endpoints when the knots leave a 50¢ edge uncovered.
//  4. Fit a not-a-knot cubic spline through the knots; the hull is the
//     pointwise max of spline and curve, the spiky residual their
//     difference.
//
// Curves with fewer than two usable knots come back with a flat hull
// equal to the curve.
func ComputeHull3(c Curve, order int, spikeThreshold float64) Hull {
	n := len(c.Cents)
	if n < 3 {
		return flatHull(c)
	}
	dx := c.Cents[1] - c.Cents[0]
	d2 := gradient(gradient(c.PL, dx), dx)

	maxIdx := localMaxima(d2, order)
	if len(maxIdx) < 2 {
		return flatHull(c)
	}
	knots := selectKnots(maxIdx, d2, spikeThreshold, n, int(50.0/dx))

	spline, err := fitSpline(c, knots)
	if err != nil {
		return flatHull(c)
	}

	h := Hull{
		Cents: c.Cents,
		PL:    c.PL,
		Hull:  make([]float64, n),
		Spiky: make([]float64, n),
	}
	for i := 0; i < n; i++ {
		h.Hull[i] = math.Max(spline.Predict(c.Cents[i]), c.PL[i])
		h.Spiky[i] = h.Hull[i] - c.PL[i]
	}
	return h
}

func flatHull(c Curve) Hull {
	return Hull{
		Cents: c.Cents,
		PL:    c.PL,
		Hull:  append([]float64(nil), c.PL...),
		Spiky: make([]float64, len(c.Cents)),
	}
}
