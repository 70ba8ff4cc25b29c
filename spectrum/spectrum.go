package spectrum

import "math"

// DefaultDecay is the amplitude ratio between successive harmonics that
// approximates a generic sustained timbre.
const DefaultDecay = 0.88

// Partial is one spectral component: frequency as a ratio of the
// fundamental, and linear amplitude.
type Partial struct {
	Ratio     float64
	Amplitude float64
}

// Spectrum is an ordered list of partials.
type Spectrum struct {
	Partials []Partial
}

// Harmonic returns the first n harmonics with amplitudes decay^(k-1).
func Harmonic(n int, decay float64) Spectrum {
	p := make([]Partial, 0, max(n, 0))
	for i := 1; i <= n; i++ {
		p = append(p, Partial{
			Ratio:     float64(i),
			Amplitude: math.Pow(decay, float64(i-1)),
		})
	}
	return Spectrum{Partials: p}
}

// OddHarmonic returns the odd harmonics up to maxHarmonic, the spectrum
// of clarinet-like and square-wave timbres.
func OddHarmonic(maxHarmonic int, decay float64) Spectrum {
	var p []Partial
	for h := 1; h <= maxHarmonic; h += 2 {
		p = append(p, Partial{
			Ratio:     float64(h),
			Amplitude: math.Pow(decay, float64(h-1)),
		})
	}
	return Spectrum{Partials: p}
}

// Pseudoharmonic returns n harmonics with selected primes retuned:
// primeCents maps a prime to its adjusted size in cents, and every
// harmonic shifts by the adjustment of each prime in its factorization.
// Matching the timbre's primes to a temperament makes the temperament's
// intervals beatless.
func Pseudoharmonic(n int, decay float64, primeCents map[int]float64) Spectrum {
	adjust := make(map[int]float64, len(primeCents))
	for prime, cents := range primeCents {
		adjust[prime] = math.Exp2(cents/1200.0) / float64(prime)
	}

	p := make([]Partial, 0, max(n, 0))
	for h := 1; h <= n; h++ {
		ratio := float64(h)
		for _, f := range primeFactors(h) {
			if adj, ok := adjust[f]; ok {
				ratio *= adj
			}
		}
		p = append(p, Partial{
			Ratio:     ratio,
			Amplitude: math.Pow(decay, float64(h-1)),
		})
	}
	return Spectrum{Partials: p}
}

// primeFactors returns the prime factorization of n with multiplicity.
func primeFactors(n int) []int {
	var factors []int
	for i := 2; i*i <= n; {
		if n%i == 0 {
			factors = append(factors, i)
			n /= i
		} else {
			i++
		}
	}
	if n > 1 {
		factors = append(factors, n)
	}
	return factors
}
