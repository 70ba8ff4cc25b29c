package pitchset

import (
	"math"
	"sort"
	"strconv"
)

// rangeEps widens range filters slightly so boundary pitches survive
// floating-point noise.
const rangeEps = 1e-6

// Pitch is one tempering target: a notation label and the log₂ frequency
// ratio it stands for.
type Pitch struct {
	Label  string
	Log2fr float64
}

// Set is a collection of pitches sorted ascending by Log2fr.
type Set []Pitch

// ET returns the equal-temperament pitch set dividing an equave of
// equaveLog2 into n equal steps, restricted to [minLog2, maxLog2].
// Labels read "step\divisions".
func ET(n int, equaveLog2, minLog2, maxLog2 float64) (Set, error) {
	if n <= 0 {
		return nil, ErrDivisions
	}
	minStep := int(math.Ceil(minLog2 * float64(n) / equaveLog2))
	maxStep := int(math.Floor(maxLog2 * float64(n) / equaveLog2))

	var set Set
	for i := minStep; i <= maxStep; i++ {
		log2fr := float64(i) * equaveLog2 / float64(n)
		if log2fr < minLog2-rangeEps || log2fr > maxLog2+rangeEps {
			continue
		}
		set = append(set, Pitch{
			Label:  strconv.Itoa(i) + `\` + strconv.Itoa(n),
			Log2fr: log2fr,
		})
	}
	sort.Slice(set, func(i, j int) bool { return set[i].Log2fr < set[j].Log2fr })
	return set, nil
}

// JI returns the just-intonation pitch set of all coprime ratios n:d whose
// numerator and denominator factor entirely over the given primes and stay
// below limit, restricted to [minLog2, maxLog2].  Labels read "num:den".
//
// Retuned primes are honored: each ratio's Log2fr is assembled from the
// primes' Log2fr values, not from the integer fraction.
func JI(primeList []Prime, limit int, minLog2, maxLog2 float64) Set {
	// Enumerate smooth numbers over the prime list.
	var smooth []Prime
	for i := 1; i < limit; i++ {
		r := i
		log2fr := 0.0
		for _, p := range primeList {
			for r%p.Number == 0 {
				r /= p.Number
				log2fr += p.Log2fr
			}
		}
		if r == 1 {
			smooth = append(smooth, Prime{
				Label:  strconv.Itoa(i),
				Number: i,
				Log2fr: log2fr,
			})
		}
	}

	var set Set
	for _, num := range smooth {
		for _, den := range smooth {
			if gcd(num.Number, den.Number) > 1 {
				continue
			}
			log2fr := num.Log2fr - den.Log2fr
			if log2fr <= minLog2-rangeEps || log2fr >= maxLog2+rangeEps {
				continue
			}
			set = append(set, Pitch{
				Label:  num.Label + ":" + den.Label,
				Log2fr: log2fr,
			})
		}
	}
	sort.Slice(set, func(i, j int) bool { return set[i].Log2fr < set[j].Log2fr })
	return set
}

// HarmonicSeries returns the segment of the harmonic series over the given
// base harmonic, restricted to [minLog2, maxLog2].  Labels are reduced
// fractions "num:base".  Retuned primes shift every harmonic they divide.
func HarmonicSeries(primeList []Prime, base int, minLog2, maxLog2 float64) (Set, error) {
	if base <= 0 {
		return nil, ErrBase
	}
	baseLog2 := math.Log2(float64(base))
	minNum := int(math.Ceil(float64(base) * math.Exp2(minLog2)))
	if minNum < 1 {
		minNum = 1
	}
	maxNum := int(math.Floor(float64(base) * math.Exp2(maxLog2)))

	var set Set
	for num := minNum; num <= maxNum; num++ {
		g := gcd(num, base)
		log2fr := -baseLog2
		r := num
		for _, p := range primeList {
			for r%p.Number == 0 {
				r /= p.Number
				log2fr += p.Log2fr
			}
		}
		log2fr += math.Log2(float64(r))
		if log2fr < minLog2-rangeEps || log2fr > maxLog2+rangeEps {
			continue
		}
		set = append(set, Pitch{
			Label:  strconv.Itoa(num/g) + ":" + strconv.Itoa(base/g),
			Log2fr: log2fr,
		})
	}
	sort.Slice(set, func(i, j int) bool { return set[i].Log2fr < set[j].Log2fr })
	return set, nil
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
