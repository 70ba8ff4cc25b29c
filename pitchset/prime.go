package pitchset

import (
	"math"
	"strconv"
)

// primes holds the first 25 primes, enough for any practical tuning limit.
var primes = [25]int{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47,
	53, 59, 61, 67, 71, 73, 79, 83, 89, 97,
}

// Prime is a (possibly retuned) prime interval: the building block of
// just-intonation pitch sets.  Number is the integer prime, Log2fr its
// log₂ ratio — a tempered prime may carry a Log2fr that deviates from
// log₂(Number).
type Prime struct {
	Label  string
	Number int
	Log2fr float64
}

// PrimeFromIndex returns the idx-th prime (0-based, idx < 25) tuned pure.
func PrimeFromIndex(idx int) Prime {
	p := primes[idx]
	return Prime{
		Label:  strconv.Itoa(p),
		Number: p,
		Log2fr: math.Log2(float64(p)),
	}
}

// DefaultPrimes returns the first n pure-tuned primes, capped at 25.
func DefaultPrimes(n int) []Prime {
	if n > len(primes) {
		n = len(primes)
	}
	if n < 0 {
		n = 0
	}
	list := make([]Prime, 0, n)
	for i := 0; i < n; i++ {
		list = append(list, PrimeFromIndex(i))
	}
	return list
}
