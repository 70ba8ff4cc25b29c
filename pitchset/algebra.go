package pitchset

import (
	"strconv"
	"strings"
)

// parseFrac splits a two-part label on sep into its integer halves.
func parseFrac(label, sep string) (num, den int, ok bool) {
	i := strings.Index(label, sep)
	if i < 0 {
		return 0, 0, false
	}
	num, err1 := strconv.Atoi(label[:i])
	den, err2 := strconv.Atoi(label[i+len(sep):])
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return num, den, true
}

// Add stacks two pitches: ratios multiply, equal-temperament steps of the
// same division add.  The Log2fr values always add; the label is left
// empty when the two formats are incompatible.
func (p Pitch) Add(o Pitch) Pitch {
	res := Pitch{Log2fr: p.Log2fr + o.Log2fr}

	if n1, d1, ok1 := parseFrac(p.Label, ":"); ok1 {
		if n2, d2, ok2 := parseFrac(o.Label, ":"); ok2 {
			num, den := n1*n2, d1*d2
			g := gcd(num, den)
			res.Label = strconv.Itoa(num/g) + ":" + strconv.Itoa(den/g)
			return res
		}
	}
	if s1, n1, ok1 := parseFrac(p.Label, `\`); ok1 {
		if s2, n2, ok2 := parseFrac(o.Label, `\`); ok2 && n1 == n2 {
			res.Label = strconv.Itoa(s1+s2) + `\` + strconv.Itoa(n1)
			return res
		}
	}
	return res
}

// Scale raises a pitch to an integer power: a ratio label becomes the
// ratio to the k-th power (inverted for negative k), an equal-temperament
// label multiplies its step count.  The label is left empty for unknown
// formats.
func (p Pitch) Scale(k int) Pitch {
	res := Pitch{Log2fr: float64(k) * p.Log2fr}

	if num, den, ok := parseFrac(p.Label, ":"); ok {
		if k < 0 {
			num, den = den, num
			k = -k
		}
		pn, pd := 1, 1
		for i := 0; i < k; i++ {
			pn *= num
			pd *= den
		}
		g := gcd(pn, pd)
		res.Label = strconv.Itoa(pn/g) + ":" + strconv.Itoa(pd/g)
		return res
	}
	if step, n, ok := parseFrac(p.Label, `\`); ok {
		res.Label = strconv.Itoa(k*step) + `\` + strconv.Itoa(n)
		return res
	}
	return res
}
