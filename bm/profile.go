package bm

import "github.com/akalin/gobm/gf2"

// LinearComplexityProfile returns, for each n, the linear complexity
// of s[0..n]. The result is non-decreasing.
func LinearComplexityProfile(s []int) ([]int, error) {
	bits, err := toBits(s)
	if err != nil {
		return nil, err
	}

	syn := NewSynthesizer(nil)
	profile := make([]int, len(bits))
	for i, b := range bits {
		syn.push(b)
		profile[i] = syn.Length()
	}
	return profile, nil
}

// Generates returns whether the LFSR with connection polynomial c and
// length l generates s, i.e. whether for every n with l <= n < len(s),
//
//   s[n] = xor of s[n-i] over all exponents i >= 1 of c.
//
// c must have a constant term and degree at most l; otherwise
// Generates returns false.
func Generates(c gf2.Poly, l int, s []int) (bool, error) {
	bits, err := toBits(s)
	if err != nil {
		return false, err
	}

	if l < 0 || !c.Coefficient(0) || c.Degree() > l {
		return false, nil
	}

	for n := l; n < len(bits); n++ {
		if c.Discrepancy(bits, n) != 0 {
			return false, nil
		}
	}
	return true, nil
}
