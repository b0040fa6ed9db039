package bm

import "github.com/akalin/gobm/gf2"

// maxPoly64Length is the longest sequence synthesize64 handles. For a
// sequence of length N every polynomial it builds has degree at most
// N, which must fit in a Poly64.
const maxPoly64Length = 63

// Synthesize returns the connection polynomial C and linear complexity
// L of the shortest LFSR that generates s. That is, for every n with
// L <= n < len(s),
//
//   s[n] = xor of s[n-i] over all exponents i >= 1 of C.
//
// If some element of s isn't 0 or 1, Synthesize returns an
// *InvalidInputError and no result.
func Synthesize(s []int) (gf2.Poly, int, error) {
	bits, err := toBits(s)
	if err != nil {
		return gf2.Poly{}, 0, err
	}
	c, l := synthesize(bits)
	return c, l, nil
}

// SynthesizeBytes is like Synthesize, but takes the sequence as
// bytes.
func SynthesizeBytes(s []byte) (gf2.Poly, int, error) {
	for i, v := range s {
		if _, err := toBit(i, int(v)); err != nil {
			return gf2.Poly{}, 0, err
		}
	}
	c, l := synthesize(s)
	return c, l, nil
}

func synthesize(bits []byte) (gf2.Poly, int) {
	if len(bits) <= maxPoly64Length {
		c, l := synthesize64(bits)
		return gf2.FromPoly64(c), l
	}
	return synthesizeGeneric(bits)
}

func synthesizeGeneric(bits []byte) (gf2.Poly, int) {
	s := NewSynthesizer(nil)
	s.seq = make([]byte, 0, len(bits))
	for _, b := range bits {
		s.push(b)
	}
	return s.Poly(), s.Length()
}

// synthesize64 is the same algorithm as Synthesizer, except that it
// keeps the polynomials in Poly64s and the most recent bits in a
// uint64 window, with bit i of the window holding bits[n-i]. bits
// must have length at most maxPoly64Length.
func synthesize64(bits []byte) (gf2.Poly64, int) {
	if len(bits) > maxPoly64Length {
		panic("sequence too long")
	}

	c, b := gf2.Poly64(1), gf2.Poly64(1)
	l, m := 0, -1
	var window uint64
	for n, bit := range bits {
		window = window<<1 | uint64(bit)
		if c.Dot(gf2.Poly64(window)) == 0 {
			continue
		}

		t := c
		c = c.Plus(b.Shift(uint(n - m)))
		if 2*l <= n {
			l = n + 1 - l
			b = t
			m = n
		}
	}
	return c, l
}
