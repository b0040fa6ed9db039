package gf2

import (
	"math/bits"
	"strconv"
	"strings"
)

// A Poly64 is a polynomial over GF(2) mod x^64. Bit i holds the
// coefficient of x^i.
type Poly64 uint64

// Plus returns the sum of p and q as polynomials over GF(2), which is
// just the bitwise xor of the two.
func (p Poly64) Plus(q Poly64) Poly64 {
	return p ^ q
}

// Minus returns the difference of p and q as polynomials over GF(2),
// which is just the bitwise xor of the two.
func (p Poly64) Minus(q Poly64) Poly64 {
	return p ^ q
}

// Shift returns p times x^k, mod x^64.
func (p Poly64) Shift(k uint) Poly64 {
	if k >= 64 {
		return 0
	}
	return p << k
}

// Degree returns the degree of p, or -1 if p is zero.
func (p Poly64) Degree() int {
	return bits.Len64(uint64(p)) - 1
}

// Dot returns the inner product of p and q as coefficient vectors
// over GF(2), i.e. the parity of the number of exponents they share.
func (p Poly64) Dot(q Poly64) byte {
	return byte(bits.OnesCount64(uint64(p&q)) & 1)
}

// Coefficient returns whether the coefficient of x^e in p is 1.
func (p Poly64) Coefficient(e uint) bool {
	return e < 64 && p&(1<<e) != 0
}

// String renders p with its terms in descending order, e.g.
// "x^4 + x^1 + 1". The zero polynomial is "0".
func (p Poly64) String() string {
	if p == 0 {
		return zeroString
	}
	var terms []string
	for e := p.Degree(); e >= 0; e-- {
		if p&(1<<uint(e)) != 0 {
			terms = append(terms, termString(uint(e)))
		}
	}
	return strings.Join(terms, termSeparator)
}

const (
	zeroString    = "0"
	termSeparator = " + "
)

func termString(e uint) string {
	if e == 0 {
		return "1"
	}
	return "x^" + strconv.FormatUint(uint64(e), 10)
}
