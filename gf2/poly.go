package gf2

import (
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// A Poly is a polynomial over GF(2) of unbounded degree, stored as
// the set of exponents whose coefficient is 1. The zero value is the
// zero polynomial.
//
// Polys are values: no method modifies its receiver or returns
// storage shared with it.
type Poly struct {
	exps *bitset.BitSet
}

// NewPoly returns the polynomial with a term x^e for each given
// exponent. An exponent given twice cancels out, as it would when
// adding the terms.
func NewPoly(exponents ...uint) Poly {
	exps := bitset.New(0)
	for _, e := range exponents {
		exps.Flip(e)
	}
	return Poly{exps}
}

// One returns the constant polynomial 1.
func One() Poly {
	return NewPoly(0)
}

// FromPoly64 returns p as a Poly.
func FromPoly64(p Poly64) Poly {
	exps := bitset.New(64)
	for e := uint(0); e < 64; e++ {
		if p.Coefficient(e) {
			exps.Set(e)
		}
	}
	return Poly{exps}
}

func (p Poly) bitSet() *bitset.BitSet {
	if p.exps == nil {
		return bitset.New(0)
	}
	return p.exps
}

// Plus returns the sum of p and q as polynomials over GF(2), which is
// the symmetric difference of their exponent sets.
func (p Poly) Plus(q Poly) Poly {
	return Poly{p.bitSet().SymmetricDifference(q.bitSet())}
}

// Minus returns the difference of p and q as polynomials over GF(2),
// which is the same as their sum.
func (p Poly) Minus(q Poly) Poly {
	return p.Plus(q)
}

// Shift returns p times x^k.
func (p Poly) Shift(k uint) Poly {
	exps := p.bitSet().Clone()
	exps.ShiftLeft(k)
	return Poly{exps}
}

// IsZero returns whether p is the zero polynomial.
func (p Poly) IsZero() bool {
	return p.exps == nil || p.exps.None()
}

// Coefficient returns whether the coefficient of x^e in p is 1.
func (p Poly) Coefficient(e uint) bool {
	return p.exps != nil && p.exps.Test(e)
}

// Exponents returns the exponents of p in ascending order.
func (p Poly) Exponents() []uint {
	src := p.bitSet()
	exps := make([]uint, 0, src.Count())
	for e, ok := src.NextSet(0); ok; e, ok = src.NextSet(e + 1) {
		exps = append(exps, e)
	}
	return exps
}

// Degree returns the degree of p, or -1 if p is zero.
func (p Poly) Degree() int {
	deg := -1
	src := p.bitSet()
	for e, ok := src.NextSet(0); ok; e, ok = src.NextSet(e + 1) {
		deg = int(e)
	}
	return deg
}

// Equal returns whether p and q have the same terms. Unlike
// bitset.BitSet.Equal, it ignores differences in capacity.
func (p Poly) Equal(q Poly) bool {
	return p.Plus(q).IsZero()
}

// Poly64 returns p as a Poly64, and whether p fits in one, i.e. has
// degree less than 64.
func (p Poly) Poly64() (Poly64, bool) {
	var q Poly64
	src := p.bitSet()
	for e, ok := src.NextSet(0); ok; e, ok = src.NextSet(e + 1) {
		if e >= 64 {
			return 0, false
		}
		q |= 1 << e
	}
	return q, true
}

// Discrepancy returns the xor of s[base-e] over all exponents e of p.
// Every bit of s is assumed to be 0 or 1. It panics if some base-e is
// out of range for s.
func (p Poly) Discrepancy(s []byte, base int) byte {
	var d byte
	src := p.bitSet()
	for e, ok := src.NextSet(0); ok; e, ok = src.NextSet(e + 1) {
		i := base - int(e)
		if i < 0 || i >= len(s) {
			panic("discrepancy index out of range")
		}
		d ^= s[i]
	}
	return d
}

// String renders p with its terms in descending order, e.g.
// "x^4 + x^1 + 1". The zero polynomial is "0".
func (p Poly) String() string {
	exps := p.Exponents()
	if len(exps) == 0 {
		return zeroString
	}
	terms := make([]string, len(exps))
	for i, e := range exps {
		terms[len(exps)-1-i] = termString(e)
	}
	return strings.Join(terms, termSeparator)
}
