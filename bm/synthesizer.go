package bm

import "github.com/akalin/gobm/gf2"

// SynthesizerDelegate holds methods that are called during synthesis.
type SynthesizerDelegate interface {
	// OnStep is called after the bit at index n has been processed,
	// with the discrepancy d at that index and the resulting
	// connection polynomial and linear complexity.
	OnStep(n int, d byte, c gf2.Poly, l int)
}

type nopDelegate struct{}

func (nopDelegate) OnStep(n int, d byte, c gf2.Poly, l int) {}

// A Synthesizer runs the Berlekamp-Massey algorithm over GF(2) one bit
// at a time. After each bit, Poly and Length describe the shortest
// LFSR that generates every bit pushed so far.
//
// A Synthesizer is not safe for concurrent use, but independent
// Synthesizers share no state.
type Synthesizer struct {
	delegate SynthesizerDelegate

	seq []byte

	// c is the current connection polynomial, and l its linear
	// complexity. b is the connection polynomial as it was before
	// the last length change, which happened at index m.
	c gf2.Poly
	b gf2.Poly
	l int
	m int
}

// NewSynthesizer returns a Synthesizer that has seen no bits. delegate
// may be nil.
func NewSynthesizer(delegate SynthesizerDelegate) *Synthesizer {
	if delegate == nil {
		delegate = nopDelegate{}
	}
	return &Synthesizer{
		delegate: delegate,
		c:        gf2.One(),
		b:        gf2.One(),
		m:        -1,
	}
}

// Push processes the next bit of the sequence. If bit isn't 0 or 1,
// Push returns an *InvalidInputError and leaves s unchanged.
func (s *Synthesizer) Push(bit int) error {
	b, err := toBit(len(s.seq), bit)
	if err != nil {
		return err
	}
	s.push(b)
	return nil
}

func (s *Synthesizer) push(bit byte) {
	n := len(s.seq)
	s.seq = append(s.seq, bit)

	// deg(c) <= l <= n, so every index touched is in range.
	d := s.c.Discrepancy(s.seq, n)
	if d != 0 {
		t := s.c
		s.c = s.c.Plus(s.b.Shift(uint(n - s.m)))
		if 2*s.l <= n {
			s.l = n + 1 - s.l
			s.b = t
			s.m = n
		}
	}

	s.delegate.OnStep(n, d, s.c, s.l)
}

// Poly returns the current connection polynomial.
func (s *Synthesizer) Poly() gf2.Poly {
	return s.c
}

// Length returns the current linear complexity.
func (s *Synthesizer) Length() int {
	return s.l
}

// Count returns the number of bits pushed so far.
func (s *Synthesizer) Count() int {
	return len(s.seq)
}
