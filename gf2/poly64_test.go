package gf2

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPoly64Shift(t *testing.T) {
	for i := Poly64(0); i < Poly64(1<<8); i++ {
		for k := uint(0); k < 8; k++ {
			shifted := i.Shift(k)
			for e := uint(0); e < 16; e++ {
				expected := e >= k && i.Coefficient(e-k)
				require.Equal(t, expected, shifted.Coefficient(e), "i=%d, k=%d, e=%d", i, k, e)
			}
		}
	}
	// Terms shifted past x^63 are dropped.
	require.Equal(t, Poly64(1<<63), Poly64(3).Shift(63))
	require.Equal(t, Poly64(0), Poly64(1).Shift(64))
}

func TestPoly64Degree(t *testing.T) {
	require.Equal(t, -1, Poly64(0).Degree())
	require.Equal(t, 0, Poly64(1).Degree())
	require.Equal(t, 4, Poly64(19).Degree())
	require.Equal(t, 63, Poly64(1<<63).Degree())
}

func TestPoly64String(t *testing.T) {
	require.Equal(t, "0", Poly64(0).String())
	require.Equal(t, "1", Poly64(1).String())
	// x^4 + x + 1.
	require.Equal(t, "x^4 + x^1 + 1", Poly64(19).String())
	require.Equal(t, "x^63", Poly64(1<<63).String())
}

func TestPoly64Dot(t *testing.T) {
	require.Equal(t, byte(0), Poly64(0xffffffffffffffff).Dot(0xffffffffffffffff))
	require.Equal(t, byte(1), Poly64(1<<63|1<<5).Dot(1<<63))

	for i := Poly64(0); i < Poly64(1<<6); i++ {
		for j := Poly64(0); j < Poly64(1<<6); j++ {
			var expected byte
			for e := uint(0); e < 6; e++ {
				if i.Coefficient(e) && j.Coefficient(e) {
					expected ^= 1
				}
			}
			require.Equal(t, expected, i.Dot(j), "i=%d, j=%d", i, j)
		}
	}
}
