package solver

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBurgers_GridTooSmall(t *testing.T) {
	_, _, _, err := Burgers(1, 10, 0.01, [2]float64{-1, 1}, [2]float64{0, 1})
	assert.Error(t, err)

	_, _, _, err = Burgers(10, 1, 0.01, [2]float64{-1, 1}, [2]float64{0, 1})
	assert.Error(t, err)
}

func TestBurgers_GridShape(t *testing.T) {
	x, tg, u, err := Burgers(21, 11, 0.01, [2]float64{-1, 1}, [2]float64{0, 1})
	require.NoError(t, err)

	assert.Len(t, x, 21)
	assert.Len(t, tg, 11)
	r, c := u.Dims()
	assert.Equal(t, 11, r)
	assert.Equal(t, 21, c)

	assert.Equal(t, -1.0, x[0])
	assert.Equal(t, 1.0, x[len(x)-1])
	assert.Equal(t, 0.0, tg[0])
	assert.Equal(t, 1.0, tg[len(tg)-1])
}

func TestBurgers_InitialCondition(t *testing.T) {
	x, _, u, err := Burgers(41, 5, 0.01, [2]float64{-1, 1}, [2]float64{0, 0.1})
	require.NoError(t, err)

	for i, xi := range x {
		if i == 0 || i == len(x)-1 {
			// Walls win over the IC at the corners.
			assert.Zero(t, u.At(0, i))
			continue
		}
		assert.InDelta(t, -math.Sin(math.Pi*xi), u.At(0, i), 1e-12, "x = %v", xi)
	}
}

func TestBurgers_BoundariesStayZero(t *testing.T) {
	_, _, u, err := Burgers(31, 50, 0.05, [2]float64{-1, 1}, [2]float64{0, 1})
	require.NoError(t, err)

	r, c := u.Dims()
	for n := 0; n < r; n++ {
		assert.Zero(t, u.At(n, 0), "left wall at step %d", n)
		assert.Zero(t, u.At(n, c-1), "right wall at step %d", n)
	}
}

// On a stable grid the viscous solution decays; it must stay bounded by
// the initial amplitude and remain finite.
func TestBurgers_StaysBoundedOnStableGrid(t *testing.T) {
	_, _, u, err := Burgers(51, 2001, 0.01, [2]float64{-1, 1}, [2]float64{0, 1})
	require.NoError(t, err)

	r, c := u.Dims()
	for n := 0; n < r; n++ {
		for i := 0; i < c; i++ {
			v := u.At(n, i)
			require.False(t, math.IsNaN(v) || math.IsInf(v, 0), "non-finite value at (%d, %d)", n, i)
			require.LessOrEqual(t, math.Abs(v), 1.0+1e-9, "amplitude grew at (%d, %d)", n, i)
		}
	}
}

// A constant zero field is a fixed point of the scheme.
func TestBurgers_ZeroICFixedPoint(t *testing.T) {
	// x range symmetric around an integer keeps sin(πx) = 0 at every node.
	x, _, u, err := Burgers(3, 10, 0.01, [2]float64{-1, 1}, [2]float64{0, 1})
	require.NoError(t, err)

	require.Equal(t, []float64{-1, 0, 1}, x)
	r, c := u.Dims()
	for n := 0; n < r; n++ {
		for i := 0; i < c; i++ {
			assert.InDelta(t, 0.0, u.At(n, i), 1e-15)
		}
	}
}
