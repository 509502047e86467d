// Package solver provides an independent finite-difference solution of the
// Burgers equation, used to validate the learned field.
package solver

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Burgers time-marches the 1-D viscous Burgers equation on a uniform
// nx×nt grid with an explicit first-order scheme:
//
//   - advective term u·u_x by upwind differencing (backward difference
//     where the local value is positive, forward difference otherwise),
//   - diffusive term nu·u_xx by a centered second difference.
//
// Initial condition u(x, 0) = -sin(πx); boundaries clamped to zero after
// every step. Returns the x grid, the t grid and the field U with U.At(n, i)
// = u(x[i], t[n]).
//
// The scheme is explicit: stability is not enforced. Callers choosing
// nu·dt/dx² large will observe blow-up; the values propagate as ordinary
// numbers. This is a reference baseline, not a certified solver.
func Burgers(nx, nt int, nu float64, xRange, tRange [2]float64) ([]float64, []float64, *mat.Dense, error) {
	if nx < 2 || nt < 2 {
		return nil, nil, nil, fmt.Errorf("solver: grid needs at least 2 points per axis, got nx=%d nt=%d", nx, nt)
	}

	x := make([]float64, nx)
	t := make([]float64, nt)
	floats.Span(x, xRange[0], xRange[1])
	floats.Span(t, tRange[0], tRange[1])
	dx := x[1] - x[0]
	dt := t[1] - t[0]

	u := mat.NewDense(nt, nx, nil)

	for i := 0; i < nx; i++ {
		u.Set(0, i, -math.Sin(math.Pi*x[i]))
	}
	for n := 0; n < nt; n++ {
		u.Set(n, 0, 0)
		u.Set(n, nx-1, 0)
	}

	for n := 0; n < nt-1; n++ {
		prev := u.RawRowView(n)

		for i := 1; i < nx-1; i++ {
			var dudx float64
			if prev[i] > 0 {
				dudx = (prev[i] - prev[i-1]) / dx
			} else {
				dudx = (prev[i+1] - prev[i]) / dx
			}

			d2udx2 := (prev[i+1] - 2*prev[i] + prev[i-1]) / (dx * dx)

			u.Set(n+1, i, prev[i]+dt*(-prev[i]*dudx+nu*d2udx2))
		}

		u.Set(n+1, 0, 0)
		u.Set(n+1, nx-1, 0)
	}

	return x, t, u, nil
}
