// Copyright 2025 The Burgers PINN Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package solver provides the public API for the finite-difference
// reference solver used to validate the learned field.
package solver

import (
	"gonum.org/v1/gonum/mat"

	"github.com/pinn-ml/burgers/internal/solver"
)

// Burgers solves the 1-D viscous Burgers equation on a uniform nx×nt grid
// with an explicit upwind/central scheme. Returns the x grid, the t grid
// and the field U with U.At(n, i) = u(x[i], t[n]).
//
// The scheme is explicit and first-order; stability is the caller's
// responsibility (keep nu·dt/dx² small).
func Burgers(nx, nt int, nu float64, xRange, tRange [2]float64) ([]float64, []float64, *mat.Dense, error) {
	return solver.Burgers(nx, nt, nu, xRange, tRange)
}
