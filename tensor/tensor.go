// Copyright 2025 The Burgers PINN Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"math/rand"

	"github.com/pinn-ml/burgers/internal/tensor"
)

// Dense is a 2-D row-major float64 matrix.
type Dense = tensor.Dense

// Creation functions

// NewDense creates a zero-filled matrix with the given dimensions.
func NewDense(rows, cols int) *Dense {
	return tensor.NewDense(rows, cols)
}

// Zeros creates a matrix filled with zeros.
func Zeros(rows, cols int) *Dense {
	return tensor.Zeros(rows, cols)
}

// Ones creates a matrix filled with ones.
func Ones(rows, cols int) *Dense {
	return tensor.Ones(rows, cols)
}

// Full creates a matrix filled with value v.
func Full(rows, cols int, v float64) *Dense {
	return tensor.Full(rows, cols, v)
}

// FromSlice creates a matrix from a flat row-major slice.
//
// Example:
//
//	m, err := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
func FromSlice(data []float64, rows, cols int) (*Dense, error) {
	return tensor.FromSlice(data, rows, cols)
}

// FromColumn creates an N×1 column matrix from a slice.
func FromColumn(values []float64) *Dense {
	return tensor.FromColumn(values)
}

// Uniform creates a matrix with values drawn uniformly from [lo, hi).
func Uniform(rows, cols int, lo, hi float64, rng *rand.Rand) *Dense {
	return tensor.Uniform(rows, cols, lo, hi, rng)
}
