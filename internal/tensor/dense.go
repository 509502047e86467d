// Package tensor implements dense float64 matrices for the Burgers PINN.
//
// All tensors in this module are 2-D, row-major and hold float64 values.
// Collocation batches are stored as N×1 column matrices; layer weights as
// in×out matrices. The package provides creation functions and the raw
// compute kernels the autodiff graph differentiates through.
package tensor

import (
	"fmt"
	"math/rand"
)

// Dense is a 2-D row-major float64 matrix.
//
// A Dense with zero rows is valid and represents an empty batch (e.g. a
// collocation group generated with a count of zero).
type Dense struct {
	rows, cols int
	data       []float64
}

// NewDense creates a zero-filled matrix with the given dimensions.
// Panics if rows or cols is negative.
func NewDense(rows, cols int) *Dense {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("tensor: invalid dimensions %dx%d", rows, cols))
	}
	return &Dense{
		rows: rows,
		cols: cols,
		data: make([]float64, rows*cols),
	}
}

// Zeros creates a matrix filled with zeros.
func Zeros(rows, cols int) *Dense {
	return NewDense(rows, cols)
}

// Ones creates a matrix filled with ones.
func Ones(rows, cols int) *Dense {
	return Full(rows, cols, 1.0)
}

// Full creates a matrix filled with value v.
func Full(rows, cols int, v float64) *Dense {
	t := NewDense(rows, cols)
	for i := range t.data {
		t.data[i] = v
	}
	return t
}

// FromSlice creates a matrix from a flat row-major slice.
// The slice is copied; len(data) must equal rows*cols.
func FromSlice(data []float64, rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("tensor: invalid dimensions %dx%d", rows, cols)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("tensor: data length %d does not match shape %dx%d", len(data), rows, cols)
	}
	t := NewDense(rows, cols)
	copy(t.data, data)
	return t, nil
}

// FromColumn creates an N×1 column matrix from a slice. The slice is copied.
func FromColumn(values []float64) *Dense {
	t := NewDense(len(values), 1)
	copy(t.data, values)
	return t
}

// Uniform creates a matrix with values drawn uniformly from [lo, hi).
func Uniform(rows, cols int, lo, hi float64, rng *rand.Rand) *Dense {
	t := NewDense(rows, cols)
	for i := range t.data {
		t.data[i] = lo + rng.Float64()*(hi-lo)
	}
	return t
}

// Rows returns the number of rows.
func (t *Dense) Rows() int { return t.rows }

// Cols returns the number of columns.
func (t *Dense) Cols() int { return t.cols }

// Data returns the underlying row-major storage. The slice is shared, not
// copied; mutating it mutates the matrix.
func (t *Dense) Data() []float64 { return t.data }

// At returns the element at row i, column j.
func (t *Dense) At(i, j int) float64 {
	return t.data[i*t.cols+j]
}

// Set assigns the element at row i, column j.
func (t *Dense) Set(i, j int, v float64) {
	t.data[i*t.cols+j] = v
}

// Clone returns a deep copy.
func (t *Dense) Clone() *Dense {
	c := NewDense(t.rows, t.cols)
	copy(c.data, t.data)
	return c
}

// SameShape reports whether t and o have identical dimensions.
func (t *Dense) SameShape(o *Dense) bool {
	return t.rows == o.rows && t.cols == o.cols
}
