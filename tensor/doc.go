// Copyright 2025 The Burgers PINN Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for the dense float64 matrices
// the module computes on.
//
// Everything is 2-D and row-major: collocation batches are N×1 columns,
// layer weights are in×out matrices. The heavy lifting (kernels, the
// differentiable graph) lives in the internal packages; this package
// re-exports the types and creation functions callers need to feed the
// autodiff and nn packages.
//
// Example:
//
//	x := tensor.FromColumn([]float64{-0.5, 0.0, 0.5})
//	u := net.Predict(x.Data(), t.Data())
package tensor
