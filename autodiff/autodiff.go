// Copyright 2025 The Burgers PINN Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation with
// graph-retaining gradients.
//
// Gradients are graph nodes, so differentiating a gradient is just another
// backward pass. This is the capability the PDE residual is built on:
//
//	u := net.Forward(x, t)
//	first := autodiff.Grad(u, x, t)
//	ux, ut := first[0], first[1]
//	uxx := autodiff.Grad(ux, x)[0]
package autodiff

import (
	"github.com/pinn-ml/burgers/internal/autodiff"
	"github.com/pinn-ml/burgers/internal/tensor"
)

// Variable is a node in the computation graph.
type Variable = autodiff.Variable

// Operation is a differentiable operation in the computation graph.
type Operation = autodiff.Operation

// Leaf creates a gradient-tracked leaf variable.
func Leaf(t *tensor.Dense) *Variable {
	return autodiff.Leaf(t)
}

// Constant creates a variable that does not track gradients.
func Constant(t *tensor.Dense) *Variable {
	return autodiff.Constant(t)
}

// Grad computes the gradient of output with respect to each input, seeded
// with ones. Results remain differentiable.
func Grad(output *Variable, inputs ...*Variable) []*Variable {
	return autodiff.Grad(output, inputs...)
}

// Backward accumulates gradients into every reachable gradient-tracked
// leaf.
func Backward(output *Variable) {
	autodiff.Backward(output)
}

// Operations

// Add returns a + b element-wise.
func Add(a, b *Variable) *Variable { return autodiff.Add(a, b) }

// Sub returns a - b element-wise.
func Sub(a, b *Variable) *Variable { return autodiff.Sub(a, b) }

// Mul returns a * b element-wise.
func Mul(a, b *Variable) *Variable { return autodiff.Mul(a, b) }

// Scale returns a * s for a constant scalar s.
func Scale(a *Variable, s float64) *Variable { return autodiff.Scale(a, s) }

// Neg returns -a.
func Neg(a *Variable) *Variable { return autodiff.Neg(a) }

// MatMul returns the matrix product a @ b.
func MatMul(a, b *Variable) *Variable { return autodiff.MatMul(a, b) }

// Transpose returns the transpose of a.
func Transpose(a *Variable) *Variable { return autodiff.Transpose(a) }

// Cat concatenates a and b column-wise.
func Cat(a, b *Variable) *Variable { return autodiff.Cat(a, b) }

// Narrow returns columns [offset, offset+n) of a.
func Narrow(a *Variable, offset, n int) *Variable { return autodiff.Narrow(a, offset, n) }

// Mean returns the mean of all elements as a 1×1 variable.
func Mean(a *Variable) *Variable { return autodiff.Mean(a) }

// SumRows sums over rows, returning a 1×cols variable.
func SumRows(a *Variable) *Variable { return autodiff.SumRows(a) }

// SumAll sums all elements, returning a 1×1 variable.
func SumAll(a *Variable) *Variable { return autodiff.SumAll(a) }

// Broadcast expands a 1×1 or 1×cols variable to rows×cols.
func Broadcast(a *Variable, rows, cols int) *Variable { return autodiff.Broadcast(a, rows, cols) }

// Tanh applies the hyperbolic tangent element-wise.
func Tanh(a *Variable) *Variable { return autodiff.Tanh(a) }

// Sigmoid applies the logistic function element-wise.
func Sigmoid(a *Variable) *Variable { return autodiff.Sigmoid(a) }

// ReLU applies the rectified linear unit element-wise.
func ReLU(a *Variable) *Variable { return autodiff.ReLU(a) }
