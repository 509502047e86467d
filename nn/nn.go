// Copyright 2025 The Burgers PINN Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the public API for the network layers: the scalar
// field network u(x, t), fully connected layers, activations and
// parameters.
package nn

import (
	"github.com/pinn-ml/burgers/internal/nn"
	"github.com/pinn-ml/burgers/internal/tensor"
)

// Module is the base interface for network components.
type Module = nn.Module

// Parameter is a trainable tensor.
type Parameter = nn.Parameter

// NewParameter creates a parameter from an initialized tensor.
func NewParameter(name string, t *tensor.Dense) *Parameter {
	return nn.NewParameter(name, t)
}

// Network approximates the scalar field u(x, t).
type Network = nn.Network

// NewNetwork builds a field network with the given hidden layer widths and
// activation name ("tanh", "relu", "sigmoid"; unknown names fall back to
// tanh). At least one hidden layer is required.
//
// Example:
//
//	net, err := nn.NewNetwork([]int{32, 32, 32}, "tanh")
func NewNetwork(hidden []int, activation string) (*Network, error) {
	return nn.NewNetwork(hidden, activation)
}

// Linear is a fully connected layer: y = x @ W + b.
type Linear = nn.Linear

// NewLinear creates a Linear layer with Xavier-initialized weights.
func NewLinear(inFeatures, outFeatures int) *Linear {
	return nn.NewLinear(inFeatures, outFeatures)
}

// Activation applies a pointwise nonlinearity to a graph variable.
type Activation = nn.Activation

// ActivationByName resolves an activation by name, falling back to tanh.
func ActivationByName(name string) Activation {
	return nn.ActivationByName(name)
}

// Xavier returns a rows×cols tensor with Xavier/Glorot uniform values.
func Xavier(fanIn, fanOut, rows, cols int) *tensor.Dense {
	return nn.Xavier(fanIn, fanOut, rows, cols)
}
