// Copyright 2025 The Burgers PINN Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/pinn-ml/burgers/internal/nn"
	"github.com/pinn-ml/burgers/internal/optim"
)

// Optimizer is the base interface for optimization algorithms.
type Optimizer = optim.Optimizer

// Adam is the Adam (Adaptive Moment Estimation) optimizer.
type Adam = optim.Adam

// AdamConfig holds Adam hyperparameters; zero values select the defaults.
type AdamConfig = optim.AdamConfig

// NewAdam creates an Adam optimizer over the given parameters.
//
// Example:
//
//	optimizer := optim.NewAdam(net.Parameters(), optim.AdamConfig{LR: 0.001})
func NewAdam(params []*nn.Parameter, config AdamConfig) *Adam {
	return optim.NewAdam(params, config)
}

// SGD is stochastic gradient descent with optional momentum.
type SGD = optim.SGD

// SGDConfig holds SGD hyperparameters; zero values select the defaults.
type SGDConfig = optim.SGDConfig

// NewSGD creates an SGD optimizer over the given parameters.
func NewSGD(params []*nn.Parameter, config SGDConfig) *SGD {
	return optim.NewSGD(params, config)
}
