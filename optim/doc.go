// Copyright 2025 The Burgers PINN Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides the public API for the training optimizers.
//
// Two algorithms are available:
//   - Adam: adaptive moments, the default for PINN training
//   - SGD: plain gradient descent with optional momentum
//
// Gradients are accumulated onto parameters by autodiff.Backward; Step
// applies them in place:
//
//	optimizer := optim.NewAdam(net.Parameters(), optim.AdamConfig{LR: 0.001})
//	for epoch := 0; epoch < epochs; epoch++ {
//	    optimizer.ZeroGrad()
//	    loss, _ := physics.Loss(net, data, nu)
//	    autodiff.Backward(loss)
//	    optimizer.Step()
//	}
package optim
