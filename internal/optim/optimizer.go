// Package optim implements the gradient-based optimizers used to train
// the field network: Adam (the default) and SGD with momentum.
//
// Gradients are accumulated onto the parameters themselves by
// autodiff.Backward; Step reads them from there and updates parameter
// values in place.
//
// Example:
//
//	optimizer := optim.NewAdam(net.Parameters(), optim.AdamConfig{LR: 0.001})
//
//	for epoch := 0; epoch < epochs; epoch++ {
//	    optimizer.ZeroGrad()
//	    loss, _ := physics.Loss(net, data, nu)
//	    autodiff.Backward(loss)
//	    optimizer.Step()
//	}
package optim

// Optimizer is the base interface for optimization algorithms.
type Optimizer interface {
	// Step applies one gradient update to all parameters in place.
	// Parameters without an accumulated gradient are skipped.
	Step()

	// ZeroGrad clears all parameter gradients. Call before each backward
	// pass to prevent accumulation across steps.
	ZeroGrad()

	// LR returns the current learning rate.
	LR() float64
}
