// Package nn implements the neural network layers of the Burgers PINN:
// fully connected layers, pointwise activations and the scalar field
// network u(x, t).
//
// Design follows torch.nn loosely: modules expose Forward and Parameters,
// parameters are graph leaves updated in place by the optimizer.
package nn

import (
	"github.com/pinn-ml/burgers/internal/autodiff"
)

// Module is the base interface for network components.
type Module interface {
	// Forward computes the module output for the given input variable.
	Forward(input *autodiff.Variable) *autodiff.Variable

	// Parameters returns all trainable parameters of this module,
	// including nested ones. Modules without parameters return nil.
	Parameters() []*Parameter
}
