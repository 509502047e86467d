package nn

import (
	"github.com/pinn-ml/burgers/internal/autodiff"
)

// Activation applies a pointwise nonlinearity to a graph variable.
type Activation func(*autodiff.Variable) *autodiff.Variable

// ActivationByName resolves an activation by name: "tanh", "relu" or
// "sigmoid". Unknown names (including the empty string) fall back to tanh;
// this mirrors the training API, where the activation is a free-form
// request field and tanh is the sensible PINN default.
func ActivationByName(name string) Activation {
	switch name {
	case "relu":
		return autodiff.ReLU
	case "sigmoid":
		return autodiff.Sigmoid
	case "tanh":
		return autodiff.Tanh
	default:
		return autodiff.Tanh
	}
}
