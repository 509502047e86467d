package nn

import (
	"github.com/pinn-ml/burgers/internal/autodiff"
	"github.com/pinn-ml/burgers/internal/tensor"
)

// Parameter is a trainable tensor: a named gradient-tracked leaf in the
// computation graph. Layer weights and biases are parameters.
type Parameter struct {
	name     string
	variable *autodiff.Variable
}

// NewParameter creates a parameter from an initialized tensor.
func NewParameter(name string, t *tensor.Dense) *Parameter {
	return &Parameter{
		name:     name,
		variable: autodiff.Leaf(t),
	}
}

// Name returns the parameter name (e.g. "layers.0.weight").
func (p *Parameter) Name() string { return p.name }

// Variable returns the graph leaf for use in forward passes.
func (p *Parameter) Variable() *autodiff.Variable { return p.variable }

// Data returns the underlying value storage for in-place optimizer updates.
func (p *Parameter) Data() []float64 { return p.variable.Value().Data() }

// Grad returns the accumulated gradient, or nil before the first backward
// pass.
func (p *Parameter) Grad() *tensor.Dense { return p.variable.Grad() }

// ZeroGrad clears the accumulated gradient. Call before each training step
// to avoid accumulating across steps.
func (p *Parameter) ZeroGrad() { p.variable.ZeroGrad() }
