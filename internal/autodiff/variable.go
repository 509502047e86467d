// Package autodiff implements reverse-mode automatic differentiation over
// a dynamically built computation graph.
//
// Unlike a flat gradient tape, gradients here are themselves graph nodes:
// each Operation's backward pass is expressed in terms of the package's own
// differentiable operations. Differentiating a gradient therefore just
// means running backpropagation again, which is what the Burgers residual
// needs (u_xx is the derivative of u_x, and the training loss backpropagates
// through both).
package autodiff

import (
	"github.com/pinn-ml/burgers/internal/tensor"
)

// Operation is a differentiable operation in the computation graph.
// Each operation records its input variables during the forward pass and
// produces input gradients during the backward pass.
type Operation interface {
	// Inputs returns the input variables of this operation.
	Inputs() []*Variable

	// Backward returns the gradient for each input given the output
	// gradient. Returned gradients are built from graph operations, so
	// they remain differentiable.
	Backward(outputGrad *Variable) []*Variable
}

// Variable is a node in the computation graph: a value plus the operation
// that produced it. Leaves (parameters, differentiation inputs) have no
// producing operation and carry a gradient buffer filled by Backward.
type Variable struct {
	value        *tensor.Dense
	op           Operation
	requiresGrad bool
	grad         *tensor.Dense // leaves only, accumulated by Backward
}

// Leaf creates a gradient-tracked leaf variable. Model parameters and the
// (x, t) inputs of the PDE residual are leaves.
func Leaf(t *tensor.Dense) *Variable {
	return &Variable{value: t, requiresGrad: true}
}

// Constant creates a variable that does not track gradients. Targets,
// gradient seeds and inference inputs are constants; operations on
// constants alone stay untracked.
func Constant(t *tensor.Dense) *Variable {
	return &Variable{value: t}
}

// newNode creates an interior graph node. It tracks gradients iff any
// input does.
func newNode(value *tensor.Dense, op Operation) *Variable {
	v := &Variable{value: value, op: op}
	for _, in := range op.Inputs() {
		if in.requiresGrad {
			v.requiresGrad = true
			break
		}
	}
	return v
}

// Value returns the variable's data.
func (v *Variable) Value() *tensor.Dense { return v.value }

// Grad returns the accumulated gradient, or nil if Backward has not
// reached this leaf yet.
func (v *Variable) Grad() *tensor.Dense { return v.grad }

// ZeroGrad clears the accumulated gradient.
func (v *Variable) ZeroGrad() { v.grad = nil }

// RequiresGrad reports whether gradients flow through this variable.
func (v *Variable) RequiresGrad() bool { return v.requiresGrad }

// Detach returns a constant view of the variable's value, cutting it out
// of the graph.
func (v *Variable) Detach() *Variable { return Constant(v.value) }

func onesLike(v *Variable) *Variable {
	return Constant(tensor.Ones(v.value.Rows(), v.value.Cols()))
}
