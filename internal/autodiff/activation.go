package autodiff

import (
	"math"

	"github.com/pinn-ml/burgers/internal/tensor"
)

// tanhOp: output = tanh(a).
//
// Backward: d(tanh(x))/dx = 1 - tanh²(x), expressed on the output node so
// that differentiating the gradient again (for u_xx) reuses the graph.
type tanhOp struct {
	input  *Variable
	output *Variable
}

// Tanh applies the hyperbolic tangent element-wise.
func Tanh(a *Variable) *Variable {
	op := &tanhOp{input: a}
	out := newNode(tensor.Apply(a.value, math.Tanh), op)
	op.output = out
	return out
}

func (op *tanhOp) Inputs() []*Variable { return []*Variable{op.input} }

func (op *tanhOp) Backward(outputGrad *Variable) []*Variable {
	y := op.output
	deriv := Sub(onesLike(y), Mul(y, y))
	return []*Variable{Mul(outputGrad, deriv)}
}

// sigmoidOp: output = 1 / (1 + exp(-a)).
type sigmoidOp struct {
	input  *Variable
	output *Variable
}

// Sigmoid applies the logistic function element-wise.
func Sigmoid(a *Variable) *Variable {
	op := &sigmoidOp{input: a}
	out := newNode(tensor.Apply(a.value, func(v float64) float64 {
		return 1.0 / (1.0 + math.Exp(-v))
	}), op)
	op.output = out
	return out
}

func (op *sigmoidOp) Inputs() []*Variable { return []*Variable{op.input} }

// Backward: dσ/dx = σ(x)·(1 - σ(x)).
func (op *sigmoidOp) Backward(outputGrad *Variable) []*Variable {
	y := op.output
	deriv := Mul(y, Sub(onesLike(y), y))
	return []*Variable{Mul(outputGrad, deriv)}
}

// reluOp: output = max(0, a).
type reluOp struct {
	input *Variable
}

// ReLU applies the rectified linear unit element-wise.
func ReLU(a *Variable) *Variable {
	op := &reluOp{input: a}
	return newNode(tensor.Apply(a.value, func(v float64) float64 {
		if v > 0 {
			return v
		}
		return 0
	}), op)
}

func (op *reluOp) Inputs() []*Variable { return []*Variable{op.input} }

// Backward: the derivative is the 0/1 step mask of the input. The mask is
// a constant, so second derivatives through ReLU are zero almost
// everywhere.
func (op *reluOp) Backward(outputGrad *Variable) []*Variable {
	mask := Constant(tensor.Apply(op.input.value, func(v float64) float64 {
		if v > 0 {
			return 1
		}
		return 0
	}))
	return []*Variable{Mul(outputGrad, mask)}
}
