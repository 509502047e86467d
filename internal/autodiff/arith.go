package autodiff

import (
	"github.com/pinn-ml/burgers/internal/tensor"
)

// addOp: output = a + b.
//
// Backward: d(a+b)/da = d(a+b)/db = 1, so the output gradient flows to
// both inputs unchanged.
type addOp struct {
	inputs [2]*Variable
}

// Add returns a + b element-wise. Shapes must match.
func Add(a, b *Variable) *Variable {
	op := &addOp{inputs: [2]*Variable{a, b}}
	return newNode(tensor.Add(a.value, b.value), op)
}

func (op *addOp) Inputs() []*Variable { return op.inputs[:] }

func (op *addOp) Backward(outputGrad *Variable) []*Variable {
	return []*Variable{outputGrad, outputGrad}
}

// subOp: output = a - b.
type subOp struct {
	inputs [2]*Variable
}

// Sub returns a - b element-wise. Shapes must match.
func Sub(a, b *Variable) *Variable {
	op := &subOp{inputs: [2]*Variable{a, b}}
	return newNode(tensor.Sub(a.value, b.value), op)
}

func (op *subOp) Inputs() []*Variable { return op.inputs[:] }

func (op *subOp) Backward(outputGrad *Variable) []*Variable {
	return []*Variable{outputGrad, Neg(outputGrad)}
}

// mulOp: output = a * b element-wise.
//
// Backward: d(a*b)/da = b and d(a*b)/db = a. Both products are graph
// operations, which is what makes second derivatives of u·u_x work.
type mulOp struct {
	inputs [2]*Variable
}

// Mul returns a * b element-wise (Hadamard product). Shapes must match.
func Mul(a, b *Variable) *Variable {
	op := &mulOp{inputs: [2]*Variable{a, b}}
	return newNode(tensor.Mul(a.value, b.value), op)
}

func (op *mulOp) Inputs() []*Variable { return op.inputs[:] }

func (op *mulOp) Backward(outputGrad *Variable) []*Variable {
	a, b := op.inputs[0], op.inputs[1]
	return []*Variable{Mul(outputGrad, b), Mul(outputGrad, a)}
}

// scaleOp: output = a * s for a fixed scalar s.
type scaleOp struct {
	input *Variable
	s     float64
}

// Scale returns a * s for a constant scalar s.
func Scale(a *Variable, s float64) *Variable {
	op := &scaleOp{input: a, s: s}
	return newNode(tensor.Scale(a.value, s), op)
}

// Neg returns -a.
func Neg(a *Variable) *Variable {
	return Scale(a, -1)
}

func (op *scaleOp) Inputs() []*Variable { return []*Variable{op.input} }

func (op *scaleOp) Backward(outputGrad *Variable) []*Variable {
	return []*Variable{Scale(outputGrad, op.s)}
}
