package autodiff

import (
	"github.com/pinn-ml/burgers/internal/tensor"
)

// matMulOp: output = a @ b.
//
// Backward: d(A@B)/dA = grad @ Bᵀ, d(A@B)/dB = Aᵀ @ grad.
type matMulOp struct {
	inputs [2]*Variable
}

// MatMul returns the matrix product a @ b.
func MatMul(a, b *Variable) *Variable {
	op := &matMulOp{inputs: [2]*Variable{a, b}}
	return newNode(tensor.MatMul(a.value, b.value), op)
}

func (op *matMulOp) Inputs() []*Variable { return op.inputs[:] }

func (op *matMulOp) Backward(outputGrad *Variable) []*Variable {
	a, b := op.inputs[0], op.inputs[1]
	return []*Variable{
		MatMul(outputGrad, Transpose(b)),
		MatMul(Transpose(a), outputGrad),
	}
}

// transposeOp: output = aᵀ.
type transposeOp struct {
	input *Variable
}

// Transpose returns the transpose of a.
func Transpose(a *Variable) *Variable {
	op := &transposeOp{input: a}
	return newNode(tensor.Transpose(a.value), op)
}

func (op *transposeOp) Inputs() []*Variable { return []*Variable{op.input} }

func (op *transposeOp) Backward(outputGrad *Variable) []*Variable {
	return []*Variable{Transpose(outputGrad)}
}
