package autodiff

import (
	"github.com/pinn-ml/burgers/internal/tensor"
)

// catOp: concatenates two variables column-wise.
//
// The network input is Cat(x, t): two N×1 columns joined into N×2. The
// backward pass slices the gradient back apart, which is exactly how
// du/dx and du/dt separate during residual differentiation.
type catOp struct {
	inputs [2]*Variable
}

// Cat concatenates a and b column-wise. Row counts must match.
func Cat(a, b *Variable) *Variable {
	op := &catOp{inputs: [2]*Variable{a, b}}
	return newNode(tensor.Cat(a.value, b.value), op)
}

func (op *catOp) Inputs() []*Variable { return op.inputs[:] }

func (op *catOp) Backward(outputGrad *Variable) []*Variable {
	ca := op.inputs[0].value.Cols()
	cb := op.inputs[1].value.Cols()
	return []*Variable{
		Narrow(outputGrad, 0, ca),
		Narrow(outputGrad, ca, cb),
	}
}

// narrowOp: selects a column range.
type narrowOp struct {
	input  *Variable
	offset int
	n      int
}

// Narrow returns columns [offset, offset+n) of a.
func Narrow(a *Variable, offset, n int) *Variable {
	op := &narrowOp{input: a, offset: offset, n: n}
	return newNode(tensor.Narrow(a.value, offset, n), op)
}

func (op *narrowOp) Inputs() []*Variable { return []*Variable{op.input} }

func (op *narrowOp) Backward(outputGrad *Variable) []*Variable {
	return []*Variable{Pad(outputGrad, op.input.value.Cols(), op.offset)}
}

// padOp: zero-pads columns. Inverse of narrowOp.
type padOp struct {
	input  *Variable
	cols   int
	offset int
}

// Pad places a into a zero variable with cols total columns at the given
// column offset.
func Pad(a *Variable, cols, offset int) *Variable {
	op := &padOp{input: a, cols: cols, offset: offset}
	return newNode(tensor.Pad(a.value, cols, offset), op)
}

func (op *padOp) Inputs() []*Variable { return []*Variable{op.input} }

func (op *padOp) Backward(outputGrad *Variable) []*Variable {
	return []*Variable{Narrow(outputGrad, op.offset, op.input.value.Cols())}
}
