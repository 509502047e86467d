package autodiff

import (
	"github.com/pinn-ml/burgers/internal/tensor"
)

// sumRowsOp: reduces rows×cols to 1×cols.
type sumRowsOp struct {
	input *Variable
}

// SumRows sums over rows, returning a 1×cols variable. Used for bias
// gradients (the bias row is broadcast over the batch in the forward pass).
func SumRows(a *Variable) *Variable {
	op := &sumRowsOp{input: a}
	return newNode(tensor.SumRows(a.value), op)
}

func (op *sumRowsOp) Inputs() []*Variable { return []*Variable{op.input} }

func (op *sumRowsOp) Backward(outputGrad *Variable) []*Variable {
	in := op.input.value
	return []*Variable{Broadcast(outputGrad, in.Rows(), in.Cols())}
}

// sumAllOp: reduces rows×cols to 1×1.
type sumAllOp struct {
	input *Variable
}

// SumAll sums all elements, returning a 1×1 variable.
func SumAll(a *Variable) *Variable {
	op := &sumAllOp{input: a}
	return newNode(tensor.SumAll(a.value), op)
}

func (op *sumAllOp) Inputs() []*Variable { return []*Variable{op.input} }

func (op *sumAllOp) Backward(outputGrad *Variable) []*Variable {
	in := op.input.value
	return []*Variable{Broadcast(outputGrad, in.Rows(), in.Cols())}
}

// Mean returns the mean of all elements as a 1×1 variable. The mean of an
// empty variable is NaN; numerical degeneracies propagate rather than
// being masked.
func Mean(a *Variable) *Variable {
	n := a.value.Rows() * a.value.Cols()
	return Scale(SumAll(a), 1/float64(n))
}

// broadcastOp: expands 1×1 or 1×cols to rows×cols.
type broadcastOp struct {
	input *Variable
}

// Broadcast expands a 1×1 or 1×cols variable to rows×cols.
func Broadcast(a *Variable, rows, cols int) *Variable {
	op := &broadcastOp{input: a}
	return newNode(tensor.Broadcast(a.value, rows, cols), op)
}

func (op *broadcastOp) Inputs() []*Variable { return []*Variable{op.input} }

// Backward reduces the output gradient back to the input shape: a value
// replicated k times contributes k summed gradient terms.
func (op *broadcastOp) Backward(outputGrad *Variable) []*Variable {
	if op.input.value.Cols() == 1 {
		return []*Variable{SumAll(outputGrad)}
	}
	return []*Variable{SumRows(outputGrad)}
}
