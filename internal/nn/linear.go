package nn

import (
	"fmt"

	"github.com/pinn-ml/burgers/internal/autodiff"
	"github.com/pinn-ml/burgers/internal/tensor"
)

// Linear implements a fully connected layer: y = x @ W + b.
//
//   - x has shape [batch, in_features]
//   - W has shape [in_features, out_features]
//   - b has shape [1, out_features], broadcast over the batch
//
// Weights are Xavier-initialized, biases start at zero.
type Linear struct {
	inFeatures  int
	outFeatures int
	weight      *Parameter
	bias        *Parameter
}

// NewLinear creates a Linear layer with Xavier-initialized weights and
// zero biases.
func NewLinear(inFeatures, outFeatures int) *Linear {
	if inFeatures <= 0 || outFeatures <= 0 {
		panic(fmt.Sprintf("nn: invalid Linear dimensions %d -> %d", inFeatures, outFeatures))
	}
	return &Linear{
		inFeatures:  inFeatures,
		outFeatures: outFeatures,
		weight:      NewParameter("weight", Xavier(inFeatures, outFeatures, inFeatures, outFeatures)),
		bias:        NewParameter("bias", tensor.Zeros(1, outFeatures)),
	}
}

// Forward computes x @ W + b.
//
// Input shape: [batch, in_features]. Output shape: [batch, out_features].
func (l *Linear) Forward(input *autodiff.Variable) *autodiff.Variable {
	if input.Value().Cols() != l.inFeatures {
		panic(fmt.Sprintf("nn: Linear expected %d input features, got %d", l.inFeatures, input.Value().Cols()))
	}

	out := autodiff.MatMul(input, l.weight.Variable())
	bias := autodiff.Broadcast(l.bias.Variable(), out.Value().Rows(), l.outFeatures)
	return autodiff.Add(out, bias)
}

// Parameters returns [weight, bias].
func (l *Linear) Parameters() []*Parameter {
	return []*Parameter{l.weight, l.bias}
}

// Weight returns the weight parameter.
func (l *Linear) Weight() *Parameter { return l.weight }

// Bias returns the bias parameter.
func (l *Linear) Bias() *Parameter { return l.bias }

// InFeatures returns the input width.
func (l *Linear) InFeatures() int { return l.inFeatures }

// OutFeatures returns the output width.
func (l *Linear) OutFeatures() int { return l.outFeatures }
