package nn

import (
	"fmt"

	"github.com/pinn-ml/burgers/internal/autodiff"
	"github.com/pinn-ml/burgers/internal/tensor"
)

// Network approximates the scalar field u(x, t): a feed-forward stack of
// Linear layers mapping the 2-vector (x, t) to a single output, with the
// activation applied after every layer except the last.
type Network struct {
	layers     []*Linear
	activation Activation
}

// NewNetwork builds a network with the given hidden layer widths and
// activation name (see ActivationByName for the accepted names and the
// tanh fallback). At least one hidden layer is required.
func NewNetwork(hidden []int, activation string) (*Network, error) {
	if len(hidden) == 0 {
		return nil, fmt.Errorf("nn: at least one hidden layer is required")
	}
	for _, h := range hidden {
		if h <= 0 {
			return nil, fmt.Errorf("nn: invalid hidden layer width %d", h)
		}
	}

	widths := append([]int{2}, hidden...)
	widths = append(widths, 1)

	layers := make([]*Linear, 0, len(widths)-1)
	for i := 0; i < len(widths)-1; i++ {
		layers = append(layers, NewLinear(widths[i], widths[i+1]))
	}

	return &Network{
		layers:     layers,
		activation: ActivationByName(activation),
	}, nil
}

// Forward evaluates u for a batch of (x, t) samples. Both inputs are N×1
// variables with matching row counts; the output is N×1.
//
// Pass gradient-tracked leaves for x and t when derivatives with respect
// to the inputs are needed (the PDE residual does), constants otherwise.
func (n *Network) Forward(x, t *autodiff.Variable) *autodiff.Variable {
	if x.Value().Rows() != t.Value().Rows() {
		panic(fmt.Sprintf("nn: x has %d samples, t has %d", x.Value().Rows(), t.Value().Rows()))
	}

	h := autodiff.Cat(x, t)
	for i, layer := range n.layers {
		h = layer.Forward(h)
		if i < len(n.layers)-1 {
			h = n.activation(h)
		}
	}
	return h
}

// Predict evaluates u for matching-length coordinate slices without
// gradient tracking. Used for batched inference.
func (n *Network) Predict(xs, ts []float64) []float64 {
	x := autodiff.Constant(tensor.FromColumn(xs))
	t := autodiff.Constant(tensor.FromColumn(ts))
	u := n.Forward(x, t)

	out := make([]float64, len(xs))
	copy(out, u.Value().Data())
	return out
}

// Parameters returns the weights and biases of all layers in order.
func (n *Network) Parameters() []*Parameter {
	params := make([]*Parameter, 0, 2*len(n.layers))
	for _, layer := range n.layers {
		params = append(params, layer.Parameters()...)
	}
	return params
}

// NumLayers returns the number of affine layers (hidden + output).
func (n *Network) NumLayers() int { return len(n.layers) }
