package nn

import (
	"math"
	"math/rand"

	"github.com/pinn-ml/burgers/internal/tensor"
)

// Xavier returns a rows×cols tensor initialized with Xavier/Glorot uniform
// values: U(-b, b) with b = sqrt(6 / (fanIn + fanOut)). Keeps activation
// variance roughly constant across layers, which matters for the deep-ish
// tanh stacks PINNs use.
func Xavier(fanIn, fanOut, rows, cols int) *tensor.Dense {
	bound := math.Sqrt(6.0 / float64(fanIn+fanOut))

	t := tensor.NewDense(rows, cols)
	data := t.Data()
	for i := range data {
		//nolint:gosec // math/rand is fine for weight initialization
		data[i] = (rand.Float64()*2.0 - 1.0) * bound
	}
	return t
}
