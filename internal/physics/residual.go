package physics

import (
	"github.com/pinn-ml/burgers/internal/autodiff"
	"github.com/pinn-ml/burgers/internal/nn"
	"github.com/pinn-ml/burgers/internal/tensor"
)

// Residual assembles the Burgers residual r = u_t + u·u_x - nu·u_xx for a
// batch of collocation points.
//
// x and t must be gradient-tracked leaves of matching N×1 shape. All
// derivatives are taken with graph retention, so the returned residual can
// be backpropagated through into the network parameters, and every value
// is per-sample independent: permuting the batch permutes the residuals.
func Residual(net *nn.Network, x, t *autodiff.Variable, nu float64) *autodiff.Variable {
	u := net.Forward(x, t)

	first := autodiff.Grad(u, x, t)
	ux, ut := first[0], first[1]
	uxx := autodiff.Grad(ux, x)[0]

	advection := autodiff.Mul(u, ux)
	diffusion := autodiff.Scale(uxx, nu)
	return autodiff.Sub(autodiff.Add(ut, advection), diffusion)
}

// ResidualAt evaluates the residual for coordinate slices and returns the
// per-sample values.
func ResidualAt(net *nn.Network, xs, ts []float64, nu float64) []float64 {
	x := autodiff.Leaf(tensor.FromColumn(xs))
	t := autodiff.Leaf(tensor.FromColumn(ts))
	r := Residual(net, x, t, nu)

	out := make([]float64, len(xs))
	copy(out, r.Value().Data())
	return out
}

// Field holds the network output and its derivatives over a query batch.
type Field struct {
	U, Ux, Ut, Uxx []float64
}

// FieldDerivatives evaluates u and its first and second derivatives at the
// given coordinates. This is a read-only diagnostic, but it still requires
// gradient tracking on the inputs; tracking is a capability of the
// network, not a mutation of it.
func FieldDerivatives(net *nn.Network, xs, ts []float64) Field {
	x := autodiff.Leaf(tensor.FromColumn(xs))
	t := autodiff.Leaf(tensor.FromColumn(ts))

	u := net.Forward(x, t)
	first := autodiff.Grad(u, x, t)
	ux, ut := first[0], first[1]
	uxx := autodiff.Grad(ux, x)[0]

	f := Field{
		U:   make([]float64, len(xs)),
		Ux:  make([]float64, len(xs)),
		Ut:  make([]float64, len(xs)),
		Uxx: make([]float64, len(xs)),
	}
	copy(f.U, u.Value().Data())
	copy(f.Ux, ux.Value().Data())
	copy(f.Ut, ut.Value().Data())
	copy(f.Uxx, uxx.Value().Data())
	return f
}
