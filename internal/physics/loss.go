package physics

import (
	"github.com/pinn-ml/burgers/internal/autodiff"
	"github.com/pinn-ml/burgers/internal/nn"
)

// Losses holds the scalar loss components of one training step.
type Losses struct {
	Total float64
	PDE   float64
	IC    float64
	BC    float64
}

// Loss composes the training objective over a collocation set:
//
//	pde   = mean(r²) over the interior points
//	ic    = mean((u(x, t_min) - u_ic)²)
//	bc    = mean((u(x_edge, t))²)
//	total = pde + ic + bc
//
// The terms are summed unweighted. The returned variable is the total loss
// for backpropagation; the Losses struct carries the detached component
// values for diagnostics and history.
func Loss(net *nn.Network, set CollocationSet, nu float64) (*autodiff.Variable, Losses) {
	xp := autodiff.Leaf(set.Interior.X)
	tp := autodiff.Leaf(set.Interior.T)
	r := Residual(net, xp, tp, nu)
	pde := autodiff.Mean(autodiff.Mul(r, r))

	ic := mse(net, set.Initial)
	bc := mse(net, set.Boundary)

	total := autodiff.Add(autodiff.Add(pde, ic), bc)

	return total, Losses{
		Total: total.Value().At(0, 0),
		PDE:   pde.Value().At(0, 0),
		IC:    ic.Value().At(0, 0),
		BC:    bc.Value().At(0, 0),
	}
}

// mse is the mean squared error between the network prediction and the
// condition targets.
func mse(net *nn.Network, pts TargetPoints) *autodiff.Variable {
	pred := net.Forward(autodiff.Constant(pts.X), autodiff.Constant(pts.T))
	diff := autodiff.Sub(pred, autodiff.Constant(pts.U))
	return autodiff.Mean(autodiff.Mul(diff, diff))
}
