package physics

import (
	"math"
	"math/rand"

	"github.com/pinn-ml/burgers/internal/tensor"
)

// Generate draws a fresh collocation set from the domain:
//
//   - nInterior points uniform in both coordinates,
//   - nInitial points uniform in space at t = TMin with target u = -sin(πx),
//   - nBoundary points uniform in time, floor(n/2) pinned at XMin and the
//     remainder at XMax, all with target u = 0.
//
// Counts must be non-negative; zero produces an empty group.
func Generate(d Domain, nInterior, nInitial, nBoundary int, rng *rand.Rand) CollocationSet {
	set := CollocationSet{
		Interior: Points{
			X: tensor.Uniform(nInterior, 1, d.XMin, d.XMax, rng),
			T: tensor.Uniform(nInterior, 1, d.TMin, d.TMax, rng),
		},
	}

	icX := tensor.Uniform(nInitial, 1, d.XMin, d.XMax, rng)
	set.Initial = TargetPoints{
		X: icX,
		T: tensor.Full(nInitial, 1, d.TMin),
		U: tensor.Apply(icX, func(x float64) float64 {
			return -math.Sin(math.Pi * x)
		}),
	}

	left := nBoundary / 2
	bcX := tensor.NewDense(nBoundary, 1)
	for i := 0; i < nBoundary; i++ {
		if i < left {
			bcX.Set(i, 0, d.XMin)
		} else {
			bcX.Set(i, 0, d.XMax)
		}
	}
	set.Boundary = TargetPoints{
		X: bcX,
		T: tensor.Uniform(nBoundary, 1, d.TMin, d.TMax, rng),
		U: tensor.Zeros(nBoundary, 1),
	}

	return set
}
