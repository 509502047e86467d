// Package physics defines the Burgers problem: the space-time domain,
// collocation point sampling, the PDE residual and the composite training
// loss.
//
// The PDE is the 1-D viscous Burgers equation
//
//	u_t + u·u_x - nu·u_xx = 0
//
// with initial condition u(x, 0) = -sin(πx) and homogeneous Dirichlet
// boundaries u = 0 at both spatial edges.
package physics

import (
	"github.com/pinn-ml/burgers/internal/tensor"
)

// Domain is the rectangular space-time region the PDE is posed on.
// Immutable for the lifetime of a training run.
type Domain struct {
	XMin, XMax float64
	TMin, TMax float64
}

// DefaultDomain returns the canonical Burgers benchmark domain
// [-1, 1] × [0, 1].
func DefaultDomain() Domain {
	return Domain{XMin: -1, XMax: 1, TMin: 0, TMax: 1}
}

// Points is a batch of space-time coordinates stored as N×1 columns.
type Points struct {
	X *tensor.Dense
	T *tensor.Dense
}

// TargetPoints is a batch of coordinates with known field values, used for
// the initial and boundary condition loss terms.
type TargetPoints struct {
	X *tensor.Dense
	T *tensor.Dense
	U *tensor.Dense
}

// CollocationSet holds the three disjoint point groups a training run
// evaluates the loss on: interior (PDE) points and the initial/boundary
// condition points with their targets.
type CollocationSet struct {
	Interior Points
	Initial  TargetPoints
	Boundary TargetPoints
}
