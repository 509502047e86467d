package pinn

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/pinn-ml/burgers/internal/physics"
	"github.com/pinn-ml/burgers/internal/solver"
)

// collocationViewLimit caps the interior points returned by
// CollocationPoints; the full set is large and the view is for plotting.
const collocationViewLimit = 500

// Prediction compares the learned field against the finite-difference
// reference on a uniform grid. All matrices are [nt][nx].
type Prediction struct {
	X     []float64
	T     []float64
	UPred [][]float64
	URef  [][]float64
	Error [][]float64 // |UPred - URef|, pointwise
}

// Predict evaluates the network over an nx×nt grid spanning the given
// ranges, solves the same problem with the reference solver and returns
// both fields plus the pointwise absolute error.
//
// Returns ErrModelNotTrained before any run has started. The reference
// solve uses the viscosity of the current run.
func (s *Service) Predict(xRange, tRange [2]float64, nx, nt int) (*Prediction, error) {
	net, nu, err := s.snapshot()
	if err != nil {
		return nil, err
	}

	x, t, uref, err := solver.Burgers(nx, nt, nu, xRange, tRange)
	if err != nil {
		return nil, err
	}

	xs, ts := flattenGrid(x, t)
	upred := reshape(net.Predict(xs, ts), nt, nx)

	refRows := make([][]float64, nt)
	errRows := make([][]float64, nt)
	for n := 0; n < nt; n++ {
		refRows[n] = make([]float64, nx)
		errRows[n] = make([]float64, nx)
		for i := 0; i < nx; i++ {
			refRows[n][i] = uref.At(n, i)
			errRows[n][i] = math.Abs(upred[n][i] - refRows[n][i])
		}
	}

	return &Prediction{X: x, T: t, UPred: upred, URef: refRows, Error: errRows}, nil
}

// ResidualField is the PDE residual of the learned field over a uniform
// n×n grid on the training domain.
type ResidualField struct {
	X         []float64
	T         []float64
	Residuals [][]float64 // [n][n], rows indexed by time
}

// Residuals evaluates the PDE residual on an n×n grid over the training
// domain. Returns ErrModelNotTrained before any run has started.
func (s *Service) Residuals(n int) (*ResidualField, error) {
	net, nu, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	if n < 2 {
		return nil, fmt.Errorf("pinn: residual grid needs at least 2 points per axis, got %d", n)
	}

	x, t := s.domainGrids(n, n)
	xs, ts := flattenGrid(x, t)
	r := physics.ResidualAt(net, xs, ts, nu)

	return &ResidualField{X: x, T: t, Residuals: reshape(r, n, n)}, nil
}

// DerivativeField holds the learned field and its derivatives over a
// uniform grid, for visualization. All matrices are [nt][nx].
type DerivativeField struct {
	X   []float64
	T   []float64
	U   [][]float64
	Ux  [][]float64
	Ut  [][]float64
	Uxx [][]float64
}

// Derivatives evaluates u, u_x, u_t and u_xx on an nx×nt grid over the
// training domain. Returns ErrModelNotTrained before any run has started.
func (s *Service) Derivatives(nx, nt int) (*DerivativeField, error) {
	net, _, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	if nx < 2 || nt < 2 {
		return nil, fmt.Errorf("pinn: derivative grid needs at least 2 points per axis, got nx=%d nt=%d", nx, nt)
	}

	x, t := s.domainGrids(nx, nt)
	xs, ts := flattenGrid(x, t)
	f := physics.FieldDerivatives(net, xs, ts)

	return &DerivativeField{
		X:   x,
		T:   t,
		U:   reshape(f.U, nt, nx),
		Ux:  reshape(f.Ux, nt, nx),
		Ut:  reshape(f.Ut, nt, nx),
		Uxx: reshape(f.Uxx, nt, nx),
	}, nil
}

// PointList is a flat coordinate list for plotting.
type PointList struct {
	X []float64
	T []float64
}

// CollocationView exposes the training points of the current run. Interior
// points are capped at 500; condition points are returned in full.
type CollocationView struct {
	PDE PointList
	IC  PointList
	BC  PointList
}

// CollocationPoints returns the collocation points generated for the
// current (or last) run. Returns ErrNoTrainingData before any run.
func (s *Service) CollocationPoints() (*CollocationView, error) {
	s.mu.Lock()
	data := s.data
	s.mu.Unlock()

	if data == nil {
		return nil, ErrNoTrainingData
	}

	return &CollocationView{
		PDE: PointList{
			X: truncated(data.Interior.X.Data(), collocationViewLimit),
			T: truncated(data.Interior.T.Data(), collocationViewLimit),
		},
		IC: PointList{
			X: copied(data.Initial.X.Data()),
			T: copied(data.Initial.T.Data()),
		},
		BC: PointList{
			X: copied(data.Boundary.X.Data()),
			T: copied(data.Boundary.T.Data()),
		},
	}, nil
}

// domainGrids builds uniform grids spanning the training domain.
func (s *Service) domainGrids(nx, nt int) ([]float64, []float64) {
	x := make([]float64, nx)
	t := make([]float64, nt)
	floats.Span(x, s.domain.XMin, s.domain.XMax)
	floats.Span(t, s.domain.TMin, s.domain.TMax)
	return x, t
}

// flattenGrid expands grid axes into flat coordinate lists, time-major:
// sample n*len(x)+i sits at (x[i], t[n]).
func flattenGrid(x, t []float64) ([]float64, []float64) {
	xs := make([]float64, 0, len(x)*len(t))
	ts := make([]float64, 0, len(x)*len(t))
	for _, tv := range t {
		for _, xv := range x {
			xs = append(xs, xv)
			ts = append(ts, tv)
		}
	}
	return xs, ts
}

// reshape splits a flat time-major list into rows×cols nested slices.
func reshape(flat []float64, rows, cols int) [][]float64 {
	out := make([][]float64, rows)
	for r := 0; r < rows; r++ {
		out[r] = make([]float64, cols)
		copy(out[r], flat[r*cols:(r+1)*cols])
	}
	return out
}

// truncated copies at most n leading values.
func truncated(s []float64, n int) []float64 {
	if n > len(s) {
		n = len(s)
	}
	out := make([]float64, n)
	copy(out, s[:n])
	return out
}

func copied(s []float64) []float64 {
	return truncated(s, len(s))
}
