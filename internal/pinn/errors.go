package pinn

import "errors"

// Expected, recoverable conditions surfaced to the caller. Numerical
// issues (NaN/Inf losses from unstable parameters) are not errors; they
// propagate as ordinary values.
var (
	// ErrAlreadyRunning is returned by StartTraining while a run is active.
	ErrAlreadyRunning = errors.New("pinn: training already in progress")

	// ErrModelNotTrained is returned by inference and diagnostic queries
	// before any training run has started.
	ErrModelNotTrained = errors.New("pinn: model not trained yet")

	// ErrNoTrainingData is returned by the collocation query before any
	// training run has generated points.
	ErrNoTrainingData = errors.New("pinn: no training data available")
)
