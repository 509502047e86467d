// Copyright 2025 The Burgers PINN Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package pinn provides the public API of the Burgers PINN training
// service: start/stop/status control of an asynchronous training run plus
// inference and diagnostic queries over the learned field.
//
// This is the surface an external transport layer (HTTP or otherwise)
// calls into; the package itself knows nothing about transports.
//
// Example:
//
//	svc := pinn.New()
//	if err := svc.StartTraining(pinn.Config{Epochs: 1000, Nu: 0.01}); err != nil {
//	    // pinn.ErrAlreadyRunning, or a hyperparameter construction error
//	}
//	st := svc.Status() // poll progress; training runs in the background
package pinn

import (
	"github.com/pinn-ml/burgers/internal/pinn"
)

// Service owns the training state machine and the live model.
type Service = pinn.Service

// New creates an idle service on the default domain [-1, 1] × [0, 1].
func New() *Service {
	return pinn.New()
}

// Config holds the hyperparameters of one training run.
type Config = pinn.Config

// Status is a point-in-time view of the trainer.
type Status = pinn.Status

// LossSeries is a snapshot of the four loss sequences, oldest first.
type LossSeries = pinn.LossSeries

// State is the trainer lifecycle state.
type State = pinn.State

// Trainer lifecycle states.
const (
	StateIdle     = pinn.StateIdle
	StateRunning  = pinn.StateRunning
	StateStopping = pinn.StateStopping
)

// Query results.
type (
	// Prediction compares the learned field against the reference solver.
	Prediction = pinn.Prediction
	// ResidualField is the PDE residual over a query grid.
	ResidualField = pinn.ResidualField
	// DerivativeField is the learned field and its derivatives over a grid.
	DerivativeField = pinn.DerivativeField
	// CollocationView exposes the training points of the current run.
	CollocationView = pinn.CollocationView
	// PointList is a flat coordinate list for plotting.
	PointList = pinn.PointList
)

// Expected error conditions.
var (
	// ErrAlreadyRunning is returned by StartTraining while a run is active.
	ErrAlreadyRunning = pinn.ErrAlreadyRunning
	// ErrModelNotTrained is returned by queries before any training run.
	ErrModelNotTrained = pinn.ErrModelNotTrained
	// ErrNoTrainingData is returned by the collocation query before any run.
	ErrNoTrainingData = pinn.ErrNoTrainingData
)
