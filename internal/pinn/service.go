// Package pinn implements the training service for the Burgers
// physics-informed neural network: a single-run state machine driving an
// asynchronous training worker, plus the inference and diagnostic queries
// consumed by an external transport layer.
package pinn

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/pinn-ml/burgers/internal/autodiff"
	"github.com/pinn-ml/burgers/internal/nn"
	"github.com/pinn-ml/burgers/internal/optim"
	"github.com/pinn-ml/burgers/internal/physics"
)

// State is the trainer lifecycle state.
type State int

const (
	// StateIdle means no training run is active.
	StateIdle State = iota
	// StateRunning means a worker is executing training steps.
	StateRunning
	// StateStopping means cancellation was requested; the worker stops at
	// the next step boundary.
	StateStopping
)

// Fixed collocation counts for every training run.
const (
	numInterior = 2000
	numInitial  = 100
	numBoundary = 100
)

// statusWindow is the maximum number of entries per loss series a Status
// snapshot carries.
const statusWindow = 100

// Config holds the hyperparameters of one training run. Zero values for
// HiddenLayers and LR select the defaults ([32, 32, 32] and 0.001); Epochs
// and Nu are taken as given (zero epochs is a valid empty run, zero
// viscosity is the inviscid equation).
type Config struct {
	Epochs       int
	Nu           float64
	HiddenLayers []int
	LR           float64
	Activation   string // tanh, relu or sigmoid; unknown falls back to tanh
	Optimizer    string // "adam" (default) or "sgd"
}

// Service owns the training state: the live network, the collocation set
// of the current run, the loss history and the lifecycle state machine.
// One Service supports one active run at a time; queries are safe to call
// concurrently with a run.
type Service struct {
	mu      sync.Mutex
	state   State
	epoch   int
	net     *nn.Network
	data    *physics.CollocationSet
	nu      float64
	domain  physics.Domain
	history *History
}

// New creates an idle service on the default domain [-1, 1] × [0, 1].
func New() *Service {
	return &Service{
		domain:  physics.DefaultDomain(),
		history: NewHistory(),
	}
}

// StartTraining constructs a fresh network and optimizer, draws a new
// collocation set and launches the training worker. It does not block:
// the caller observes progress through Status.
//
// Returns ErrAlreadyRunning if a run is active, or a construction error
// for malformed hyperparameters (e.g. an empty hidden layer list is
// rejected by the network constructor).
func (s *Service) StartTraining(cfg Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateIdle {
		return ErrAlreadyRunning
	}

	if cfg.HiddenLayers == nil {
		cfg.HiddenLayers = []int{32, 32, 32}
	}
	if cfg.LR == 0 {
		cfg.LR = 0.001
	}

	net, err := nn.NewNetwork(cfg.HiddenLayers, cfg.Activation)
	if err != nil {
		return fmt.Errorf("pinn: start training: %w", err)
	}

	var opt optim.Optimizer
	switch cfg.Optimizer {
	case "sgd":
		opt = optim.NewSGD(net.Parameters(), optim.SGDConfig{LR: cfg.LR})
	default:
		opt = optim.NewAdam(net.Parameters(), optim.AdamConfig{LR: cfg.LR})
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	data := physics.Generate(s.domain, numInterior, numInitial, numBoundary, rng)

	s.net = net
	s.data = &data
	s.nu = cfg.Nu
	s.epoch = 0
	s.history = NewHistory()
	s.state = StateRunning

	go s.train(net, data, opt, cfg.Epochs, cfg.Nu)
	return nil
}

// train is the worker loop. It is the only writer of network parameters,
// the epoch counter and the history while running.
func (s *Service) train(net *nn.Network, data physics.CollocationSet, opt optim.Optimizer, epochs int, nu float64) {
	for epoch := 0; epoch < epochs; epoch++ {
		if s.stopRequested() {
			break
		}

		opt.ZeroGrad()
		total, losses := physics.Loss(net, data, nu)
		autodiff.Backward(total)
		opt.Step()

		s.mu.Lock()
		s.epoch = epoch + 1
		s.mu.Unlock()
		s.history.Append(losses)
	}

	s.mu.Lock()
	s.state = StateIdle
	s.mu.Unlock()
}

// stopRequested reports whether cancellation was observed at this step
// boundary.
func (s *Service) stopRequested() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == StateStopping
}

// RequestStop asks the worker to stop at the next step boundary. Idempotent
// and always safe: a no-op when nothing is running. Worst-case latency to
// honor the request is one full training step.
func (s *Service) RequestStop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateRunning {
		s.state = StateStopping
	}
}

// Status is a point-in-time view of the trainer.
type Status struct {
	IsTraining   bool
	CurrentEpoch int
	Losses       LossSeries // at most 100 most recent entries per series
}

// Status reports the current training state. Always safe to call; before
// any run it reports idle with empty loss series.
func (s *Service) Status() Status {
	s.mu.Lock()
	st := Status{
		IsTraining:   s.state != StateIdle,
		CurrentEpoch: s.epoch,
	}
	history := s.history
	s.mu.Unlock()

	st.Losses = history.Recent(statusWindow)
	return st
}

// snapshot returns the live network and viscosity, or ErrModelNotTrained
// when no run has ever started. The returned network may be mid-update by
// the worker; readers get some consistent-enough recent parameter state,
// which is all the diagnostics need.
func (s *Service) snapshot() (*nn.Network, float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.net == nil {
		return nil, 0, ErrModelNotTrained
	}
	return s.net, s.nu, nil
}
