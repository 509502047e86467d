package optim

import (
	"github.com/pinn-ml/burgers/internal/nn"
)

// SGD implements stochastic gradient descent with optional momentum.
//
// Update rule (momentum > 0):
//
//	velocity = momentum * velocity + g
//	param    = param - lr * velocity
type SGD struct {
	params   []*nn.Parameter
	lr       float64
	momentum float64
	velocity map[*nn.Parameter][]float64
}

// SGDConfig holds SGD hyperparameters. A zero LR selects the default 0.01;
// momentum defaults to 0 (plain gradient descent).
type SGDConfig struct {
	LR       float64
	Momentum float64
}

// NewSGD creates an SGD optimizer over the given parameters.
func NewSGD(params []*nn.Parameter, config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}

	return &SGD{
		params:   params,
		lr:       config.LR,
		momentum: config.Momentum,
		velocity: make(map[*nn.Parameter][]float64),
	}
}

// Step performs a single SGD update on all parameters with gradients.
func (s *SGD) Step() {
	for _, param := range s.params {
		grad := param.Grad()
		if grad == nil {
			continue
		}

		data := param.Data()
		gradData := grad.Data()

		if s.momentum == 0 {
			for i := range data {
				data[i] -= s.lr * gradData[i]
			}
			continue
		}

		vel, ok := s.velocity[param]
		if !ok {
			vel = make([]float64, len(data))
			s.velocity[param] = vel
		}
		for i := range data {
			vel[i] = s.momentum*vel[i] + gradData[i]
			data[i] -= s.lr * vel[i]
		}
	}
}

// ZeroGrad clears gradients for all parameters.
func (s *SGD) ZeroGrad() {
	for _, param := range s.params {
		param.ZeroGrad()
	}
}

// LR returns the current learning rate.
func (s *SGD) LR() float64 { return s.lr }
