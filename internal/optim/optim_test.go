package optim

import (
	"math"
	"testing"

	"github.com/pinn-ml/burgers/internal/autodiff"
	"github.com/pinn-ml/burgers/internal/nn"
	"github.com/pinn-ml/burgers/internal/tensor"
)

// newParam returns a 1x1 parameter holding v.
func newParam(v float64) *nn.Parameter {
	return nn.NewParameter("p", tensor.Full(1, 1, v))
}

// fillGrad runs a backward pass that deposits a gradient of 1 on every
// element of the parameter.
func fillGrad(p *nn.Parameter) {
	autodiff.Backward(autodiff.SumAll(p.Variable()))
}

func TestSGD_Step(t *testing.T) {
	p := newParam(2.0)
	opt := NewSGD([]*nn.Parameter{p}, SGDConfig{LR: 0.1})

	fillGrad(p)
	opt.Step()

	if got := p.Data()[0]; math.Abs(got-1.9) > 1e-12 {
		t.Errorf("after step: %v, want 1.9", got)
	}
}

func TestSGD_Momentum(t *testing.T) {
	p := newParam(2.0)
	opt := NewSGD([]*nn.Parameter{p}, SGDConfig{LR: 0.1, Momentum: 0.9})

	// Step 1: velocity = 1, param = 2 - 0.1 = 1.9.
	fillGrad(p)
	opt.Step()
	if got := p.Data()[0]; math.Abs(got-1.9) > 1e-12 {
		t.Fatalf("after step 1: %v, want 1.9", got)
	}

	// Step 2: velocity = 0.9 + 1 = 1.9, param = 1.9 - 0.19 = 1.71.
	opt.ZeroGrad()
	fillGrad(p)
	opt.Step()
	if got := p.Data()[0]; math.Abs(got-1.71) > 1e-12 {
		t.Errorf("after step 2: %v, want 1.71", got)
	}
}

func TestSGD_DefaultLR(t *testing.T) {
	opt := NewSGD(nil, SGDConfig{})
	if got := opt.LR(); got != 0.01 {
		t.Errorf("default LR = %v, want 0.01", got)
	}
}

func TestAdam_FirstStep(t *testing.T) {
	p := newParam(2.0)
	opt := NewAdam([]*nn.Parameter{p}, AdamConfig{})

	fillGrad(p)
	opt.Step()

	// With bias correction the first step moves by almost exactly lr.
	if got := p.Data()[0]; math.Abs(got-1.999) > 1e-6 {
		t.Errorf("after first step: %v, want ≈1.999", got)
	}
	if opt.Timestep() != 1 {
		t.Errorf("Timestep = %d, want 1", opt.Timestep())
	}
}

func TestAdam_Defaults(t *testing.T) {
	opt := NewAdam(nil, AdamConfig{})
	if got := opt.LR(); got != 0.001 {
		t.Errorf("default LR = %v, want 0.001", got)
	}
	opt.SetLR(0.01)
	if got := opt.LR(); got != 0.01 {
		t.Errorf("SetLR: %v, want 0.01", got)
	}
}

func TestStep_SkipsParamsWithoutGrad(t *testing.T) {
	trained := newParam(2.0)
	untouched := newParam(5.0)

	opt := NewAdam([]*nn.Parameter{trained, untouched}, AdamConfig{})
	fillGrad(trained)
	opt.Step()

	if got := untouched.Data()[0]; got != 5.0 {
		t.Errorf("parameter without gradient moved to %v", got)
	}
	if got := trained.Data()[0]; got == 2.0 {
		t.Error("parameter with gradient did not move")
	}
}

func TestZeroGrad(t *testing.T) {
	p := newParam(1.0)
	opt := NewSGD([]*nn.Parameter{p}, SGDConfig{})

	fillGrad(p)
	if p.Grad() == nil {
		t.Fatal("expected gradient before ZeroGrad")
	}
	opt.ZeroGrad()
	if p.Grad() != nil {
		t.Error("gradient survived ZeroGrad")
	}
}

// Both optimizers descend a simple quadratic: loss = mean((w - 3)²).
func TestOptimizers_ConvergeOnQuadratic(t *testing.T) {
	optimizers := map[string]func(*nn.Parameter) Optimizer{
		"sgd":  func(p *nn.Parameter) Optimizer { return NewSGD([]*nn.Parameter{p}, SGDConfig{LR: 0.1}) },
		"adam": func(p *nn.Parameter) Optimizer { return NewAdam([]*nn.Parameter{p}, AdamConfig{LR: 0.1}) },
	}

	for name, build := range optimizers {
		t.Run(name, func(t *testing.T) {
			p := newParam(0.0)
			opt := build(p)
			target := autodiff.Constant(tensor.Full(1, 1, 3.0))

			for i := 0; i < 200; i++ {
				opt.ZeroGrad()
				diff := autodiff.Sub(p.Variable(), target)
				loss := autodiff.Mean(autodiff.Mul(diff, diff))
				autodiff.Backward(loss)
				opt.Step()
			}

			if got := p.Data()[0]; math.Abs(got-3.0) > 0.05 {
				t.Errorf("converged to %v, want ≈3", got)
			}
		})
	}
}
