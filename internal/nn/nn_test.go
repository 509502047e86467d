package nn

import (
	"math"
	"testing"

	"github.com/pinn-ml/burgers/internal/autodiff"
	"github.com/pinn-ml/burgers/internal/tensor"
)

func TestNewNetwork_Validation(t *testing.T) {
	if _, err := NewNetwork(nil, "tanh"); err == nil {
		t.Error("empty hidden layers: want error")
	}
	if _, err := NewNetwork([]int{}, "tanh"); err == nil {
		t.Error("zero-length hidden layers: want error")
	}
	if _, err := NewNetwork([]int{16, 0, 16}, "tanh"); err == nil {
		t.Error("zero-width hidden layer: want error")
	}
	if _, err := NewNetwork([]int{16, -3}, "tanh"); err == nil {
		t.Error("negative hidden layer width: want error")
	}
}

func TestNewNetwork_LayerCount(t *testing.T) {
	net, err := NewNetwork([]int{8, 8, 8}, "tanh")
	if err != nil {
		t.Fatal(err)
	}
	// 3 hidden + 1 output affine layers, each with weight and bias.
	if got := net.NumLayers(); got != 4 {
		t.Errorf("NumLayers = %d, want 4", got)
	}
	if got := len(net.Parameters()); got != 8 {
		t.Errorf("len(Parameters) = %d, want 8", got)
	}
}

func TestNetwork_ForwardShape(t *testing.T) {
	net, err := NewNetwork([]int{4}, "tanh")
	if err != nil {
		t.Fatal(err)
	}

	x := autodiff.Constant(tensor.FromColumn([]float64{-1, 0, 1}))
	tv := autodiff.Constant(tensor.FromColumn([]float64{0, 0.5, 1}))
	u := net.Forward(x, tv)

	if u.Value().Rows() != 3 || u.Value().Cols() != 1 {
		t.Errorf("Forward shape = %dx%d, want 3x1", u.Value().Rows(), u.Value().Cols())
	}
}

func TestNetwork_PredictMatchesForward(t *testing.T) {
	net, err := NewNetwork([]int{6, 6}, "tanh")
	if err != nil {
		t.Fatal(err)
	}

	xs := []float64{-0.5, 0.25, 0.9}
	ts := []float64{0.1, 0.4, 0.7}

	x := autodiff.Constant(tensor.FromColumn(xs))
	tv := autodiff.Constant(tensor.FromColumn(ts))
	forward := net.Forward(x, tv).Value().Data()

	predict := net.Predict(xs, ts)
	for i := range xs {
		if predict[i] != forward[i] {
			t.Fatalf("Predict[%d] = %v, Forward = %v", i, predict[i], forward[i])
		}
	}
}

func TestActivationByName(t *testing.T) {
	in := autodiff.Constant(tensor.Full(1, 1, -0.5))

	if got := ActivationByName("relu")(in).Value().At(0, 0); got != 0 {
		t.Errorf("relu(-0.5) = %v, want 0", got)
	}
	if got := ActivationByName("tanh")(in).Value().At(0, 0); math.Abs(got-math.Tanh(-0.5)) > 1e-12 {
		t.Errorf("tanh(-0.5) = %v", got)
	}

	// Unknown names fall back to tanh.
	got := ActivationByName("swish")(in).Value().At(0, 0)
	if math.Abs(got-math.Tanh(-0.5)) > 1e-12 {
		t.Errorf("unknown activation did not fall back to tanh: %v", got)
	}
}

func TestLinear_KnownValues(t *testing.T) {
	layer := NewLinear(2, 1)
	copy(layer.Weight().Data(), []float64{2, 3})
	copy(layer.Bias().Data(), []float64{1})

	in, _ := tensor.FromSlice([]float64{1, 1, 2, -1}, 2, 2)
	out := layer.Forward(autodiff.Constant(in)).Value()

	// Row 0: 2*1 + 3*1 + 1 = 6. Row 1: 2*2 + 3*(-1) + 1 = 2.
	if out.At(0, 0) != 6 || out.At(1, 0) != 2 {
		t.Errorf("Forward = %v, want [6 2]", out.Data())
	}
}

func TestLinear_BiasStartsZero(t *testing.T) {
	layer := NewLinear(3, 2)
	for _, v := range layer.Bias().Data() {
		if v != 0 {
			t.Fatalf("bias not zero-initialized: %v", layer.Bias().Data())
		}
	}
}

func TestNetwork_GradientsReachAllParameters(t *testing.T) {
	net, err := NewNetwork([]int{4, 4}, "tanh")
	if err != nil {
		t.Fatal(err)
	}

	x := autodiff.Constant(tensor.FromColumn([]float64{0.2, -0.7}))
	tv := autodiff.Constant(tensor.FromColumn([]float64{0.3, 0.8}))
	loss := autodiff.Mean(net.Forward(x, tv))
	autodiff.Backward(loss)

	for i, p := range net.Parameters() {
		if p.Grad() == nil {
			t.Errorf("parameter %d (%s) has no gradient after backward", i, p.Name())
		}
	}
}

func TestXavier_Bounds(t *testing.T) {
	w := Xavier(10, 10, 10, 10)
	limit := math.Sqrt(6.0 / 20.0)
	for _, v := range w.Data() {
		if v < -limit || v > limit {
			t.Fatalf("Xavier value %v outside ±%v", v, limit)
		}
	}
}
