// Command burgers trains the Burgers PINN from the command line and
// reports how the learned field compares against the finite-difference
// reference solver.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pinn-ml/burgers/pinn"
)

func main() {
	var (
		epochs     = flag.Int("epochs", 1000, "number of training steps")
		nu         = flag.Float64("nu", 0.01, "viscosity coefficient")
		lr         = flag.Float64("lr", 0.001, "learning rate")
		hidden     = flag.String("hidden", "32,32,32", "comma-separated hidden layer widths")
		activation = flag.String("activation", "tanh", "activation: tanh, relu or sigmoid")
		optimizer  = flag.String("optimizer", "adam", "optimizer: adam or sgd")
		grid       = flag.Int("grid", 50, "validation grid points per axis")
	)
	flag.Parse()

	layers, err := parseLayers(*hidden)
	if err != nil {
		fmt.Fprintln(os.Stderr, "burgers:", err)
		os.Exit(2)
	}

	svc := pinn.New()
	cfg := pinn.Config{
		Epochs:       *epochs,
		Nu:           *nu,
		HiddenLayers: layers,
		LR:           *lr,
		Activation:   *activation,
		Optimizer:    *optimizer,
	}

	fmt.Printf("training: epochs=%d nu=%g lr=%g hidden=%v activation=%s\n",
		cfg.Epochs, cfg.Nu, cfg.LR, cfg.HiddenLayers, cfg.Activation)

	if err := svc.StartTraining(cfg); err != nil {
		fmt.Fprintln(os.Stderr, "burgers:", err)
		os.Exit(1)
	}

	for {
		st := svc.Status()
		if n := len(st.Losses.Total); n > 0 {
			fmt.Printf("epoch %5d  total=%.6f pde=%.6f ic=%.6f bc=%.6f\n",
				st.CurrentEpoch,
				st.Losses.Total[n-1], st.Losses.PDE[n-1],
				st.Losses.IC[n-1], st.Losses.BC[n-1])
		}
		if !st.IsTraining {
			break
		}
		time.Sleep(500 * time.Millisecond)
	}

	pred, err := svc.Predict([2]float64{-1, 1}, [2]float64{0, 1}, *grid, *grid)
	if err != nil {
		fmt.Fprintln(os.Stderr, "burgers:", err)
		os.Exit(1)
	}

	var maxErr, sumErr float64
	var count int
	for _, row := range pred.Error {
		for _, e := range row {
			if e > maxErr {
				maxErr = e
			}
			sumErr += e
			count++
		}
	}
	fmt.Printf("validation vs finite differences on %dx%d grid: max |err|=%.6f mean |err|=%.6f\n",
		*grid, *grid, maxErr, sumErr/float64(count))
}

func parseLayers(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	layers := make([]int, 0, len(parts))
	for _, p := range parts {
		w, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid hidden layer width %q", p)
		}
		layers = append(layers, w)
	}
	return layers, nil
}
