package pinn_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pinn-ml/burgers/pinn"
)

func TestServiceLifecycle(t *testing.T) {
	svc := pinn.New()

	st := svc.Status()
	assert.False(t, st.IsTraining)

	_, err := svc.Predict([2]float64{-1, 1}, [2]float64{0, 1}, 5, 5)
	assert.ErrorIs(t, err, pinn.ErrModelNotTrained)
	_, err = svc.CollocationPoints()
	assert.ErrorIs(t, err, pinn.ErrNoTrainingData)

	cfg := pinn.Config{Epochs: 3, Nu: 0.01, HiddenLayers: []int{8}}
	require.NoError(t, svc.StartTraining(cfg))

	require.Eventually(t, func() bool {
		return !svc.Status().IsTraining
	}, 2*time.Minute, 10*time.Millisecond)

	st = svc.Status()
	assert.Equal(t, 3, st.CurrentEpoch)
	assert.Len(t, st.Losses.Total, 3)

	pred, err := svc.Predict([2]float64{-1, 1}, [2]float64{0, 1}, 5, 5)
	require.NoError(t, err)
	assert.Len(t, pred.UPred, 5)
}
