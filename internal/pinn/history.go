package pinn

import (
	"sync"

	"github.com/pinn-ml/burgers/internal/physics"
)

// LossSeries is a snapshot of the four loss sequences, oldest first.
type LossSeries struct {
	Total []float64
	PDE   []float64
	IC    []float64
	BC    []float64
}

// History records one Losses entry per completed training step. Appends
// come from the training worker only; snapshots may be taken concurrently
// from any goroutine. Storage grows monotonically and is never truncated;
// readers ask for a suffix.
type History struct {
	mu    sync.Mutex
	total []float64
	pde   []float64
	ic    []float64
	bc    []float64
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{}
}

// Append records the losses of one completed step.
func (h *History) Append(l physics.Losses) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.total = append(h.total, l.Total)
	h.pde = append(h.pde, l.PDE)
	h.ic = append(h.ic, l.IC)
	h.bc = append(h.bc, l.BC)
}

// Len returns the number of recorded steps.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.total)
}

// Recent returns copies of the most recent n entries of each series (all
// entries if fewer exist). Series are empty but non-nil when nothing has
// been recorded.
func (h *History) Recent(n int) LossSeries {
	h.mu.Lock()
	defer h.mu.Unlock()

	return LossSeries{
		Total: suffix(h.total, n),
		PDE:   suffix(h.pde, n),
		IC:    suffix(h.ic, n),
		BC:    suffix(h.bc, n),
	}
}

func suffix(s []float64, n int) []float64 {
	if n > len(s) {
		n = len(s)
	}
	out := make([]float64, n)
	copy(out, s[len(s)-n:])
	return out
}
