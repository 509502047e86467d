package tensor

import (
	"math/rand"
	"testing"
)

func TestNewDense(t *testing.T) {
	m := NewDense(2, 3)
	if m.Rows() != 2 || m.Cols() != 3 {
		t.Fatalf("shape = %dx%d, want 2x3", m.Rows(), m.Cols())
	}
	for _, v := range m.Data() {
		if v != 0 {
			t.Fatalf("NewDense not zero-filled: %v", m.Data())
		}
	}
}

func TestNewDense_EmptyBatch(t *testing.T) {
	m := NewDense(0, 1)
	if m.Rows() != 0 || len(m.Data()) != 0 {
		t.Fatalf("empty batch: rows=%d len=%d", m.Rows(), len(m.Data()))
	}
}

func TestFromSlice(t *testing.T) {
	m, err := FromSlice([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
	if err != nil {
		t.Fatalf("FromSlice: %v", err)
	}
	if got := m.At(1, 2); got != 6 {
		t.Errorf("At(1,2) = %v, want 6", got)
	}

	if _, err := FromSlice([]float64{1, 2, 3}, 2, 3); err == nil {
		t.Error("FromSlice with mismatched length: want error")
	}
}

func TestSetAt(t *testing.T) {
	m := NewDense(2, 2)
	m.Set(0, 1, 7)
	if got := m.At(0, 1); got != 7 {
		t.Errorf("At(0,1) = %v, want 7", got)
	}
}

func TestClone_Independent(t *testing.T) {
	m := Full(2, 2, 1)
	c := m.Clone()
	c.Set(0, 0, 9)
	if m.At(0, 0) != 1 {
		t.Error("Clone shares storage with original")
	}
}

func TestMatMul(t *testing.T) {
	a, _ := FromSlice([]float64{1, 2, 3, 4}, 2, 2)
	b, _ := FromSlice([]float64{5, 6, 7, 8}, 2, 2)
	got := MatMul(a, b)

	want := []float64{19, 22, 43, 50}
	for i, v := range got.Data() {
		if v != want[i] {
			t.Fatalf("MatMul = %v, want %v", got.Data(), want)
		}
	}
}

func TestTranspose(t *testing.T) {
	a, _ := FromSlice([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
	got := Transpose(a)
	if got.Rows() != 3 || got.Cols() != 2 {
		t.Fatalf("Transpose shape = %dx%d, want 3x2", got.Rows(), got.Cols())
	}
	if got.At(2, 1) != 6 || got.At(0, 1) != 4 {
		t.Errorf("Transpose values wrong: %v", got.Data())
	}
}

func TestCatNarrowPad_Roundtrip(t *testing.T) {
	a, _ := FromSlice([]float64{1, 2}, 2, 1)
	b, _ := FromSlice([]float64{3, 4}, 2, 1)

	cat := Cat(a, b)
	if cat.Cols() != 2 {
		t.Fatalf("Cat cols = %d, want 2", cat.Cols())
	}
	if cat.At(0, 1) != 3 || cat.At(1, 0) != 2 {
		t.Errorf("Cat layout wrong: %v", cat.Data())
	}

	left := Narrow(cat, 0, 1)
	for i := range left.Data() {
		if left.Data()[i] != a.Data()[i] {
			t.Fatalf("Narrow left = %v, want %v", left.Data(), a.Data())
		}
	}

	padded := Pad(b, 2, 1)
	if padded.At(0, 0) != 0 || padded.At(0, 1) != 3 {
		t.Errorf("Pad layout wrong: %v", padded.Data())
	}
}

func TestBroadcastSumRows(t *testing.T) {
	row, _ := FromSlice([]float64{1, 2}, 1, 2)
	m := Broadcast(row, 3, 2)
	if m.At(2, 1) != 2 {
		t.Errorf("Broadcast row: %v", m.Data())
	}

	back := SumRows(m)
	if back.At(0, 0) != 3 || back.At(0, 1) != 6 {
		t.Errorf("SumRows = %v, want [3 6]", back.Data())
	}

	scalar := Full(1, 1, 2.5)
	s := Broadcast(scalar, 2, 2)
	for _, v := range s.Data() {
		if v != 2.5 {
			t.Fatalf("Broadcast scalar: %v", s.Data())
		}
	}
}

func TestUniform_Bounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	m := Uniform(100, 1, -2, 3, rng)
	for _, v := range m.Data() {
		if v < -2 || v >= 3 {
			t.Fatalf("Uniform value %v outside [-2, 3)", v)
		}
	}
}

func TestMatMul_ShapeMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MatMul with mismatched shapes: want panic")
		}
	}()
	MatMul(NewDense(2, 3), NewDense(2, 3))
}
