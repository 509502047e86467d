package tensor

import "fmt"

// Raw compute kernels. These allocate a fresh result; inputs are never
// modified. Shape mismatches are programmer errors and panic, matching the
// graph layer which validates shapes at construction time.

// Add returns a + b element-wise.
func Add(a, b *Dense) *Dense {
	checkSameShape("Add", a, b)
	out := NewDense(a.rows, a.cols)
	for i := range out.data {
		out.data[i] = a.data[i] + b.data[i]
	}
	return out
}

// Sub returns a - b element-wise.
func Sub(a, b *Dense) *Dense {
	checkSameShape("Sub", a, b)
	out := NewDense(a.rows, a.cols)
	for i := range out.data {
		out.data[i] = a.data[i] - b.data[i]
	}
	return out
}

// Mul returns a * b element-wise (Hadamard product).
func Mul(a, b *Dense) *Dense {
	checkSameShape("Mul", a, b)
	out := NewDense(a.rows, a.cols)
	for i := range out.data {
		out.data[i] = a.data[i] * b.data[i]
	}
	return out
}

// Scale returns a * s.
func Scale(a *Dense, s float64) *Dense {
	out := NewDense(a.rows, a.cols)
	for i := range out.data {
		out.data[i] = a.data[i] * s
	}
	return out
}

// MatMul returns the matrix product a @ b.
func MatMul(a, b *Dense) *Dense {
	if a.cols != b.rows {
		panic(fmt.Sprintf("tensor: MatMul shape mismatch %dx%d @ %dx%d", a.rows, a.cols, b.rows, b.cols))
	}
	out := NewDense(a.rows, b.cols)
	for i := 0; i < a.rows; i++ {
		for k := 0; k < a.cols; k++ {
			aik := a.data[i*a.cols+k]
			if aik == 0 {
				continue
			}
			for j := 0; j < b.cols; j++ {
				out.data[i*out.cols+j] += aik * b.data[k*b.cols+j]
			}
		}
	}
	return out
}

// Transpose returns the transpose of a.
func Transpose(a *Dense) *Dense {
	out := NewDense(a.cols, a.rows)
	for i := 0; i < a.rows; i++ {
		for j := 0; j < a.cols; j++ {
			out.data[j*out.cols+i] = a.data[i*a.cols+j]
		}
	}
	return out
}

// SumRows sums over rows, returning a 1×cols matrix.
func SumRows(a *Dense) *Dense {
	out := NewDense(1, a.cols)
	for i := 0; i < a.rows; i++ {
		for j := 0; j < a.cols; j++ {
			out.data[j] += a.data[i*a.cols+j]
		}
	}
	return out
}

// SumAll sums all elements, returning a 1×1 matrix.
func SumAll(a *Dense) *Dense {
	out := NewDense(1, 1)
	var s float64
	for _, v := range a.data {
		s += v
	}
	out.data[0] = s
	return out
}

// Broadcast expands a 1×1 or 1×cols matrix to rows×cols.
func Broadcast(a *Dense, rows, cols int) *Dense {
	if a.rows != 1 || (a.cols != 1 && a.cols != cols) {
		panic(fmt.Sprintf("tensor: cannot broadcast %dx%d to %dx%d", a.rows, a.cols, rows, cols))
	}
	out := NewDense(rows, cols)
	if a.cols == 1 {
		v := a.data[0]
		for i := range out.data {
			out.data[i] = v
		}
		return out
	}
	for i := 0; i < rows; i++ {
		copy(out.data[i*cols:(i+1)*cols], a.data)
	}
	return out
}

// Cat concatenates a and b column-wise. Both must have the same row count.
func Cat(a, b *Dense) *Dense {
	if a.rows != b.rows {
		panic(fmt.Sprintf("tensor: Cat row mismatch %d vs %d", a.rows, b.rows))
	}
	out := NewDense(a.rows, a.cols+b.cols)
	for i := 0; i < a.rows; i++ {
		copy(out.data[i*out.cols:], a.data[i*a.cols:(i+1)*a.cols])
		copy(out.data[i*out.cols+a.cols:], b.data[i*b.cols:(i+1)*b.cols])
	}
	return out
}

// Narrow returns columns [offset, offset+n) of a.
func Narrow(a *Dense, offset, n int) *Dense {
	if offset < 0 || n < 0 || offset+n > a.cols {
		panic(fmt.Sprintf("tensor: Narrow [%d:%d) out of range for %d columns", offset, offset+n, a.cols))
	}
	out := NewDense(a.rows, n)
	for i := 0; i < a.rows; i++ {
		copy(out.data[i*n:(i+1)*n], a.data[i*a.cols+offset:i*a.cols+offset+n])
	}
	return out
}

// Pad places a into a zero matrix with cols total columns, starting at
// column offset. Inverse of Narrow.
func Pad(a *Dense, cols, offset int) *Dense {
	if offset < 0 || offset+a.cols > cols {
		panic(fmt.Sprintf("tensor: Pad [%d:%d) out of range for %d columns", offset, offset+a.cols, cols))
	}
	out := NewDense(a.rows, cols)
	for i := 0; i < a.rows; i++ {
		copy(out.data[i*cols+offset:], a.data[i*a.cols:(i+1)*a.cols])
	}
	return out
}

// Apply returns f applied element-wise.
func Apply(a *Dense, f func(float64) float64) *Dense {
	out := NewDense(a.rows, a.cols)
	for i, v := range a.data {
		out.data[i] = f(v)
	}
	return out
}

func checkSameShape(op string, a, b *Dense) {
	if !a.SameShape(b) {
		panic(fmt.Sprintf("tensor: %s shape mismatch %dx%d vs %dx%d", op, a.rows, a.cols, b.rows, b.cols))
	}
}
