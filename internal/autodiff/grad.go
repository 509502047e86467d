package autodiff

import (
	"github.com/pinn-ml/burgers/internal/tensor"
)

// Grad computes the gradient of output with respect to each input, seeded
// with ones (the unit-gradient seed). The results stay connected to the
// graph, so they can be differentiated again; this is how the second
// spatial derivative in the PDE residual is obtained:
//
//	u := net.Forward(x, t)
//	ux := autodiff.Grad(u, x)[0]
//	uxx := autodiff.Grad(ux, x)[0]
//
// Inputs unreachable from output receive a zero gradient.
func Grad(output *Variable, inputs ...*Variable) []*Variable {
	grads := backprop(output)
	result := make([]*Variable, len(inputs))
	for i, in := range inputs {
		if g, ok := grads[in]; ok {
			result[i] = g
		} else {
			result[i] = Constant(tensor.Zeros(in.value.Rows(), in.value.Cols()))
		}
	}
	return result
}

// Backward accumulates d(output)/d(leaf) into the gradient buffer of every
// reachable gradient-tracked leaf. Used by the optimizer; call ZeroGrad on
// parameters between steps to avoid accumulation across steps.
func Backward(output *Variable) {
	grads := backprop(output)
	for v, g := range grads {
		if v.op != nil || !v.requiresGrad {
			continue
		}
		if v.grad == nil {
			v.grad = g.value.Clone()
		} else {
			v.grad = tensor.Add(v.grad, g.value)
		}
	}
}

// backprop walks the graph from output in reverse topological order and
// returns the gradient node for every reachable gradient-tracked variable.
func backprop(output *Variable) map[*Variable]*Variable {
	order := topoSort(output)
	grads := make(map[*Variable]*Variable, len(order))
	grads[output] = onesLike(output)

	for i := len(order) - 1; i >= 0; i-- {
		v := order[i]
		g, ok := grads[v]
		if !ok || v.op == nil {
			continue
		}
		inputGrads := v.op.Backward(g)
		for j, in := range v.op.Inputs() {
			ig := inputGrads[j]
			if ig == nil || !in.requiresGrad {
				continue
			}
			if existing, ok := grads[in]; ok {
				grads[in] = Add(existing, ig)
			} else {
				grads[in] = ig
			}
		}
	}
	return grads
}

// topoSort returns the gradient-tracked subgraph under root in topological
// order (inputs before outputs).
func topoSort(root *Variable) []*Variable {
	var order []*Variable
	visited := make(map[*Variable]bool)

	// Iterative DFS; residual graphs for large collocation batches are too
	// deep for comfortable recursion.
	type frame struct {
		v    *Variable
		next int
	}
	stack := []frame{{v: root}}
	visited[root] = true

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		var inputs []*Variable
		if top.v.op != nil {
			inputs = top.v.op.Inputs()
		}
		if top.next < len(inputs) {
			in := inputs[top.next]
			top.next++
			if !visited[in] && in.requiresGrad {
				visited[in] = true
				stack = append(stack, frame{v: in})
			}
			continue
		}
		order = append(order, top.v)
		stack = stack[:len(stack)-1]
	}
	return order
}
