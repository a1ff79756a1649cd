package xcover

import (
	"context"
	"iter"
)

// frame is one level of the explicit depth-first search stack that replaces
// the recursive/yielding formulation of Algorithm C: Go has no generator
// coroutines, so the stack that would otherwise live on the call stack is
// heap data here, matching the non-recursive loop original_source's
// algorithm_c already had to use for its own (numba) constraints.
type frame struct {
	nodes []int32 // remaining candidate nodes to try at this item
	item  int32   // the item chosen at this depth
}

// engine holds one search's mutable state: the substrate plus the
// depth-indexed stacks of Algorithm C's main loop.
type engine struct {
	sub    *substrate
	colors []int32

	solution  []int32
	nodeStack []frame
	depth     int32
}

func newEngine(p *Problem) *engine {
	sub := newSubstrate(p)
	return &engine{
		sub:    sub,
		colors: p.NodeColor,
		nodeStack: []frame{{
			nodes: []int32{sub.nData}, // root pseudo-node
			item:  sub.nItems,
		}},
	}
}

// CoversProblem enumerates every exact cover of an already-encoded Problem
// as lists of option indices (component C, Algorithm C). The returned
// sequence stops early, without leaking search state, if the consumer
// breaks out of the range loop or ctx is cancelled.
func CoversProblem(ctx context.Context, p *Problem) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		e := newEngine(p)
		needUndo := false

		for len(e.nodeStack) > 0 {
			top := &e.nodeStack[len(e.nodeStack)-1]

			if len(top.nodes) == 0 {
				// C10: backtrack
				e.depth--
				e.nodeStack = e.nodeStack[:len(e.nodeStack)-1]
				needUndo = true
				if len(e.solution) > 0 {
					e.solution = e.solution[:len(e.solution)-1]
				}
				continue
			}

			select {
			case <-ctx.Done():
				return
			default:
			}

			if needUndo {
				e.sub.undo(e.depth)
				needUndo = false
			}

			node := top.nodes[len(top.nodes)-1]
			top.nodes = top.nodes[:len(top.nodes)-1]

			var option int32
			if node < e.sub.nData {
				option = e.sub.cover(e.colors, nil, node, top.item)
			} else {
				option = e.sub.nOpts + 1
			}

			if option == e.sub.nOpts {
				needUndo = true
				continue
			}

			if option < e.sub.nOpts {
				e.solution = append(e.solution, option)
			}

			item := e.sub.chooseMRV()
			if item == e.sub.nItems {
				if !yield(int32sToInts(e.solution)) {
					return
				}
				e.solution = e.solution[:len(e.solution)-1]
				needUndo = true
				continue
			}

			e.depth++
			e.sub.deactivateItem(item)
			e.sub.oldActiveLen = e.sub.activeLen
			e.sub.hide(e.colors, nil, item, 0, true)
			e.sub.saveState(e.depth)
			e.nodeStack = append(e.nodeStack, frame{
				nodes: append([]int32(nil), e.sub.activeOptions(item)...),
				item:  item,
			})
		}
	}
}

// Covers encodes options (component A) and enumerates every exact cover as
// lists of option indices (component C). Encoding errors are returned
// synchronously; the search itself never errors.
func Covers(ctx context.Context, options [][]string, opts ...Option) (iter.Seq[[]int], error) {
	p, err := Encode(options, opts...)
	if err != nil {
		return nil, err
	}
	return CoversProblem(ctx, p), nil
}

// CoversBool is Covers for a boolean incidence matrix (component F).
func CoversBool(ctx context.Context, matrix [][]bool) (iter.Seq[[]int], error) {
	p, err := EncodeBoolMatrix(matrix)
	if err != nil {
		return nil, err
	}
	return CoversProblem(ctx, p), nil
}

func int32sToInts(xs []int32) []int {
	out := make([]int, len(xs))
	for i, x := range xs {
		out[i] = int(x)
	}
	return out
}
