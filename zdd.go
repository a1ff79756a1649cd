package xcover

import (
	"context"
	"iter"
)

// ZDDNode is one node of the Zero-suppressed Decision Diagram Algorithm Z
// builds over the search (component D). Var is the option index the node
// branches on — not an item id: the diagram represents the family of
// solutions as Boolean vectors over "is option j selected", zero-suppressed
// so that an option excluded from every accepted completion contributes no
// node. Lo is the subtree reached by excluding the option, Hi by including
// it; both are either 0/1 (the conventional FALSE/TRUE terminals) or the ID
// of a previously emitted node. Nodes are emitted in post-order: a node
// never references an ID greater than its own.
type ZDDNode struct {
	ID     uint64
	Var    int32
	Lo, Hi uint64
}

// zFrame is one level of Algorithm Z's explicit search stack: the
// substrate-search frame of Algorithm C, plus the running ZDD chain
// accumulator for the item chosen at this depth and (when memoization is
// enabled) the residual-state signature this frame resolves.
type zFrame struct {
	nodes   []int32
	item    int32
	zddAcc  uint64
	saved   bool // whether a real substrate snapshot backs this depth
	memoSig []byte
}

type zddEngine struct {
	sub           *substrate
	colors        []int32
	heuristic     Heuristic
	memo          *memoCache
	itemColorings []int32
	colArena      [][]int32

	solution []int32
	frames   []zFrame
	zddIndex uint64
	depth    int32
}

func newZDDEngine(p *Problem, cfg *config) *zddEngine {
	sub := newSubstrate(p)
	var mc *memoCache
	if cfg.memo {
		mc = newMemoCache(p.NItems, p.NPrimary, p.NSecondary, p.NColors)
	}

	depths := p.NPrimary + 2
	colArena := make([][]int32, depths)
	for d := range colArena {
		colArena[d] = make([]int32, p.NSecondary)
	}

	return &zddEngine{
		sub:           sub,
		colors:        p.NodeColor,
		heuristic:     cfg.heuristic,
		memo:          mc,
		itemColorings: make([]int32, p.NSecondary),
		colArena:      colArena,
		zddIndex:      1,
		frames: []zFrame{{
			nodes: []int32{sub.nData},
			item:  sub.nItems,
		}},
	}
}

func (e *zddEngine) chooseItem() int32 {
	if e.heuristic == Leftmost {
		return e.sub.chooseLeftmost()
	}
	return e.sub.chooseMRV()
}

// CoversZDDProblem builds the Zero-suppressed Decision Diagram representing
// every exact cover of an already-encoded Problem (component D, Algorithm
// Z). Nodes are emitted in post-order as soon as their lo/hi subtrees are
// known; memoization (on by default, see WithMemo) collapses isomorphic
// residual subproblems so combinatorially large solution families can be
// counted without enumerating every member.
func CoversZDDProblem(ctx context.Context, p *Problem, opts ...Option) iter.Seq[ZDDNode] {
	cfg := newConfig(opts...)
	return func(yield func(ZDDNode) bool) {
		e := newZDDEngine(p, cfg)
		needUndo := false

		for len(e.frames) > 0 {
			top := &e.frames[len(e.frames)-1]

			if len(top.nodes) == 0 {
				// C10: backtrack
				e.depth--
				e.frames = e.frames[:len(e.frames)-1]
				needUndo = true

				if len(e.solution) > 0 {
					s := e.solution[len(e.solution)-1]
					e.solution = e.solution[:len(e.solution)-1]
					hi := top.zddAcc

					if hi > 0 {
						e.zddIndex++
						parent := &e.frames[len(e.frames)-1]
						node := ZDDNode{ID: e.zddIndex, Var: s, Lo: parent.zddAcc, Hi: hi}
						if !yield(node) {
							return
						}
						parent.zddAcc = e.zddIndex
					}

					if e.memo != nil && top.memoSig != nil {
						if _, found := e.memo.lookup(top.memoSig); !found {
							e.memo.insert(top.memoSig, hi)
						}
					}
				}
				continue
			}

			select {
			case <-ctx.Done():
				return
			default:
			}

			if needUndo {
				if top.saved {
					e.sub.undo(e.depth)
					copy(e.itemColorings, e.colArena[e.depth])
				}
				needUndo = false
			}

			node := top.nodes[len(top.nodes)-1]
			top.nodes = top.nodes[:len(top.nodes)-1]

			var option int32
			if node < e.sub.nData {
				option = e.sub.cover(e.colors, e.itemColorings, node, top.item)
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

			var sig []byte
			if e.memo != nil {
				sig = e.memo.signature(e.sub.activeItems[:e.sub.activeLen], e.itemColorings)
				if cached, found := e.memo.lookup(sig); found {
					e.depth++
					e.frames = append(e.frames, zFrame{
						item:    e.sub.nItems,
						zddAcc:  cached,
						memoSig: sig,
					})
					continue
				}
			}

			item := e.chooseItem()
			if item == e.sub.nItems {
				e.depth++
				e.frames = append(e.frames, zFrame{
					item:    item,
					zddAcc:  1,
					memoSig: sig,
				})
				continue
			}

			length := e.sub.matrixSize[item]
			e.depth++
			e.sub.deactivateItem(item)
			e.sub.oldActiveLen = e.sub.activeLen
			e.sub.hide(e.colors, e.itemColorings, item, 0, true)

			saved := length != 1
			if saved {
				e.sub.saveState(e.depth)
				copy(e.colArena[e.depth], e.itemColorings)
			}

			e.frames = append(e.frames, zFrame{
				nodes:   append([]int32(nil), e.sub.activeOptions(item)...),
				item:    item,
				saved:   saved,
				memoSig: sig,
			})
		}
	}
}

// CoversZDD encodes options (component A) and builds the ZDD representing
// every exact cover (component D).
func CoversZDD(ctx context.Context, options [][]string, opts ...Option) (iter.Seq[ZDDNode], error) {
	p, err := Encode(options, opts...)
	if err != nil {
		return nil, err
	}
	return CoversZDDProblem(ctx, p, opts...), nil
}
