package xcover

import "iter"

// ExportTo drains a CoversZDD node stream into a caller-supplied ZDD/BDD
// library by replaying each node through makeNode(variable, lo, hi), the
// shape third-party diagram packages (e.g. buddy-style BDD libraries)
// expose for inserting a pre-built node. It returns the id makeNode
// returned for the final node in the stream, or 1 (the TRUE terminal) if
// the stream is empty.
//
// An empty stream is ambiguous in the same way the underlying search
// generator is: it means either "the universe has no primary items, so the
// empty selection is itself an exact cover" or "no exact cover exists at
// all". Callers that must distinguish the two should check feasibility
// with CoversProblem first.
func ExportTo(seq iter.Seq[ZDDNode], makeNode func(variable int32, lo, hi uint64) uint64) uint64 {
	ids := map[uint64]uint64{0: 0, 1: 1}
	root := uint64(1)
	for n := range seq {
		root = makeNode(n.Var, ids[n.Lo], ids[n.Hi])
		ids[n.ID] = root
	}
	return root
}

// CountSolutions counts the satisfying assignments (exact covers)
// represented by a CoversZDD node stream without enumerating them, adapted
// from the teacher's bottom-up memoized evaluator. Every node in the stream
// contributes count(lo) + count(hi) solutions, where the terminals count(0)
// = 0 and count(1) = 1; the result is the count at the final node, matching
// ExportTo's same empty-stream convention.
func CountSolutions(seq iter.Seq[ZDDNode]) uint64 {
	counts := map[uint64]uint64{0: 0, 1: 1}
	root := uint64(1)
	for n := range seq {
		root = counts[n.Lo] + counts[n.Hi]
		counts[n.ID] = root
	}
	return root
}
