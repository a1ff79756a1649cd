package xcover

// substrate is the sparse-set matrix of Algorithm C/Z (component B),
// translated from original_source's dancing_cells.py matrix_* arrays. It
// replaces Knuth's doubly-linked dancing-links cells with parallel
// sparse-set arrays: activating/deactivating an item or hiding/unhiding a
// node is an O(1) swap against a size counter, and backtracking restores a
// whole generation of sizes in one copy instead of walking a link chain.
type substrate struct {
	nData    int32
	nOpts    int32
	nItems   int32
	nPrimary int32

	// optionsJ maps a node to the option (row) it belongs to; problemItem
	// and optionsPtr mirror Problem.NodeItem/OptionsPtr for fast access.
	optionsJ    []int32
	problemItem []int32
	optionsPtr  []int32

	// matrixSize[i] is the number of active nodes for item i;
	// matrixStartPtr[i] is the fixed start of item i's node range within
	// matrixSet; matrixSet/matrixLoc are sparse-set partners: matrixSet[loc]
	// is the node at that slot, matrixLoc[node] is the node's current slot.
	matrixSize     []int32
	matrixStartPtr []int32
	matrixSet      []int32
	matrixLoc      []int32

	// activeItems/activeItemsSparse are sparse-set partners over the item
	// universe: activeItems[0:activeLen] holds the currently active items,
	// activeItemsSparse[item] gives its current slot.
	activeItems       []int32
	activeItemsSparse []int32
	activeLen         int32
	oldActiveLen      int32

	// Snapshot arena, indexed by search depth (bounded by nPrimary+1), so
	// backtracking never allocates: saveState/undo at a given depth reuse
	// the same backing slice across the whole search.
	snapSize      [][]int32
	snapActiveLen []int32
}

func newSubstrate(p *Problem) *substrate {
	nData := int32(len(p.NodeItem))
	nOpts := int32(len(p.OptionsPtr) - 1)
	nItems := p.NItems
	nPrimary := p.NPrimary

	optionsJ := make([]int32, nData)
	for j := int32(0); j < nOpts; j++ {
		for n := p.OptionsPtr[j]; n < p.OptionsPtr[j+1]; n++ {
			optionsJ[n] = j
		}
	}

	matrixSize := make([]int32, nItems)
	for _, item := range p.NodeItem {
		matrixSize[item]++
	}

	matrixStartPtr := make([]int32, nItems)
	var acc int32
	for i := int32(0); i < nItems; i++ {
		matrixStartPtr[i] = acc
		acc += matrixSize[i]
	}

	matrixSet := make([]int32, nData)
	matrixLoc := make([]int32, nData)
	counts := make([]int32, nItems)
	for node, item := range p.NodeItem {
		val := matrixStartPtr[item] + counts[item]
		matrixLoc[node] = val
		matrixSet[val] = int32(node)
		counts[item]++
	}

	activeItems := make([]int32, nItems)
	activeItemsSparse := make([]int32, nItems)
	for i := range activeItems {
		activeItems[i] = int32(i)
		activeItemsSparse[i] = int32(i)
	}

	depths := nPrimary + 2
	snapSize := make([][]int32, depths)
	for d := range snapSize {
		snapSize[d] = make([]int32, nItems)
	}

	return &substrate{
		nData:             nData,
		nOpts:             nOpts,
		nItems:            nItems,
		nPrimary:          nPrimary,
		optionsJ:          optionsJ,
		problemItem:       p.NodeItem,
		optionsPtr:        p.OptionsPtr,
		matrixSize:        matrixSize,
		matrixStartPtr:    matrixStartPtr,
		matrixSet:         matrixSet,
		matrixLoc:         matrixLoc,
		activeItems:       activeItems,
		activeItemsSparse: activeItemsSparse,
		activeLen:         nItems,
		oldActiveLen:      nItems,
		snapSize:          snapSize,
		snapActiveLen:     make([]int32, depths),
	}
}

func (s *substrate) activeInsert(item, index int32) {
	s.activeItems[index] = item
	s.activeItemsSparse[item] = index
}

// deactivateItem removes an item from the active set (C3).
func (s *substrate) deactivateItem(item int32) {
	endIndex := s.activeLen - 1
	endItem := s.activeItems[endIndex]
	index := s.activeItemsSparse[item]
	s.activeInsert(endItem, index)
	s.activeInsert(item, endIndex)
	s.activeLen--
}

// activeOptions returns the (still active) nodes for an item's column.
func (s *substrate) activeOptions(item int32) []int32 {
	start := s.matrixStartPtr[item]
	return s.matrixSet[start : start+s.matrixSize[item]]
}

// removeNode hides a single node from its item's column (C7).
func (s *substrate) removeNode(node int32) {
	item := s.problemItem[node]
	loc := s.matrixLoc[node]

	endLoc := s.matrixStartPtr[item] + s.matrixSize[item] - 1
	endNode := s.matrixSet[endLoc]

	s.matrixSet[loc] = endNode
	s.matrixSet[endLoc] = node
	s.matrixLoc[endNode] = loc
	s.matrixLoc[node] = endLoc
	s.matrixSize[item]--
}

// hide removes, for every option overlapping item's column other than those
// agreeing on color col, every other node of that option — unless doing so
// would strand a primary item at zero remaining options, in which case it
// reports failure (the "about to delete last" early abort from hide's
// original-language counterpart). initial distinguishes the call made
// directly after choose() (col is always the wildcard 0) from recursive
// calls made while covering an option.
// colorings, when non-nil, records the color committed to each secondary
// item as hide walks past it — used by Algorithm Z to build a memoization
// signature. Algorithm C passes nil and pays no extra cost for it.
func (s *substrate) hide(colors, colorings []int32, item, col int32, initial bool) bool {
	for _, node := range s.activeOptions(item) {
		if col != 0 && colors[node] == col {
			continue
		}
		j := s.optionsJ[node]
		for k := s.optionsPtr[j]; k < s.optionsPtr[j+1]; k++ {
			iprime := s.problemItem[k]
			if iprime != item && s.activeItemsSparse[iprime] < s.oldActiveLen {
				if !initial &&
					s.matrixSize[iprime] == 1 &&
					s.activeItemsSparse[iprime] < s.activeLen &&
					iprime < s.nPrimary {
					return false
				}
				s.removeNode(k)
			}
			if colorings != nil && iprime >= s.nPrimary {
				colorings[iprime-s.nPrimary] = colors[k]
			}
		}
	}
	return true
}

// cover deactivates and hides every other item touched by node's option
// (C6/C7), returning the option index, or nOpts to signal the cover failed
// (a primary item was about to run out of options).
func (s *substrate) cover(colors, colorings []int32, node, item int32) int32 {
	option := s.optionsJ[node]
	lo, hi := s.optionsPtr[option], s.optionsPtr[option+1]
	s.oldActiveLen = s.activeLen

	for ptr := lo; ptr < hi; ptr++ {
		itm := s.problemItem[ptr]
		if itm != item && s.activeItemsSparse[itm] < s.activeLen {
			s.deactivateItem(itm)
		}
	}

	for ptr := lo; ptr < hi; ptr++ {
		itm := s.problemItem[ptr]
		if itm == item {
			continue
		}
		if itm < s.nPrimary || s.activeItemsSparse[itm] < s.oldActiveLen {
			if !s.hide(colors, colorings, itm, colors[ptr], false) {
				return s.nOpts
			}
		}
	}
	return option
}

// saveState/undo implement C5/C11 against the preallocated snapshot arena,
// indexed by search depth so backtracking never allocates.
func (s *substrate) saveState(depth int32) {
	copy(s.snapSize[depth], s.matrixSize)
	s.snapActiveLen[depth] = s.activeLen
}

func (s *substrate) undo(depth int32) {
	copy(s.matrixSize, s.snapSize[depth])
	s.activeLen = s.snapActiveLen[depth]
}

// chooseMRV implements C2's minimum-remaining-value heuristic: the active
// primary item with the fewest options, short-circuiting the moment one
// with a single remaining option is found. It returns nItems if every
// primary item is already covered (a solution).
func (s *substrate) chooseMRV() int32 {
	chosenItem := s.nItems
	chosenLen := s.nData
	for _, item := range s.activeItems[:s.activeLen] {
		if item >= s.nPrimary {
			continue
		}
		length := s.matrixSize[item]
		if length < chosenLen {
			chosenItem = item
			chosenLen = length
			if length == 1 {
				return chosenItem
			}
		}
	}
	return chosenItem
}

// chooseLeftmost implements Algorithm Z's stable variable-ordering
// heuristic: the active primary item with the lowest id, regardless of its
// remaining option count.
func (s *substrate) chooseLeftmost() int32 {
	chosenItem := s.nItems
	for _, item := range s.activeItems[:s.activeLen] {
		if item < s.nPrimary && item < chosenItem {
			chosenItem = item
		}
	}
	return chosenItem
}
