package xcover

import (
	"strconv"
	"strings"
)

// Problem is the encoded form of an exact-cover-with-colors instance: a flat
// node array keyed by contiguous integer item ids, primary items occupying
// the low range, matching spec §3's data model
// (options/options_ptr/colors/n_items/n_secondary).
type Problem struct {
	// NodeItem gives the item id for each node. Node n belongs to option
	// option(n) with OptionsPtr.
	NodeItem []int32
	// NodeColor gives the color id for each node (0 = no color).
	NodeColor []int32
	// OptionsPtr points to the start of each option's node range;
	// option j occupies NodeItem[OptionsPtr[j]:OptionsPtr[j+1]].
	OptionsPtr []int32
	// ItemNames maps item id back to its original string name (without any
	// color suffix), primary items first.
	ItemNames []string
	// NItems, NPrimary, NSecondary partition the item id space:
	// primary ids are [0, NPrimary), secondary ids [NPrimary, NItems).
	NItems, NPrimary, NSecondary int32
	// NColors is the number of distinct color strings interned (colors are
	// numbered 1..NColors; 0 means uncolored/wildcard).
	NColors int32
}

// NumOptions returns the number of options M in the problem.
func (p *Problem) NumOptions() int32 { return int32(len(p.OptionsPtr) - 1) }

// splitColor splits a token of the form "item:color" into its item name and
// color string. When colored is false, or the token has no colon, the whole
// token is the item name and hasColor is false.
func splitColor(tok string, colored bool) (name, color string, hasColor bool) {
	if !colored {
		return tok, "", false
	}
	if i := strings.IndexByte(tok, ':'); i >= 0 {
		return tok[:i], tok[i+1:], true
	}
	return tok, "", false
}

// firstSeenUnion returns the distinct base item names appearing across all
// options, in first-seen order, stripping any color suffix.
func firstSeenUnion(allTokens []string, colored bool) []string {
	seen := make(map[string]bool, len(allTokens))
	out := make([]string, 0, len(allTokens))
	for _, tok := range allTokens {
		name, _, _ := splitColor(tok, colored)
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	return out
}

func toSet(items []string) map[string]bool {
	s := make(map[string]bool, len(items))
	for _, it := range items {
		s[it] = true
	}
	return s
}

func filterNotIn(items []string, exclude map[string]bool) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if !exclude[it] {
			out = append(out, it)
		}
	}
	return out
}

// resolveItems infers the explicit primary/secondary item lists following
// spec §4.A: infer by set difference over the universe of items appearing
// in options whenever either list is omitted.
func resolveItems(allTokens []string, primary, secondary []string, colored bool) (pri, sec []string, explicitBoth bool) {
	if primary == nil && secondary == nil {
		return firstSeenUnion(allTokens, colored), nil, false
	}
	if primary == nil {
		universe := firstSeenUnion(allTokens, colored)
		return filterNotIn(universe, toSet(secondary)), secondary, false
	}
	if secondary == nil {
		universe := firstSeenUnion(allTokens, colored)
		return primary, filterNotIn(universe, toSet(primary)), false
	}
	return primary, secondary, true
}

func flatten(options [][]string) []string {
	n := 0
	for _, o := range options {
		n += len(o)
	}
	all := make([]string, 0, n)
	for _, o := range options {
		all = append(all, o...)
	}
	return all
}

// Encode builds a Problem from user-supplied options (component A). Items
// are strings; for colored problems (WithColored), secondary tokens use the
// "item:color" convention — an absent suffix means unconstrained/wildcard.
//
// Encode fails synchronously, before any search begins, on: an option
// referencing an item outside an explicitly-declared universe, an empty
// option, a duplicate item within one option, or an empty color string.
func Encode(options [][]string, opts ...Option) (*Problem, error) {
	if len(options) == 0 {
		return nil, ErrNoOptions
	}
	cfg := newConfig(opts...)

	allTokens := flatten(options)
	allNames := make([]string, len(allTokens))
	for i, tok := range allTokens {
		name, _, _ := splitColor(tok, cfg.colored)
		allNames[i] = name
	}

	primary, secondary, explicitBoth := resolveItems(allNames, cfg.primary, cfg.secondary, cfg.colored)

	nPrimary := int32(len(primary))
	nSecondary := int32(len(secondary))
	nItems := nPrimary + nSecondary

	itemIndex := make(map[string]int32, nItems)
	itemNames := make([]string, nItems)
	for i, it := range primary {
		itemIndex[it] = int32(i)
		itemNames[i] = it
	}
	for i, it := range secondary {
		id := nPrimary + int32(i)
		itemIndex[it] = id
		itemNames[id] = it
	}

	colorIndex := make(map[string]int32)
	var nColors int32

	optionsPtr := make([]int32, len(options)+1)
	nodeItem := make([]int32, 0, len(allTokens))
	nodeColor := make([]int32, 0, len(allTokens))

	for j, opt := range options {
		if len(opt) == 0 {
			return nil, &ItemError{Err: ErrEmptyOption, Option: j}
		}
		seen := make(map[int32]bool, len(opt))
		for _, tok := range opt {
			name, color, hasColor := splitColor(tok, cfg.colored)
			id, ok := itemIndex[name]
			if !ok {
				if explicitBoth {
					return nil, &ItemError{Err: ErrUnknownItem, Option: j, Item: name}
				}
				// Should not happen: resolveItems already unioned every
				// token when either list was inferred.
				panicInvariant("item %q missing from inferred universe", name)
			}
			if seen[id] {
				return nil, &ItemError{Err: ErrDuplicateItem, Option: j, Item: name}
			}
			seen[id] = true

			var col int32
			if cfg.colored && hasColor && id >= nPrimary {
				if color == "" {
					return nil, &ItemError{Err: ErrEmptyColor, Option: j, Item: name}
				}
				cid, ok := colorIndex[color]
				if !ok {
					nColors++
					cid = nColors
					colorIndex[color] = cid
				}
				col = cid
			} else if cfg.colored && hasColor && color == "" {
				return nil, &ItemError{Err: ErrEmptyColor, Option: j, Item: name}
			}

			nodeItem = append(nodeItem, id)
			nodeColor = append(nodeColor, col)
		}
		optionsPtr[j+1] = int32(len(nodeItem))
	}

	return &Problem{
		NodeItem:   nodeItem,
		NodeColor:  nodeColor,
		OptionsPtr: optionsPtr,
		ItemNames:  itemNames,
		NItems:     nItems,
		NPrimary:   nPrimary,
		NSecondary: nSecondary,
		NColors:    nColors,
	}, nil
}

// EncodeBoolMatrix builds a Problem from a boolean incidence matrix
// (component F's boundary adapter): row j, column i set means option j
// contains item i. All items are primary and uncolored.
func EncodeBoolMatrix(matrix [][]bool) (*Problem, error) {
	if len(matrix) == 0 {
		return nil, ErrNoOptions
	}
	nItems := 0
	for _, row := range matrix {
		if len(row) > nItems {
			nItems = len(row)
		}
	}

	optionsPtr := make([]int32, len(matrix)+1)
	var nodeItem, nodeColor []int32
	for j, row := range matrix {
		count := 0
		for i, cell := range row {
			if cell {
				nodeItem = append(nodeItem, int32(i))
				nodeColor = append(nodeColor, 0)
				count++
			}
		}
		if count == 0 {
			return nil, &ItemError{Err: ErrEmptyOption, Option: j}
		}
		optionsPtr[j+1] = int32(len(nodeItem))
	}

	itemNames := make([]string, nItems)
	for i := range itemNames {
		itemNames[i] = strconv.Itoa(i)
	}

	return &Problem{
		NodeItem:   nodeItem,
		NodeColor:  nodeColor,
		OptionsPtr: optionsPtr,
		ItemNames:  itemNames,
		NItems:     int32(nItems),
		NPrimary:   int32(nItems),
		NSecondary: 0,
		NColors:    0,
	}, nil
}
