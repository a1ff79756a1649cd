package xcover

import (
	"errors"
	"fmt"
)

// Input-shape errors, surfaced synchronously by Encode/EncodeBoolMatrix
// before any iterator is returned. See spec §7.
var (
	// ErrUnknownItem indicates an option referenced an item outside the
	// declared primary/secondary universe.
	ErrUnknownItem = errors.New("xcover: item not in declared universe")

	// ErrEmptyOption indicates an option had no items.
	ErrEmptyOption = errors.New("xcover: option has no items")

	// ErrDuplicateItem indicates the same item appeared twice in one option.
	ErrDuplicateItem = errors.New("xcover: duplicate item in option")

	// ErrEmptyColor indicates a colored secondary token had an empty color
	// suffix (e.g. "x:").
	ErrEmptyColor = errors.New("xcover: empty color string")

	// ErrNoOptions indicates a Problem was built with zero options.
	ErrNoOptions = errors.New("xcover: no options supplied")
)

// ItemError wraps ErrUnknownItem/ErrDuplicateItem with the offending item
// and option index for diagnosis.
type ItemError struct {
	Err    error
	Option int
	Item   string
}

func (e *ItemError) Error() string {
	return fmt.Sprintf("xcover: option %d: %s: %q", e.Option, e.Err, e.Item)
}

func (e *ItemError) Unwrap() error { return e.Err }

// VerifyError reports the first exact-cover violation found by Verify.
type VerifyError struct {
	// Item is the item (primary or secondary) that violates the cover.
	Item string
	// Reason describes the nature of the violation.
	Reason string
}

func (e *VerifyError) Error() string {
	return fmt.Sprintf("xcover: verify: item %q: %s", e.Item, e.Reason)
}

// ErrCacheCorrupt is never expected from a correct implementation: it
// indicates the memoization cache or substrate invariants were violated.
// Callers should treat its appearance as a programming error, not a
// recoverable condition — see panicInvariant.
var ErrCacheCorrupt = errors.New("xcover: internal invariant violated")

func panicInvariant(format string, args ...any) {
	panic(fmt.Errorf("%w: %s", ErrCacheCorrupt, fmt.Sprintf(format, args...)))
}
