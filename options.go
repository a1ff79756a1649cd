package xcover

// Heuristic selects the branching rule Algorithm C/Z use to choose the next
// primary item to cover (spec §4.C, §4.D).
type Heuristic int

const (
	// MRV picks the active primary item with the smallest remaining option
	// count (minimum-remaining-value), with an early-out once an item with
	// exactly one remaining option is found. This is the default.
	MRV Heuristic = iota

	// Leftmost picks the active primary item with the lowest id. Required
	// for a stable ZDD variable ordering when the output feeds a downstream
	// BDD/ZDD library via ExportTo.
	Leftmost
)

func (h Heuristic) String() string {
	if h == Leftmost {
		return "leftmost"
	}
	return "mrv"
}

// config holds the resolved parameters of a single Covers/CoversZDD call.
// It is unexported: callers configure it exclusively through Option values,
// matching the functional-options idiom used throughout this module.
type config struct {
	primary   []string
	secondary []string
	colored   bool
	heuristic Heuristic
	memo      bool
}

func newConfig(opts ...Option) *config {
	cfg := &config{
		memo:      true,
		heuristic: MRV,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Option configures a Covers/CoversZDD/Verify call using the functional
// options pattern.
type Option func(*config)

// WithPrimary declares the explicit set of primary items. If omitted,
// primary items are inferred as every item appearing in options that is not
// declared secondary (spec §4.A).
func WithPrimary(items []string) Option {
	return func(c *config) { c.primary = items }
}

// WithSecondary declares the explicit set of secondary items. If omitted
// while WithPrimary is given, secondary items are inferred as every item
// appearing in options that is not declared primary; if both are omitted,
// every item is primary and there are no secondary items.
func WithSecondary(items []string) Option {
	return func(c *config) { c.secondary = items }
}

// WithColored enables colored-secondary parsing: secondary tokens of the
// form "item:color" carry a color constraint: every option touching that
// secondary item must agree on the color, or leave it unconstrained.
func WithColored() Option {
	return func(c *config) { c.colored = true }
}

// WithHeuristic selects the branching heuristic for CoversZDD. Covers (the
// solution-mode search) always uses MRV per spec §4.C; this option only
// affects CoversZDD.
func WithHeuristic(h Heuristic) Option {
	return func(c *config) { c.heuristic = h }
}

// WithMemo toggles state-signature memoization for CoversZDD (on by
// default). Disabling it is occasionally useful for debugging a ZDD's raw
// shape without subdiagram sharing.
func WithMemo(enabled bool) Option {
	return func(c *config) { c.memo = enabled }
}
