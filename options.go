// Package debruijn: functional configuration for sequence generation.
// This file defines:
//   - Option / options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (panic only on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on programmer error.
//   - Reusability: options fields are unexported; public APIs consume ...Option.
package debruijn

import "math/rand"

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultSeed is the fixed seed used when callers pass seed==0 and no
	// explicit *rand.Rand. Arbitrary but stable for reproducible defaults.
	DefaultSeed int64 = 1

	// DefaultWalkBudgetFactor scales the defensive step cap of the
	// loop-erased random walk: budget = factor · V · (n+1). The expected
	// total walk length on a de Bruijn graph is O(V·n), so the default
	// leaves two orders of headroom before ErrWalkBudget fires.
	DefaultWalkBudgetFactor = 64
)

const panicWalkBudgetNegative = "debruijn: WithWalkBudget: budget must be non-negative"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors panic only on nonsensical values (programmer error).
type Option func(*options)

// options stores the effective configuration after applying Option setters.
type options struct {
	seed       int64      // DefaultSeed policy when 0
	rand       *rand.Rand // overrides seed when non-nil
	walkBudget int        // 0 ⇒ DefaultWalkBudgetFactor·V·(n+1)
}

// WithSeed selects the deterministic random stream for generation.
// Policy: seed==0 ⇒ DefaultSeed; otherwise the seed is used verbatim.
// Ignored when WithRand is also supplied.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// WithRand supplies the random source directly. The source is consumed
// during generation; it must not be shared across goroutines. A nil r
// falls back to the seed policy.
func WithRand(r *rand.Rand) Option {
	return func(o *options) { o.rand = r }
}

// WithWalkBudget caps the total number of random-walk steps taken while
// sampling the arborescence. budget==0 restores the default cap.
// Panics if budget < 0.
func WithWalkBudget(budget int) Option {
	if budget < 0 {
		panic(panicWalkBudgetNegative)
	}

	return func(o *options) { o.walkBudget = budget }
}

// gatherOptions applies setters over defaults.
func gatherOptions(opts ...Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// rng resolves the effective random source for one generation call.
func (o options) rng() *rand.Rand {
	if o.rand != nil {
		return o.rand
	}

	return rngFromSeed(o.seed)
}

// budget resolves the effective walk budget for graph g.
func (o options) budget(g *Graph) int {
	if o.walkBudget > 0 {
		return o.walkBudget
	}

	return DefaultWalkBudgetFactor * g.NumVertices * (g.N + 1)
}
