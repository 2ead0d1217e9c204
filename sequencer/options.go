// Package sequencer: functional configuration for Block.
// Mirrors the core package's option idiom: unexported state, documented
// defaults, panic only on programmer error.
package sequencer

import "math/rand"

// Edge selects how a block treats the n−1 runs that straddle the cyclic
// wrap point.
type Edge int

const (
	// EdgeNone keeps the canonical cyclic block of length f·k^n.
	EdgeNone Edge = iota
	// EdgeStart prepends the last n−1 trials, balancing linear traversal.
	EdgeStart
	// EdgeEnd appends the first n−1 trials, balancing linear traversal.
	EdgeEnd
)

// DefaultFold is the edge multiplicity used when WithFold is absent.
const DefaultFold = 1

const panicEdgeInvalid = "sequencer: WithEdge: unknown edge mode"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*options)

type options struct {
	fold int
	seed int64
	rand *rand.Rand
	edge Edge
}

// WithFold sets the run multiplicity f: every length-n run of trial types
// occurs f times per block. Validation happens at generation time; f < 1
// yields debruijn.ErrInvalidParameter from Block.
func WithFold(f int) Option {
	return func(o *options) { o.fold = f }
}

// WithSeed selects the deterministic random stream (seed==0 ⇒ the core
// default stream). Ignored when WithRand is supplied.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// WithRand supplies the random source directly; must not be shared across
// goroutines.
func WithRand(r *rand.Rand) Option {
	return func(o *options) { o.rand = r }
}

// WithEdge selects wrap-point handling. Panics on an unknown mode.
func WithEdge(e Edge) Option {
	if e != EdgeNone && e != EdgeStart && e != EdgeEnd {
		panic(panicEdgeInvalid)
	}

	return func(o *options) { o.edge = e }
}

func gatherOptions(opts ...Option) options {
	o := options{fold: DefaultFold}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
