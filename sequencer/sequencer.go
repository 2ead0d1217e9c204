package sequencer

import (
	"math"

	"github.com/katalvlaran/debruijn"
)

// Trial is one combination of factor levels, in factor declaration order.
type Trial []any

// Sequencer turns factors into a trial-type alphabet and produces
// counterbalanced blocks. It is immutable after New and safe for
// concurrent Block calls with independent random sources.
type Sequencer struct {
	n      int
	trials []Trial // cartesian product, lexicographic, rightmost factor fastest
}

// New prepares a sequencer balancing every length-n run of trial types.
// Each factor is a non-empty ordered list of levels; the trial types are
// the cartesian product of all factors. Returns
// debruijn.ErrInvalidParameter if n < 1, no factor is given, a factor is
// empty, or the product of factor sizes is below two or overflows int.
//
// Complexity: O(m·k) time and memory, k = product of factor sizes.
func New(n int, factors ...[]any) (*Sequencer, error) {
	if n < 1 || len(factors) == 0 {
		return nil, debruijn.ErrInvalidParameter
	}
	k := 1
	for _, f := range factors {
		if len(f) == 0 {
			return nil, debruijn.ErrInvalidParameter
		}
		// The trial-type count must stay representable; reject an
		// overflowing product outright rather than relying on wrapped
		// values failing later checks.
		if k > math.MaxInt/len(f) {
			return nil, debruijn.ErrInvalidParameter
		}
		k *= len(f)
	}
	if k < 2 {
		return nil, debruijn.ErrInvalidParameter
	}

	// Enumerate combinations; symbol i selects its levels by mixed-radix
	// decomposition of i, so the order matches nested loops over factors.
	trials := make([]Trial, k)
	for i := 0; i < k; i++ {
		trial := make(Trial, len(factors))
		rest := i
		for j := len(factors) - 1; j >= 0; j-- {
			trial[j] = factors[j][rest%len(factors[j])]
			rest /= len(factors[j])
		}
		trials[i] = trial
	}

	return &Sequencer{n: n, trials: trials}, nil
}

// K returns the number of trial types (the alphabet size).
func (s *Sequencer) K() int { return len(s.trials) }

// TrialTypes returns the enumerated combinations in symbol order. The
// slice is owned by the Sequencer; callers must not mutate it.
func (s *Sequencer) TrialTypes() []Trial { return s.trials }

// Block generates one random counterbalanced block: a sequence of f·k^n
// trials in which every length-n run of trial types occurs exactly f times
// cyclically. Options select fold, seed or random source, and edge
// handling; see the package documentation.
//
// Complexity: O(f·k^n) expected time and memory.
func (s *Sequencer) Block(opts ...Option) ([]Trial, error) {
	o := gatherOptions(opts...)

	core := []debruijn.Option{debruijn.WithSeed(o.seed)}
	if o.rand != nil {
		core = append(core, debruijn.WithRand(o.rand))
	}
	seq, err := debruijn.Generate(s.K(), s.n, o.fold, core...)
	if err != nil {
		return nil, err
	}

	pad := s.n - 1
	block := make([]Trial, 0, len(seq)+pad)
	if o.edge == EdgeStart && pad > 0 {
		for _, sym := range seq[len(seq)-pad:] {
			block = append(block, s.trials[sym])
		}
	}
	for _, sym := range seq {
		block = append(block, s.trials[sym])
	}
	if o.edge == EdgeEnd && pad > 0 {
		for _, sym := range seq[:pad] {
			block = append(block, s.trials[sym])
		}
	}

	return block, nil
}
