// Package debruijn - unified entry point and textual rendering.
//
// Generate validates parameters, then delegates to the pipeline
// NewGraph → SampleArborescence → BuildCircuit and returns the circuit's
// labels. Rendering of the integer sequence is a separate concern:
// SymbolString for compact alphanumeric output, Format for any k.
package debruijn

import (
	"strconv"
	"strings"
)

// symbolAlphabet is the compact rendering repertoire, one character per
// symbol: digits, then lowercase, then uppercase. Mirrors the conventional
// digits+letters encoding; 62 symbols total.
const symbolAlphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// MaxCompactAlphabet is the largest k SymbolString can render.
const MaxCompactAlphabet = len(symbolAlphabet)

// Generate returns a random f-fold de Bruijn sequence of order n over the
// alphabet {0, …, k−1}: a cyclic sequence of length k^n·f in which every
// length-n window occurs exactly f times. The distribution is near-uniform
// over all such sequences (see the package documentation).
//
// Options select the random stream (WithSeed, WithRand) and the defensive
// walk cap (WithWalkBudget). Same (k, n, f, seed) ⇒ identical output.
//
// Returns ErrInvalidParameter for bad k/n/f; any other error reports an
// internal invariant violation and yields no sequence.
//
// Complexity: O(k^n·f) expected time and memory.
func Generate(k, n, f int, opts ...Option) ([]int, error) {
	g, err := NewGraph(k, n, f)
	if err != nil {
		return nil, err
	}

	o := gatherOptions(opts...)
	rng := o.rng()

	// Root 0 is as good as any: the graph is vertex-transitive and the
	// sequence is read cyclically.
	t, err := sampleArborescence(g, 0, rng, o.budget(g))
	if err != nil {
		return nil, err
	}

	c, err := BuildCircuit(g, t, rng)
	if err != nil {
		return nil, err
	}

	return c.Seq(), nil
}

// SymbolString renders seq compactly, one character per symbol, using
// digits 0–9, then a–z, then A–Z. Returns ErrAlphabetTooLarge when
// k > MaxCompactAlphabet and ErrInvalidParameter when k < 2 or a symbol
// falls outside [0, k). For larger alphabets use Format.
//
// Complexity: O(len(seq)).
func SymbolString(seq []int, k int) (string, error) {
	if k < minAlphabet {
		return "", ErrInvalidParameter
	}
	if k > MaxCompactAlphabet {
		return "", ErrAlphabetTooLarge
	}

	var b strings.Builder
	b.Grow(len(seq))
	for _, s := range seq {
		if s < 0 || s >= k {
			return "", ErrInvalidParameter
		}
		b.WriteByte(symbolAlphabet[s])
	}

	return b.String(), nil
}

// Format renders seq as comma-joined decimal symbols, unambiguous for any
// alphabet size.
//
// Complexity: O(len(seq)).
func Format(seq []int) string {
	parts := make([]string, len(seq))
	for i, s := range seq {
		parts[i] = strconv.Itoa(s)
	}

	return strings.Join(parts, ",")
}
