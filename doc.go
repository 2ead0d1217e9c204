// Package debruijn generates random f-fold de Bruijn sequences over a
// finite integer alphabet.
//
// What:
//
//   - NewGraph builds the de Bruijn multigraph of order n over k symbols
//     with edge multiplicity f: vertices are the k^(n−1) length-(n−1)
//     contexts, and every context has k·f labeled out-edges.
//   - SampleArborescence draws a uniformly random spanning in-tree rooted
//     at a chosen vertex via Wilson's loop-erased random walk.
//   - BuildCircuit turns graph + in-tree into one Eulerian circuit: each
//     vertex's out-edges are shuffled with the tree edge pinned last, then
//     a single walk from the root consumes every edge exactly once.
//   - Generate chains the three steps and returns the flat symbol sequence
//     of length k^n·f in which every length-n cyclic window occurs exactly
//     f times.
//
// Why:
//
//   - Experiment design: pseudo-random trial orderings with exact n-back
//     counterbalancing (see the sequencer package).
//   - Testing and fuzzing: compact inputs covering all length-n substrings.
//   - Combinatorics: sampling de Bruijn sequences near-uniformly at random.
//
// Sampling distribution:
//
//   - By the BEST theorem, a uniform in-tree plus independent uniform edge
//     orders (tree edge last) induces the uniform distribution over Eulerian
//     circuits up to the fixed starting edge at the root. Generate fixes the
//     start at vertex 0, so the output is uniform over sequences up to
//     rotation — near-uniform in the sense documented here.
//
// Determinism:
//
//   - All randomness flows from an explicit seed (WithSeed) or a
//     caller-supplied *rand.Rand (WithRand). Same parameters and seed ⇒
//     identical sequence. No global or time-based sources.
//
// Complexity:
//
//   - NewGraph:            O(1) (index arithmetic; no adjacency storage).
//   - SampleArborescence:  O(V·cover time) expected; V = k^(n−1).
//   - BuildCircuit:        O(E) with E = k^n·f.
//   - Generate:            O(E) expected overall.
//
// Errors:
//
//   - ErrInvalidParameter: k < 2, n < 1, f < 1, or sizes overflowing int.
//   - ErrUnreachableRoot: some vertex cannot reach the root (internal
//     invariant; unreachable for a correctly built graph).
//   - ErrImbalancedGraph: in-degree ≠ out-degree, or the circuit walk
//     stopped before covering all edges (internal invariant).
//   - ErrWalkBudget: the random walk exceeded its defensive step budget
//     (possible only under a degenerate random source).
//   - ErrAlphabetTooLarge: SymbolString called with k > 62.
package debruijn
