// Package sequencer builds factorial trial blocks for experiment design on
// top of the de Bruijn generator.
//
// What:
//
//   - Each distinct combination of factor levels is one trial type; the
//     trial types form the alphabet of a de Bruijn sequence of order n.
//   - New enumerates the k = |factor₁|·…·|factorₘ| combinations in a fixed
//     lexicographic order (rightmost factor varies fastest).
//   - Block generates a random trial ordering in which every length-n run
//     of trial types occurs exactly f times when read cyclically.
//
// Why:
//
//   - n-back counterbalancing: history effects (priming, adaptation,
//     congruence carry-over) are balanced exactly, not just in expectation.
//   - A fresh random block per call, reproducible under a fixed seed.
//
// Edge handling (WithEdge):
//
//   - A canonical block is cyclic: n−1 runs straddle the wrap point. When a
//     session traverses the block linearly, EdgeEnd appends the first n−1
//     trials at the end (EdgeStart mirrors at the front) so that every run
//     also occurs f times without wraparound, at the price of a slightly
//     unbalanced trial-type count.
//
// Errors:
//
//   - debruijn.ErrInvalidParameter: n < 1, no factors, an empty factor, a
//     non-positive fold, or fewer than two trial types overall.
//
// Complexity: Block is O(f·k^n) expected time and memory.
package sequencer
