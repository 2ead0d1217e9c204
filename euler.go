package debruijn

import "math/rand"

// BuildCircuit produces one Eulerian circuit of g guided by the in-tree t.
// rng==nil falls back to the deterministic default stream (seed==0 policy).
//
// Each vertex's k·f out-edge labels are shuffled, then one copy of the
// vertex's tree edge is moved to the last slot (the root keeps a free
// order). Starting from t.Root, the walk repeatedly takes the next unused
// edge in the current vertex's order; the tree-edge-last constraint
// guarantees the walk exhausts every edge before returning to rest at the
// root (van Aardenne-Ehrenfest–de Bruijn construction).
//
// Returns ErrInvalidParameter when t does not fit g, and
// ErrImbalancedGraph when the degree census fails or the walk stops short
// of covering all edges (internal invariants).
//
// Complexity: O(E) time and memory, E = k^n·f.
func BuildCircuit(g *Graph, t *Arborescence, rng *rand.Rand) (*Circuit, error) {
	if t == nil || t.Len() != g.NumVertices || t.Root < 0 || t.Root >= g.NumVertices {
		return nil, ErrInvalidParameter
	}
	if err := g.checkBalance(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rngFromSeed(0)
	}

	out := g.OutDegree()

	// Fix each vertex's edge order: uniform shuffle, tree edge pinned last.
	order := make([][]int, g.NumVertices)
	for v := range order {
		labels := make([]int, 0, out)
		for s := 0; s < g.K; s++ {
			for c := 0; c < g.Fold; c++ {
				labels = append(labels, s)
			}
		}
		shuffleInPlace(labels, rng)
		if v != t.Root {
			pinLast(labels, t.TreeSymbol(v))
		}
		order[v] = labels
	}

	// Single walk from the root, consuming the next unused edge per visit.
	var (
		next   = make([]int, g.NumVertices) // per-vertex cursor into order
		labels = make([]int, 0, g.NumEdges)
		v      = t.Root
	)
	for next[v] < out {
		s := order[v][next[v]]
		next[v]++
		labels = append(labels, s)
		v = g.Succ(v, s)
	}
	if len(labels) != g.NumEdges || v != t.Root {
		return nil, ErrImbalancedGraph
	}

	return &Circuit{labels: labels}, nil
}

// pinLast moves the first occurrence of sym to the end of labels while
// preserving the relative order of the remaining entries.
func pinLast(labels []int, sym int) {
	for i, s := range labels {
		if s == sym {
			copy(labels[i:], labels[i+1:])
			labels[len(labels)-1] = sym

			return
		}
	}
}
