package debruijn

import "math"

// NewGraph constructs the de Bruijn multigraph of order n over an alphabet
// of k symbols with edge multiplicity f. The graph is purely arithmetic:
// no adjacency lists are stored, successors are computed by Succ.
// Every vertex has out-degree and in-degree k·f, so the graph is Eulerian
// and strongly connected by construction.
// Returns ErrInvalidParameter if k < 2, n < 1, f < 1, or if k^n·f would
// overflow int.
//
// Complexity: O(n) time, O(1) memory.
func NewGraph(k, n, f int) (*Graph, error) {
	if k < minAlphabet || n < minOrder || f < minFold {
		return nil, ErrInvalidParameter
	}

	// V = k^(n−1) with overflow guards; E = V·k·f. The k·f product is
	// guarded before it is used as a divisor.
	if k > math.MaxInt/f {
		return nil, ErrInvalidParameter
	}
	v := 1
	for i := 1; i < n; i++ {
		if v > math.MaxInt/k {
			return nil, ErrInvalidParameter
		}
		v *= k
	}
	if v > math.MaxInt/(k*f) {
		return nil, ErrInvalidParameter
	}

	return &Graph{
		K:           k,
		N:           n,
		Fold:        f,
		NumVertices: v,
		NumEdges:    v * k * f,
	}, nil
}

// Succ returns the vertex reached from v along any edge labeled s:
// append s to the context, drop its first symbol.
// Complexity: O(1).
func (g *Graph) Succ(v, s int) int {
	return (v*g.K + s) % g.NumVertices
}

// Pred returns the vertex whose edge labeled with v's last symbol lands on
// v, given p as the first symbol of the predecessor context: prepend p,
// drop the last symbol.
// Complexity: O(1).
func (g *Graph) Pred(v, p int) int {
	return p*(g.NumVertices/g.K) + v/g.K
}

// OutDegree returns the number of parallel out-edges at every vertex (k·f).
func (g *Graph) OutDegree() int { return g.K * g.Fold }

// Context decodes vertex v into its length-(N−1) symbol tuple, most
// significant symbol first. For N == 1 the context is empty.
// Complexity: O(n) time and memory.
func (g *Graph) Context(v int) []int {
	ctx := make([]int, g.N-1)
	for i := g.N - 2; i >= 0; i-- {
		ctx[i] = v % g.K
		v /= g.K
	}

	return ctx
}

// VertexOf encodes a length-(N−1) symbol tuple back into its vertex index.
// Inverse of Context. Returns ErrInvalidParameter on a wrong tuple length
// or an out-of-range symbol.
// Complexity: O(n).
func (g *Graph) VertexOf(ctx []int) (int, error) {
	if len(ctx) != g.N-1 {
		return 0, ErrInvalidParameter
	}

	v := 0
	for _, s := range ctx {
		if s < 0 || s >= g.K {
			return 0, ErrInvalidParameter
		}
		v = v*g.K + s
	}

	return v, nil
}

// checkBalance verifies in-degree == out-degree at every vertex by a full
// edge census. The arithmetic construction makes imbalance unreachable;
// the check guards against future representation changes.
// Returns ErrImbalancedGraph on violation.
//
// Complexity: O(V·k) time, O(V) memory.
func (g *Graph) checkBalance() error {
	indeg := make([]int, g.NumVertices)
	for v := 0; v < g.NumVertices; v++ {
		for s := 0; s < g.K; s++ {
			indeg[g.Succ(v, s)] += g.Fold
		}
	}
	for _, d := range indeg {
		if d != g.OutDegree() {
			return ErrImbalancedGraph
		}
	}

	return nil
}
