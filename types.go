// Package debruijn defines core types and sentinel errors for the
// de Bruijn sequence generator.
package debruijn

import "errors"

// Sentinel errors. Public entry points return only these; no partial
// results accompany an error.
var (
	// ErrInvalidParameter indicates a bad caller argument (k < 2, n < 1,
	// f < 1, out-of-range vertex or symbol, or sizes overflowing int).
	ErrInvalidParameter = errors.New("debruijn: invalid parameter")
	// ErrUnreachableRoot indicates a vertex that cannot reach the root,
	// i.e. the graph is not strongly connected from the chosen root.
	ErrUnreachableRoot = errors.New("debruijn: root unreachable from some vertex")
	// ErrImbalancedGraph indicates in-degree ≠ out-degree at some vertex,
	// or a circuit walk that stopped before covering every edge.
	ErrImbalancedGraph = errors.New("debruijn: graph is not Eulerian")
	// ErrWalkBudget indicates the loop-erased random walk exceeded its
	// defensive step budget (degenerate random source).
	ErrWalkBudget = errors.New("debruijn: random walk exceeded step budget")
	// ErrAlphabetTooLarge indicates SymbolString was asked to render an
	// alphabet beyond its 62-character repertoire.
	ErrAlphabetTooLarge = errors.New("debruijn: alphabet too large for compact rendering")
)

// Parameter bounds shared by validators.
const (
	minAlphabet = 2 // k: at least a binary alphabet
	minOrder    = 1 // n: windows of at least one symbol
	minFold     = 1 // f: at least one copy of each window
)

// Graph is the de Bruijn multigraph of order N over K symbols with edge
// multiplicity Fold. Vertices are dense integers in [0, NumVertices):
// vertex v encodes a length-(N−1) context as a base-K number, most
// significant symbol first. The edge labeled s leaves v toward
// Succ(v, s) = (v·K + s) mod NumVertices, replicated Fold times.
// A Graph is immutable after NewGraph and safe for concurrent reads.
type Graph struct {
	K    int // alphabet size, ≥ 2
	N    int // window length (order), ≥ 1
	Fold int // edge multiplicity, ≥ 1

	NumVertices int // K^(N−1); 1 when N == 1 (the empty context)
	NumEdges    int // K^N · Fold
}

// Arborescence is a spanning in-tree of a Graph rooted at Root: every
// non-root vertex has exactly one tree edge, labeled by its symbol,
// pointing one step along the walk toward the root.
type Arborescence struct {
	Root int

	// sym[v] labels v's tree edge; −1 at the root.
	sym []int
}

// TreeSymbol returns the label of v's tree edge, or −1 when v is the root.
func (a *Arborescence) TreeSymbol(v int) int { return a.sym[v] }

// Len returns the number of vertices the in-tree spans.
func (a *Arborescence) Len() int { return len(a.sym) }

// Circuit is a closed walk covering every edge of a Graph exactly once,
// recorded as the ordered list of edge labels. Read cyclically, the
// labels form the de Bruijn sequence.
type Circuit struct {
	labels []int
}

// Seq returns the edge labels along the circuit. The slice is owned by
// the Circuit; callers must not mutate it.
func (c *Circuit) Seq() []int { return c.labels }

// Len returns the number of edges in the circuit.
func (c *Circuit) Len() int { return len(c.labels) }
