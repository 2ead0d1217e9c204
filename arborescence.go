package debruijn

import "math/rand"

// SampleArborescence draws a uniformly random spanning in-tree of g rooted
// at root, using Wilson's loop-erased random walk with the default step
// budget. rng==nil falls back to the deterministic default stream
// (seed==0 policy).
//
// From every vertex not yet in the tree, a random walk picks a uniformly
// random out-edge per step until it hits the tree; cycles formed along the
// way are erased by keeping only each vertex's last exit. Because all k
// successors carry the same multiplicity f, a uniform symbol choice is a
// uniform edge choice. The surviving path joins the tree, so every non-root
// vertex ends up with exactly one tree edge pointing one step toward root.
//
// Returns ErrInvalidParameter on an out-of-range root, ErrUnreachableRoot
// if some vertex cannot reach root (impossible for a NewGraph-built graph),
// and ErrWalkBudget if the walk exceeds its step cap.
//
// Complexity: O(V·cover time) expected steps; O(V) memory.
func SampleArborescence(g *Graph, root int, rng *rand.Rand) (*Arborescence, error) {
	return sampleArborescence(g, root, rng, 0)
}

func sampleArborescence(g *Graph, root int, rng *rand.Rand, budget int) (*Arborescence, error) {
	if root < 0 || root >= g.NumVertices {
		return nil, ErrInvalidParameter
	}
	if err := reachesRoot(g, root); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rngFromSeed(0)
	}
	if budget <= 0 {
		budget = (options{}).budget(g)
	}

	var (
		inTree = make([]bool, g.NumVertices)
		exit   = make([]int, g.NumVertices) // last exit symbol during the current walk
		sym    = make([]int, g.NumVertices)
		steps  int
	)
	for v := range sym {
		sym[v] = -1
	}
	inTree[root] = true

	for v := 0; v < g.NumVertices; v++ {
		// Walk from v until the tree is hit. Overwriting exit[u] erases any
		// cycle through u: only the final exit survives.
		u := v
		for !inTree[u] {
			steps++
			if steps > budget {
				return nil, ErrWalkBudget
			}
			s := rng.Intn(g.K)
			exit[u] = s
			u = g.Succ(u, s)
		}
		// Retrace the loop-erased path and freeze it into the tree.
		u = v
		for !inTree[u] {
			inTree[u] = true
			sym[u] = exit[u]
			u = g.Succ(u, exit[u])
		}
	}

	return &Arborescence{Root: root, sym: sym}, nil
}

// reachesRoot verifies every vertex reaches root, by BFS over reversed
// edges from root. Predecessors come from Pred, one per leading symbol.
// Returns ErrUnreachableRoot on a shortfall.
//
// Complexity: O(V·k) time, O(V) memory.
func reachesRoot(g *Graph, root int) error {
	var (
		seen  = make([]bool, g.NumVertices)
		queue = make([]int, 0, g.NumVertices)
		count = 1
	)
	seen[root] = true
	queue = append(queue, root)

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for p := 0; p < g.K; p++ {
			u := g.Pred(v, p)
			if !seen[u] {
				seen[u] = true
				count++
				queue = append(queue, u)
			}
		}
	}
	if count != g.NumVertices {
		return ErrUnreachableRoot
	}

	return nil
}
