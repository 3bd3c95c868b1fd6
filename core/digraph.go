package core

import "fmt"

// AddNode allocates the next dense NodeID and returns it.
// Complexity: O(1) amortized.
func (g *Digraph) AddNode() NodeID {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := NodeID(len(g.out))
	g.out = append(g.out, nil)
	g.in = append(g.in, nil)

	return id
}

// AddNodes allocates n consecutive NodeIDs and returns the first one.
// With an empty graph, AddNodes(n) makes [0, n) valid.
// Complexity: O(n) amortized.
func (g *Digraph) AddNodes(n int) NodeID {
	g.mu.Lock()
	defer g.mu.Unlock()

	first := NodeID(len(g.out))
	for i := 0; i < n; i++ {
		g.out = append(g.out, nil)
		g.in = append(g.in, nil)
	}

	return first
}

// AddEdge inserts an edge from u to v with the given weight.
//
// Validation (in order):
//  1. u and v must lie in [0, Order())           → ErrNodeOutOfRange.
//  2. weight must be 1 on unweighted graphs      → ErrBadWeight.
//  3. u == v requires WithLoops()                → ErrLoopNotAllowed.
//
// On undirected graphs the arc is mirrored into v's adjacency (self-loops
// appear once). Parallel edges are permitted; shortest-path credit in
// betweenness splits across them via the sigma counters.
// Complexity: O(1) amortized.
func (g *Digraph) AddEdge(u, v NodeID, weight float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	n := NodeID(len(g.out))
	if u < 0 || u >= n {
		return fmt.Errorf("%w: from=%d order=%d", ErrNodeOutOfRange, u, n)
	}
	if v < 0 || v >= n {
		return fmt.Errorf("%w: to=%d order=%d", ErrNodeOutOfRange, v, n)
	}
	if !g.weighted && weight != 1 {
		return fmt.Errorf("%w: weight=%v", ErrBadWeight, weight)
	}
	if u == v && !g.allowLoops {
		return fmt.Errorf("%w: node=%d", ErrLoopNotAllowed, u)
	}

	g.out[u] = append(g.out[u], Arc{To: v, Weight: weight})
	g.in[v] = append(g.in[v], u)
	if !g.directed && u != v {
		g.out[v] = append(g.out[v], Arc{To: u, Weight: weight})
		g.in[u] = append(g.in[u], v)
	}
	g.size++

	return nil
}

// Order returns the number of nodes. Complexity: O(1).
func (g *Digraph) Order() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.out)
}

// EdgeCount returns the number of AddEdge calls that succeeded
// (an undirected edge counts once). Complexity: O(1).
func (g *Digraph) EdgeCount() int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.size
}

// Adjacent returns a copy of the outgoing arcs of id, in insertion order.
// Out-of-range ids yield nil, matching the Graph contract.
// Complexity: O(deg(id)).
func (g *Digraph) Adjacent(id NodeID) []Arc {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if id < 0 || int(id) >= len(g.out) {
		return nil
	}
	if len(g.out[id]) == 0 {
		return nil
	}
	arcs := make([]Arc, len(g.out[id]))
	copy(arcs, g.out[id])

	return arcs
}

// Incoming returns a copy of the predecessor IDs of id, in insertion order.
// On undirected graphs this is the neighbor set. Out-of-range ids yield nil.
// Complexity: O(indeg(id)).
func (g *Digraph) Incoming(id NodeID) []NodeID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if id < 0 || int(id) >= len(g.in) {
		return nil
	}
	if len(g.in[id]) == 0 {
		return nil
	}
	ids := make([]NodeID, len(g.in[id]))
	copy(ids, g.in[id])

	return ids
}

// OutDegree returns the number of outgoing arcs of id (0 when out of range).
// Complexity: O(1).
func (g *Digraph) OutDegree(id NodeID) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if id < 0 || int(id) >= len(g.out) {
		return 0
	}

	return len(g.out[id])
}

// Directed reports whether new edges are one-way.
func (g *Digraph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// Weighted reports whether non-unit weights are permitted.
func (g *Digraph) Weighted() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.weighted
}

// Looped reports whether self-loops are permitted.
func (g *Digraph) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}

// Clone returns an independent deep copy of the graph.
// Complexity: O(V + E).
func (g *Digraph) Clone() *Digraph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Digraph{
		directed:   g.directed,
		weighted:   g.weighted,
		allowLoops: g.allowLoops,
		out:        make([][]Arc, len(g.out)),
		in:         make([][]NodeID, len(g.in)),
		size:       g.size,
	}
	for i, arcs := range g.out {
		if len(arcs) == 0 {
			continue
		}
		c.out[i] = append([]Arc(nil), arcs...)
	}
	for i, ids := range g.in {
		if len(ids) == 0 {
			continue
		}
		c.in[i] = append([]NodeID(nil), ids...)
	}

	return c
}
