package centrality

import "github.com/katalvlaran/nodal/core"

// Degree scores every node by the size of its outgoing adjacency.
// On undirected graphs this is the plain degree; on directed graphs the
// outdegree. The result is sorted by descending score, ties by ascending
// NodeID.
//
// Complexity: O(V) plus the sort. No failure modes beyond a nil graph.
func Degree(g core.Graph) (Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	n := g.Order()
	scores := make([]float64, n)
	for i := 0; i < n; i++ {
		scores[i] = float64(len(g.Adjacent(core.NodeID(i))))
	}

	return newResult(scores), nil
}
