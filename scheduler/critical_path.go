package scheduler

import "github.com/uwmisl/puddle-core/dag"

// CriticalPaths computes, for every node, the length of the longest path
// from that node down through its successors: a node with no successors has
// rank 1, and every other node has rank 1 + the maximum rank among its
// successors. Ranks are computed depth-first with memoization rather than
// via an explicit reverse-topological pass, since the recursion already
// visits each node exactly once on an acyclic graph.
func CriticalPaths(g *dag.Graph) map[dag.NodeId]int {
	ranks := make(map[dag.NodeId]int, len(g.Nodes()))
	var rank func(id dag.NodeId) int
	rank = func(id dag.NodeId) int {
		if r, ok := ranks[id]; ok {
			return r
		}
		best := 0
		for _, succ := range g.Successors(id) {
			if r := rank(succ); r > best {
				best = r
			}
		}
		r := best + 1
		ranks[id] = r
		return r
	}
	for _, id := range g.Nodes() {
		rank(id)
	}
	return ranks
}
