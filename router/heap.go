package router

import "container/heap"

// pqItem is one open node in a group's A* search: its state (groupNode), the
// cost so far (g), the total estimated cost (g+h), and an insertion sequence
// used to break ties LIFO, matching the determinism rule in SPEC_FULL.md.
type pqItem struct {
	node  groupNode
	g     int
	total int
	seq   int
}

// openPQ is a min-heap of *pqItem ordered by (total ascending, seq
// descending), the generalization of the single-source shortest-path
// package's scalar-distance heap to a two-key tie-broken priority.
type openPQ []*pqItem

func (pq openPQ) Len() int { return len(pq) }

func (pq openPQ) Less(i, j int) bool {
	if pq[i].total != pq[j].total {
		return pq[i].total < pq[j].total
	}
	return pq[i].seq > pq[j].seq
}

func (pq openPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *openPQ) Push(x interface{}) { *pq = append(*pq, x.(*pqItem)) }

func (pq *openPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

var _ heap.Interface = (*openPQ)(nil)
