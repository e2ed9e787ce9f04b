package router

import (
	"container/heap"
	"fmt"

	"github.com/uwmisl/puddle-core/chip"
)

// groupNode is one state in a group's A* search: every member agent's
// current location, in group order, plus the elapsed time step.
type groupNode struct {
	locs []chip.Location
	time int
}

func (n groupNode) key() string {
	return fmt.Sprintf("%v#%d", n.locs, n.time)
}

func (n groupNode) isDone(group []Agent) bool {
	for i, a := range group {
		if n.locs[i] != a.Destination {
			return false
		}
	}
	return true
}

func (n groupNode) heuristic(group []Agent) int {
	total := 0
	for i, a := range group {
		total += a.heuristic(n.locs[i])
	}
	return total
}

// committedState is the set of paths already settled by earlier groups in
// the current driver pass, used only to bias later groups' searches away
// from conflicting with them.
type committedState struct {
	paths  map[chip.DropletId]Path
	dims   map[chip.DropletId]chip.Location
	maxLen int
}

func newCommittedState() *committedState {
	return &committedState{paths: make(map[chip.DropletId]Path), dims: make(map[chip.DropletId]chip.Location)}
}

func (c *committedState) add(id chip.DropletId, dims chip.Location, path Path) {
	c.paths[id] = path
	c.dims[id] = dims
	if len(path) > c.maxLen {
		c.maxLen = len(path)
	}
}

func (c *committedState) remove(id chip.DropletId) {
	delete(c.paths, id)
	delete(c.dims, id)
	max := 0
	for _, p := range c.paths {
		if len(p) > max {
			max = len(p)
		}
	}
	c.maxLen = max
}

// collisionPenalty returns CollisionCost for every committed agent that node
// collides with at node.time, soft-biasing the search away from conflicts
// without forbidding them.
func (n groupNode) collisionPenalty(group []Agent, comm *committedState) int {
	penalty := 0
	for i, a := range group {
		rect := a.rectangleAt(n.locs[i])
		for id, path := range comm.paths {
			otherRect := chip.Rectangle{Location: PathAt(path, n.time), Dimensions: comm.dims[id]}
			if rect.CollisionDistance(otherRect) <= 0 {
				penalty += CollisionCost
			}
		}
	}
	return penalty
}

type combo struct {
	locs []chip.Location
	cost int
}

type agentCandidate struct {
	loc  chip.Location
	cost int
}

// successors returns every combo reachable from node in one step: the
// Cartesian product of each agent's 5 candidate moves, filtered to those
// that keep every agent's rectangle on the grid and leave every pair of
// agents in the group non-colliding.
func successors(grid *chip.Grid, group []Agent, node groupNode) []combo {
	candidates := make([][]agentCandidate, len(group))
	for i, a := range group {
		cur := node.locs[i]
		for _, off := range chip.Offset5 {
			next := cur.Add(off)
			if !grid.RectangleFits(a.rectangleAt(next)) {
				continue
			}
			cost := StayCost
			if off != (chip.Location{}) {
				cost = MoveCost
			}
			candidates[i] = append(candidates[i], agentCandidate{loc: next, cost: cost})
		}
	}

	var out []combo
	cur := make([]chip.Location, 0, len(group))
	var build func(idx, costSoFar int)
	build = func(idx, costSoFar int) {
		if idx == len(group) {
			out = append(out, combo{locs: append([]chip.Location{}, cur...), cost: costSoFar})
			return
		}
		for _, c := range candidates[idx] {
			rectNew := group[idx].rectangleAt(c.loc)
			ok := true
			for j := 0; j < idx; j++ {
				if rectNew.CollisionDistance(group[j].rectangleAt(cur[j])) <= 0 {
					ok = false
					break
				}
			}
			if !ok {
				continue
			}
			cur = append(cur, c.loc)
			build(idx+1, costSoFar+c.cost)
			cur = cur[:len(cur)-1]
		}
	}
	build(0, 0)
	return out
}

// groupAStar searches for a minimum-cost plan that brings every agent in
// group to its destination, biased away from comm's already-committed
// paths. It returns one path per agent, keyed by droplet id, and the
// search's total g-cost at the goal.
func groupAStar(grid *chip.Grid, group []Agent, comm *committedState) (map[chip.DropletId]Path, int, error) {
	start := groupNode{locs: make([]chip.Location, len(group)), time: 0}
	for i, a := range group {
		start.locs[i] = a.Location
	}

	nodeByKey := map[string]groupNode{start.key(): start}
	cameFrom := map[string]string{start.key(): ""}
	gScore := map[string]int{start.key(): 0}
	closed := map[string]bool{}

	pq := &openPQ{}
	heap.Init(pq)
	seq := 0
	heap.Push(pq, &pqItem{node: start, g: 0, total: start.heuristic(group), seq: seq})

	budget := nodeBudgetPerAgent * len(group)
	expanded := 0

	for pq.Len() > 0 {
		item := heap.Pop(pq).(*pqItem)
		key := item.node.key()
		if closed[key] {
			continue
		}
		closed[key] = true
		expanded++
		if expanded > budget {
			return nil, 0, ErrBudgetExceeded
		}

		if item.node.isDone(group) && item.node.time >= comm.maxLen {
			return reconstruct(nodeByKey, cameFrom, key, group), item.g, nil
		}

		for _, c := range successors(grid, group, item.node) {
			next := groupNode{locs: c.locs, time: item.node.time + 1}
			nk := next.key()
			if closed[nk] {
				continue
			}
			tentativeG := item.g + c.cost
			if prev, ok := gScore[nk]; ok && tentativeG >= prev {
				continue
			}
			gScore[nk] = tentativeG
			cameFrom[nk] = key
			nodeByKey[nk] = next
			h := next.heuristic(group) + next.collisionPenalty(group, comm)
			seq++
			heap.Push(pq, &pqItem{node: next, g: tentativeG, total: tentativeG + h, seq: seq})
		}
	}

	return nil, 0, ErrBudgetExceeded
}

func reconstruct(nodeByKey map[string]groupNode, cameFrom map[string]string, goalKey string, group []Agent) map[chip.DropletId]Path {
	var chain []groupNode
	for k := goalKey; k != ""; k = cameFrom[k] {
		chain = append(chain, nodeByKey[k])
	}
	// chain is goal-to-start; reverse into start-to-goal.
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}

	paths := make(map[chip.DropletId]Path, len(group))
	for i, a := range group {
		p := make(Path, len(chain))
		for t, n := range chain {
			p[t] = n.locs[i]
		}
		paths[a.ID] = p
	}
	return paths
}
