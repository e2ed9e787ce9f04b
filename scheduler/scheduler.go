package scheduler

import (
	"sort"

	"github.com/uwmisl/puddle-core/chip"
	"github.com/uwmisl/puddle-core/dag"
)

// isReady reports whether every predecessor of id has already been
// committed to a schedule index.
func (s *Scheduler) isReady(g *dag.Graph, id dag.NodeId) bool {
	for _, pred := range g.Predecessors(id) {
		if _, ok := s.committed[pred]; !ok {
			return false
		}
	}
	return true
}

// Schedule selects the bound, unscheduled, ready nodes of g, ordered by
// (out_degree-in_degree, -rank) ascending so that operations which reduce
// the live droplet count run first, breaking ties toward the longer
// critical paths. It does not mutate Scheduler state; call Commit on the
// result to do that.
func (s *Scheduler) Schedule(g *dag.Graph) (Response, error) {
	ranks := CriticalPaths(g)

	var candidates []dag.NodeId
	for _, id := range g.Nodes() {
		if _, scheduled := s.committed[id]; scheduled {
			continue
		}
		if !s.isReady(g, id) {
			continue
		}
		candidates = append(candidates, id)
	}
	if len(candidates) == 0 {
		return Response{}, ErrNothingToSchedule
	}

	sort.Slice(candidates, func(i, j int) bool {
		ci, cj := candidates[i], candidates[j]
		wi := g.OutDegree(ci) - g.InDegree(ci)
		wj := g.OutDegree(cj) - g.InDegree(cj)
		if wi != wj {
			return wi < wj
		}
		return ranks[ci] > ranks[cj]
	})

	if s.limit > 0 && len(candidates) > s.limit {
		candidates = candidates[:s.limit]
	}

	running := make(map[dag.NodeId]bool, len(candidates))
	for _, id := range candidates {
		running[id] = true
	}

	var toStore []chip.DropletId
	for id := range s.committed {
		for _, out := range g.Outputs(id) {
			consumer, hasConsumer := g.ConsumerOf(out)
			if hasConsumer && !running[consumer] {
				toStore = append(toStore, out)
			}
		}
	}

	return Response{CommandsToRun: candidates, DropletsToStore: toStore}, nil
}

// Commit assigns each node in resp.CommandsToRun the next sequential
// schedule index, in the order given.
func (s *Scheduler) Commit(resp Response) {
	for _, id := range resp.CommandsToRun {
		s.committed[id] = s.nextIndex
		s.nextIndex++
	}
}

// Validate checks this module's scheduling invariants against g: the graph
// itself must be acyclic and isolate-free (delegated to dag.Graph.Validate),
// and for every edge u->v where both endpoints are committed, sched(u) must
// be strictly less than sched(v). It is meant for debug-mode assertions
// (see the planner's PUDDLE_DEBUG_VALIDATE toggle), not the hot path.
func (s *Scheduler) Validate(g *dag.Graph) error {
	if err := g.Validate(); err != nil {
		return err
	}
	for _, u := range g.Nodes() {
		su, uScheduled := s.committed[u]
		for _, v := range g.Successors(u) {
			sv, vScheduled := s.committed[v]
			if vScheduled && !uScheduled {
				return errBadTransition
			}
			if uScheduled && vScheduled && su >= sv {
				return errBadTransition
			}
		}
	}
	return nil
}
