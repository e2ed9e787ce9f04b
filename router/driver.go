package router

import (
	"errors"
	"sort"

	"github.com/rs/zerolog"

	"github.com/uwmisl/puddle-core/chip"
)

// Router computes non-colliding paths for a set of agents via the
// singleton-first, sorted-retry, group-merge driver loop.
type Router struct {
	logger zerolog.Logger
}

// New returns a Router. A zero Logger disables logging.
func New(logger zerolog.Logger) *Router {
	return &Router{logger: logger}
}

// namedGroup is a group of agents routed together, along with the A* cost
// of its last successful route.
type namedGroup struct {
	agents []Agent
	cost   int
}

func idsOf(agents []Agent) []chip.DropletId {
	out := make([]chip.DropletId, len(agents))
	for i, a := range agents {
		out[i] = a.ID
	}
	return out
}

func findGroupIndex(groups []namedGroup, id chip.DropletId) int {
	for i, g := range groups {
		for _, a := range g.agents {
			if a.ID == id {
				return i
			}
		}
	}
	return -1
}

func removeTwo(groups []namedGroup, i, j int) []namedGroup {
	if i > j {
		i, j = j, i
	}
	out := make([]namedGroup, 0, len(groups)-2)
	for k, g := range groups {
		if k == i || k == j {
			continue
		}
		out = append(out, g)
	}
	return out
}

func resultFrom(comm *committedState) Result {
	r := make(Result, len(comm.paths))
	for id, p := range comm.paths {
		r[id] = p
	}
	return r
}

type collision struct {
	A, B chip.DropletId
	T    int
}

// findCollisions does a stepwise rectangle check over every pair of
// committed paths, in deterministic (sorted) id order, and returns the
// first conflicting time step for each colliding pair.
func findCollisions(comm *committedState) []collision {
	ids := make([]chip.DropletId, 0, len(comm.paths))
	for id := range comm.paths {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })

	var out []collision
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			a, b := ids[i], ids[j]
			pa, pb := comm.paths[a], comm.paths[b]
			maxLen := len(pa)
			if len(pb) > maxLen {
				maxLen = len(pb)
			}
			for t := 0; t < maxLen; t++ {
				rectA := chip.Rectangle{Location: PathAt(pa, t), Dimensions: comm.dims[a]}
				rectB := chip.Rectangle{Location: PathAt(pb, t), Dimensions: comm.dims[b]}
				if rectA.CollisionDistance(rectB) <= 0 {
					out = append(out, collision{A: a, B: b, T: t})
					break
				}
			}
		}
	}
	return out
}

func noRoute(agents []Agent, err error) error {
	return &NoRouteError{Agents: idsOf(agents), Err: err}
}

// Route runs the driver loop described in SPEC_FULL.md 4.4: route every
// agent as its own singleton group, check for collisions, retry once in
// cost-descending order, and failing that merge colliding groups until the
// plan is collision-free or MaxGroupSize is exceeded.
func (r *Router) Route(req Request) (Result, error) {
	if len(req.Agents) == 0 {
		return Result{}, nil
	}

	groups := make([]namedGroup, len(req.Agents))
	committed := newCommittedState()
	for i, a := range req.Agents {
		paths, cost, err := groupAStar(req.Grid, []Agent{a}, committed)
		if err != nil {
			return nil, noRoute(req.Agents, err)
		}
		committed.add(a.ID, a.Dimensions, paths[a.ID])
		groups[i] = namedGroup{agents: []Agent{a}, cost: cost}
	}
	r.logger.Debug().Int("agents", len(req.Agents)).Msg("router: singleton pass complete")

	if cs := findCollisions(committed); len(cs) == 0 {
		return resultFrom(committed), nil
	}

	sorted := append([]namedGroup{}, groups...)
	rng := newRNG()
	rng.Shuffle(len(sorted), func(i, j int) { sorted[i], sorted[j] = sorted[j], sorted[i] })
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].cost > sorted[j].cost })

	committed2 := newCommittedState()
	retried := make([]namedGroup, 0, len(sorted))
	for _, g := range sorted {
		paths, cost, err := groupAStar(req.Grid, g.agents, committed2)
		if err != nil {
			return nil, noRoute(req.Agents, err)
		}
		for _, a := range g.agents {
			committed2.add(a.ID, a.Dimensions, paths[a.ID])
		}
		retried = append(retried, namedGroup{agents: g.agents, cost: cost})
	}
	groups = retried
	r.logger.Debug().Msg("router: cost-sorted retry complete")

	collisions := findCollisions(committed2)
	if len(collisions) == 0 {
		return resultFrom(committed2), nil
	}

	maxIterations := len(req.Agents)
	for iter := 0; iter < maxIterations; iter++ {
		if len(collisions) == 0 {
			return resultFrom(committed2), nil
		}

		col := collisions[0]
		idxA := findGroupIndex(groups, col.A)
		idxB := findGroupIndex(groups, col.B)
		if idxA == idxB || idxA < 0 || idxB < 0 {
			collisions = collisions[1:]
			continue
		}

		merged := append(append([]Agent{}, groups[idxA].agents...), groups[idxB].agents...)
		if len(merged) > MaxGroupSize {
			return nil, noRoute(req.Agents, errors.New("merge would exceed max group size"))
		}

		for _, a := range groups[idxA].agents {
			committed2.remove(a.ID)
		}
		for _, a := range groups[idxB].agents {
			committed2.remove(a.ID)
		}
		groups = removeTwo(groups, idxA, idxB)

		paths, cost, err := groupAStar(req.Grid, merged, committed2)
		if err != nil {
			return nil, noRoute(req.Agents, err)
		}
		for _, a := range merged {
			committed2.add(a.ID, a.Dimensions, paths[a.ID])
		}
		groups = append(groups, namedGroup{agents: merged, cost: cost})
		r.logger.Debug().Int("merged_size", len(merged)).Msg("router: merged colliding groups")

		collisions = findCollisions(committed2)
	}

	return nil, noRoute(req.Agents, errors.New("exceeded merge retries without a collision-free plan"))
}
