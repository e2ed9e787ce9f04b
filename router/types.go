package router

import "github.com/uwmisl/puddle-core/chip"

// Edge costs per SPEC_FULL.md 4.4: a slight penalty on staying in place
// encourages progress while still allowing an agent to wait out a conflict.
const (
	StayCost = 4
	MoveCost = 5
)

// CollisionCost biases a group's search away from time/space conflicts with
// another group's already-committed path without forbidding them outright.
const CollisionCost = 50

// MaxGroupSize bounds how large a merged group may grow before the driver
// loop gives up and reports NoRouteError.
const MaxGroupSize = 4

// nodeBudgetPerAgent is the per-group A* expansion budget, scaled by group
// size: 20_000 * |group|.
const nodeBudgetPerAgent = 20_000

// Agent is one droplet that must move from its current location to a
// destination this routing round, occupying a Dimensions-shaped rectangle
// along the way.
type Agent struct {
	ID          chip.DropletId
	Location    chip.Location
	Destination chip.Location
	Dimensions  chip.Location
}

func (a Agent) rectangleAt(loc chip.Location) chip.Rectangle {
	return chip.Rectangle{Location: loc, Dimensions: a.Dimensions}
}

func (a Agent) heuristic(loc chip.Location) int {
	return MoveCost * loc.DistanceTo(a.Destination)
}

// Path is a non-empty sequence of locations, starting at an agent's source.
// A path shorter than another is considered to hold its final location
// indefinitely past its own length (see PathAt).
type Path []chip.Location

// PathAt returns the position path holds at time t: p[t] if t is within
// range, else the stationary tail p[len(p)-1].
func PathAt(p Path, t int) chip.Location {
	if t < len(p) {
		return p[t]
	}
	return p[len(p)-1]
}

// Request is the router's public input: the agents that must move this
// round, evaluated against grid.
type Request struct {
	Grid   *chip.Grid
	Agents []Agent
}

// Result maps each routed agent to its computed path.
type Result map[chip.DropletId]Path
