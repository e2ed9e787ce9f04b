package placer

import (
	"github.com/uwmisl/puddle-core/chip"
	"github.com/uwmisl/puddle-core/command"
	"github.com/uwmisl/puddle-core/dag"
)

// CommandRequest pairs a scheduled graph node with the placement request
// its command produced. Requests are placed in the given slice order, which
// the caller (the planner) controls — earlier entries claim grid cells
// first.
type CommandRequest struct {
	Id  dag.NodeId
	Req command.Request
}

// StoredDropletRequest asks the placer to find a fresh resting location for
// a droplet that is not part of this round's running set but must remain on
// the grid.
type StoredDropletRequest struct {
	Id              chip.DropletId
	Dimensions      chip.Location
	CurrentLocation chip.Location
}

// Result is the placer's output: one Placement per requested command
// (command.Shape.Empty() commands map to the empty Placement), and one
// resting location per stored droplet.
type Result struct {
	Placements      map[dag.NodeId]chip.Placement
	StoredLocations map[chip.DropletId]chip.Location
}
