package executor

import (
	"errors"
	"fmt"

	"github.com/uwmisl/puddle-core/chip"
	"github.com/uwmisl/puddle-core/dag"
)

// ErrNonAdjacentStep is returned when a path advances a droplet by more
// than one cell (or a diagonal) in a single tick, which the router's own
// motion primitives (stay, N, S, E, W) never produce; surfacing it here
// catches a malformed route rather than silently corrupting the gridview.
var ErrNonAdjacentStep = errors.New("executor: route step is not stay or a 4-neighbor")

// RunError names which scheduled node's Run or Finalize call failed.
type RunError struct {
	NodeId dag.NodeId
	Err    error
}

func (e *RunError) Error() string {
	return fmt.Sprintf("executor: node %d: %v", e.NodeId, e.Err)
}

func (e *RunError) Unwrap() error { return e.Err }

// RouteError names which droplet's route step failed to apply.
type RouteError struct {
	Droplet chip.DropletId
	Err     error
}

func (e *RouteError) Error() string {
	return fmt.Sprintf("executor: droplet %s: %v", e.Droplet, e.Err)
}

func (e *RouteError) Unwrap() error { return e.Err }
