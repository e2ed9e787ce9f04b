package router

import (
	"errors"
	"fmt"

	"github.com/uwmisl/puddle-core/chip"
)

// ErrBudgetExceeded is returned internally by a single group's A* search
// when it expands more than its node budget without reaching a goal.
var ErrBudgetExceeded = errors.New("router: search budget exceeded")

// NoRouteError reports that the driver loop could not find a collision-free
// plan: a per-group search exhausted its budget, a required merge would
// exceed MaxGroupSize, or the merge loop ran out of iterations (one per
// agent) with collisions remaining.
type NoRouteError struct {
	Agents []chip.DropletId
	Err    error
}

func (e *NoRouteError) Error() string {
	return fmt.Sprintf("router: no route for agents %v: %v", e.Agents, e.Err)
}

func (e *NoRouteError) Unwrap() error { return e.Err }
