package placer

import (
	"errors"
	"fmt"

	"github.com/uwmisl/puddle-core/chip"
	"github.com/uwmisl/puddle-core/dag"
)

// ErrNoOffset is wrapped by PlacementError when no candidate offset (or the
// single trusted offset, for a pinned command) satisfied the grid-fit,
// peripheral-compatibility, and gap rules.
var ErrNoOffset = errors.New("placer: no compatible offset found")

// PlacementError names which command or stored droplet a placement attempt
// failed for.
type PlacementError struct {
	Command *dag.NodeId
	Droplet *chip.DropletId
	Err     error
}

func (e *PlacementError) Error() string {
	switch {
	case e.Command != nil:
		return fmt.Sprintf("placer: command %d: %v", *e.Command, e.Err)
	case e.Droplet != nil:
		return fmt.Sprintf("placer: stored droplet %s: %v", e.Droplet, e.Err)
	default:
		return fmt.Sprintf("placer: %v", e.Err)
	}
}

func (e *PlacementError) Unwrap() error { return e.Err }
