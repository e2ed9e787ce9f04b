package dag

import (
	"errors"

	"github.com/uwmisl/puddle-core/chip"
)

// AddCommandError distinguishes the four ways AddCommand can reject a
// command, each carrying the offending droplet id so callers can act on it
// programmatically instead of string-matching the error text.
type AddCommandError struct {
	Kind    AddCommandErrorKind
	Droplet chip.DropletId
}

// AddCommandErrorKind names the four validation failure modes of AddCommand,
// checked in this fixed order.
type AddCommandErrorKind int

const (
	// Duplicate means the same droplet id appeared twice within a single
	// command's own input list, or within its own output list.
	Duplicate AddCommandErrorKind = iota
	// DoesNotExist means an input droplet id names no current edge in the
	// graph.
	DoesNotExist
	// AlreadyBound means an input droplet id's edge already has a bound
	// consumer (this command would double-consume it).
	AlreadyBound
	// AlreadyExists means an output droplet id already names a current edge
	// in the graph (ids are assigned once, never reused).
	AlreadyExists
)

func (k AddCommandErrorKind) String() string {
	switch k {
	case Duplicate:
		return "duplicate"
	case DoesNotExist:
		return "does not exist"
	case AlreadyBound:
		return "already bound"
	case AlreadyExists:
		return "already exists"
	default:
		return "unknown"
	}
}

func (e *AddCommandError) Error() string {
	return "dag: " + e.Kind.String() + ": " + e.Droplet.String()
}

// ErrCyclic is returned by Validate when the graph is not acyclic, which
// AddCommand's own construction discipline should make unreachable in
// practice; Validate checks it anyway as the debug-mode invariant it is.
var ErrCyclic = errors.New("dag: graph contains a cycle")

// ErrIsolatedNode is returned by Validate when a node has neither incoming
// nor outgoing edges. Every command in this module declares at least one
// input or output droplet, so this only arises from a Command implementation
// that declares neither.
var ErrIsolatedNode = errors.New("dag: graph contains an isolated node")
