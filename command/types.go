package command

import "github.com/uwmisl/puddle-core/chip"

// RunStatus reports whether a command has more run steps remaining.
type RunStatus int

const (
	// KeepGoing means Run must be invoked again on the next tick.
	KeepGoing RunStatus = iota
	// Done means the command has finished; Finalize will be invoked next.
	Done
)

// Shape is a command's abstract mini-grid: the rectangle of cells it needs,
// and any peripheral each cell requires (the zero value, chip.KindNone,
// means "any cell will do").
type Shape struct {
	Dimensions  chip.Location
	Peripherals map[chip.Location]chip.PeripheralKind
}

// PeripheralAt returns the peripheral kind required at local, or KindNone if
// the shape places no requirement there.
func (s Shape) PeripheralAt(local chip.Location) chip.PeripheralKind {
	if s.Peripherals == nil {
		return chip.KindNone
	}
	if k, ok := s.Peripherals[local]; ok {
		return k
	}
	return chip.KindNone
}

// Empty reports whether the shape occupies zero cells, the sentinel the
// placer uses to skip placement entirely for commands like Flush that touch
// no grid cells.
func (s Shape) Empty() bool {
	return s.Dimensions.Y == 0 || s.Dimensions.X == 0
}

// Request is the output of a command's pure Request(gridview) method: the
// shape it needs, the local coordinates its input droplets must arrive at
// (parallel to InputDroplets()), and an optional fixed offset for trusted
// placement.
type Request struct {
	Shape          Shape
	InputLocations []chip.Location
	// FixedOffset, when non-nil, is the grid location local (0,0) must map
	// to. The placer validates this offset's 9-neighborhood against
	// already-claimed cells instead of searching for one.
	FixedOffset *chip.Location
}

// Command is the uniform interface the command graph, scheduler, placer,
// router, planner, and executor all drive. Implementations are owned by
// their graph node for the node's lifetime; the executor borrows them
// mutably once per tick while they are in the running set.
type Command interface {
	// InputDroplets returns the droplet ids this command consumes, in the
	// fixed order Request.InputLocations corresponds to.
	InputDroplets() []chip.DropletId
	// OutputDroplets returns the droplet ids this command produces.
	OutputDroplets() []chip.DropletId
	// TrustPlacement reports whether this command dictates its own
	// placement offset (Request().FixedOffset) rather than asking the
	// placer to search for one.
	TrustPlacement() bool
	// Request is a pure function of the command and the current gridview,
	// returning the shape and input locations the placer and router need.
	Request(gv *chip.GridView) Request
	// Run executes one step of the command against its placement-scoped
	// sub-view, returning Done once no further steps remain.
	Run(sub *chip.GridSubView) (RunStatus, error)
	// Finalize is invoked exactly once, after the last Run returns Done,
	// to perform any completion side effect (notifying a listener,
	// commanding a hardware peripheral).
	Finalize(sub *chip.GridSubView) error
	// Abort is invoked by the executor, in place of Finalize, when Run
	// returns an error; it must not block, and is responsible for notifying any one-shot
	// listener the command carries (Flush in particular) with err.
	Abort(err error)
}
