package executor

import (
	"sort"

	"github.com/rs/zerolog"

	"github.com/uwmisl/puddle-core/chip"
	"github.com/uwmisl/puddle-core/command"
	"github.com/uwmisl/puddle-core/dag"
	"github.com/uwmisl/puddle-core/planner"
	"github.com/uwmisl/puddle-core/router"
)

// runningCommand pairs a command with the placement-scoped sub-view it runs
// against, for the duration it remains in the running set.
type runningCommand struct {
	cmd command.Command
	sub *chip.GridSubView
}

// Executor plays back PlanPhases against a GridView, advancing a global
// tick counter once per run_step call.
type Executor struct {
	gridView *chip.GridView
	sink     HardwareSink
	logger   zerolog.Logger

	tick    uint64
	running map[dag.NodeId]*runningCommand
}

// New returns an Executor driving gridView. A nil sink defaults to NopSink;
// a zero Logger disables logging.
func New(gridView *chip.GridView, sink HardwareSink, logger zerolog.Logger) *Executor {
	if sink == nil {
		sink = NopSink{}
	}
	return &Executor{
		gridView: gridView,
		sink:     sink,
		logger:   logger,
		running:  make(map[dag.NodeId]*runningCommand),
	}
}

// Tick returns the number of run_step calls made so far.
func (e *Executor) Tick() uint64 { return e.tick }

func adjacentOrStay(from, to chip.Location) bool {
	return to.Sub(from).Norm() <= 1
}

// takeRoutes advances every droplet in routes one step per iteration until
// every path has been fully consumed, invoking run_step after each step so
// a command already in the running set can tick alongside routing.
func (e *Executor) takeRoutes(routes router.Result) error {
	maxLen := 0
	for _, p := range routes {
		if len(p) > maxLen {
			maxLen = len(p)
		}
	}

	ids := make([]chip.DropletId, 0, len(routes))
	for id := range routes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })

	for t := 1; t < maxLen; t++ {
		for _, id := range ids {
			path := routes[id]
			prev := router.PathAt(path, t-1)
			next := router.PathAt(path, t)
			if next == prev {
				continue
			}
			if !adjacentOrStay(prev, next) {
				return &RouteError{Droplet: id, Err: ErrNonAdjacentStep}
			}
			if err := e.gridView.Move(id, next); err != nil {
				return &RouteError{Droplet: id, Err: err}
			}
		}
		if err := e.runStep(); err != nil {
			return err
		}
	}
	return nil
}

// runStep invokes Run once on every command currently in the running set,
// finalizing and removing those that report Done, then advances the tick
// counter and syncs the hardware sink.
func (e *Executor) runStep() error {
	ids := make([]dag.NodeId, 0, len(e.running))
	for id := range e.running {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		rc := e.running[id]
		status, err := rc.cmd.Run(rc.sub)
		if err != nil {
			rc.cmd.Abort(err)
			delete(e.running, id)
			return &RunError{NodeId: id, Err: err}
		}
		if status == command.Done {
			if err := rc.cmd.Finalize(rc.sub); err != nil {
				delete(e.running, id)
				return &RunError{NodeId: id, Err: err}
			}
			delete(e.running, id)
		}
	}

	e.tick++
	if err := e.sink.Sync(e.gridView.PinActivation()); err != nil {
		return err
	}
	e.logger.Trace().Uint64("tick", e.tick).Int("running", len(e.running)).Msg("executor: step")
	return nil
}

// Run plays phase back to completion: routes every droplet into place, then
// runs every planned command to Done.
func (e *Executor) Run(phase planner.PlanPhase) error {
	if err := e.takeRoutes(phase.Routes); err != nil {
		return err
	}

	for _, pc := range phase.PlannedCommands {
		e.running[pc.NodeId] = &runningCommand{cmd: pc.Command, sub: chip.NewGridSubView(e.gridView, pc.Placement)}
	}
	e.logger.Debug().Int("commands", len(phase.PlannedCommands)).Msg("executor: running phase")

	for len(e.running) > 0 {
		if err := e.runStep(); err != nil {
			return err
		}
	}
	return nil
}
