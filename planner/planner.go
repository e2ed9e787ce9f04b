package planner

import (
	"errors"
	"os"

	"github.com/rs/zerolog"

	"github.com/uwmisl/puddle-core/chip"
	"github.com/uwmisl/puddle-core/command"
	"github.com/uwmisl/puddle-core/dag"
	"github.com/uwmisl/puddle-core/placer"
	"github.com/uwmisl/puddle-core/router"
	"github.com/uwmisl/puddle-core/scheduler"
)

// commandOf looks up id's payload and asserts it down to the full
// command.Command surface: dag.Graph only knows the narrow
// InputDroplets/OutputDroplets subset, but the planner needs Request too.
func commandOf(g *dag.Graph, id dag.NodeId) (command.Command, bool) {
	c, ok := g.Command(id)
	if !ok {
		return nil, false
	}
	cc, ok := c.(command.Command)
	return cc, ok
}

// ErrNothingToPlan is returned verbatim (never wrapped in a PlanError) when
// the scheduler has no ready, unscheduled node this round; it names an
// empty round, not a failure.
var ErrNothingToPlan = scheduler.ErrNothingToSchedule

// Option configures a Planner at construction time.
type Option func(*Planner)

// WithScheduleLimit caps how many commands one planning round schedules at
// once, forwarded to the underlying scheduler.
func WithScheduleLimit(n int) Option {
	return func(p *Planner) { p.schedLimit = n }
}

// Planner owns the scheduler's cross-round state and the placer/router
// stateless helpers, and drives one planning round per Plan call.
type Planner struct {
	gridView *chip.GridView
	graph    *dag.Graph
	sched    *scheduler.Scheduler
	place    *placer.Placer
	route    *router.Router
	logger   zerolog.Logger

	schedLimit    int
	debugValidate bool
}

// New returns a Planner driving graph against gridView. A zero Logger
// disables logging. PUDDLE_DEBUG_VALIDATE, if set to anything non-empty,
// enables the extra gridview/graph/schedule invariant assertions described
// in SPEC_FULL.md.
func New(gridView *chip.GridView, graph *dag.Graph, logger zerolog.Logger, opts ...Option) *Planner {
	p := &Planner{
		gridView:      gridView,
		graph:         graph,
		place:         placer.New(logger),
		route:         router.New(logger),
		logger:        logger,
		debugValidate: os.Getenv("PUDDLE_DEBUG_VALIDATE") != "",
	}
	for _, opt := range opts {
		opt(p)
	}
	var schedOpts []scheduler.Option
	if p.schedLimit > 0 {
		schedOpts = append(schedOpts, scheduler.WithLimit(p.schedLimit))
	}
	p.sched = scheduler.New(schedOpts...)
	return p
}

func storedRequests(gv *chip.GridView, ids []chip.DropletId) []placer.StoredDropletRequest {
	out := make([]placer.StoredDropletRequest, 0, len(ids))
	for _, id := range ids {
		d, ok := gv.Get(id)
		if !ok {
			continue
		}
		out = append(out, placer.StoredDropletRequest{Id: id, Dimensions: d.Dimensions, CurrentLocation: d.Location})
	}
	return out
}

// routingAgents builds one agent per stored droplet (destination = its
// placer-assigned storage cell) and one agent per scheduled command's input
// droplet (destination = that input's mapped location in the command's own
// placement).
func (p *Planner) routingAgents(commandReqs []placer.CommandRequest, placeResp placer.Result, storedIds []chip.DropletId) []router.Agent {
	var agents []router.Agent

	for _, id := range storedIds {
		d, ok := p.gridView.Get(id)
		if !ok {
			continue
		}
		dest, ok := placeResp.StoredLocations[id]
		if !ok {
			continue
		}
		agents = append(agents, router.Agent{ID: id, Location: d.Location, Destination: dest, Dimensions: d.Dimensions})
	}

	for _, cr := range commandReqs {
		cmd, ok := commandOf(p.graph, cr.Id)
		if !ok {
			continue
		}
		ins := cmd.InputDroplets()
		mapping := placeResp.Placements[cr.Id]
		for i, local := range cr.Req.InputLocations {
			if i >= len(ins) {
				break
			}
			d, ok := p.gridView.Get(ins[i])
			if !ok {
				continue
			}
			dest, ok := mapping.Translate(local)
			if !ok {
				continue
			}
			agents = append(agents, router.Agent{ID: ins[i], Location: d.Location, Destination: dest, Dimensions: d.Dimensions})
		}
	}

	return agents
}

// Plan runs one scheduler -> placer -> router round and commits the
// schedule on success. It returns ErrNothingToPlan verbatim when there is no
// ready work; any other failure is wrapped in a *PlanError naming the stage.
func (p *Planner) Plan() (PlanPhase, error) {
	if p.debugValidate {
		if err := p.gridView.Validate(); err != nil {
			return PlanPhase{}, &PlanError{Kind: ValidateError, Err: err}
		}
	}

	schedResp, err := p.sched.Schedule(p.graph)
	if err != nil {
		if errors.Is(err, scheduler.ErrNothingToSchedule) {
			return PlanPhase{}, ErrNothingToPlan
		}
		return PlanPhase{}, &PlanError{Kind: ScheduleError, Err: err}
	}
	p.logger.Debug().Int("commands", len(schedResp.CommandsToRun)).Int("stored", len(schedResp.DropletsToStore)).Msg("planner: scheduled")

	commandReqs := make([]placer.CommandRequest, 0, len(schedResp.CommandsToRun))
	for _, id := range schedResp.CommandsToRun {
		cmd, ok := commandOf(p.graph, id)
		if !ok {
			continue
		}
		commandReqs = append(commandReqs, placer.CommandRequest{Id: id, Req: cmd.Request(p.gridView)})
	}

	storedReqs := storedRequests(p.gridView, schedResp.DropletsToStore)

	placeResp, err := p.place.Place(p.gridView.Grid, commandReqs, storedReqs)
	if err != nil {
		return PlanPhase{}, &PlanError{Kind: PlaceError, Err: err}
	}
	p.logger.Debug().Msg("planner: placed")

	agents := p.routingAgents(commandReqs, placeResp, schedResp.DropletsToStore)
	routeResp, err := p.route.Route(router.Request{Grid: p.gridView.Grid, Agents: agents})
	if err != nil {
		return PlanPhase{}, &PlanError{Kind: RouteError, Err: err}
	}
	p.logger.Debug().Int("agents", len(agents)).Msg("planner: routed")

	planned := make([]PlannedCommand, 0, len(commandReqs))
	for _, cr := range commandReqs {
		cmd, _ := commandOf(p.graph, cr.Id)
		planned = append(planned, PlannedCommand{NodeId: cr.Id, Command: cmd, Placement: placeResp.Placements[cr.Id]})
	}

	p.sched.Commit(schedResp)

	if p.debugValidate {
		if err := p.sched.Validate(p.graph); err != nil {
			return PlanPhase{}, &PlanError{Kind: ValidateError, Err: err}
		}
	}

	return PlanPhase{Routes: routeResp, PlannedCommands: planned}, nil
}
