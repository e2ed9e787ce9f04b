package planner

import (
	"github.com/uwmisl/puddle-core/chip"
	"github.com/uwmisl/puddle-core/command"
	"github.com/uwmisl/puddle-core/dag"
	"github.com/uwmisl/puddle-core/router"
)

// PlannedCommand pairs a scheduled node with the command payload and grid
// placement the executor will run it against.
type PlannedCommand struct {
	NodeId    dag.NodeId
	Command   command.Command
	Placement chip.Placement
}

// PlanPhase is one planning round's complete output: every droplet's route
// for this round, and every command scheduled to run once its route (if
// any) completes.
type PlanPhase struct {
	Routes          router.Result
	PlannedCommands []PlannedCommand
}
