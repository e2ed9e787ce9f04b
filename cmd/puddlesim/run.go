package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/uwmisl/puddle-core/chip"
	"github.com/uwmisl/puddle-core/command"
	"github.com/uwmisl/puddle-core/config"
	"github.com/uwmisl/puddle-core/dag"
	"github.com/uwmisl/puddle-core/executor"
	"github.com/uwmisl/puddle-core/planner"
	"github.com/uwmisl/puddle-core/process"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Create a droplet, move it across the chip, and print its final snapshot",
	RunE:  runScriptedProgram,
}

// nextDropletId allocates a fresh droplet id owned by pid.
func nextDropletId(procs *process.Manager, pid process.Id) (chip.DropletId, error) {
	local, err := procs.NextLocalId(pid)
	if err != nil {
		return chip.DropletId{}, err
	}
	return chip.DropletId{ProcessId: pid, LocalId: local}, nil
}

func runScriptedProgram(cmd *cobra.Command, args []string) error {
	runID := uuid.New()
	logger := zerolog.Nop()

	grid, tuning, err := config.Load(chipPath)
	if err != nil {
		return err
	}
	if tuning.RouterSeed != nil {
		os.Setenv("PUDDLE_ROUTER_SEED", strconv.FormatInt(*tuning.RouterSeed, 10))
	}

	locations := grid.Locations()
	if len(locations) < 2 {
		return fmt.Errorf("puddlesim: chip %q needs at least two cells for the scripted run", chipPath)
	}
	destination := locations[len(locations)-1]

	gv := chip.NewGridView(grid)
	graph := dag.New(logger)
	procs := process.NewManager()
	pid := procs.Open()
	defer procs.Close(pid)

	created, err := nextDropletId(procs, pid)
	if err != nil {
		return err
	}
	if _, err := graph.AddCommand(&command.Create{Output: created, Volume: 5, Dimensions: chip.Location{Y: 1, X: 1}}); err != nil {
		return err
	}

	moved, err := nextDropletId(procs, pid)
	if err != nil {
		return err
	}
	if _, err := graph.AddCommand(&command.Move{Input: created, Output: moved, Destination: destination}); err != nil {
		return err
	}

	reply := make(chan command.FlushResult, 1)
	if _, err := graph.AddCommand(command.NewFlush(moved, reply)); err != nil {
		return err
	}

	plan := planner.New(gv, graph, logger)
	ex := executor.New(gv, nil, logger)

	for {
		phase, err := plan.Plan()
		if err != nil {
			if errors.Is(err, planner.ErrNothingToPlan) {
				break
			}
			return err
		}
		if err := ex.Run(phase); err != nil {
			return err
		}
	}

	select {
	case res := <-reply:
		if res.Err != nil {
			return res.Err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "run %s: droplet %s settled at %v (volume %.2f) after %d ticks\n",
			runID, res.Droplet.Id, res.Droplet.Location, res.Droplet.Volume, ex.Tick())
	default:
		return fmt.Errorf("puddlesim: scripted program finished without flushing a result")
	}
	return nil
}
