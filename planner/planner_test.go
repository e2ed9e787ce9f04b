package planner_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uwmisl/puddle-core/chip"
	"github.com/uwmisl/puddle-core/command"
	"github.com/uwmisl/puddle-core/dag"
	"github.com/uwmisl/puddle-core/planner"
)

func TestPlan_SchedulesCreateThenMoveAcrossRounds(t *testing.T) {
	gv := chip.NewGridView(chip.RectangularGrid(4, 4))
	graph := dag.New(zerolog.Nop())

	createOut := chip.DropletId{LocalId: 1}
	create := &command.Create{Output: createOut, Volume: 5}
	createNode, err := graph.AddCommand(create)
	require.NoError(t, err)

	moveOut := chip.DropletId{LocalId: 2}
	dest := chip.Location{Y: 2, X: 2}
	move := &command.Move{Input: createOut, Output: moveOut, Destination: dest}
	moveNode, err := graph.AddCommand(move)
	require.NoError(t, err)

	p := planner.New(gv, graph, zerolog.Nop())

	phase1, err := p.Plan()
	require.NoError(t, err)
	require.Len(t, phase1.PlannedCommands, 1)
	assert.Equal(t, createNode, phase1.PlannedCommands[0].NodeId)
	assert.Empty(t, phase1.Routes)

	sub := chip.NewGridSubView(gv, phase1.PlannedCommands[0].Placement)
	status, err := create.Run(sub)
	require.NoError(t, err)
	assert.Equal(t, command.Done, status)

	phase2, err := p.Plan()
	require.NoError(t, err)
	require.Len(t, phase2.PlannedCommands, 1)
	assert.Equal(t, moveNode, phase2.PlannedCommands[0].NodeId)

	path, ok := phase2.Routes[createOut]
	require.True(t, ok)
	require.NotEmpty(t, path)
	assert.Equal(t, dest, path[len(path)-1])

	_, err = p.Plan()
	assert.ErrorIs(t, err, planner.ErrNothingToPlan)
}
