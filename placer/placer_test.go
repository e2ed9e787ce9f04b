package placer_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uwmisl/puddle-core/chip"
	"github.com/uwmisl/puddle-core/command"
	"github.com/uwmisl/puddle-core/dag"
	"github.com/uwmisl/puddle-core/placer"
)

func TestPlace_UnpinnedPicksFirstDeterministicOffset(t *testing.T) {
	grid := chip.RectangularGrid(4, 4)
	p := placer.New(zerolog.Nop())

	reqs := []placer.CommandRequest{
		{Id: 1, Req: command.Request{Shape: command.Shape{Dimensions: chip.Location{Y: 1, X: 1}}}},
	}
	result, err := p.Place(grid, reqs, nil)
	require.NoError(t, err)

	mapping := result.Placements[1]
	require.Len(t, mapping, 1)
	assert.Equal(t, chip.Location{Y: 0, X: 0}, mapping[chip.Location{}])
}

func TestPlace_EnforcesOneCellGapBetweenCommands(t *testing.T) {
	grid := chip.RectangularGrid(1, 2)
	p := placer.New(zerolog.Nop())

	reqs := []placer.CommandRequest{
		{Id: 1, Req: command.Request{Shape: command.Shape{Dimensions: chip.Location{Y: 1, X: 1}}}},
		{Id: 2, Req: command.Request{Shape: command.Shape{Dimensions: chip.Location{Y: 1, X: 1}}}},
	}
	_, err := p.Place(grid, reqs, nil)
	var placeErr *placer.PlacementError
	require.ErrorAs(t, err, &placeErr)
	require.NotNil(t, placeErr.Command)
	assert.Equal(t, dag.NodeId(2), *placeErr.Command)
}

func TestPlace_TrustedOffsetRejectsCollision(t *testing.T) {
	grid := chip.RectangularGrid(4, 4)
	p := placer.New(zerolog.Nop())

	offset1 := chip.Location{Y: 1, X: 1}
	offset2 := chip.Location{Y: 1, X: 1}
	reqs := []placer.CommandRequest{
		{Id: 1, Req: command.Request{Shape: command.Shape{Dimensions: chip.Location{Y: 1, X: 1}}, FixedOffset: &offset1}},
		{Id: 2, Req: command.Request{Shape: command.Shape{Dimensions: chip.Location{Y: 1, X: 1}}, FixedOffset: &offset2}},
	}
	_, err := p.Place(grid, reqs, nil)
	var placeErr *placer.PlacementError
	require.ErrorAs(t, err, &placeErr)
}

func TestPlace_EmptyShapeSkipsPlacement(t *testing.T) {
	grid := chip.RectangularGrid(2, 2)
	p := placer.New(zerolog.Nop())

	reqs := []placer.CommandRequest{
		{Id: 1, Req: command.Request{Shape: command.Shape{}}},
	}
	result, err := p.Place(grid, reqs, nil)
	require.NoError(t, err)
	assert.Empty(t, result.Placements[1])
}

func TestPlace_StoredDropletPicksNearestOffset(t *testing.T) {
	grid := chip.RectangularGrid(4, 4)
	p := placer.New(zerolog.Nop())

	stored := []placer.StoredDropletRequest{
		{Id: chip.DropletId{LocalId: 1}, Dimensions: chip.Location{Y: 1, X: 1}, CurrentLocation: chip.Location{Y: 2, X: 2}},
	}
	result, err := p.Place(grid, nil, stored)
	require.NoError(t, err)
	assert.Equal(t, chip.Location{Y: 2, X: 2}, result.StoredLocations[chip.DropletId{LocalId: 1}])
}
