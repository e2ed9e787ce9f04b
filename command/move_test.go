package command_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uwmisl/puddle-core/chip"
	"github.com/uwmisl/puddle-core/command"
)

func TestMove_TrustsPlacementAndRenames(t *testing.T) {
	gv := chip.NewGridView(chip.RectangularGrid(4, 4))
	require.NoError(t, gv.Insert(chip.NewDroplet(dropletId(1), 1, chip.Location{Y: 0, X: 0}, chip.Location{Y: 1, X: 1})))

	c := &command.Move{Input: dropletId(1), Output: dropletId(2), Destination: chip.Location{Y: 2, X: 2}}
	assert.True(t, c.TrustPlacement())

	req := c.Request(gv)
	require.NotNil(t, req.FixedOffset)
	assert.Equal(t, chip.Location{Y: 2, X: 2}, *req.FixedOffset)

	sub := chip.NewGridSubView(gv, placeShape(chip.Location{Y: 2, X: 2}, req.Shape.Dimensions))
	status, err := c.Run(sub)
	require.NoError(t, err)
	assert.Equal(t, command.Done, status)

	_, ok := gv.Get(dropletId(1))
	assert.False(t, ok)
	d, ok := gv.Get(dropletId(2))
	require.True(t, ok)
	assert.Equal(t, 1.0, d.Volume)
}
