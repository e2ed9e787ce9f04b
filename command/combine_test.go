package command_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uwmisl/puddle-core/chip"
	"github.com/uwmisl/puddle-core/command"
)

func TestCombine_SumsVolumeAndStacksVertically(t *testing.T) {
	gv := chip.NewGridView(chip.RectangularGrid(6, 6))
	require.NoError(t, gv.Insert(chip.NewDroplet(dropletId(1), 2, chip.Location{Y: 0, X: 0}, chip.Location{Y: 1, X: 1})))
	require.NoError(t, gv.Insert(chip.NewDroplet(dropletId(2), 3, chip.Location{Y: 2, X: 0}, chip.Location{Y: 1, X: 1})))

	c := &command.Combine{InputA: dropletId(1), InputB: dropletId(2), Output: dropletId(3)}
	req := c.Request(gv)
	assert.Equal(t, chip.Location{Y: 2, X: 1}, req.Shape.Dimensions)

	sub := chip.NewGridSubView(gv, placeShape(chip.Location{Y: 0, X: 0}, req.Shape.Dimensions))
	status, err := c.Run(sub)
	require.NoError(t, err)
	assert.Equal(t, command.Done, status)

	d, ok := gv.Get(dropletId(3))
	require.True(t, ok)
	assert.Equal(t, 5.0, d.Volume)
	assert.Equal(t, chip.Location{Y: 2, X: 1}, d.Dimensions)
}

func TestCombineInto_RejectsLateralGeometry(t *testing.T) {
	gv := chip.NewGridView(chip.RectangularGrid(6, 6))
	require.NoError(t, gv.Insert(chip.NewDroplet(dropletId(1), 2, chip.Location{Y: 0, X: 0}, chip.Location{Y: 1, X: 1})))
	require.NoError(t, gv.Insert(chip.NewDroplet(dropletId(2), 3, chip.Location{Y: 0, X: 2}, chip.Location{Y: 1, X: 1})))

	c := &command.CombineInto{Target: dropletId(1), Source: dropletId(2), Output: dropletId(3)}
	sub := chip.NewGridSubView(gv, placeShape(chip.Location{Y: 0, X: 0}, chip.Location{Y: 2, X: 1}))

	_, err := c.Run(sub)
	assert.ErrorIs(t, err, command.ErrCombineGeometry)
}

func TestCombineInto_AcceptsVerticalStack(t *testing.T) {
	gv := chip.NewGridView(chip.RectangularGrid(6, 6))
	require.NoError(t, gv.Insert(chip.NewDroplet(dropletId(1), 2, chip.Location{Y: 2, X: 0}, chip.Location{Y: 1, X: 1})))
	require.NoError(t, gv.Insert(chip.NewDroplet(dropletId(2), 3, chip.Location{Y: 0, X: 0}, chip.Location{Y: 1, X: 1})))

	c := &command.CombineInto{Target: dropletId(1), Source: dropletId(2), Output: dropletId(3)}
	sub := chip.NewGridSubView(gv, placeShape(chip.Location{Y: 0, X: 0}, chip.Location{Y: 2, X: 1}))

	status, err := c.Run(sub)
	require.NoError(t, err)
	assert.Equal(t, command.Done, status)

	d, ok := gv.Get(dropletId(3))
	require.True(t, ok)
	assert.Equal(t, 5.0, d.Volume)
}
