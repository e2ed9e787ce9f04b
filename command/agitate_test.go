package command_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uwmisl/puddle-core/chip"
	"github.com/uwmisl/puddle-core/command"
)

func TestAgitate_CompletesAfterNLoopsAndRenames(t *testing.T) {
	gv := chip.NewGridView(chip.RectangularGrid(6, 6))
	require.NoError(t, gv.Insert(chip.NewDroplet(dropletId(1), 1, chip.Location{Y: 2, X: 2}, chip.Location{Y: 1, X: 1})))

	c := &command.Agitate{Input: dropletId(1), Output: dropletId(2), NLoops: 2}
	req := c.Request(gv)
	assert.Equal(t, chip.Location{Y: 3, X: 3}, req.Shape.Dimensions)

	sub := chip.NewGridSubView(gv, placeShape(chip.Location{Y: 1, X: 1}, req.Shape.Dimensions))

	steps := 0
	var status command.RunStatus
	var err error
	for status != command.Done {
		status, err = c.Run(sub)
		require.NoError(t, err)
		steps++
		require.Less(t, steps, 20, "agitate did not converge")
	}
	assert.Equal(t, 8, steps) // NLoops(2) * 4 cardinal steps

	_, ok := gv.Get(dropletId(1))
	assert.False(t, ok)
	d, ok := gv.Get(dropletId(2))
	require.True(t, ok)
	assert.Equal(t, chip.Location{Y: 2, X: 2}, d.Location) // back at the cycle's start
}
