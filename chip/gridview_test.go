package chip_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uwmisl/puddle-core/chip"
)

func TestGridViewInsertRemoveRename(t *testing.T) {
	view := chip.NewGridView(chip.RectangularGrid(4, 4))
	id := chip.DropletId{LocalId: 1}
	d := chip.NewDroplet(id, 1.0, chip.Location{Y: 0, X: 0}, chip.Location{Y: 1, X: 1})

	require.NoError(t, view.Insert(d))
	assert.ErrorIs(t, view.Insert(d), chip.ErrDropletAlreadyPresent)

	newID := chip.DropletId{LocalId: 2}
	require.NoError(t, view.Rename(id, newID))
	_, ok := view.Get(id)
	assert.False(t, ok)
	got, ok := view.Get(newID)
	assert.True(t, ok)
	assert.Equal(t, newID, got.Id)
}

func TestGridViewGetCollision(t *testing.T) {
	view := chip.NewGridView(chip.RectangularGrid(4, 4))
	d1 := chip.NewDroplet(chip.DropletId{LocalId: 1}, 1.0, chip.Location{Y: 0, X: 0}, chip.Location{Y: 1, X: 1})
	d2 := chip.NewDroplet(chip.DropletId{LocalId: 2}, 1.0, chip.Location{Y: 0, X: 0}, chip.Location{Y: 1, X: 1})
	require.NoError(t, view.Insert(d1))
	require.NoError(t, view.Insert(d2))

	_, _, ok := view.GetCollision()
	assert.True(t, ok, "identical-location droplets in different groups must collide")
	assert.Error(t, view.Validate())
}

func TestGridSubViewTranslation(t *testing.T) {
	view := chip.NewGridView(chip.RectangularGrid(4, 4))
	placement := chip.Placement{
		{Y: 0, X: 0}: {Y: 1, X: 1},
		{Y: 0, X: 1}: {Y: 1, X: 2},
	}
	sub := chip.NewGridSubView(view, placement)

	id := chip.DropletId{LocalId: 1}
	d, err := sub.InsertLocal(id, 1.0, chip.Location{Y: 0, X: 0}, chip.Location{Y: 1, X: 1})
	require.NoError(t, err)
	assert.Equal(t, chip.Location{Y: 1, X: 1}, d.Location)

	local, ok := sub.LocalLocationOf(id)
	assert.True(t, ok)
	assert.Equal(t, chip.Location{Y: 0, X: 0}, local)

	_, err = sub.InsertLocal(chip.DropletId{LocalId: 2}, 1.0, chip.Location{Y: 5, X: 5}, chip.Location{Y: 1, X: 1})
	assert.ErrorIs(t, err, chip.ErrOutOfPlacement)
}
