package chip_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/uwmisl/puddle-core/chip"
)

func TestRectangleGridNeighbors(t *testing.T) {
	g := chip.RectangularGrid(3, 3)
	assert.Equal(t, 3, g.MaxHeight())
	assert.Equal(t, 3, g.MaxWidth())

	n4 := g.Neighbors4(chip.Location{Y: 1, X: 1})
	assert.Len(t, n4, 4)

	n4Corner := g.Neighbors4(chip.Location{Y: 0, X: 0})
	assert.Len(t, n4Corner, 2)

	n9 := g.Neighbors9(chip.Location{Y: 1, X: 1})
	assert.Len(t, n9, 9)
}

func TestGridLocationsDeterministicOrder(t *testing.T) {
	g := chip.RectangularGrid(2, 2)
	locs := g.Locations()
	assert.Equal(t, []chip.Location{
		{Y: 0, X: 0}, {Y: 0, X: 1},
		{Y: 1, X: 0}, {Y: 1, X: 1},
	}, locs)
}

func TestNeighborsOfRectangleExcludesSelf(t *testing.T) {
	g := chip.RectangularGrid(5, 5)
	rect := chip.Rectangle{Location: chip.Location{Y: 1, X: 1}, Dimensions: chip.Location{Y: 2, X: 2}}
	gap := g.NeighborsOfRectangle(rect)
	for _, loc := range gap {
		assert.False(t, rect.Contains(loc), "gap must not include the rectangle's own cells")
	}
}
