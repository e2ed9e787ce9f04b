package chip_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/uwmisl/puddle-core/chip"
)

func TestMinDistanceToBox(t *testing.T) {
	cases := []struct {
		name           string
		point          chip.Location
		c1, c2         chip.Location
		wantedDistance int
	}{
		{"boundary", chip.Location{Y: 0, X: 0}, chip.Location{Y: 1, X: 1}, chip.Location{Y: 2, X: 2}, 0},
		{"strictly inside", chip.Location{Y: 1, X: 1}, chip.Location{Y: 1, X: 1}, chip.Location{Y: 2, X: 2}, -1},
		{"two away", chip.Location{Y: 0, X: 0}, chip.Location{Y: 2, X: 2}, chip.Location{Y: 3, X: 3}, 2},
		{"one away", chip.Location{Y: 1, X: 0}, chip.Location{Y: 2, X: 2}, chip.Location{Y: 3, X: 3}, 1},
		{"touches right edge (corner)", chip.Location{Y: 0, X: 2}, chip.Location{Y: 1, X: 1}, chip.Location{Y: 2, X: 2}, 0},
		{"touches right edge (mid)", chip.Location{Y: 1, X: 2}, chip.Location{Y: 1, X: 1}, chip.Location{Y: 2, X: 2}, 0},
		{"touches right edge (other corner)", chip.Location{Y: 2, X: 2}, chip.Location{Y: 1, X: 1}, chip.Location{Y: 2, X: 2}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantedDistance, tc.point.MinDistanceToBox(tc.c1, tc.c2))
		})
	}
}

func TestLocationAddSub(t *testing.T) {
	a := chip.Location{Y: 1, X: 2}
	b := chip.Location{Y: 3, X: -1}
	assert.Equal(t, chip.Location{Y: 4, X: 1}, a.Add(b))
	assert.Equal(t, chip.Location{Y: -2, X: 3}, a.Sub(b))
}

func TestLocationNormAndDistance(t *testing.T) {
	a := chip.Location{Y: -3, X: 4}
	assert.Equal(t, 7, a.Norm())
	assert.Equal(t, 0, a.DistanceTo(a))
	assert.Equal(t, 7, a.DistanceTo(chip.Location{}))
}
