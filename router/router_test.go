package router_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uwmisl/puddle-core/chip"
	"github.com/uwmisl/puddle-core/router"
)

func id(n uint64) chip.DropletId { return chip.DropletId{LocalId: n} }

func assertStep(t *testing.T, path router.Path) {
	t.Helper()
	for i := 1; i < len(path); i++ {
		d := path[i].Sub(path[i-1])
		assert.LessOrEqual(t, d.Norm(), 1, "step %d moved more than one cell", i)
	}
}

func TestPathAt_HoldsFinalLocation(t *testing.T) {
	p := router.Path{{Y: 0, X: 0}, {Y: 0, X: 1}}
	assert.Equal(t, chip.Location{Y: 0, X: 0}, router.PathAt(p, 0))
	assert.Equal(t, chip.Location{Y: 0, X: 1}, router.PathAt(p, 1))
	assert.Equal(t, chip.Location{Y: 0, X: 1}, router.PathAt(p, 5))
}

func TestRoute_SingleAgentReachesDestination(t *testing.T) {
	grid := chip.RectangularGrid(4, 4)
	r := router.New(zerolog.Nop())

	agent := router.Agent{
		ID:          id(1),
		Location:    chip.Location{Y: 0, X: 0},
		Destination: chip.Location{Y: 3, X: 3},
		Dimensions:  chip.Location{Y: 1, X: 1},
	}
	result, err := r.Route(router.Request{Grid: grid, Agents: []router.Agent{agent}})
	require.NoError(t, err)

	path := result[id(1)]
	require.NotEmpty(t, path)
	assert.Equal(t, agent.Location, path[0])
	assert.Equal(t, agent.Destination, path[len(path)-1])
	assertStep(t, path)
}

func TestRoute_IndependentAgentsDontCollide(t *testing.T) {
	grid := chip.RectangularGrid(4, 4)
	r := router.New(zerolog.Nop())

	agents := []router.Agent{
		{ID: id(1), Location: chip.Location{Y: 0, X: 0}, Destination: chip.Location{Y: 0, X: 1}, Dimensions: chip.Location{Y: 1, X: 1}},
		{ID: id(2), Location: chip.Location{Y: 3, X: 3}, Destination: chip.Location{Y: 3, X: 2}, Dimensions: chip.Location{Y: 1, X: 1}},
	}
	result, err := r.Route(router.Request{Grid: grid, Agents: agents})
	require.NoError(t, err)
	assert.Equal(t, agents[0].Destination, result[id(1)][len(result[id(1)])-1])
	assert.Equal(t, agents[1].Destination, result[id(2)][len(result[id(2)])-1])
}

func TestRoute_CrossingAgentsOnRoomyGridSucceed(t *testing.T) {
	grid := chip.RectangularGrid(2, 3)
	r := router.New(zerolog.Nop())

	agents := []router.Agent{
		{ID: id(1), Location: chip.Location{Y: 0, X: 0}, Destination: chip.Location{Y: 0, X: 2}, Dimensions: chip.Location{Y: 1, X: 1}},
		{ID: id(2), Location: chip.Location{Y: 0, X: 2}, Destination: chip.Location{Y: 0, X: 0}, Dimensions: chip.Location{Y: 1, X: 1}},
	}
	result, err := r.Route(router.Request{Grid: grid, Agents: agents})
	require.NoError(t, err)

	pa, pb := result[id(1)], result[id(2)]
	require.NotEmpty(t, pa)
	require.NotEmpty(t, pb)
	assert.Equal(t, agents[0].Destination, pa[len(pa)-1])
	assert.Equal(t, agents[1].Destination, pb[len(pb)-1])

	maxLen := len(pa)
	if len(pb) > maxLen {
		maxLen = len(pb)
	}
	for t := 0; t < maxLen; t++ {
		assert.NotEqual(t, router.PathAt(pa, t), router.PathAt(pb, t), "agents occupy the same cell at time %d", t)
	}
}

func TestRoute_UnreachableDestinationFailsWithNoRoute(t *testing.T) {
	grid := chip.RectangularGrid(2, 2)
	r := router.New(zerolog.Nop())

	agent := router.Agent{
		ID:          id(1),
		Location:    chip.Location{Y: 0, X: 0},
		Destination: chip.Location{Y: 9, X: 9},
		Dimensions:  chip.Location{Y: 1, X: 1},
	}
	_, err := r.Route(router.Request{Grid: grid, Agents: []router.Agent{agent}})
	var noRoute *router.NoRouteError
	require.ErrorAs(t, err, &noRoute)
}

func TestRoute_EmptyAgentsReturnsEmptyResult(t *testing.T) {
	r := router.New(zerolog.Nop())
	result, err := r.Route(router.Request{Grid: chip.RectangularGrid(2, 2)})
	require.NoError(t, err)
	assert.Empty(t, result)
}
