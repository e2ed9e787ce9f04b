package dag_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uwmisl/puddle-core/chip"
	"github.com/uwmisl/puddle-core/dag"
)

// dummyCmd is a minimal dag.Command stand-in, independent of the command
// package, for exercising graph wiring in isolation.
type dummyCmd struct {
	inputs  []chip.DropletId
	outputs []chip.DropletId
}

func (d *dummyCmd) InputDroplets() []chip.DropletId  { return d.inputs }
func (d *dummyCmd) OutputDroplets() []chip.DropletId { return d.outputs }

func id(local uint64) chip.DropletId { return chip.DropletId{LocalId: local} }

func input(out uint64) dag.Command {
	return &dummyCmd{outputs: []chip.DropletId{id(out)}}
}

func mix(in1, in2, out uint64) dag.Command {
	return &dummyCmd{inputs: []chip.DropletId{id(in1), id(in2)}, outputs: []chip.DropletId{id(out)}}
}

func TestAddCommand_ValidatesInFixedOrder(t *testing.T) {
	g := dag.New(zerolog.Nop())

	_, err := g.AddCommand(input(0))
	require.NoError(t, err)
	_, err = g.AddCommand(input(1))
	require.NoError(t, err)

	_, err = g.AddCommand(mix(0, 0, 2))
	var addErr *dag.AddCommandError
	require.ErrorAs(t, err, &addErr)
	assert.Equal(t, dag.Duplicate, addErr.Kind)

	_, err = g.AddCommand(input(0))
	require.ErrorAs(t, err, &addErr)
	assert.Equal(t, dag.AlreadyExists, addErr.Kind)

	_, err = g.AddCommand(mix(5, 6, 2))
	require.ErrorAs(t, err, &addErr)
	assert.Equal(t, dag.DoesNotExist, addErr.Kind)

	_, err = g.AddCommand(mix(0, 1, 2))
	require.NoError(t, err)

	_, err = g.AddCommand(mix(0, 1, 2))
	require.ErrorAs(t, err, &addErr)
	assert.Equal(t, dag.AlreadyBound, addErr.Kind)

	require.NoError(t, g.Validate())
}

func TestGraph_SuccessorsAndPredecessors(t *testing.T) {
	g := dag.New(zerolog.Nop())

	n0, err := g.AddCommand(input(0))
	require.NoError(t, err)
	n1, err := g.AddCommand(input(1))
	require.NoError(t, err)
	n2, err := g.AddCommand(mix(0, 1, 2))
	require.NoError(t, err)

	assert.Equal(t, []dag.NodeId{n2}, g.Successors(n0))
	assert.Equal(t, []dag.NodeId{n2}, g.Successors(n1))
	assert.Empty(t, g.Successors(n2)) // output 2 is still unbound

	assert.ElementsMatch(t, []dag.NodeId{n0, n1}, g.Predecessors(n2))
	assert.Equal(t, 2, g.InDegree(n2))
	assert.Equal(t, 1, g.OutDegree(n0))
}

func TestGraph_ProducerLooksUpLiveEdges(t *testing.T) {
	g := dag.New(zerolog.Nop())
	n0, err := g.AddCommand(input(7))
	require.NoError(t, err)

	producer, ok := g.Producer(id(7))
	require.True(t, ok)
	assert.Equal(t, n0, producer)

	_, ok = g.Producer(id(999))
	assert.False(t, ok)
}
