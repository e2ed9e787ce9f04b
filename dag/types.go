package dag

import "github.com/uwmisl/puddle-core/chip"

// NodeId identifies a graph node, stable for the node's lifetime.
type NodeId uint64

// node is a graph vertex: its command, its bound input droplet ids, and the
// output droplet ids it owns edges for.
type node struct {
	cmd     Command
	inputs  []chip.DropletId
	outputs []chip.DropletId
}

// Command is the subset of command.Command the graph needs: declared
// input/output droplet ids. Defined locally (rather than importing
// command.Command directly) so dag has no compile-time dependency on the
// concrete nine-operation package; any type satisfying this narrow interface
// can be a node's payload, which keeps dag reusable by dag_test's Dummy
// stand-ins without an import of command.
type Command interface {
	InputDroplets() []chip.DropletId
	OutputDroplets() []chip.DropletId
}

// edge records, for one live droplet id, which node produces it and which
// node (if any) has been bound to consume it.
type edge struct {
	producer    NodeId
	hasConsumer bool
	consumer    NodeId
}
