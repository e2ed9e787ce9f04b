package dag

import (
	"sort"

	"github.com/rs/zerolog"

	"github.com/uwmisl/puddle-core/chip"
)

const (
	white = 0
	gray  = 1
	black = 2
)

// Graph is the command graph: nodes carry commands, edges carry droplet
// identity. It is safe for concurrent read access once built; AddCommand is
// intended to be called from a single planner goroutine at a time, matching
// the concurrency model of the gridview it plans against.
type Graph struct {
	logger zerolog.Logger

	nodes  map[NodeId]*node
	edges  map[chip.DropletId]*edge
	nextID NodeId
}

// New returns an empty command graph. A zero Logger disables logging,
// matching this module's convention of defaulting to zerolog.Nop() rather
// than a package-global logger.
func New(logger zerolog.Logger) *Graph {
	return &Graph{
		logger: logger,
		nodes:  make(map[NodeId]*node),
		edges:  make(map[chip.DropletId]*edge),
	}
}

func findDuplicate(ids []chip.DropletId) (chip.DropletId, bool) {
	seen := make(map[chip.DropletId]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return id, true
		}
		seen[id] = struct{}{}
	}
	return chip.DropletId{}, false
}

// checkAddCommand runs the five ordered validations AddCommand depends on,
// without mutating the graph, so a failed AddCommand call is guaranteed to
// have left the graph untouched.
func (g *Graph) checkAddCommand(cmd Command) error {
	ins := cmd.InputDroplets()
	if dup, ok := findDuplicate(ins); ok {
		return &AddCommandError{Kind: Duplicate, Droplet: dup}
	}
	for _, id := range ins {
		e, ok := g.edges[id]
		if !ok {
			return &AddCommandError{Kind: DoesNotExist, Droplet: id}
		}
		if e.hasConsumer {
			return &AddCommandError{Kind: AlreadyBound, Droplet: id}
		}
	}

	outs := cmd.OutputDroplets()
	if dup, ok := findDuplicate(outs); ok {
		return &AddCommandError{Kind: Duplicate, Droplet: dup}
	}
	for _, id := range outs {
		if _, ok := g.edges[id]; ok {
			return &AddCommandError{Kind: AlreadyExists, Droplet: id}
		}
	}
	return nil
}

// AddCommand validates and inserts cmd, in the fixed order: duplicate
// inputs, missing inputs, already-bound inputs, duplicate outputs, existing
// outputs. On success it binds cmd as the consumer of each input's edge and
// opens a fresh unbound edge for each output.
func (g *Graph) AddCommand(cmd Command) (NodeId, error) {
	if err := g.checkAddCommand(cmd); err != nil {
		return 0, err
	}

	id := g.nextID
	g.nextID++
	ins := cmd.InputDroplets()
	outs := cmd.OutputDroplets()
	g.nodes[id] = &node{cmd: cmd, inputs: ins, outputs: outs}

	for _, in := range ins {
		g.edges[in].hasConsumer = true
		g.edges[in].consumer = id
	}
	for _, out := range outs {
		g.edges[out] = &edge{producer: id}
	}

	g.logger.Debug().Uint64("node", uint64(id)).Int("inputs", len(ins)).Int("outputs", len(outs)).Msg("command added")
	return id, nil
}

// Command returns the command payload bound to id.
func (g *Graph) Command(id NodeId) (Command, bool) {
	n, ok := g.nodes[id]
	if !ok {
		return nil, false
	}
	return n.cmd, true
}

// Nodes returns every node id, sorted ascending for deterministic iteration.
func (g *Graph) Nodes() []NodeId {
	ids := make([]NodeId, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Predecessors returns, sorted, the node ids that produce id's input
// droplets.
func (g *Graph) Predecessors(id NodeId) []NodeId {
	n, ok := g.nodes[id]
	if !ok {
		return nil
	}
	out := make([]NodeId, 0, len(n.inputs))
	for _, in := range n.inputs {
		if e, ok := g.edges[in]; ok {
			out = append(out, e.producer)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Successors returns, sorted, the node ids bound to consume id's output
// droplets. An output whose edge has no consumer yet contributes nothing.
func (g *Graph) Successors(id NodeId) []NodeId {
	n, ok := g.nodes[id]
	if !ok {
		return nil
	}
	out := make([]NodeId, 0, len(n.outputs))
	for _, o := range n.outputs {
		if e, ok := g.edges[o]; ok && e.hasConsumer {
			out = append(out, e.consumer)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ConsumerOf returns the node id bound to consume droplet, if any.
func (g *Graph) ConsumerOf(droplet chip.DropletId) (NodeId, bool) {
	e, ok := g.edges[droplet]
	if !ok || !e.hasConsumer {
		return 0, false
	}
	return e.consumer, true
}

// Outputs returns the output droplet ids of id, or nil if id is unknown.
func (g *Graph) Outputs(id NodeId) []chip.DropletId {
	n, ok := g.nodes[id]
	if !ok {
		return nil
	}
	return n.outputs
}

// InDegree and OutDegree report a node's bound neighbor counts (not its raw
// droplet counts: an output edge with no consumer yet does not count toward
// OutDegree).
func (g *Graph) InDegree(id NodeId) int  { return len(g.Predecessors(id)) }
func (g *Graph) OutDegree(id NodeId) int { return len(g.Successors(id)) }

// Producer returns the node id that produces droplet, if that droplet
// currently names a live edge.
func (g *Graph) Producer(droplet chip.DropletId) (NodeId, bool) {
	e, ok := g.edges[droplet]
	if !ok {
		return 0, false
	}
	return e.producer, true
}

// Validate checks the two debug-mode invariants this graph must never
// violate if AddCommand is its only mutator: acyclicity, and no node
// isolated from every other node (every command node has at least one
// input or output droplet edge by construction, but a custom Command
// implementation with empty InputDroplets/OutputDroplets would be isolated,
// which this catches).
func (g *Graph) Validate() error {
	state := make(map[NodeId]int, len(g.nodes))
	var visit func(id NodeId) error
	visit = func(id NodeId) error {
		state[id] = gray
		for _, next := range g.Successors(id) {
			switch state[next] {
			case white:
				if err := visit(next); err != nil {
					return err
				}
			case gray:
				return ErrCyclic
			}
		}
		state[id] = black
		return nil
	}

	for _, id := range g.Nodes() {
		n := g.nodes[id]
		if len(n.inputs) == 0 && len(n.outputs) == 0 {
			return ErrIsolatedNode
		}
		if state[id] == white {
			if err := visit(id); err != nil {
				return err
			}
		}
	}
	return nil
}
