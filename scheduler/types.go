package scheduler

import (
	"github.com/uwmisl/puddle-core/chip"
	"github.com/uwmisl/puddle-core/dag"
)

// Response is the result of one Schedule call: the nodes selected to run
// this round, and the droplets that must remain resting on the grid because
// their producer already ran but their consumer is not running this round.
type Response struct {
	CommandsToRun   []dag.NodeId
	DropletsToStore []chip.DropletId
}

// Option configures a Scheduler at construction time.
type Option func(*Scheduler)

// WithLimit truncates each Schedule call's CommandsToRun to at most n
// entries, preferring the entries selection policy ranked first.
func WithLimit(n int) Option {
	return func(s *Scheduler) { s.limit = n }
}

// Scheduler tracks, across planning rounds, which graph nodes have already
// been committed to a schedule index.
type Scheduler struct {
	committed map[dag.NodeId]int
	nextIndex int
	limit     int
}

// New returns an empty Scheduler.
func New(opts ...Option) *Scheduler {
	s := &Scheduler{committed: make(map[dag.NodeId]int)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
