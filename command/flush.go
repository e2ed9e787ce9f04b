package command

import (
	"github.com/google/uuid"

	"github.com/uwmisl/puddle-core/chip"
)

// FlushResult is delivered exactly once to a Flush command's Reply channel:
// either the droplet's final snapshot, or the error that aborted it.
type FlushResult struct {
	Token   uuid.UUID
	Droplet chip.Info
	Err     error
}

// Flush is the zero-footprint sentinel operation: it claims no grid cells
// (its Shape is empty, so the placer skips placement for it entirely) and
// exists solely to hand a droplet's current snapshot back to whatever
// issued the command graph, correlated by a per-command token.
type Flush struct {
	Input chip.DropletId
	Token uuid.UUID
	Reply chan<- FlushResult
}

// NewFlush constructs a Flush with a fresh correlation token.
func NewFlush(input chip.DropletId, reply chan<- FlushResult) *Flush {
	return &Flush{Input: input, Token: uuid.New(), Reply: reply}
}

func (c *Flush) InputDroplets() []chip.DropletId  { return []chip.DropletId{c.Input} }
func (c *Flush) OutputDroplets() []chip.DropletId { return nil }
func (c *Flush) TrustPlacement() bool             { return false }

// Request reports the empty shape; the placer never searches for cells on
// its behalf, and the router never routes anything for it.
func (c *Flush) Request(gv *chip.GridView) Request {
	return Request{Shape: Shape{}}
}

// Run completes in a single step: it checks that the input droplet is on the
// underlying view (never removing it, since Flush does not consume grid
// space) and reports Done.
func (c *Flush) Run(sub *chip.GridSubView) (RunStatus, error) {
	if _, ok := sub.Get(c.Input); !ok {
		return KeepGoing, ErrUnknownDroplet
	}
	return Done, nil
}

// Finalize reads the input droplet's snapshot straight off the underlying
// view and delivers it to the listener.
func (c *Flush) Finalize(sub *chip.GridSubView) error {
	d, ok := sub.Get(c.Input)
	if !ok {
		return ErrUnknownDroplet
	}
	c.reply(FlushResult{Token: c.Token, Droplet: d.Info()})
	return nil
}

// Abort delivers err to the listener instead of leaving it to hang forever
// waiting on a reply that a torn-down command graph will never send.
func (c *Flush) Abort(err error) {
	c.reply(FlushResult{Token: c.Token, Err: err})
}

// reply is non-blocking: Reply is expected to be buffered with capacity 1,
// and a Flush command's Finalize/Abort is only ever invoked once.
func (c *Flush) reply(result FlushResult) {
	if c.Reply == nil {
		return
	}
	select {
	case c.Reply <- result:
	default:
	}
}
