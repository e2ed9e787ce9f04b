package command

import "github.com/uwmisl/puddle-core/chip"

// agitatePadding is the one-cell margin around a droplet's own footprint
// within which Agitate cycles it, matching the original shape's padding.
const agitatePadding = 1

// agitateCycle is the fixed S, E, N, W order one agitation loop steps
// through.
var agitateCycle = []chip.Location{
	{Y: 1, X: 0},  // S
	{Y: 0, X: 1},  // E
	{Y: -1, X: 0}, // N
	{Y: 0, X: -1}, // W
}

// Agitate loops a droplet through a small four-step box movement to promote
// mixing, N_loops times, renaming it to its output id on the final sub-step.
type Agitate struct {
	Input   chip.DropletId
	Output  chip.DropletId
	NLoops  int
	current chip.DropletId
	step    int
	started bool
}

func (c *Agitate) InputDroplets() []chip.DropletId  { return []chip.DropletId{c.Input} }
func (c *Agitate) OutputDroplets() []chip.DropletId { return []chip.DropletId{c.Output} }
func (c *Agitate) TrustPlacement() bool             { return false }

func (c *Agitate) dims(gv *chip.GridView) chip.Location {
	if d, ok := gv.Get(c.Input); ok {
		return d.Dimensions
	}
	return chip.Location{Y: 1, X: 1}
}

func (c *Agitate) Request(gv *chip.GridView) Request {
	dims := c.dims(gv)
	padded := chip.Location{Y: dims.Y + 2*agitatePadding, X: dims.X + 2*agitatePadding}
	center := chip.Location{Y: agitatePadding, X: agitatePadding}
	return Request{
		Shape:          Shape{Dimensions: padded},
		InputLocations: []chip.Location{center},
	}
}

func (c *Agitate) totalSteps() int {
	loops := c.NLoops
	if loops <= 0 {
		loops = 1
	}
	return loops * len(agitateCycle)
}

func (c *Agitate) Run(sub *chip.GridSubView) (RunStatus, error) {
	if !c.started {
		c.current = c.Input
		c.started = true
	}

	local, ok := sub.LocalLocationOf(c.current)
	if !ok {
		return KeepGoing, ErrUnknownDroplet
	}

	offset := agitateCycle[c.step%len(agitateCycle)]
	if err := sub.MoveLocal(c.current, local.Add(offset)); err != nil {
		return KeepGoing, err
	}
	c.step++

	if c.step >= c.totalSteps() {
		if err := sub.Rename(c.current, c.Output); err != nil {
			return KeepGoing, err
		}
		c.current = c.Output
		return Done, nil
	}
	return KeepGoing, nil
}

func (c *Agitate) Finalize(sub *chip.GridSubView) error { return nil }
func (c *Agitate) Abort(err error)                      {}
