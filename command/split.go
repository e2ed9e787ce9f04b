package command

import "github.com/uwmisl/puddle-core/chip"

// Split consumes one droplet and produces two of half volume each, in two
// steps: step 1 inserts both halves at the input's former position (legal
// because they share its collision group); step 2 moves one halves west and
// the other east by one cell to separate them.
type Split struct {
	Input          chip.DropletId
	Output0        chip.DropletId
	Output1        chip.DropletId
	step           int
	collisionGroup uint64
}

func (c *Split) InputDroplets() []chip.DropletId  { return []chip.DropletId{c.Input} }
func (c *Split) OutputDroplets() []chip.DropletId { return []chip.DropletId{c.Output0, c.Output1} }
func (c *Split) TrustPlacement() bool             { return false }

func (c *Split) dims(gv *chip.GridView) chip.Location {
	if d, ok := gv.Get(c.Input); ok {
		return d.Dimensions
	}
	return chip.Location{Y: 1, X: 1}
}

func (c *Split) center(dims chip.Location) chip.Location {
	return chip.Location{Y: 0, X: dims.X}
}

func (c *Split) Request(gv *chip.GridView) Request {
	dims := c.dims(gv)
	shapeDims := chip.Location{Y: dims.Y, X: dims.X*2 + 2}
	return Request{
		Shape:          Shape{Dimensions: shapeDims},
		InputLocations: []chip.Location{c.center(dims)},
	}
}

func (c *Split) Run(sub *chip.GridSubView) (RunStatus, error) {
	if c.step == 0 {
		d, err := sub.Remove(c.Input)
		if err != nil {
			return KeepGoing, err
		}
		c.collisionGroup = d.CollisionGroup
		center := c.center(d.Dimensions)
		halfVolume := d.Volume / 2

		d0, err := sub.InsertLocal(c.Output0, halfVolume, center, d.Dimensions)
		if err != nil {
			return KeepGoing, err
		}
		d0.CollisionGroup = c.collisionGroup

		d1, err := sub.InsertLocal(c.Output1, halfVolume, center, d.Dimensions)
		if err != nil {
			return KeepGoing, err
		}
		d1.CollisionGroup = c.collisionGroup

		c.step++
		return KeepGoing, nil
	}

	local0, ok := sub.LocalLocationOf(c.Output0)
	if !ok {
		return KeepGoing, ErrUnknownDroplet
	}
	if err := sub.MoveLocal(c.Output0, local0.Add(chip.Location{Y: 0, X: -1})); err != nil {
		return KeepGoing, err
	}

	local1, ok := sub.LocalLocationOf(c.Output1)
	if !ok {
		return KeepGoing, ErrUnknownDroplet
	}
	if err := sub.MoveLocal(c.Output1, local1.Add(chip.Location{Y: 0, X: 1})); err != nil {
		return KeepGoing, err
	}

	return Done, nil
}

func (c *Split) Finalize(sub *chip.GridSubView) error { return nil }
func (c *Split) Abort(err error)                      {}
