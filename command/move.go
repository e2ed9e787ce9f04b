package command

import "github.com/uwmisl/puddle-core/chip"

// Move consumes one droplet and produces the same physical droplet under a
// new id at a requested location. The destination is a trusted (pinned)
// offset: the router routes the droplet there directly, so Run only needs
// to rename the id in place.
type Move struct {
	Input       chip.DropletId
	Output      chip.DropletId
	Destination chip.Location
}

func (c *Move) InputDroplets() []chip.DropletId  { return []chip.DropletId{c.Input} }
func (c *Move) OutputDroplets() []chip.DropletId { return []chip.DropletId{c.Output} }
func (c *Move) TrustPlacement() bool             { return true }

func (c *Move) Request(gv *chip.GridView) Request {
	dims := chip.Location{Y: 1, X: 1}
	if d, ok := gv.Get(c.Input); ok {
		dims = d.Dimensions
	}
	dest := c.Destination
	return Request{
		Shape:          Shape{Dimensions: dims},
		InputLocations: []chip.Location{{}},
		FixedOffset:    &dest,
	}
}

func (c *Move) Run(sub *chip.GridSubView) (RunStatus, error) {
	if err := sub.Rename(c.Input, c.Output); err != nil {
		return KeepGoing, err
	}
	return Done, nil
}

func (c *Move) Finalize(sub *chip.GridSubView) error { return nil }
func (c *Move) Abort(err error)                      {}
