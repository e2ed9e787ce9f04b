package command

import "github.com/uwmisl/puddle-core/chip"

// Output consumes a droplet, sending it to an external output port. Its
// padded shape requires an Output-compatible cell at Side (default
// chip.SideLeft, matching the chip loader's default convention).
type Output struct {
	Input chip.DropletId
	Name  string
	Side  chip.Side
}

func (c *Output) InputDroplets() []chip.DropletId  { return []chip.DropletId{c.Input} }
func (c *Output) OutputDroplets() []chip.DropletId { return nil }
func (c *Output) TrustPlacement() bool             { return false }

func (c *Output) dims(gv *chip.GridView) chip.Location {
	if d, ok := gv.Get(c.Input); ok {
		return d.Dimensions
	}
	return chip.Location{Y: 1, X: 1}
}

func (c *Output) Request(gv *chip.GridView) Request {
	dims := c.dims(gv)
	shape, origin := peripheralShape(dims, chip.KindOutput, c.Side)
	return Request{Shape: shape, InputLocations: []chip.Location{origin}}
}

func (c *Output) Run(sub *chip.GridSubView) (RunStatus, error) {
	if _, err := sub.Remove(c.Input); err != nil {
		return KeepGoing, err
	}
	return Done, nil
}

func (c *Output) Finalize(sub *chip.GridSubView) error { return nil }
func (c *Output) Abort(err error)                      {}
