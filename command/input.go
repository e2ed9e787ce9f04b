package command

import "github.com/uwmisl/puddle-core/chip"

// Input produces a droplet delivered from an external input port. Its
// padded shape requires an Input-compatible cell at Side (default
// chip.SideRight, matching the chip loader's default convention).
type Input struct {
	Output     chip.DropletId
	Name       string
	Volume     float64
	Dimensions chip.Location
	Side       chip.Side
}

func (c *Input) dims() chip.Location {
	if c.Dimensions.Y == 0 && c.Dimensions.X == 0 {
		return chip.Location{Y: 1, X: 1}
	}
	return c.Dimensions
}

func (c *Input) InputDroplets() []chip.DropletId  { return nil }
func (c *Input) OutputDroplets() []chip.DropletId { return []chip.DropletId{c.Output} }
func (c *Input) TrustPlacement() bool             { return false }

func (c *Input) Request(gv *chip.GridView) Request {
	shape, _ := peripheralShape(c.dims(), chip.KindInput, c.Side)
	return Request{Shape: shape}
}

func (c *Input) dropletOrigin() chip.Location {
	_, origin := peripheralShape(c.dims(), chip.KindInput, c.Side)
	return origin
}

func (c *Input) Run(sub *chip.GridSubView) (RunStatus, error) {
	if _, err := sub.InsertLocal(c.Output, c.Volume, c.dropletOrigin(), c.dims()); err != nil {
		return KeepGoing, err
	}
	return Done, nil
}

func (c *Input) Finalize(sub *chip.GridSubView) error { return nil }
func (c *Input) Abort(err error)                      {}
