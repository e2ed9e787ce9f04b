package command

import "github.com/uwmisl/puddle-core/chip"

// Create produces one droplet of a given volume, optionally at a pinned
// location and with non-default dimensions.
type Create struct {
	Output     chip.DropletId
	Volume     float64
	Location   *chip.Location // nil: let the placer choose
	Dimensions chip.Location  // zero value defaults to 1x1
}

func (c *Create) dims() chip.Location {
	if c.Dimensions.Y == 0 && c.Dimensions.X == 0 {
		return chip.Location{Y: 1, X: 1}
	}
	return c.Dimensions
}

func (c *Create) InputDroplets() []chip.DropletId  { return nil }
func (c *Create) OutputDroplets() []chip.DropletId { return []chip.DropletId{c.Output} }
func (c *Create) TrustPlacement() bool             { return c.Location != nil }

func (c *Create) Request(gv *chip.GridView) Request {
	req := Request{Shape: Shape{Dimensions: c.dims()}}
	if c.Location != nil {
		loc := *c.Location
		req.FixedOffset = &loc
	}
	return req
}

func (c *Create) Run(sub *chip.GridSubView) (RunStatus, error) {
	if _, err := sub.InsertLocal(c.Output, c.Volume, chip.Location{}, c.dims()); err != nil {
		return KeepGoing, err
	}
	return Done, nil
}

func (c *Create) Finalize(sub *chip.GridSubView) error { return nil }
func (c *Create) Abort(err error)                      {}
