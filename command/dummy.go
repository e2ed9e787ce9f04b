package command

import "github.com/uwmisl/puddle-core/chip"

// Dummy is a single-step no-op command for exercising graph wiring without
// involving real chip geometry: its shape is one row wide enough for its
// inputs (at least one cell), and it renames each input to its parallel
// output on the first Run call.
type Dummy struct {
	Inputs  []chip.DropletId
	Outputs []chip.DropletId
}

func (c *Dummy) InputDroplets() []chip.DropletId  { return c.Inputs }
func (c *Dummy) OutputDroplets() []chip.DropletId { return c.Outputs }
func (c *Dummy) TrustPlacement() bool             { return false }

func (c *Dummy) Request(gv *chip.GridView) Request {
	locs := make([]chip.Location, len(c.Inputs))
	for i := range locs {
		locs[i] = chip.Location{Y: 0, X: i}
	}
	return Request{
		Shape:          Shape{Dimensions: chip.Location{Y: 1, X: maxInt(1, len(c.Inputs))}},
		InputLocations: locs,
	}
}

func (c *Dummy) Run(sub *chip.GridSubView) (RunStatus, error) {
	for i, in := range c.Inputs {
		if i >= len(c.Outputs) {
			break
		}
		if err := sub.Rename(in, c.Outputs[i]); err != nil {
			return KeepGoing, err
		}
	}
	return Done, nil
}

func (c *Dummy) Finalize(sub *chip.GridSubView) error { return nil }
func (c *Dummy) Abort(err error)                      {}
