package command

import (
	"time"

	"github.com/uwmisl/puddle-core/chip"
)

// ticksPerSecond is the fixed conversion this module uses between a Heat
// command's requested duration and the executor's discrete tick count; a
// hardware-backed executor is free to stretch ticks to real time (see the
// concurrency model's note on per-tick sleep), but the core always reasons
// in whole ticks.
const ticksPerSecond = 4

// Heat consumes one droplet and produces the same physical droplet (new id)
// after holding it on a heater cell for a duration at a target temperature.
// The heater cell is required at the bottom row of the shape, matching the
// single-column limitation of the original heater geometry.
type Heat struct {
	Input        chip.DropletId
	Output       chip.DropletId
	TargetTempC  float64
	Duration     time.Duration
	ticksElapsed int
	ticksNeeded  int
}

func (c *Heat) InputDroplets() []chip.DropletId  { return []chip.DropletId{c.Input} }
func (c *Heat) OutputDroplets() []chip.DropletId { return []chip.DropletId{c.Output} }
func (c *Heat) TrustPlacement() bool             { return false }

func (c *Heat) dims(gv *chip.GridView) chip.Location {
	if d, ok := gv.Get(c.Input); ok {
		return d.Dimensions
	}
	return chip.Location{Y: 1, X: 1}
}

func (c *Heat) Request(gv *chip.GridView) Request {
	dims := c.dims(gv)
	heaterLocal := chip.Location{Y: dims.Y - 1, X: 0}
	return Request{
		Shape: Shape{
			Dimensions:  dims,
			Peripherals: map[chip.Location]chip.PeripheralKind{heaterLocal: chip.KindHeater},
		},
		InputLocations: []chip.Location{heaterLocal},
	}
}

func (c *Heat) requiredTicks() int {
	if c.ticksNeeded > 0 {
		return c.ticksNeeded
	}
	ticks := int(c.Duration.Seconds() * ticksPerSecond)
	if ticks < 1 {
		ticks = 1
	}
	c.ticksNeeded = ticks
	return ticks
}

func (c *Heat) Run(sub *chip.GridSubView) (RunStatus, error) {
	d, ok := sub.Get(c.Input)
	if !ok {
		return KeepGoing, ErrUnknownDroplet
	}
	if d.Dimensions.X != 1 {
		return KeepGoing, ErrHeatGeometry
	}
	c.ticksElapsed++
	if c.ticksElapsed >= c.requiredTicks() {
		if err := sub.Rename(c.Input, c.Output); err != nil {
			return KeepGoing, err
		}
		return Done, nil
	}
	return KeepGoing, nil
}

func (c *Heat) Finalize(sub *chip.GridSubView) error { return nil }
func (c *Heat) Abort(err error)                      {}
