package command_test

import (
	"github.com/uwmisl/puddle-core/chip"
)

// placeShape builds a trivial identity-offset placement: local (0,0) maps to
// origin, and every other local cell maps to origin+local. This is enough to
// drive a command's Run steps without involving the placer.
func placeShape(origin chip.Location, dims chip.Location) chip.Placement {
	p := make(chip.Placement, dims.Y*dims.X)
	for y := 0; y < dims.Y; y++ {
		for x := 0; x < dims.X; x++ {
			local := chip.Location{Y: y, X: x}
			p[local] = origin.Add(local)
		}
	}
	return p
}
