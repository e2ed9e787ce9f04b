package command

import "github.com/uwmisl/puddle-core/chip"

// peripheralShape builds the padded shape a command needs when one cell of
// its footprint must be a specific peripheral, attached at the given side of
// the droplet region. It returns the padded shape (its dimensions and the
// peripheral's required local cell) and the local origin of the droplet
// region itself.
//
// This is the redesign named in the input/output peripheral design note: the
// side is data passed in by the caller (the command's own Side field), never
// a hard-coded column offset baked into a specific command.
func peripheralShape(dims chip.Location, kind chip.PeripheralKind, side chip.Side) (shape Shape, dropletOrigin chip.Location) {
	switch side {
	case chip.SideLeft:
		shape.Dimensions = chip.Location{Y: dims.Y, X: dims.X + 1}
		shape.Peripherals = map[chip.Location]chip.PeripheralKind{{Y: 0, X: 0}: kind}
		dropletOrigin = chip.Location{Y: 0, X: 1}
	case chip.SideTop:
		shape.Dimensions = chip.Location{Y: dims.Y + 1, X: dims.X}
		shape.Peripherals = map[chip.Location]chip.PeripheralKind{{Y: 0, X: 0}: kind}
		dropletOrigin = chip.Location{Y: 1, X: 0}
	case chip.SideBottom:
		shape.Dimensions = chip.Location{Y: dims.Y + 1, X: dims.X}
		shape.Peripherals = map[chip.Location]chip.PeripheralKind{{Y: dims.Y, X: 0}: kind}
		dropletOrigin = chip.Location{Y: 0, X: 0}
	case chip.SideRight, chip.SideUnspecified:
		fallthrough
	default:
		shape.Dimensions = chip.Location{Y: dims.Y, X: dims.X + 1}
		shape.Peripherals = map[chip.Location]chip.PeripheralKind{{Y: 0, X: dims.X}: kind}
		dropletOrigin = chip.Location{Y: 0, X: 0}
	}
	return shape, dropletOrigin
}
