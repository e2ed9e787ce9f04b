package placer

import (
	"sort"

	"github.com/rs/zerolog"

	"github.com/uwmisl/puddle-core/chip"
	"github.com/uwmisl/puddle-core/command"
	"github.com/uwmisl/puddle-core/dag"
)

// Placer maps command shapes and stored droplets onto chip grid regions.
type Placer struct {
	logger zerolog.Logger
}

// New returns a Placer. A zero Logger disables logging.
func New(logger zerolog.Logger) *Placer {
	return &Placer{logger: logger}
}

func buildMapping(dims, offset chip.Location) chip.Placement {
	p := make(chip.Placement, dims.Y*dims.X)
	for y := 0; y < dims.Y; y++ {
		for x := 0; x < dims.X; x++ {
			local := chip.Location{Y: y, X: x}
			p[local] = offset.Add(local)
		}
	}
	return p
}

// footprintAndGap returns rect's own cells plus its one-cell border, the
// full set of cells a new placement must keep clear of bad_locs.
func footprintAndGap(grid *chip.Grid, rect chip.Rectangle) []chip.Location {
	out := append([]chip.Location{}, rect.Cells()...)
	out = append(out, grid.NeighborsOfRectangle(rect)...)
	return out
}

func disjoint(cells []chip.Location, badLocs map[chip.Location]struct{}) bool {
	for _, c := range cells {
		if _, bad := badLocs[c]; bad {
			return false
		}
	}
	return true
}

// peripheralsMatch reports whether every cell of mapping satisfies shape's
// per-cell peripheral requirement against grid.
func peripheralsMatch(grid *chip.Grid, shape command.Shape, mapping chip.Placement) bool {
	for local, global := range mapping {
		cell, ok := grid.Get(global)
		if !ok {
			return false
		}
		if !cell.Compatible(shape.PeripheralAt(local)) {
			return false
		}
	}
	return true
}

// tryPlace validates a single candidate mapping: every cell must exist on
// the grid, satisfy the shape's peripheral requirements, and keep a
// one-cell gap clear of bad_locs. On success it extends bad_locs with the
// mapping's own cells.
func tryPlace(grid *chip.Grid, shape command.Shape, offset chip.Location, badLocs map[chip.Location]struct{}) (chip.Placement, bool) {
	mapping := buildMapping(shape.Dimensions, offset)
	rect := chip.Rectangle{Location: offset, Dimensions: shape.Dimensions}
	if !grid.RectangleFits(rect) {
		return nil, false
	}
	if !peripheralsMatch(grid, shape, mapping) {
		return nil, false
	}
	if !disjoint(footprintAndGap(grid, rect), badLocs) {
		return nil, false
	}
	for _, c := range rect.Cells() {
		badLocs[c] = struct{}{}
	}
	return mapping, true
}

func manhattan(a, b chip.Location) int {
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	return dy + dx
}

// Place runs the algorithm: commands in the given order first (pinned
// offsets validated, unpinned offsets searched in deterministic grid
// order), then stored droplets nearest-offset first, all against a shared
// bad_locs set so no two placements' footprints (plus gap) overlap.
func (p *Placer) Place(grid *chip.Grid, commands []CommandRequest, stored []StoredDropletRequest) (Result, error) {
	badLocs := make(map[chip.Location]struct{})
	result := Result{
		Placements:      make(map[dag.NodeId]chip.Placement, len(commands)),
		StoredLocations: make(map[chip.DropletId]chip.Location, len(stored)),
	}

	candidates := grid.Locations()

	for _, cr := range commands {
		shape := cr.Req.Shape
		if shape.Empty() {
			result.Placements[cr.Id] = chip.Placement{}
			continue
		}

		if cr.Req.FixedOffset != nil {
			mapping, ok := tryPlace(grid, shape, *cr.Req.FixedOffset, badLocs)
			if !ok {
				id := cr.Id
				return Result{}, &PlacementError{Command: &id, Err: ErrNoOffset}
			}
			result.Placements[cr.Id] = mapping
			p.logger.Debug().Uint64("node", uint64(cr.Id)).Msg("placed at trusted offset")
			continue
		}

		placed := false
		for _, offset := range candidates {
			mapping, ok := tryPlace(grid, shape, offset, badLocs)
			if !ok {
				continue
			}
			result.Placements[cr.Id] = mapping
			placed = true
			p.logger.Debug().Uint64("node", uint64(cr.Id)).Interface("offset", offset).Msg("placed")
			break
		}
		if !placed {
			id := cr.Id
			return Result{}, &PlacementError{Command: &id, Err: ErrNoOffset}
		}
	}

	for _, sd := range stored {
		ordered := append([]chip.Location{}, candidates...)
		sort.SliceStable(ordered, func(i, j int) bool {
			return manhattan(ordered[i], sd.CurrentLocation) < manhattan(ordered[j], sd.CurrentLocation)
		})

		shape := command.Shape{Dimensions: sd.Dimensions}
		placed := false
		for _, offset := range ordered {
			mapping, ok := tryPlace(grid, shape, offset, badLocs)
			if !ok {
				continue
			}
			result.StoredLocations[sd.Id] = mapping[chip.Location{}]
			placed = true
			break
		}
		if !placed {
			id := sd.Id
			return Result{}, &PlacementError{Droplet: &id, Err: ErrNoOffset}
		}
	}

	return result, nil
}
