package chip

import "sort"

// Grid is a sparse, axis-aligned board of cells: some positions may be
// absent ("holes"). It is immutable once built, following the same
// deep-copy-on-construct discipline used elsewhere in this module's grid
// tooling, so that a Grid handed to multiple GridViews can never be
// mutated out from under any of them.
type Grid struct {
	cells     map[Location]Cell
	maxHeight int
	maxWidth  int
	maxPin    int
}

// NewGrid builds an immutable Grid from a location->cell map. The input map
// is copied; later mutation of it has no effect on the returned Grid.
func NewGrid(cells map[Location]Cell) *Grid {
	g := &Grid{cells: make(map[Location]Cell, len(cells))}
	for loc, cell := range cells {
		g.cells[loc] = cell
		if loc.Y+1 > g.maxHeight {
			g.maxHeight = loc.Y + 1
		}
		if loc.X+1 > g.maxWidth {
			g.maxWidth = loc.X + 1
		}
		if cell.Pin > g.maxPin {
			g.maxPin = cell.Pin
		}
	}
	return g
}

// RectangularGrid builds a fully filled h x w grid with sequential pin ids
// in row-major order, useful for tests and for the simplest chip
// descriptions.
func RectangularGrid(height, width int) *Grid {
	cells := make(map[Location]Cell, height*width)
	pin := 0
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			cells[Location{Y: y, X: x}] = Cell{Pin: pin}
			pin++
		}
	}
	return NewGrid(cells)
}

// Get returns the cell at loc and whether it exists.
func (g *Grid) Get(loc Location) (Cell, bool) {
	c, ok := g.cells[loc]
	return c, ok
}

// MaxHeight returns one past the largest row index present in the grid.
func (g *Grid) MaxHeight() int { return g.maxHeight }

// MaxWidth returns one past the largest column index present in the grid.
func (g *Grid) MaxWidth() int { return g.maxWidth }

// MaxPin returns the largest pin id present in the grid.
func (g *Grid) MaxPin() int { return g.maxPin }

// Locations returns every occupied location, sorted first by row then by
// column, so that callers enumerating the grid (the placer, in particular)
// see a stable, deterministic order.
func (g *Grid) Locations() []Location {
	locs := make([]Location, 0, len(g.cells))
	for loc := range g.cells {
		locs = append(locs, loc)
	}
	sort.Slice(locs, func(i, j int) bool {
		if locs[i].Y != locs[j].Y {
			return locs[i].Y < locs[j].Y
		}
		return locs[i].X < locs[j].X
	})
	return locs
}

func (g *Grid) neighborsAt(loc Location, offsets []Location, includeSelf bool) []Location {
	out := make([]Location, 0, len(offsets)+1)
	if includeSelf {
		if _, ok := g.cells[loc]; ok {
			out = append(out, loc)
		}
	}
	for _, off := range offsets {
		n := loc.Add(off)
		if _, ok := g.cells[n]; ok {
			out = append(out, n)
		}
	}
	return out
}

// Neighbors4 returns the existing 4-connected neighbors of loc.
func (g *Grid) Neighbors4(loc Location) []Location {
	return g.neighborsAt(loc, Offset4, false)
}

// Neighbors8 returns the existing 8-connected (Moore) neighbors of loc.
func (g *Grid) Neighbors8(loc Location) []Location {
	return g.neighborsAt(loc, Offset8, false)
}

// Neighbors9 returns Neighbors8 plus loc itself, when loc exists.
func (g *Grid) Neighbors9(loc Location) []Location {
	out := make([]Location, 0, 9)
	if _, ok := g.cells[loc]; ok {
		out = append(out, loc)
	}
	out = append(out, g.neighborsAt(loc, Offset8, false)...)
	return out
}

// Neighbors5Stay returns the existing cells reachable from loc by staying or
// taking one of the four cardinal moves, in the router's canonical
// stay-N-S-E-W order. Non-existent targets (off the sparse grid) are
// dropped rather than substituted, so callers must treat a short result as
// "fewer legal moves," not as a malformed offset list.
func (g *Grid) Neighbors5Stay(loc Location) []Location {
	return g.neighborsAt(loc, Offset4, true)
}

// NeighborsOfRectangle returns the union, deduplicated, of Neighbors9 over
// every cell of rect, excluding rect's own cells. This is the placement
// "gap" footprint: a one-cell buffer around an entire rectangle rather than
// around a single point.
func (g *Grid) NeighborsOfRectangle(rect Rectangle) []Location {
	seen := make(map[Location]struct{})
	inRect := make(map[Location]struct{}, len(rect.Cells()))
	for _, c := range rect.Cells() {
		inRect[c] = struct{}{}
	}
	out := make([]Location, 0)
	for _, cell := range rect.Cells() {
		for _, n := range g.Neighbors9(cell) {
			if _, already := inRect[n]; already {
				continue
			}
			if _, dup := seen[n]; dup {
				continue
			}
			seen[n] = struct{}{}
			out = append(out, n)
		}
	}
	return out
}

// RectangleFits reports whether every cell of rect exists in the grid.
func (g *Grid) RectangleFits(rect Rectangle) bool {
	for _, c := range rect.Cells() {
		if _, ok := g.cells[c]; !ok {
			return false
		}
	}
	return true
}

// PinActivation packs the pin ids of every occupied cell listed in locs into
// the 128-bit hardware activation vector (two uint64 words; pin p sets bit
// p%64 of word p/64, so pins 0-63 land in the first word) the executor's hardware boundary
// contract describes. Pins >= 128 are out of range for the fixed-size
// vector and are silently ignored, matching a board with at most 128 pins.
func (g *Grid) PinActivation(locs []Location) [2]uint64 {
	var vec [2]uint64
	for _, loc := range locs {
		cell, ok := g.cells[loc]
		if !ok || cell.Pin < 0 || cell.Pin >= 128 {
			continue
		}
		word := cell.Pin / 64
		bit := uint(cell.Pin % 64)
		vec[word] |= 1 << bit
	}
	return vec
}
