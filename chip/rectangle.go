package chip

// Rectangle is an axis-aligned box anchored at its upper-left cell, spanning
// Dimensions.Y rows and Dimensions.X columns. Both components of Dimensions
// must be strictly positive; Rectangle itself does not enforce this (callers
// that construct one from user input, e.g. chip.Droplet, do).
type Rectangle struct {
	Location   Location
	Dimensions Location
}

// corners returns the rectangle's four corner cells, in upper-left,
// lower-left, upper-right, lower-right order. The "-1" adjustment on each
// far edge exists because MinDistanceToBox already treats the cell itself as
// a unit square; see Location.MinDistanceToBox.
func (r Rectangle) corners() [4]Location {
	return [4]Location{
		r.Location,
		r.Location.Add(Location{Y: r.Dimensions.Y - 1, X: 0}),
		r.Location.Add(Location{Y: 0, X: r.Dimensions.X - 1}),
		r.Location.Add(Location{Y: r.Dimensions.Y - 1, X: r.Dimensions.X - 1}),
	}
}

// Cells returns every cell covered by the rectangle, in row-major order.
func (r Rectangle) Cells() []Location {
	cells := make([]Location, 0, r.Dimensions.Y*r.Dimensions.X)
	for dy := 0; dy < r.Dimensions.Y; dy++ {
		for dx := 0; dx < r.Dimensions.X; dx++ {
			cells = append(cells, r.Location.Add(Location{Y: dy, X: dx}))
		}
	}
	return cells
}

// Contains reports whether loc falls within the rectangle's covered cells.
func (r Rectangle) Contains(loc Location) bool {
	dy := loc.Y - r.Location.Y
	dx := loc.X - r.Location.X
	return dy >= 0 && dy < r.Dimensions.Y && dx >= 0 && dx < r.Dimensions.X
}

// CollisionDistance returns the minimum number of empty cells separating r
// from other. A result <= 0 means the rectangles overlap or touch and must
// not coexist outside a shared collision group.
//
// The double minimum (my corners against their box, then their corners
// against my box) is required because MinDistanceToBox alone, evaluated from
// only one rectangle's corners, under-counts the separation when one
// rectangle is much longer and thinner than the other.
func (r Rectangle) CollisionDistance(other Rectangle) int {
	mine := r.corners()
	theirs := other.corners()

	d1 := mine[0].MinDistanceToBox(theirs[0], theirs[3])
	for _, c := range mine[1:] {
		d := c.MinDistanceToBox(theirs[0], theirs[3])
		if d < d1 {
			d1 = d
		}
	}
	if d1 < 0 {
		return d1
	}

	d2 := theirs[0].MinDistanceToBox(mine[0], mine[3])
	for _, c := range theirs[1:] {
		d := c.MinDistanceToBox(mine[0], mine[3])
		if d < d2 {
			d2 = d
		}
	}

	return minInt(d1, d2)
}
