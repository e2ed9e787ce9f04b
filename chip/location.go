package chip

import "fmt"

// Location is a single addressable point on the grid, expressed as signed
// row/column offsets so that arithmetic (Add, Sub) never needs to guard
// against underflow the way an unsigned coordinate pair would.
type Location struct {
	Y, X int
}

// Add returns the componentwise sum of l and other.
func (l Location) Add(other Location) Location {
	return Location{Y: l.Y + other.Y, X: l.X + other.X}
}

// Sub returns the componentwise difference l - other.
func (l Location) Sub(other Location) Location {
	return Location{Y: l.Y - other.Y, X: l.X - other.X}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Norm returns the L1 (Manhattan) norm of l.
func (l Location) Norm() int {
	return absInt(l.Y) + absInt(l.X)
}

// DistanceTo returns the Manhattan distance between l and other.
func (l Location) DistanceTo(other Location) int {
	return l.Sub(other).Norm()
}

// MinDistanceToBox returns the minimum number of empty cells separating l
// from the axis-aligned box spanned by [corner1, corner2] inclusive
// (corner1 must be the upper-left, corner2 the lower-right corner). The
// result is negative when l lies strictly inside the box, zero when l lies
// on its boundary or is immediately adjacent, and positive otherwise.
//
// corner1.X <= corner2.X and corner1.Y <= corner2.Y are required.
func (l Location) MinDistanceToBox(corner1, corner2 Location) int {
	if corner1.X > corner2.X || corner1.Y > corner2.Y {
		panic("chip: MinDistanceToBox requires corner1 <= corner2 componentwise")
	}

	dy := maxInt(corner1.Y-(l.Y+1), l.Y-corner2.Y)
	dx := maxInt(corner1.X-(l.X+1), l.X-corner2.X)

	if dy < 0 && dx < 0 {
		return -1
	}
	return maxInt(dy, 0) + maxInt(dx, 0)
}

// String implements fmt.Stringer.
func (l Location) String() string {
	return fmt.Sprintf("(%d, %d)", l.Y, l.X)
}

// Offset4 are the four cardinal single-cell moves, in the deterministic
// N, S, E, W order used by the router's successor enumeration.
var Offset4 = []Location{
	{Y: -1, X: 0}, // N
	{Y: 1, X: 0},  // S
	{Y: 0, X: 1},  // E
	{Y: 0, X: -1}, // W
}

// Offset5 is Offset4 plus the zero offset ("stay"), in the order the router
// enumerates per-agent moves: stay first, then N, S, E, W.
var Offset5 = append([]Location{{Y: 0, X: 0}}, Offset4...)

// Offset8 are the eight offsets of a Moore neighborhood, in row-major order.
var Offset8 = []Location{
	{Y: -1, X: -1}, {Y: -1, X: 0}, {Y: -1, X: 1},
	{Y: 0, X: -1}, {Y: 0, X: 1},
	{Y: 1, X: -1}, {Y: 1, X: 0}, {Y: 1, X: 1},
}

// Offset9 is Offset8 plus the zero offset, in row-major order including self.
var Offset9 = []Location{
	{Y: -1, X: -1}, {Y: -1, X: 0}, {Y: -1, X: 1},
	{Y: 0, X: -1}, {Y: 0, X: 0}, {Y: 0, X: 1},
	{Y: 1, X: -1}, {Y: 1, X: 0}, {Y: 1, X: 1},
}
