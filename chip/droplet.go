package chip

import (
	"fmt"
	"sync/atomic"

	"github.com/uwmisl/puddle-core/process"
)

// DropletId uniquely identifies a droplet for the lifetime of the planner.
// It is immutable once assigned, with one legitimate exception: Move and
// Heat remove the old id and insert the same physical droplet under a new
// one, which callers model as Remove(old) + Insert(new), never as mutating
// an existing DropletId value in place.
type DropletId struct {
	ProcessId process.Id
	LocalId   uint64
}

// String implements fmt.Stringer.
func (d DropletId) String() string {
	return fmt.Sprintf("%d.%d", d.ProcessId, d.LocalId)
}

// nextCollisionGroup is the process-wide "next collision group" counter
// named in the design notes as one of exactly two pieces of global state
// this module carries.
var nextCollisionGroup uint64

// NewCollisionGroup allocates a fresh collision group, distinct from every
// previously allocated group.
func NewCollisionGroup() uint64 {
	return atomic.AddUint64(&nextCollisionGroup, 1) - 1
}

// Droplet is an identified liquid entity: a rectangle of cells, a volume,
// and a collision group. Two droplets in different collision groups must
// never have a CollisionDistance <= 0; same-group droplets are exempted so
// that actively merging droplets can legally touch.
type Droplet struct {
	Id             DropletId
	Location       Location
	Dimensions     Location
	Volume         float64
	Destination    *Location
	CollisionGroup uint64
}

// NewDroplet constructs a droplet in its own fresh collision group. It
// panics if either dimension is non-positive, matching the precondition the
// rest of this module assumes a Droplet never violates.
func NewDroplet(id DropletId, volume float64, location, dimensions Location) *Droplet {
	if dimensions.Y <= 0 || dimensions.X <= 0 {
		panic("chip: droplet dimensions must be positive")
	}
	return &Droplet{
		Id:             id,
		Location:       location,
		Dimensions:     dimensions,
		Volume:         volume,
		CollisionGroup: NewCollisionGroup(),
	}
}

// Rectangle returns the droplet's current bounding box.
func (d *Droplet) Rectangle() Rectangle {
	return Rectangle{Location: d.Location, Dimensions: d.Dimensions}
}

// CollisionDistance is shorthand for d.Rectangle().CollisionDistance(other.Rectangle()).
func (d *Droplet) CollisionDistance(other *Droplet) int {
	return d.Rectangle().CollisionDistance(other.Rectangle())
}

// Info is the immutable, externally reportable snapshot of a Droplet.
type Info struct {
	Id         DropletId
	Location   Location
	Volume     float64
	Dimensions Location
}

// Info returns a snapshot of d suitable for droplet_info() responses.
func (d *Droplet) Info() Info {
	return Info{Id: d.Id, Location: d.Location, Volume: d.Volume, Dimensions: d.Dimensions}
}

// ToBlob discards d's identity, yielding the unidentified rectangle-with-volume
// used by placement planning.
func (d *Droplet) ToBlob() Blob {
	return Blob{Location: d.Location, Dimensions: d.Dimensions, Volume: d.Volume}
}

// floatEpsilonEqual matches volumes within a small absolute tolerance, since
// volumes accumulate through repeated halving/summing.
func floatEpsilonEqual(a, b float64) bool {
	const epsilon = 0.00001
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff < epsilon
}

// Blob is an unidentified rectangle-with-volume: the shape of a droplet
// without its identity, used both for placement planning and for
// reconstructing droplets from physical (vision) detections.
type Blob struct {
	Location   Location
	Dimensions Location
	Volume     float64
}

// Equal reports whether b and other describe the same rectangle and a volume
// within floating-point tolerance.
func (b Blob) Equal(other Blob) bool {
	return b.Location == other.Location && b.Dimensions == other.Dimensions && floatEpsilonEqual(b.Volume, other.Volume)
}

// BlobFromLocations reconstructs a Blob from an unordered set of cells, but
// only if those cells form exactly one filled axis-aligned rectangle; it
// reports ok=false otherwise. Volume defaults to the cell count, mirroring
// the placeholder convention used throughout this module before a command
// assigns a real volume.
func BlobFromLocations(locs []Location) (Blob, bool) {
	if len(locs) == 0 {
		return Blob{}, false
	}

	minY, minX := locs[0].Y, locs[0].X
	maxY, maxX := locs[0].Y, locs[0].X
	for _, l := range locs[1:] {
		minY = minInt(minY, l.Y)
		minX = minInt(minX, l.X)
		maxY = maxInt(maxY, l.Y)
		maxX = maxInt(maxX, l.X)
	}

	location := Location{Y: minY, X: minX}
	dimensions := Location{Y: maxY - minY + 1, X: maxX - minX + 1}

	want := make(map[Location]struct{}, dimensions.Y*dimensions.X)
	for dy := 0; dy < dimensions.Y; dy++ {
		for dx := 0; dx < dimensions.X; dx++ {
			want[Location{Y: location.Y + dy, X: location.X + dx}] = struct{}{}
		}
	}

	got := make(map[Location]struct{}, len(locs))
	for _, l := range locs {
		got[l] = struct{}{}
	}

	if len(got) != len(want) {
		return Blob{}, false
	}
	for l := range got {
		if _, ok := want[l]; !ok {
			return Blob{}, false
		}
	}

	volume := float64(dimensions.Y * dimensions.X)
	return Blob{Location: location, Dimensions: dimensions, Volume: volume}, true
}
