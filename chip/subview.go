package chip

// Placement is a rigid translation from an operation's local shape
// coordinates to grid coordinates, as produced by the placer. Local
// locations are always non-negative and bounded by the shape's dimensions;
// the map holds exactly one entry per shape cell.
type Placement map[Location]Location

// Translate returns the global grid location corresponding to local, and
// whether local is part of this placement at all.
func (p Placement) Translate(local Location) (Location, bool) {
	loc, ok := p[local]
	return loc, ok
}

// invert builds the local coordinate for a given global one; it is O(n) in
// the placement size and is only ever called from within a single command's
// run step, never in a hot loop, so a cached reverse map is not worth the
// complexity.
func (p Placement) invert(global Location) (Location, bool) {
	for local, g := range p {
		if g == global {
			return local, true
		}
	}
	return Location{}, false
}

// GridSubView is a borrowed, coordinate-translated projection of a GridView,
// restricted to one command's placement. All operation-level droplet
// mutation happens through a sub-view so that a command can only ever touch
// cells within the region the placer assigned it.
type GridSubView struct {
	View      *GridView
	Placement Placement
}

// NewGridSubView returns a sub-view of view restricted to placement.
func NewGridSubView(view *GridView, placement Placement) *GridSubView {
	return &GridSubView{View: view, Placement: placement}
}

// InsertLocal creates a new droplet at the given local location and inserts
// it into the underlying view at the corresponding global location. It
// returns ErrOutOfPlacement if local is not part of this sub-view's shape.
func (sv *GridSubView) InsertLocal(id DropletId, volume float64, local, dims Location) (*Droplet, error) {
	global, ok := sv.Placement.Translate(local)
	if !ok {
		return nil, ErrOutOfPlacement
	}
	d := NewDroplet(id, volume, global, dims)
	if err := sv.View.Insert(d); err != nil {
		return nil, err
	}
	return d, nil
}

// Remove removes and returns the droplet named by id; no coordinate
// translation is needed since droplet ids, unlike locations, are global.
func (sv *GridSubView) Remove(id DropletId) (*Droplet, error) {
	return sv.View.Remove(id)
}

// Rename removes the droplet under oldID and reinserts it under newID.
func (sv *GridSubView) Rename(oldID, newID DropletId) error {
	return sv.View.Rename(oldID, newID)
}

// MoveLocal relocates the droplet named by id to the global location
// corresponding to local.
func (sv *GridSubView) MoveLocal(id DropletId, local Location) error {
	global, ok := sv.Placement.Translate(local)
	if !ok {
		return ErrOutOfPlacement
	}
	return sv.View.Move(id, global)
}

// LocalLocationOf returns the local coordinate of the droplet named by id,
// if both the droplet and that coordinate are within this sub-view's
// placement.
func (sv *GridSubView) LocalLocationOf(id DropletId) (Location, bool) {
	d, ok := sv.View.Get(id)
	if !ok {
		return Location{}, false
	}
	return sv.Placement.invert(d.Location)
}

// Get returns the droplet named by id, unchanged from the underlying view.
func (sv *GridSubView) Get(id DropletId) (*Droplet, bool) {
	return sv.View.Get(id)
}
