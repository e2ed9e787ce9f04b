package chip

import (
	"errors"

	"github.com/uwmisl/puddle-core/process"
)

// Errors raised by GridView mutation. These are the only two ways a
// GridView mutation can fail; every other precondition (dimensions,
// collision-freedom) is either guaranteed upstream by the placer/router or
// checked explicitly via Validate.
var (
	ErrDropletAlreadyPresent = errors.New("chip: droplet id already present in grid view")
	ErrDropletNotPresent     = errors.New("chip: droplet id not present in grid view")
)

// GridView is the authoritative, mutable snapshot of droplets resting on a
// Grid. It is the sole mutable shared state a planner owns; it is never
// borrowed outside a single driver goroutine at a time.
type GridView struct {
	Grid     *Grid
	droplets map[DropletId]*Droplet
}

// NewGridView returns an empty view over grid.
func NewGridView(grid *Grid) *GridView {
	return &GridView{Grid: grid, droplets: make(map[DropletId]*Droplet)}
}

// Insert adds d to the view. It returns ErrDropletAlreadyPresent if d.Id is
// already present.
func (v *GridView) Insert(d *Droplet) error {
	if _, ok := v.droplets[d.Id]; ok {
		return ErrDropletAlreadyPresent
	}
	v.droplets[d.Id] = d
	return nil
}

// Remove removes and returns the droplet named by id.
func (v *GridView) Remove(id DropletId) (*Droplet, error) {
	d, ok := v.droplets[id]
	if !ok {
		return nil, ErrDropletNotPresent
	}
	delete(v.droplets, id)
	return d, nil
}

// Get returns the droplet named by id without removing it.
func (v *GridView) Get(id DropletId) (*Droplet, bool) {
	d, ok := v.droplets[id]
	return d, ok
}

// Rename removes the droplet under oldID and reinserts the same physical
// droplet under newID, the one legitimate id substitution Move and Heat
// perform.
func (v *GridView) Rename(oldID, newID DropletId) error {
	d, err := v.Remove(oldID)
	if err != nil {
		return err
	}
	d.Id = newID
	return v.Insert(d)
}

// Move relocates the droplet named by id to loc, without validating
// adjacency; callers that must enforce "one cell per tick" (the executor)
// check that separately before calling Move.
func (v *GridView) Move(id DropletId, loc Location) error {
	d, ok := v.droplets[id]
	if !ok {
		return ErrDropletNotPresent
	}
	d.Location = loc
	return nil
}

// Droplets returns the live droplet set. Callers must not mutate the
// returned map's structure (only field values of its *Droplet values, and
// only through GridView's own methods for anything identity-affecting).
func (v *GridView) Droplets() map[DropletId]*Droplet {
	return v.droplets
}

// DropletAt returns the droplet whose rectangle contains loc, if any.
func (v *GridView) DropletAt(loc Location) (*Droplet, bool) {
	for _, d := range v.droplets {
		if d.Rectangle().Contains(loc) {
			return d, true
		}
	}
	return nil, false
}

// DropletInfo returns a snapshot of every droplet, optionally filtered to
// one process id. A nil pid returns every droplet regardless of owner.
func (v *GridView) DropletInfo(pid *process.Id) []Info {
	out := make([]Info, 0, len(v.droplets))
	for _, d := range v.droplets {
		if pid != nil && d.Id.ProcessId != *pid {
			continue
		}
		out = append(out, d.Info())
	}
	return out
}

// GetCollision returns the first pair of distinct-collision-group droplets
// whose rectangles collide (CollisionDistance <= 0), or ok=false if the view
// is currently collision-free.
func (v *GridView) GetCollision() (a, b *Droplet, ok bool) {
	for id1, d1 := range v.droplets {
		for id2, d2 := range v.droplets {
			if id1 == id2 || d1.CollisionGroup == d2.CollisionGroup {
				continue
			}
			if d1.CollisionDistance(d2) <= 0 {
				return d1, d2, true
			}
		}
	}
	return nil, nil, false
}

// Validate checks the GridView invariant: every droplet's rectangle lies
// entirely within grid cells, and no two droplets in different collision
// groups collide. It is intended for debug-mode assertions, not the hot
// path.
func (v *GridView) Validate() error {
	for _, d := range v.droplets {
		if !v.Grid.RectangleFits(d.Rectangle()) {
			return errValidationf("droplet %s at %s does not fit the grid", d.Id, d.Location)
		}
	}
	if _, _, collides := v.GetCollision(); collides {
		return errValidation("gridview has a cross-group collision")
	}
	return nil
}

// PinActivation derives the full hardware pin-activation vector for the
// current droplet set.
func (v *GridView) PinActivation() [2]uint64 {
	locs := make([]Location, 0)
	for _, d := range v.droplets {
		locs = append(locs, d.Rectangle().Cells()...)
	}
	return v.Grid.PinActivation(locs)
}
