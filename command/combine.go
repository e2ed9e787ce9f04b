package command

import "github.com/uwmisl/puddle-core/chip"

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Combine consumes two droplets and produces one with their summed volume.
// The shape contract assumes vertical stacking: the combined region grows in
// Y by both inputs' heights and in X only to the wider of the two. Lateral
// (X-growth) combine is not modeled; see the combine-geometry design note.
type Combine struct {
	InputA, InputB chip.DropletId
	Output         chip.DropletId
}

func (c *Combine) InputDroplets() []chip.DropletId  { return []chip.DropletId{c.InputA, c.InputB} }
func (c *Combine) OutputDroplets() []chip.DropletId { return []chip.DropletId{c.Output} }
func (c *Combine) TrustPlacement() bool             { return false }

func (c *Combine) dims(gv *chip.GridView) (a, b chip.Location) {
	a, b = chip.Location{Y: 1, X: 1}, chip.Location{Y: 1, X: 1}
	if d, ok := gv.Get(c.InputA); ok {
		a = d.Dimensions
	}
	if d, ok := gv.Get(c.InputB); ok {
		b = d.Dimensions
	}
	return a, b
}

func (c *Combine) Request(gv *chip.GridView) Request {
	dimsA, dimsB := c.dims(gv)
	shapeDims := chip.Location{Y: dimsA.Y + dimsB.Y, X: maxInt(dimsA.X, dimsB.X)}
	return Request{
		Shape:          Shape{Dimensions: shapeDims},
		InputLocations: []chip.Location{{Y: 0, X: 0}, {Y: dimsA.Y, X: 0}},
	}
}

func (c *Combine) Run(sub *chip.GridSubView) (RunStatus, error) {
	da, err := sub.Remove(c.InputA)
	if err != nil {
		return KeepGoing, err
	}
	db, err := sub.Remove(c.InputB)
	if err != nil {
		return KeepGoing, err
	}
	dims := chip.Location{Y: da.Dimensions.Y + db.Dimensions.Y, X: maxInt(da.Dimensions.X, db.Dimensions.X)}
	volume := da.Volume + db.Volume
	if _, err := sub.InsertLocal(c.Output, volume, chip.Location{}, dims); err != nil {
		return KeepGoing, err
	}
	return Done, nil
}

func (c *Combine) Finalize(sub *chip.GridSubView) error { return nil }
func (c *Combine) Abort(err error)                      {}

// CombineInto is the pinned-first-input flavor of Combine: Target keeps its
// current resting location, and Source is routed to arrive stacked directly
// above it. The vertical-stacking limitation is enforced explicitly (as a
// returned error, this being Go rather than Rust) instead of silently
// generalised to lateral combine.
type CombineInto struct {
	Target chip.DropletId // pinned; keeps its physical position
	Source chip.DropletId // routed to arrive above Target
	Output chip.DropletId
}

func (c *CombineInto) InputDroplets() []chip.DropletId  { return []chip.DropletId{c.Source, c.Target} }
func (c *CombineInto) OutputDroplets() []chip.DropletId { return []chip.DropletId{c.Output} }
func (c *CombineInto) TrustPlacement() bool             { return true }

func (c *CombineInto) Request(gv *chip.GridView) Request {
	target, _ := gv.Get(c.Target)
	source, _ := gv.Get(c.Source)
	dimsTarget, dimsSource := chip.Location{Y: 1, X: 1}, chip.Location{Y: 1, X: 1}
	targetLoc := chip.Location{}
	if target != nil {
		dimsTarget = target.Dimensions
		targetLoc = target.Location
	}
	if source != nil {
		dimsSource = source.Dimensions
	}

	offset := targetLoc.Add(chip.Location{Y: -dimsSource.Y, X: 0})
	return Request{
		Shape:          Shape{Dimensions: chip.Location{Y: dimsTarget.Y + dimsSource.Y, X: maxInt(dimsTarget.X, dimsSource.X)}},
		InputLocations: []chip.Location{{Y: 0, X: 0}, {Y: dimsSource.Y, X: 0}},
		FixedOffset:    &offset,
	}
}

func (c *CombineInto) Run(sub *chip.GridSubView) (RunStatus, error) {
	target, ok := sub.Get(c.Target)
	if !ok {
		return KeepGoing, ErrUnknownDroplet
	}
	source, ok := sub.Get(c.Source)
	if !ok {
		return KeepGoing, ErrUnknownDroplet
	}
	if target.Location.Y <= source.Dimensions.Y {
		return KeepGoing, ErrCombineGeometry
	}

	dt, err := sub.Remove(c.Target)
	if err != nil {
		return KeepGoing, err
	}
	ds, err := sub.Remove(c.Source)
	if err != nil {
		return KeepGoing, err
	}
	dims := chip.Location{Y: dt.Dimensions.Y + ds.Dimensions.Y, X: maxInt(dt.Dimensions.X, ds.Dimensions.X)}
	volume := dt.Volume + ds.Volume
	if _, err := sub.InsertLocal(c.Output, volume, chip.Location{}, dims); err != nil {
		return KeepGoing, err
	}
	return Done, nil
}

func (c *CombineInto) Finalize(sub *chip.GridSubView) error { return nil }
func (c *CombineInto) Abort(err error)                      {}
