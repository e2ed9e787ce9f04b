package command

import "errors"

// ErrCombineGeometry is returned by CombineInto when the pinned input does
// not sit strictly below the second input's height, the vertical-stacking
// limitation this module preserves explicitly rather than generalising; see
// the combine-geometry design note.
var ErrCombineGeometry = errors.New("command: combine requires vertical stacking (pinned input above the second input's height)")

// ErrHeatGeometry is returned when a Heat command's input droplet is wider
// than one column, the same limitation the original heater shape carried.
var ErrHeatGeometry = errors.New("command: heat requires a single-column droplet")

// ErrUnknownDroplet is returned by a command's Run when its sub-view does
// not contain one of its declared inputs.
var ErrUnknownDroplet = errors.New("command: input droplet not present in gridview")
