// Package chip models the static and dynamic state of a digital-microfluidics
// board: the electrode grid, the peripherals attached to it, and the droplets
// that occupy it at any instant.
//
// Geometry (Location, Rectangle) is integer and axis-aligned throughout; every
// distance is Manhattan unless stated otherwise. Grid is immutable once built.
// GridView is the sole mutable piece of shared state a planner owns; GridSubView
// is a borrowed, coordinate-translated projection of a GridView handed to a
// single command for the duration of one run step.
package chip
