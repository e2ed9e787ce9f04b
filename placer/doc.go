// Package placer maps each scheduled command's abstract shape, and each
// droplet the scheduler wants parked between rounds, onto a region of the
// chip grid: a rigid translation from shape-local coordinates to grid
// coordinates, chosen so that no two placements' footprints (including a
// one-cell gap around each) overlap.
package placer
