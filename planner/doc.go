// Package planner sequences scheduler, placer, and router into a single
// planning round: it selects the next ready commands, maps their requested
// shapes onto the grid, routes every droplet that must move, and emits a
// PlanPhase the executor can play back tick by tick.
package planner
