// Package executor plays back one planner.PlanPhase tick by tick: it
// advances every routed droplet one step at a time, then runs every
// scheduled command's placement-scoped sub-view to completion.
package executor
