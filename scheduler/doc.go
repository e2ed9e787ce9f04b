// Package scheduler selects, per planning round, the set of command graph
// nodes to run next: bound, unscheduled nodes whose every predecessor has
// already been scheduled, ordered to keep the number of concurrently live
// droplets low.
package scheduler
