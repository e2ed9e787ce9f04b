// Package process allocates the small monotonic identifiers a planner hands
// out to logical client sessions (ProcessId) and to the droplets each session
// owns (the local half of chip.DropletId). The process-id counter is
// process-wide (chip's collision-group counter is the module's other one);
// droplet-local counters are kept per process inside a Manager. Neither kind
// is ever reset, matching the single-process lifetime the planner assumes.
package process
