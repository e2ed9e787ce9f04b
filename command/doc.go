// Package command implements the nine DMF operations (Create, Input, Output,
// Move, Combine, CombineInto, Agitate, Split, Heat, Flush) as a uniform
// Command interface driven by the planner and executor: a command states its
// input/output droplet ids and a pure-function placement request, then runs
// to completion one step at a time against a chip.GridSubView scoped to its
// own placement.
package command
