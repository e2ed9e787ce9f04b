package scheduler

import "errors"

// ErrNothingToSchedule is returned by Schedule when the graph has nodes but
// none of them are bound, ready, and unscheduled.
var ErrNothingToSchedule = errors.New("scheduler: nothing to schedule")

// errBadTransition is returned by Validate when a committed schedule
// violates the edge-ordering invariant: a consumer scheduled before (or
// without) its producer.
var errBadTransition = errors.New("scheduler: bad schedule transition")
