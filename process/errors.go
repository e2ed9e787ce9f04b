package process

import "errors"

// ErrNonExistentProcess is raised when an operation names a process id this
// Manager never opened (or already closed).
var ErrNonExistentProcess = errors.New("process: non-existent process")

// ErrNonExistentDropletId is raised at the API boundary when a caller names
// a droplet id that its owning process does not currently hold.
var ErrNonExistentDropletId = errors.New("process: non-existent droplet id")
