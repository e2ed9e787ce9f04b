package chip

import (
	"errors"
	"fmt"
)

// ErrValidation wraps every invariant violation Validate can report, so
// callers can match on it with errors.Is regardless of the specific message.
var ErrValidation = errors.New("chip: invariant violation")

// ErrOutOfPlacement is returned when a command tries to touch a local
// coordinate its placement does not cover.
var ErrOutOfPlacement = errors.New("chip: location outside placement")

func errValidation(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}

func errValidationf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
