package lineup

import "errors"

// Sentinel reasons for a rejected generation.  A *ValidationError wraps
// exactly one of them.
var (
	ErrEmptyLineup     = errors.New("please add members to the current lineup first")
	ErrNoSteerer       = errors.New("a steerer is required to generate a lineup")
	ErrTooManyPaddlers = errors.New("too many paddlers, maximum 20 allowed")
	ErrNoPaddlers      = errors.New("at least one paddler is required to generate a lineup")
)

// ErrSeatLocked rejects a manual move into or out of a locked seat.
var ErrSeatLocked = errors.New("seat is locked")

// ValidationError reports a user-correctable precondition failure.  No
// boat is produced when it is returned.
type ValidationError struct {
	Reason error
}

func (e *ValidationError) Error() string { return e.Reason.Error() }

// Unwrap exposes the sentinel so callers can use errors.Is.
func (e *ValidationError) Unwrap() error { return e.Reason }

func invalid(reason error) error { return &ValidationError{Reason: reason} }
