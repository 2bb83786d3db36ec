package script

import "errors"

// Errors for script operations.
var (
	// ErrStateClosed is returned when operating on a closed state.
	ErrStateClosed = errors.New("lua state is closed")

	// ErrNotFunction is returned when a hook name is bound to a non-function.
	ErrNotFunction = errors.New("hook is not a function")
)
