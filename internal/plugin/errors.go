package plugin

import (
	"errors"
	"fmt"
)

var (
	// ErrNoTable is reported when the host runs a command before asking
	// for the table.
	ErrNoTable = errors.New("command table not built")

	// ErrNoConfigDir is reported when the host gives no configuration
	// directory.
	ErrNoConfigDir = errors.New("no plugins config directory")

	// ErrPanic marks an EntryError built from a recovered panic.
	ErrPanic = errors.New("panic at entry point")
)

// EntryError records a failure inside one host entry point. It never
// crosses the boundary; it only ends up in the log.
type EntryError struct {
	// Entry is the exported function the host called, e.g. "beNotified".
	Entry string
	// Arg names the argument that was being handled, such as a
	// notification code or a command index. It may be empty.
	Arg string
	// Recovered holds the panic value when the failure was a panic.
	Recovered any
	Err       error
}

// panicError wraps a value recovered while serving entry.
func panicError(entry, arg string, recovered any) *EntryError {
	return &EntryError{Entry: entry, Arg: arg, Recovered: recovered, Err: ErrPanic}
}

func (e *EntryError) Error() string {
	if e == nil {
		return "<nil>"
	}
	where := e.Entry
	if e.Arg != "" {
		where += "(" + e.Arg + ")"
	}
	if e.Recovered != nil {
		return fmt.Sprintf("%s: %v: %v", where, e.Err, e.Recovered)
	}
	return fmt.Sprintf("%s: %v", where, e.Err)
}

func (e *EntryError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
