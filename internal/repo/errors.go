package repo

import (
	"fmt"
)

// DiffCommandError reports a failed diff invocation together with whatever
// the command wrote to stderr.
type DiffCommandError struct {
	Cmd     string
	Stderr  string
	Wrapped error
}

func (e *DiffCommandError) Error() string {
	return fmt.Sprintf("error running %s: %v\n%s", e.Cmd, e.Wrapped, e.Stderr)
}

func (e *DiffCommandError) Unwrap() error { return e.Wrapped }
