package format

import (
	"fmt"
)

// NoFilesSelectedError means selection produced an empty candidate list.
// The user can recover by asking for a whole-repository scan.
type NoFilesSelectedError struct{}

func (e *NoFilesSelectedError) Error() string {
	return `no changed files detected. Use "fwtool cformat -a" to format all core files`
}

// FormatterInvocationError reports a failed clang-format run with its
// captured output streams.
type FormatterInvocationError struct {
	Cmd      string
	ExitCode int
	Stdout   string
	Stderr   string
	Wrapped  error
}

func (e *FormatterInvocationError) Error() string {
	return fmt.Sprintf("%s exited with returncode %d", e.Cmd, e.ExitCode)
}

func (e *FormatterInvocationError) Unwrap() error { return e.Wrapped }

// DriftFoundError means a dry run found files that clang-format would change.
type DriftFoundError struct {
	Count int
}

func (e *DriftFoundError) Error() string {
	return fmt.Sprintf("%d file(s) are not formatted correctly", e.Count)
}
