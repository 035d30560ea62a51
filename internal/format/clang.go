package format

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Formatter abstracts the external style tool so selection and drift logic
// can be tested without a clang-format binary.
type Formatter interface {
	// FormatOne returns the formatted content of path without touching disk.
	FormatOne(ctx context.Context, path string) ([]byte, error)
	// FormatInPlace rewrites the given paths on disk in a single run.
	FormatInPlace(ctx context.Context, paths []string) error
}

// lookPath is a variable for exec.LookPath to allow mocking in tests.
var lookPath = exec.LookPath

// Acceptable clang-format major versions, newest first.
var clangVersions = []int{10, 9, 8, 7}

// ClangFormatter runs the clang-format binary found on PATH.
type ClangFormatter struct{}

// NewClangFormatter creates a new ClangFormatter.
func NewClangFormatter() *ClangFormatter {
	return &ClangFormatter{}
}

// Executable resolves the formatter binary for this invocation. Versioned
// names are probed newest first; the unversioned name is the fallback. The
// result is never cached: PATH can change between runs.
func (f *ClangFormatter) Executable() string {
	for _, version := range clangVersions {
		binary := fmt.Sprintf("clang-format-%d", version)
		if _, err := lookPath(binary); err == nil {
			return binary
		}
	}
	return "clang-format"
}

// FormatOne runs `clang-format <path>` and captures the formatted output.
func (f *ClangFormatter) FormatOne(ctx context.Context, path string) ([]byte, error) {
	binary := f.Executable()

	cmd := exec.CommandContext(ctx, binary, path)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, &FormatterInvocationError{
			Cmd:      binary + " " + path,
			ExitCode: exitCode(cmd),
			Stdout:   stdout.String(),
			Stderr:   stderr.String(),
			Wrapped:  err,
		}
	}

	return stdout.Bytes(), nil
}

// FormatInPlace runs `clang-format -i <paths...>` once for the whole batch.
func (f *ClangFormatter) FormatInPlace(ctx context.Context, paths []string) error {
	binary := f.Executable()
	args := append([]string{"-i"}, paths...)

	cmd := exec.CommandContext(ctx, binary, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return &FormatterInvocationError{
			Cmd:      binary + " " + strings.Join(args, " "),
			ExitCode: exitCode(cmd),
			Stdout:   stdout.String(),
			Stderr:   stderr.String(),
			Wrapped:  err,
		}
	}

	return nil
}

// exitCode is safe when the process never started (ProcessState is nil).
func exitCode(cmd *exec.Cmd) int {
	if cmd.ProcessState == nil {
		return -1
	}
	return cmd.ProcessState.ExitCode()
}
