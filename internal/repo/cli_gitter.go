package repo

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
)

// CLIGitter is the concrete implementation of Gitter using the git CLI.
type CLIGitter struct{}

// NewCLIGitter creates a new CLIGitter instance.
func NewCLIGitter() *CLIGitter {
	return &CLIGitter{}
}

// DiffNames runs `git diff --name-only <base> <scopes...>` and returns the
// changed paths. A non-zero exit is never masked: callers must abort rather
// than fall back to another selection strategy.
func (g *CLIGitter) DiffNames(ctx context.Context, base string, scopes []string) ([]string, error) {
	args := append([]string{"diff", "--name-only", base}, scopes...)

	//nolint:gosec // arguments are repository directory names from config
	cmd := exec.CommandContext(ctx, "git", args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, &DiffCommandError{
			Cmd:     "git " + strings.Join(args, " "),
			Stderr:  stderr.String(),
			Wrapped: err,
		}
	}

	var paths []string
	for _, line := range strings.Split(strings.TrimSpace(stdout.String()), "\n") {
		if line == "" {
			continue
		}
		paths = append(paths, line)
	}

	return paths, nil
}
