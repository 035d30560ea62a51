package format

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/pmezard/go-difflib/difflib"
)

// FileDrift is the dry-run result for a single file.
type FileDrift struct {
	Path    string `json:"path"`
	Drifted bool   `json:"drifted"`
	Diff    string `json:"diff,omitempty"`
}

// DriftReport collects the per-file results of one dry run.
type DriftReport struct {
	CheckedAt time.Time
	Files     []FileDrift
}

// Drifted reports whether any file needs formatting.
func (r *DriftReport) Drifted() bool {
	for _, f := range r.Files {
		if f.Drifted {
			return true
		}
	}
	return false
}

// DriftCount returns the number of drifted files.
func (r *DriftReport) DriftCount() int {
	n := 0
	for _, f := range r.Files {
		if f.Drifted {
			n++
		}
	}
	return n
}

// Reporter renders a DriftReport for the user.
type Reporter interface {
	Write(w io.Writer, r *DriftReport) error
}

// Runner verifies or applies formatting over a candidate file list.
type Runner struct {
	formatter Formatter
	logger    *slog.Logger
}

// NewRunner creates a Runner using the given Formatter.
func NewRunner(formatter Formatter, logger *slog.Logger) *Runner {
	return &Runner{formatter: formatter, logger: logger}
}

// CheckDrift runs the formatter against each file in list order and diffs the
// output against the file's current content. Every file is checked even after
// drift is found so the caller sees the complete diff set. Nothing on disk is
// modified.
func (r *Runner) CheckDrift(ctx context.Context, files []string) (*DriftReport, error) {
	report := &DriftReport{CheckedAt: time.Now()}

	for _, file := range files {
		r.logger.Debug("Checking for changes", "file", file)

		formatted, err := r.formatter.FormatOne(ctx, file)
		if err != nil {
			r.logFormatterFailure(err)
			return nil, err
		}

		original, err := os.ReadFile(file)
		if err != nil {
			return nil, err
		}

		diff, err := unifiedDiff(file, original, formatted)
		if err != nil {
			return nil, err
		}

		report.Files = append(report.Files, FileDrift{
			Path:    file,
			Drifted: diff != "",
			Diff:    diff,
		})
	}

	return report, nil
}

// Apply rewrites all files in place with a single formatter run. Re-running
// on an already formatted list is a no-op that still succeeds.
func (r *Runner) Apply(ctx context.Context, files []string) error {
	if err := r.formatter.FormatInPlace(ctx, files); err != nil {
		r.logger.Error("Error formatting source files!")
		r.logFormatterFailure(err)
		return err
	}

	r.logger.Info("Successfully formatted the source files.")
	return nil
}

func (r *Runner) logFormatterFailure(err error) {
	var fe *FormatterInvocationError
	if !errors.As(err, &fe) {
		return
	}
	r.logger.Debug("formatter failed", "cmd", fe.Cmd, "returncode", fe.ExitCode)
	r.logger.Debug("STDOUT: " + fe.Stdout)
	r.logger.Debug("STDERR: " + fe.Stderr)
}

func unifiedDiff(path string, original, formatted []byte) (string, error) {
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(original)),
		B:        difflib.SplitLines(string(formatted)),
		FromFile: "a/" + path,
		ToFile:   "b/" + path,
		Context:  3,
	})
}
