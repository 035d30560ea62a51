package app

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/firmforge/fwtool/internal/config"
	"github.com/firmforge/fwtool/internal/format"
	"github.com/firmforge/fwtool/internal/report"
)

// Manager defines the business logic behind the fwtool subcommands.
type Manager interface {
	// CFormat selects the candidate files for opts and either verifies them
	// (dry run) or rewrites them in place.
	CFormat(ctx context.Context, opts format.Options, output string, useColour bool) error

	// WatchFormat runs an initial drift check and then re-checks files as
	// they change, until the context is cancelled.
	WatchFormat(ctx context.Context, opts format.Options, output string, useColour bool,
		readyChan chan<- struct{}) error
}

// Ensure the interface is satisfied.
var _ Manager = (*LazyManager)(nil)

// LazyManager acts as a placeholder for a real Manager implementation, allowing
// for deferred initialization of dependencies.
type LazyManager struct {
	inner Manager
}

func (l *LazyManager) SetInner(m Manager) {
	l.inner = m
}

// HasInner returns true if the inner manager has been set.
// This is used by PersistentPreRunE to skip initialization if already configured (e.g., in tests).
func (l *LazyManager) HasInner() bool {
	return l.inner != nil
}

func (l *LazyManager) check() Manager {
	if l.inner == nil {
		panic("LazyManager accessed before initialization; check command wiring.")
	}
	return l.inner
}

func (l *LazyManager) CFormat(ctx context.Context, opts format.Options, output string, useColour bool) error {
	return l.check().CFormat(ctx, opts, output, useColour)
}

func (l *LazyManager) WatchFormat(ctx context.Context, opts format.Options, output string, useColour bool,
	readyChan chan<- struct{},
) error {
	return l.check().WatchFormat(ctx, opts, output, useColour, readyChan)
}

// Ensure the interface is satisfied.
var _ Manager = (*CLIManager)(nil)

// CLIManager is the concrete implementation of the Manager interface.
type CLIManager struct {
	logger       *slog.Logger
	cfg          *config.Config
	selector     *format.Selector
	runner       *format.Runner
	reportWriter io.Writer
}

func NewCLIManager(
	l *slog.Logger,
	cfg *config.Config,
	selector *format.Selector,
	runner *format.Runner,
	reportWriter io.Writer,
) *CLIManager {
	return &CLIManager{
		logger:       l,
		cfg:          cfg,
		selector:     selector,
		runner:       runner,
		reportWriter: reportWriter,
	}
}

func (m *CLIManager) CFormat(ctx context.Context, opts format.Options, output string, useColour bool) error {
	m.logger.Debug("cformat", "mode", opts.Mode().String(), "dryRun", opts.DryRun)

	files, err := m.selector.Select(ctx, opts)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		// Changeset mode with nothing to format: success, no work done.
		return nil
	}

	if opts.DryRun {
		return m.checkAndReport(ctx, files, output, useColour)
	}

	return m.runner.Apply(ctx, files)
}

// WatchFormat runs an initial drift check, then watches the core directories
// and re-checks each changed file. Drift never stops the watch; it is
// reported and the watch continues. If you want to know when the watcher is
// ready to start listening to changes, pass a non-nil readyChan.
func (m *CLIManager) WatchFormat(ctx context.Context, opts format.Options, output string, useColour bool,
	readyChan chan<- struct{},
) error {
	if err := m.CFormat(ctx, opts, output, useColour); err != nil {
		var drift *format.DriftFoundError
		if !errors.As(err, &drift) {
			return err
		}
	}

	watcher := format.NewWatcher(m.cfg, m.logger)

	callback := func(path string) {
		m.logger.Info("File changed:", "file", path)
		if err := m.checkAndReport(ctx, []string{path}, output, useColour); err != nil {
			var drift *format.DriftFoundError
			if errors.As(err, &drift) {
				return // already reported
			}
			m.logger.Error("Drift check failed", "error", err)
		}
	}

	// Forward watcher Ready signal if caller wants notification
	if readyChan != nil {
		go func() {
			<-watcher.Ready
			readyChan <- struct{}{}
		}()
	}

	return watcher.Watch(ctx, callback)
}

func (m *CLIManager) checkAndReport(ctx context.Context, files []string, output string, useColour bool) error {
	driftReport, err := m.runner.CheckDrift(ctx, files)
	if err != nil {
		return err
	}

	var reporter format.Reporter
	switch output {
	case "json":
		reporter = &report.JSONReporter{}
	default:
		reporter = &report.TextReporter{UseColour: useColour}
	}

	if wErr := reporter.Write(m.reportWriter, driftReport); wErr != nil {
		return wErr
	}

	if driftReport.Drifted() {
		return &format.DriftFoundError{Count: driftReport.DriftCount()}
	}
	return nil
}
