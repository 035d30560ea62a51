package app

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/firmforge/fwtool/internal/ci"
	"github.com/firmforge/fwtool/internal/config"
	"github.com/firmforge/fwtool/internal/format"
	"github.com/firmforge/fwtool/internal/fsh"
	"github.com/firmforge/fwtool/internal/repo"
	"github.com/firmforge/fwtool/internal/validator"
)

// Version is the current version of fwtool, set at build time.
var Version = "dev"

var LongDescription = `
fwtool is the developer tooling suite for the firmware source tree.
Its subcommands select the files in scope for a maintenance operation and
drive the external tools that do the real work, so that local runs and CI
apply exactly the same rules.
`

// NewRootCmd creates the root command and wires up dependencies.
func NewRootCmd(lazy *LazyManager, ll *slog.LevelVar, stdout, stderr io.Writer, envProvider fsh.EnvProvider) *cobra.Command {
	var debug bool
	var noColour bool

	rootCmd := &cobra.Command{
		Use:           "fwtool",
		Short:         "Developer tooling for the firmware source tree",
		Version:       Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		Long:          LongDescription,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || isCompletionCommand(cmd) {
				return nil
			}
			// Skip if already initialised (e.g., in tests)
			if lazy.HasInner() {
				if debug {
					ll.Set(slog.LevelDebug)
				}
				return nil
			}

			// 1. Setup Logging
			if debug {
				ll.Set(slog.LevelDebug)
			}

			logger, _, err := setupLogger(stderr, ll, envProvider)
			if err != nil {
				logger.Warn("logging to file disabled", "error", err)
			}

			// 2. Build Dependencies
			cfg, err := config.Load(".")
			if err != nil {
				return fmt.Errorf("configuration load failed: %w", err)
			}

			compiler := validator.NewSanthoshCompiler()
			changesets := ci.NewFileReader(envProvider, compiler)
			gitter := repo.NewCLIGitter()
			selector := format.NewSelector(cfg, logger, changesets, gitter, fsh.NewWalker(), fsh.NewPathResolver())
			runner := format.NewRunner(format.NewClangFormatter(), logger)

			// 3. Hydrate the Lazy Wrapper
			realMgr := NewCLIManager(logger, cfg, selector, runner, stdout)
			lazy.SetInner(realMgr)

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable debug logging")

	rootCmd.PersistentFlags().BoolVarP(&noColour, "nocolour", "c", false, "Disable colour in output")
	// Support alternate spellings
	rootCmd.PersistentFlags().BoolVar(&noColour, "nocolor", false, "")
	_ = rootCmd.PersistentFlags().MarkHidden("nocolor")

	// Subcommands
	rootCmd.AddCommand(NewCFormatCmd(lazy))

	return rootCmd
}

// isCompletionCommand returns true if the command or any of its parents is the "completion" command.
func isCompletionCommand(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Name() == "completion" {
			return true
		}
	}
	return false
}
