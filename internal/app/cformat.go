package app

import (
	"github.com/spf13/cobra"

	"github.com/firmforge/fwtool/internal/config"
	"github.com/firmforge/fwtool/internal/format"
)

func NewCFormatCmd(mgr Manager) *cobra.Command {
	var ciMode bool
	var dryRun bool
	var allFiles bool
	var watch bool
	var baseBranch string

	cmd := &cobra.Command{
		Use:   "cformat [files...]",
		Short: "Format C source files according to the house style",
		Long: `
Format C source files with clang-format, or verify that they are already
formatted. Files are selected from the branch diff against the base branch by
default; pass filenames to format exactly those files, or -a to scan every
core directory.`,
		Example: `
CHECK THE FILES CHANGED ON THIS BRANCH
  fwtool cformat -n

FORMAT SPECIFIC FILES
  fwtool cformat quantum/matrix.c quantum/matrix.h

FORMAT EVERY CORE SOURCE FILE
  fwtool cformat -a

RE-CHECK FILES AS YOU SAVE THEM
  fwtool cformat -n -w`,
		Args: cobra.ArbitraryArgs,
	}

	cmd.Flags().BoolVar(&ciMode, "ci", false, "")
	_ = cmd.Flags().MarkHidden("ci")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Flag only, don't automatically format")
	// Empty default so a baseBranch set in fwtool.yml is not shadowed; the
	// selector falls back to the configured branch when no flag is given.
	cmd.Flags().StringVarP(&baseBranch, "base-branch", "b", "",
		`Branch to compare diffs to (default "`+config.DefaultBaseBranch+`")`)
	cmd.Flags().BoolVarP(&allFiles, "all-files", "a", false, "Format all core files")
	outputVal := formatValue("text")
	cmd.Flags().VarP(&outputVal, "output", "o", "Drift report format (text, json)")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Watch core directories and re-check changed files (implies --dry-run)")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		opts := format.Options{
			CI:         ciMode,
			DryRun:     dryRun || watch,
			BaseBranch: baseBranch,
			AllFiles:   allFiles,
			Files:      args,
		}

		noColour, _ := cmd.Flags().GetBool("nocolour")
		useColour := !noColour

		if watch {
			return mgr.WatchFormat(cmd.Context(), opts, string(outputVal), useColour, nil)
		}

		return mgr.CFormat(cmd.Context(), opts, string(outputVal), useColour)
	}

	return cmd
}
