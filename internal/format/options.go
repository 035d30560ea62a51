// Package format implements source-file selection and the clang-format
// verify/apply workflow.
package format

// Mode identifies the file-selection strategy for one invocation.
type Mode int

const (
	// ModeBranchDiff selects files changed relative to a base branch.
	ModeBranchDiff Mode = iota
	// ModeChangeset selects files from the CI changeset manifest.
	ModeChangeset
	// ModeExplicit selects exactly the caller-supplied paths.
	ModeExplicit
	// ModeAllFiles selects every source file under the core directories.
	ModeAllFiles
)

func (m Mode) String() string {
	switch m {
	case ModeChangeset:
		return "changeset"
	case ModeExplicit:
		return "explicit"
	case ModeAllFiles:
		return "all-files"
	default:
		return "branch-diff"
	}
}

// Options is the invocation configuration, built once at the CLI boundary and
// threaded through. There is no ambient flag state below this point.
type Options struct {
	CI         bool
	DryRun     bool
	BaseBranch string
	AllFiles   bool
	Files      []string
}

// Mode resolves the selection mode by precedence:
// changeset > explicit files > all files > branch diff.
func (o Options) Mode() Mode {
	switch {
	case o.CI:
		return ModeChangeset
	case len(o.Files) > 0:
		return ModeExplicit
	case o.AllFiles:
		return ModeAllFiles
	default:
		return ModeBranchDiff
	}
}
