package report

import (
	"fmt"
	"io"

	"github.com/firmforge/fwtool/internal/format"
)

// TextReporter implements format.Reporter for plain text output.
type TextReporter struct {
	UseColour bool
}

const (
	colReset     = "\033[0m"
	colRed       = "\033[31m"
	colGreen     = "\033[32m"
	colGrey      = "\033[90m"
	colBoldRed   = "\033[1;31m"
	colBoldGreen = "\033[1;32m"
)

// cs returns a string which will render with the given colour
// if colourisation is enabled.
func (tr *TextReporter) cs(c, s string) string {
	if !tr.UseColour {
		return s
	}
	return c + s + colReset
}

func (tr *TextReporter) Write(w io.Writer, r *format.DriftReport) error {
	for _, f := range r.Files {
		if !f.Drifted {
			fmt.Fprintf(w, "%s %s\n", tr.cs(colGreen, "[OK]"), tr.cs(colGrey, f.Path))
			continue
		}
		fmt.Fprintf(w, "%s %s\n", tr.cs(colRed, "[DRIFT]"), f.Path)
		fmt.Fprint(w, f.Diff)
	}

	drifted := r.DriftCount()
	if drifted == 0 {
		fmt.Fprintln(w, tr.cs(colBoldGreen, fmt.Sprintf("All %d file(s) formatted correctly.", len(r.Files))))
	} else {
		fmt.Fprintln(w, tr.cs(colBoldRed, fmt.Sprintf("%d of %d file(s) need formatting.", drifted, len(r.Files))))
	}

	return nil
}
