// Package report renders drift reports for humans and for CI consumers.
package report

import (
	"encoding/json"
	"io"
	"time"

	"github.com/firmforge/fwtool/internal/format"
)

// JSONReporter implements format.Reporter for JSON output.
type JSONReporter struct{}

type jsonOutput struct {
	CheckedAt string             `json:"checkedAt"`
	Drifted   bool               `json:"drifted"`
	Stats     jsonStats          `json:"stats"`
	Files     []format.FileDrift `json:"files"`
}

type jsonStats struct {
	TotalChecked int `json:"totalChecked"`
	TotalDrifted int `json:"totalDrifted"`
}

func (jr *JSONReporter) Write(w io.Writer, r *format.DriftReport) error {
	out := jsonOutput{
		CheckedAt: r.CheckedAt.Format(time.RFC3339),
		Drifted:   r.Drifted(),
		Stats: jsonStats{
			TotalChecked: len(r.Files),
			TotalDrifted: r.DriftCount(),
		},
		Files: r.Files,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
