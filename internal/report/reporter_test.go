package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/firmforge/fwtool/internal/format"
)

func sampleReport() *format.DriftReport {
	return &format.DriftReport{
		CheckedAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		Files: []format.FileDrift{
			{Path: "quantum/a.c", Drifted: false},
			{Path: "quantum/b.c", Drifted: true, Diff: "--- a/quantum/b.c\n+++ b/quantum/b.c\n@@ -1 +1 @@\n-int b ;\n+int b;\n"},
		},
	}
}

func TestTextReporter(t *testing.T) {
	t.Parallel()

	t.Run("plain output lists status and diffs", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		tr := &TextReporter{UseColour: false}
		require.NoError(t, tr.Write(&buf, sampleReport()))

		out := buf.String()
		assert.Contains(t, out, "[OK] quantum/a.c")
		assert.Contains(t, out, "[DRIFT] quantum/b.c")
		assert.Contains(t, out, "+++ b/quantum/b.c")
		assert.Contains(t, out, "1 of 2 file(s) need formatting.")
		assert.NotContains(t, out, "\033[")
	})

	t.Run("colour codes present when enabled", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		tr := &TextReporter{UseColour: true}
		require.NoError(t, tr.Write(&buf, sampleReport()))
		assert.Contains(t, buf.String(), "\033[31m")
	})

	t.Run("clean report summarised", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		tr := &TextReporter{}
		r := &format.DriftReport{Files: []format.FileDrift{{Path: "quantum/a.c"}}}
		require.NoError(t, tr.Write(&buf, r))
		assert.Contains(t, buf.String(), "All 1 file(s) formatted correctly.")
	})
}

func TestJSONReporter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	jr := &JSONReporter{}
	require.NoError(t, jr.Write(&buf, sampleReport()))

	out := buf.String()
	assert.True(t, gjson.Get(out, "drifted").Bool())
	assert.EqualValues(t, 2, gjson.Get(out, "stats.totalChecked").Int())
	assert.EqualValues(t, 1, gjson.Get(out, "stats.totalDrifted").Int())
	assert.Equal(t, "quantum/b.c", gjson.Get(out, "files.1.path").String())
	assert.False(t, gjson.Get(out, "files.0.drifted").Bool())
	assert.Equal(t, "2025-03-01T12:00:00Z", gjson.Get(out, "checkedAt").String())
}
