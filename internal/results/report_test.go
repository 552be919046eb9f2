package results

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineReportText(t *testing.T) {
	report := NewLineReport("/tmp/notes.txt", "needle", []LineMatch{
		{
			LineNumber:    2,
			MatchedLine:   "beta needle here",
			ContextBefore: []string{"alpha"},
			ContextAfter:  []string{"gamma", "delta"},
		},
		{
			LineNumber:  9,
			MatchedLine: "needle again",
		},
	})

	expected := `Found 2 matches in file /tmp/notes.txt:

=== Match 1 (line: 2) ===
Above:
  alpha
>>> beta needle here
Below:
  gamma
  delta

=== Match 2 (line: 9) ===
>>> needle again`

	assert.Equal(t, expected, report.Text())
	assert.Equal(t, 2, report.Count)
	assert.Equal(t, SearchModeLine, report.Mode)
}

func TestByteReportText(t *testing.T) {
	report := NewByteReport("/tmp/a.bin", "FLAG", []ByteMatch{
		{ByteOffset: 12, MatchedContent: "FLAG", Context: "xxFLAGyy"},
	})

	expected := `Found 1 match in file /tmp/a.bin:

=== Match 1 (byte offset: 12) ===
Matched: FLAG
Context: xxFLAGyy`

	assert.Equal(t, expected, report.Text())
	assert.Equal(t, SearchModeByte, report.Mode)
}

func TestEmptyReportText(t *testing.T) {
	tests := []struct {
		name   string
		report *Report
	}{
		{name: "Line mode", report: NewLineReport("/tmp/f", "missing", nil)},
		{name: "Byte mode", report: NewByteReport("/tmp/f", "missing", nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.report.IsEmpty())
			assert.Equal(t, "No matches found for: 'missing'", tt.report.Text())
			assert.NotEmpty(t, tt.report.Text())
		})
	}
}

func TestReportJSON(t *testing.T) {
	report := NewLineReport("/tmp/notes.txt", "needle", []LineMatch{
		{LineNumber: 2, MatchedLine: "beta needle here"},
	})

	out, err := report.JSON()
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))

	assert.Equal(t, "/tmp/notes.txt", decoded["file_path"])
	assert.Equal(t, "line", decoded["mode"])
	assert.Equal(t, float64(1), decoded["count"])
	assert.Equal(t, "Found 1 match in file /tmp/notes.txt:", decoded["message"])
	assert.NotContains(t, decoded, "byte_matches")
	assert.NotContains(t, decoded, "matches")
	assert.Len(t, decoded["line_matches"], 1)
}

func TestByteReportJSON(t *testing.T) {
	report := NewByteReport("/tmp/blob.bin", "FLAG", []ByteMatch{
		{ByteOffset: 100, MatchedContent: "FLAG", Context: "AAFLAGAA"},
	})

	out, err := report.JSON()
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))

	assert.Equal(t, "byte", decoded["mode"])
	assert.Equal(t, float64(1), decoded["count"])
	assert.NotContains(t, decoded, "line_matches")
	assert.NotContains(t, decoded, "matches")

	matches, ok := decoded["byte_matches"].([]any)
	require.True(t, ok)
	require.Len(t, matches, 1)
	assert.Equal(t, map[string]any{
		"byte_offset":     float64(100),
		"matched_content": "FLAG",
		"context":         "AAFLAGAA",
	}, matches[0])
}
