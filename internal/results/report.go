package results

import (
	"encoding/json"
	"fmt"
	"strings"
)

const highlightPrefix = ">>> "

// Report represents the matches of a single file search, in file order.
// Only the slice matching Mode is populated.
type Report struct {
	FilePath    string      `json:"file_path"`
	SearchText  string      `json:"search_text"`
	Mode        SearchMode  `json:"mode"`
	Message     string      `json:"message"`
	Count       int         `json:"count"`
	LineMatches []LineMatch `json:"line_matches,omitempty"`
	ByteMatches []ByteMatch `json:"byte_matches,omitempty"`
}

// NewLineReport creates a report for a line-oriented search
func NewLineReport(filePath, searchText string, matches []LineMatch) *Report {
	r := &Report{
		FilePath:    filePath,
		SearchText:  searchText,
		Mode:        SearchModeLine,
		Count:       len(matches),
		LineMatches: matches,
	}
	r.Message = r.summary()
	return r
}

// NewByteReport creates a report for a byte-oriented search
func NewByteReport(filePath, searchText string, matches []ByteMatch) *Report {
	r := &Report{
		FilePath:    filePath,
		SearchText:  searchText,
		Mode:        SearchModeByte,
		Count:       len(matches),
		ByteMatches: matches,
	}
	r.Message = r.summary()
	return r
}

// NoMatchMessage is the message for a search without results
func NoMatchMessage(searchText string) string {
	return fmt.Sprintf("No matches found for: '%s'", searchText)
}

// IsEmpty reports whether the search found nothing
func (r *Report) IsEmpty() bool {
	return r.Count == 0
}

func (r *Report) summary() string {
	if r.Count == 0 {
		return NoMatchMessage(r.SearchText)
	}
	noun := "matches"
	if r.Count == 1 {
		noun = "match"
	}
	return fmt.Sprintf("Found %d %s in file %s:", r.Count, noun, r.FilePath)
}

// Text renders the report as a numbered, human-readable block
func (r *Report) Text() string {
	if r.IsEmpty() {
		return r.Message
	}

	var b strings.Builder
	b.WriteString(r.Message)
	b.WriteString("\n\n")

	switch r.Mode {
	case SearchModeByte:
		for i, m := range r.ByteMatches {
			fmt.Fprintf(&b, "=== Match %d (byte offset: %d) ===\n", i+1, m.ByteOffset)
			fmt.Fprintf(&b, "Matched: %s\n", m.MatchedContent)
			fmt.Fprintf(&b, "Context: %s\n\n", m.Context)
		}
	default:
		for i, m := range r.LineMatches {
			fmt.Fprintf(&b, "=== Match %d (line: %d) ===\n", i+1, m.LineNumber)
			writeContextBlock(&b, "Above:", m.ContextBefore)
			b.WriteString(highlightPrefix)
			b.WriteString(m.MatchedLine)
			b.WriteString("\n")
			writeContextBlock(&b, "Below:", m.ContextAfter)
			b.WriteString("\n")
		}
	}

	return strings.TrimSpace(b.String())
}

func writeContextBlock(b *strings.Builder, title string, lines []string) {
	if len(lines) == 0 {
		return
	}
	b.WriteString(title)
	b.WriteString("\n")
	for _, line := range lines {
		b.WriteString("  ")
		b.WriteString(line)
		b.WriteString("\n")
	}
}

// JSON renders the report as indented JSON
func (r *Report) JSON() (string, error) {
	jsonBytes, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal report JSON: %w", err)
	}
	return string(jsonBytes), nil
}
