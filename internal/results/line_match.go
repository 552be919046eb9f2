package results

// LineMatch represents a matching line and the lines surrounding it
type LineMatch struct {
	LineNumber    int      `json:"line_number"`
	MatchedLine   string   `json:"matched_line"`
	ContextBefore []string `json:"context_before,omitempty"`
	ContextAfter  []string `json:"context_after,omitempty"`
}

// NewLineMatch builds the match for lines[index] with up to contextLines
// lines on each side. Line numbers are 1-indexed.
func NewLineMatch(lines []string, index int, contextLines int) LineMatch {
	match := LineMatch{
		LineNumber:  index + 1,
		MatchedLine: lines[index],
	}
	if contextLines <= 0 {
		return match
	}

	start := max(0, index-contextLines)
	if start < index {
		match.ContextBefore = append([]string(nil), lines[start:index]...)
	}

	end := min(len(lines), index+1+contextLines)
	if index+1 < end {
		match.ContextAfter = append([]string(nil), lines[index+1:end]...)
	}

	return match
}
