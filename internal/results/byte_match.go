package results

// ByteMatch represents an occurrence of the search text in raw file bytes
type ByteMatch struct {
	ByteOffset     int    `json:"byte_offset"`
	MatchedContent string `json:"matched_content"`
	Context        string `json:"context"`
}

// ContextWindow returns the bounds of the window around a match of length
// patternLen at offset, extended by contextBytes on each side and clamped
// to [0, size].
func ContextWindow(size, offset, patternLen, contextBytes int) (start, end int) {
	start = max(0, offset-contextBytes)
	end = min(size, offset+patternLen+contextBytes)
	return start, end
}
