package search

import (
	"context"
	"log/slog"

	"github.com/averycrespi/misc-mcp/internal/results"
	"github.com/averycrespi/misc-mcp/pkg/types"
)

// StringsSearcher searches the printable strings of a file, as reported by
// an external extractor, for a literal case-sensitive substring.
type StringsSearcher struct {
	extractor    types.StringsExtractor
	contextLines int
}

// NewStringsSearcher creates a searcher that reports contextLines lines
// around every match
func NewStringsSearcher(extractor types.StringsExtractor, contextLines int) *StringsSearcher {
	return &StringsSearcher{
		extractor:    extractor,
		contextLines: contextLines,
	}
}

// Search extracts strings of at least minLength characters from filePath
// and returns every extracted line containing searchText
func (s *StringsSearcher) Search(ctx context.Context, filePath, searchText string, minLength int) (*results.Report, error) {
	if searchText == "" {
		return nil, genericError("search text must not be empty")
	}
	if minLength < 1 {
		return nil, genericError("min_length must be at least 1, got %d", minLength)
	}

	if _, err := checkRegularFile(filePath); err != nil {
		return nil, err
	}

	lines, err := s.extractor.Extract(ctx, filePath, minLength)
	if err != nil {
		return nil, err
	}

	matches := matchLines(lines, searchText, true, s.contextLines)
	slog.Debug("Strings search completed",
		"file_path", filePath,
		"extracted_lines", len(lines),
		"matches", len(matches))

	return results.NewLineReport(filePath, searchText, matches), nil
}
