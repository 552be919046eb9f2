package search

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/averycrespi/misc-mcp/internal/results"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/encoding/unicode"
)

// ErrNotText is returned by decodeText for content that cannot be scanned
// as lines of text
var ErrNotText = errors.New("content is not decodable as text")

// NativeOptions controls a native search
type NativeOptions struct {
	CaseSensitive bool
	ShowContext   bool
}

// DefaultNativeOptions returns the options used when a caller sets none
func DefaultNativeOptions() NativeOptions {
	return NativeOptions{CaseSensitive: true, ShowContext: true}
}

// NativeSearcher searches a file in-process. Text files are scanned line by
// line; content that fails to decode as text is scanned as raw bytes.
type NativeSearcher struct {
	contextLines int
	contextBytes int
}

// NewNativeSearcher creates a searcher with the given line and byte context sizes
func NewNativeSearcher(contextLines, contextBytes int) *NativeSearcher {
	return &NativeSearcher{
		contextLines: contextLines,
		contextBytes: contextBytes,
	}
}

// Search looks for searchText in filePath
func (s *NativeSearcher) Search(ctx context.Context, filePath, searchText string, opts NativeOptions) (*results.Report, error) {
	if searchText == "" {
		return nil, genericError("search text must not be empty")
	}

	info, err := checkRegularFile(filePath)
	if err != nil {
		return nil, err
	}

	content, err := readFile(filePath)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, newError(KindGeneric, filePath, err)
	}

	text, err := decodeText(content)
	if err == nil {
		contextLines := 0
		if opts.ShowContext {
			contextLines = s.contextLines
		}
		matches := matchLines(splitLines(text), searchText, opts.CaseSensitive, contextLines)
		slog.Debug("Text search completed", "file_path", filePath, "matches", len(matches))
		return results.NewLineReport(filePath, searchText, matches), nil
	}

	slog.Debug("Falling back to byte search",
		"file_path", filePath,
		"size", humanize.Bytes(uint64(info.Size())),
		"reason", err)

	matches := s.matchBytes(content, searchText, opts.CaseSensitive)
	slog.Debug("Byte search completed", "file_path", filePath, "matches", len(matches))

	return results.NewByteReport(filePath, searchText, matches), nil
}

// decodeText decodes content as UTF-8, dropping invalid sequences. Content
// containing a NUL byte is not text and yields ErrNotText.
func decodeText(content []byte) (string, error) {
	if bytes.IndexByte(content, 0) >= 0 {
		return "", ErrNotText
	}
	return strings.ToValidUTF8(string(content), ""), nil
}

// matchBytes finds every occurrence of searchText in content, including
// overlapping ones, in ascending offset order
func (s *NativeSearcher) matchBytes(content []byte, searchText string, caseSensitive bool) []results.ByteMatch {
	matches := make([]results.ByteMatch, 0)

	pattern := []byte(strings.ToValidUTF8(searchText, ""))
	if len(pattern) == 0 {
		return matches
	}

	haystack := content
	if !caseSensitive {
		haystack = asciiLower(content)
		pattern = asciiLower(pattern)
	}

	for offset := 0; offset <= len(haystack)-len(pattern); {
		idx := bytes.Index(haystack[offset:], pattern)
		if idx < 0 {
			break
		}
		pos := offset + idx

		start, end := results.ContextWindow(len(content), pos, len(pattern), s.contextBytes)
		matches = append(matches, results.ByteMatch{
			ByteOffset:     pos,
			MatchedContent: searchText,
			Context:        decodeContext(content[start:end]),
		})

		offset = pos + 1
	}

	return matches
}

// decodeContext renders a byte window, replacing invalid UTF-8 with U+FFFD.
// If decoding fails the window is shown as a quoted byte string.
func decodeContext(window []byte) string {
	decoded, err := unicode.UTF8.NewDecoder().Bytes(window)
	if err != nil {
		return fmt.Sprintf("%q", window)
	}
	return string(decoded)
}

// asciiLower lower-cases ASCII letters only, so byte offsets are preserved
func asciiLower(b []byte) []byte {
	out := make([]byte, len(b))
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		out[i] = c
	}
	return out
}
