package search

import (
	"strings"

	"github.com/averycrespi/misc-mcp/internal/results"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// splitLines splits text on \n, \r\n and a lone \r, removing the line
// endings. A trailing line ending does not produce an extra empty line.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	lines := strings.Split(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// matchLines returns one match per line containing needle, in line order
func matchLines(lines []string, needle string, caseSensitive bool, contextLines int) []results.LineMatch {
	matches := make([]results.LineMatch, 0)

	target := needle
	var lower cases.Caser
	if !caseSensitive {
		lower = cases.Lower(language.Und)
		target = lower.String(needle)
	}

	for i, line := range lines {
		candidate := line
		if !caseSensitive {
			candidate = lower.String(line)
		}
		if strings.Contains(candidate, target) {
			matches = append(matches, results.NewLineMatch(lines, i, contextLines))
		}
	}

	return matches
}
