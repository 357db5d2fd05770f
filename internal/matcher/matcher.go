// Package matcher selects the lines of a document that contain the query, case-sensitively or not
package matcher

import (
	"strings"

	"github.com/UnendingLoop/minigrep/internal/model"
)

// Search returns every line of contents containing query, in document order.
// Returned lines are substrings of contents, never lowered copies.
func Search(contents, query string, mode model.SearchMode) []string {
	result := []string{}

	isMatch := predicate(query, mode)
	for _, line := range SplitLines(contents) {
		if isMatch(line) {
			result = append(result, line)
		}
	}

	return result
}

// FindMatch reports whether line contains query under mode
func FindMatch(line, query string, mode model.SearchMode) bool {
	return predicate(query, mode)(line)
}

// запрос приводим к нижнему регистру один раз, а не для каждой строки
func predicate(query string, mode model.SearchMode) func(line string) bool {
	switch mode {
	case model.CaseSensitive:
		return func(line string) bool {
			return strings.Contains(line, query)
		}
	default:
		query = strings.ToLower(query)
		return func(line string) bool {
			return strings.Contains(strings.ToLower(line), query)
		}
	}
}

// SplitLines splits on '\n' and drops a trailing '\r'; a final terminator does not produce an extra empty line
func SplitLines(contents string) []string {
	if contents == "" {
		return nil
	}

	lines := strings.Split(contents, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i := range lines {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}

	return lines
}
