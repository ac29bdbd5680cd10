package run

import (
	"strings"

	"gitlab.com/code-review-relay.net/internal/domain"
)

// Normalize unifies CRLF line endings and trims surrounding whitespace.
func Normalize(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "\r\n", "\n"))
}

// Judge compares normalized actual and expected output exactly.
func Judge(actual, expected string) domain.TestcaseStatus {
	if Normalize(actual) == Normalize(expected) {
		return domain.TestcasePassed
	}
	return domain.TestcaseFailed
}
