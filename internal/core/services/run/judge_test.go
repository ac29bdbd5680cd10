package run_test

import (
	"testing"

	"gitlab.com/code-review-relay.net/internal/core/services/run"
	"gitlab.com/code-review-relay.net/internal/domain"
)

func TestJudge(t *testing.T) {
	cases := []struct {
		name     string
		actual   string
		expected string
		want     domain.TestcaseStatus
	}{
		{"crlf and surrounding whitespace", " A\r\nB \n", "A\nB", domain.TestcasePassed},
		{"empty against empty", "", "", domain.TestcasePassed},
		{"case sensitive", "A", "a", domain.TestcaseFailed},
		{"trailing newline", "5\n", "5", domain.TestcasePassed},
		{"inner whitespace matters", "Hello  world", "Hello world", domain.TestcaseFailed},
		{"lone carriage return kept", "A\rB", "A\nB", domain.TestcaseFailed},
		{"empty actual", "", "5", domain.TestcaseFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := run.Judge(tc.actual, tc.expected); got != tc.want {
				t.Fatalf("Judge(%q, %q) = %s, want %s", tc.actual, tc.expected, got, tc.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	if got := run.Normalize("\r\n\t x\r\ny \r\n"); got != "x\ny" {
		t.Fatalf("unexpected normalized value: %q", got)
	}
}
