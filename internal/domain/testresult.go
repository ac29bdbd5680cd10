package domain

import "github.com/google/uuid"

// TestcaseStatus is the verdict of a single testcase.
type TestcaseStatus string

const (
	TestcasePassed TestcaseStatus = "PASSED"
	TestcaseFailed TestcaseStatus = "FAILED"
)

// TestcaseResult represents the result of a single testcase execution.
// Actual holds the raw sandbox stdout, not the normalized form.
type TestcaseResult struct {
	Name        string         `json:"name"`
	Status      TestcaseStatus `json:"status"`
	Input       string         `json:"input"`
	Expect      string         `json:"expect"`
	Actual      string         `json:"actual"`
	CompileInfo string         `json:"compileInfo,omitempty"`
	Error       string         `json:"error,omitempty"`
}

// RunReport is the aggregate of all testcase verdicts for one submission.
//
// ErrorMessage holds the compile diagnostics of the last executed testcase.
// Diagnostics keeps every non-empty one, keyed by testcase name.
type RunReport struct {
	RunID           uuid.UUID          `json:"-"`
	Assignment      *Assignment        `json:"assignment"`
	Submission      *StudentSubmission `json:"submission"`
	TestcaseResults []TestcaseResult   `json:"testcaseResults"`
	ErrorMessage    string             `json:"errorMessage"`
	Diagnostics     map[string]string  `json:"diagnostics,omitempty"`
}

// NewRunReport creates an empty report for a run.
func NewRunReport(assignment *Assignment, submission *StudentSubmission) *RunReport {
	return &RunReport{
		RunID:           uuid.New(),
		Assignment:      assignment,
		Submission:      submission,
		TestcaseResults: []TestcaseResult{},
	}
}

// Passed counts the passing testcases.
func (r *RunReport) Passed() int {
	n := 0
	for _, res := range r.TestcaseResults {
		if res.Status == TestcasePassed {
			n++
		}
	}
	return n
}
