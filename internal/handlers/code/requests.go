package code

import (
	"fmt"

	"gitlab.com/code-review-relay.net/internal/domain"
	"gitlab.com/code-review-relay.net/internal/static/errs"
)

// RunRequest is the body of both /api/run and /api/review.
//
// Omitted limits take the request level defaults; an explicit null leaves
// them nil so the sandbox client's own fallback applies.
type RunRequest struct {
	Assignment  *domain.Assignment        `json:"assignment"`
	Submission  *domain.StudentSubmission `json:"submission"`
	Testcase    []domain.Testcase         `json:"testcase"`
	CPUTime     *int                      `json:"cputime"`
	MemoryLimit *int                      `json:"memorylimit"`
}

func newRunRequest() *RunRequest {
	limits := domain.DefaultResourceLimits()
	return &RunRequest{
		CPUTime:     limits.CPUTimeSeconds,
		MemoryLimit: limits.MemoryLimit,
	}
}

func (r *RunRequest) toDomain() *domain.RunRequest {
	return &domain.RunRequest{
		Assignment: r.Assignment,
		Submission: r.Submission,
		Testcases:  r.Testcase,
		Limits: domain.ResourceLimits{
			CPUTimeSeconds: r.CPUTime,
			MemoryLimit:    r.MemoryLimit,
		},
	}
}

// validate checks the fields every run needs
func (r *RunRequest) validate() error {
	switch {
	case r.Assignment == nil:
		return fmt.Errorf("%w: assignment is required", errs.ErrInvalidRequest)
	case r.Submission == nil:
		return fmt.Errorf("%w: submission is required", errs.ErrInvalidRequest)
	}
	return nil
}
