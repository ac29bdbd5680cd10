package review

import (
	"context"
	"fmt"

	"gitlab.com/code-review-relay.net/internal/core/ports/primary"
	"gitlab.com/code-review-relay.net/internal/core/ports/secondary"
	"gitlab.com/code-review-relay.net/internal/core/services/run"
	"gitlab.com/code-review-relay.net/internal/domain"
)

var _ IReviewService = (*ReviewService)(nil)

// ReviewService implements the IReviewService interface
type ReviewService struct {
	runner   run.IRunService
	reviewer secondary.Reviewer
	logger   primary.Logger
}

// NewReviewService creates a new review service
func NewReviewService(runner run.IRunService, reviewer secondary.Reviewer, logger primary.Logger) *ReviewService {
	return &ReviewService{
		runner:   runner,
		reviewer: reviewer,
		logger:   logger,
	}
}

// Review always runs the testcases first and forwards the results together
// with the assignment and submission. The verdict is relayed unmodified.
func (s *ReviewService) Review(ctx context.Context, req *domain.RunRequest) (*domain.ReviewVerdict, error) {
	report, err := s.runner.Run(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to run submission: %w", err)
	}

	payload := &domain.ReviewPayload{
		Assignment:        req.Assignment,
		StudentSubmission: req.Submission,
		TestResults:       report.TestcaseResults,
	}

	verdict, err := s.reviewer.Review(ctx, payload)
	if err != nil {
		s.logger.Error("Review service call failed", "runId", report.RunID, "error", err)
		return nil, fmt.Errorf("failed to review submission: %w", err)
	}

	if verdict == nil {
		s.logger.Warn("Review service returned an empty verdict", "runId", report.RunID)
		return nil, nil
	}

	s.logger.Info("Review received",
		"runId", report.RunID,
		"items", len(verdict.ReviewItems))
	return verdict, nil
}
