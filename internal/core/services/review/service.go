package review

import (
	"context"

	"gitlab.com/code-review-relay.net/internal/domain"
)

// IReviewService runs a submission and asks the review service about it
type IReviewService interface {
	// Review returns nil without error when the review service answered null
	Review(ctx context.Context, req *domain.RunRequest) (*domain.ReviewVerdict, error)
}
