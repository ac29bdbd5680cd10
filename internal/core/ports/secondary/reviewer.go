package secondary

import (
	"context"

	"gitlab.com/code-review-relay.net/internal/domain"
)

// Reviewer submits run results to the external review service
type Reviewer interface {
	// Review returns the service's verdict, nil when it answered with null
	Review(ctx context.Context, payload *domain.ReviewPayload) (*domain.ReviewVerdict, error)
}
