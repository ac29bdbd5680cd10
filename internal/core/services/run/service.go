package run

import (
	"context"

	"gitlab.com/code-review-relay.net/internal/domain"
)

// IRunService executes a submission against its testcases
type IRunService interface {
	// Run composes the submission into its template and judges every testcase
	Run(ctx context.Context, req *domain.RunRequest) (*domain.RunReport, error)

	// Languages relays the sandbox's language listing
	Languages(ctx context.Context) (*domain.LanguageList, error)
}
