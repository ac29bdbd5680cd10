package secondary

import (
	"context"

	"gitlab.com/code-review-relay.net/internal/domain"
)

type CodeExecutor interface {
	// Execute runs one composed source unit against one input in the sandbox
	Execute(ctx context.Context, req domain.ExecutionRequest) (*domain.ExecutionOutcome, error)

	// Languages returns the sandbox's language listing as is
	Languages(ctx context.Context) (*domain.LanguageList, error)
}
