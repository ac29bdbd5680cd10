package template

import (
	"context"

	"gitlab.com/code-review-relay.net/internal/domain"
)

// ITemplateResolver maps a language id to its source template
type ITemplateResolver interface {
	// Resolve never fails: load problems are reported on Template.Warning
	Resolve(ctx context.Context, languageID string) *domain.Template
}
