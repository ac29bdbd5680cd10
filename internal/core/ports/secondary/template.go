package secondary

import (
	"context"

	"gitlab.com/code-review-relay.net/internal/domain"
)

// TemplateSource loads raw template text by name
type TemplateSource interface {
	LoadTemplate(ctx context.Context, name domain.TemplateName) (string, error)
}

// TemplateStore is a TemplateSource that can also be written to
type TemplateStore interface {
	TemplateSource

	// SaveTemplate creates or replaces the template text for name
	SaveTemplate(ctx context.Context, name domain.TemplateName, text string) error
}
