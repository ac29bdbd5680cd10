package template

import (
	"context"
	"fmt"

	"gitlab.com/code-review-relay.net/internal/core/ports/primary"
	"gitlab.com/code-review-relay.net/internal/core/ports/secondary"
	"gitlab.com/code-review-relay.net/internal/domain"
	"gitlab.com/code-review-relay.net/internal/static/errs"
)

var _ ITemplateResolver = (*Resolver)(nil)

// Resolver resolves templates from a TemplateSource
type Resolver struct {
	source secondary.TemplateSource
	logger primary.Logger
}

// NewResolver creates a new template resolver
func NewResolver(source secondary.TemplateSource, logger primary.Logger) *Resolver {
	return &Resolver{
		source: source,
		logger: logger,
	}
}

// Resolve picks the template for languageID and loads its text. Unknown
// languages get the default template. A load failure leaves the text empty
// so composition can still go ahead.
func (r *Resolver) Resolve(ctx context.Context, languageID string) *domain.Template {
	name, known := domain.TemplateFor(languageID)
	tpl := &domain.Template{
		Name:     name,
		Fallback: !known,
	}
	if tpl.Fallback {
		r.logger.Debug("No dedicated template, using default", "language", languageID, "template", name)
	}

	text, err := r.source.LoadTemplate(ctx, name)
	if err != nil {
		tpl.Warning = fmt.Errorf("%w: %s: %v", errs.ErrTemplateLoad, name, err)
		r.logger.Warn("Cannot load template", "language", languageID, "template", name, "error", err)
		return tpl
	}

	tpl.Text = text
	return tpl
}
