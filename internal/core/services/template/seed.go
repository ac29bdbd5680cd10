package template

import (
	"context"
	"errors"
	"fmt"

	"gitlab.com/code-review-relay.net/internal/core/ports/primary"
	"gitlab.com/code-review-relay.net/internal/core/ports/secondary"
	"gitlab.com/code-review-relay.net/internal/domain"
	"gitlab.com/code-review-relay.net/internal/static/errs"
)

// KnownTemplates lists every template the resolver can pick.
var KnownTemplates = []domain.TemplateName{
	domain.TemplateJava,
	domain.TemplatePython,
	domain.TemplateCpp,
}

// Seed copies the templates missing from dst over from src. Templates dst
// already holds are left alone, and any lookup failure other than
// errs.ErrTemplateNotFound stops the seed. It returns how many were copied.
func Seed(ctx context.Context, src secondary.TemplateSource, dst secondary.TemplateStore, logger primary.Logger) (int, error) {
	copied := 0
	for _, name := range KnownTemplates {
		_, err := dst.LoadTemplate(ctx, name)
		if err == nil {
			continue
		}
		if !errors.Is(err, errs.ErrTemplateNotFound) {
			return copied, fmt.Errorf("failed to look up template %s: %w", name, err)
		}

		text, err := src.LoadTemplate(ctx, name)
		if err != nil {
			return copied, fmt.Errorf("failed to read seed template %s: %w", name, err)
		}
		if err := dst.SaveTemplate(ctx, name, text); err != nil {
			return copied, fmt.Errorf("failed to seed template %s: %w", name, err)
		}

		logger.Info("Seeded template", "template", name)
		copied++
	}
	return copied, nil
}
