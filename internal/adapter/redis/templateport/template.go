package templateport

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"

	"gitlab.com/code-review-relay.net/internal/core/ports/primary"
	"gitlab.com/code-review-relay.net/internal/core/ports/secondary"
	"gitlab.com/code-review-relay.net/internal/domain"
	"gitlab.com/code-review-relay.net/internal/static/errs"
)

const templateKeyPrefix = "template:"

var _ secondary.TemplateStore = (*TemplateRepository)(nil)

// ErrTemplateNotFound is returned when no key holds the requested template
var ErrTemplateNotFound = errs.ErrTemplateNotFound

// TemplateRepository stores template text in Redis, one string key per template
type TemplateRepository struct {
	redisClient *redis.Client
	logger      primary.Logger
}

// NewTemplateRepository creates a new Redis template repository
func NewTemplateRepository(redisClient *redis.Client, logger primary.Logger) *TemplateRepository {
	return &TemplateRepository{
		redisClient: redisClient,
		logger:      logger,
	}
}

// LoadTemplate retrieves the template text from Redis
func (r *TemplateRepository) LoadTemplate(ctx context.Context, name domain.TemplateName) (string, error) {
	text, err := r.redisClient.Get(ctx, templateKey(name)).Result()
	if err != nil {
		if err == redis.Nil {
			return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
		}
		r.logger.Error("Failed to get template", "template", name, "error", err)
		return "", fmt.Errorf("failed to get template: %w", err)
	}
	return text, nil
}

// SaveTemplate stores the template text without expiration
func (r *TemplateRepository) SaveTemplate(ctx context.Context, name domain.TemplateName, text string) error {
	if err := r.redisClient.Set(ctx, templateKey(name), text, 0).Err(); err != nil {
		r.logger.Error("Failed to save template", "template", name, "error", err)
		return fmt.Errorf("failed to save template: %w", err)
	}
	return nil
}

func templateKey(name domain.TemplateName) string {
	return fmt.Sprintf("%s%s", templateKeyPrefix, name)
}
