package templaterepository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"gitlab.com/code-review-relay.net/internal/core/ports/primary"
	"gitlab.com/code-review-relay.net/internal/core/ports/secondary"
	"gitlab.com/code-review-relay.net/internal/domain"
	"gitlab.com/code-review-relay.net/internal/static/errs"
)

var _ secondary.TemplateStore = (*TemplateRepository)(nil)

// ErrTemplateNotFound is returned when no row holds the requested template
var ErrTemplateNotFound = errs.ErrTemplateNotFound

// TemplateRepository implements the TemplateStore interface with PostgreSQL
type TemplateRepository struct {
	db     *sqlx.DB
	logger primary.Logger
}

// NewTemplateRepository creates a new PostgreSQL template repository
func NewTemplateRepository(db *sqlx.DB, logger primary.Logger) *TemplateRepository {
	return &TemplateRepository{
		db:     db,
		logger: logger,
	}
}

// LoadTemplate retrieves the template body for name
func (r *TemplateRepository) LoadTemplate(ctx context.Context, name domain.TemplateName) (string, error) {
	query := `
		SELECT body
		FROM code_templates
		WHERE name = $1
	`

	var body string
	if err := r.db.GetContext(ctx, &body, query, string(name)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
		}
		r.logger.Error("Failed to get template", "template", name, "error", err)
		return "", fmt.Errorf("failed to get template: %w", err)
	}

	return body, nil
}

// SaveTemplate inserts or replaces the template body for name
func (r *TemplateRepository) SaveTemplate(ctx context.Context, name domain.TemplateName, text string) error {
	query := `
		INSERT INTO code_templates (name, body, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (name) DO UPDATE
		SET body = EXCLUDED.body, updated_at = EXCLUDED.updated_at
	`

	if _, err := r.db.ExecContext(ctx, query, string(name), text); err != nil {
		r.logger.Error("Failed to save template", "template", name, "error", err)
		return fmt.Errorf("failed to save template: %w", err)
	}
	return nil
}

// EnsureSchema creates the template table when it does not exist yet
func (r *TemplateRepository) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS code_templates (
			name       TEXT PRIMARY KEY,
			body       TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`

	if _, err := r.db.ExecContext(ctx, query); err != nil {
		r.logger.Error("Failed to create template table", "error", err)
		return fmt.Errorf("failed to create template table: %w", err)
	}
	return nil
}
