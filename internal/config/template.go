package config

import "strings"

// TemplateSourceKind selects where template text is loaded from
type TemplateSourceKind string

const (
	TemplateSourceEmbed    TemplateSourceKind = "embed"
	TemplateSourceRedis    TemplateSourceKind = "redis"
	TemplateSourcePostgres TemplateSourceKind = "postgres"
)

type TemplateConfig struct {
	Source TemplateSourceKind
	// Seed copies the built-in templates into an empty redis or postgres store
	Seed bool
}

func NewTemplateConfig() *TemplateConfig {
	source := TemplateSourceKind(strings.ToLower(getEnv("TEMPLATE_SOURCE", string(TemplateSourceEmbed))))
	switch source {
	case TemplateSourceRedis, TemplateSourcePostgres:
	default:
		source = TemplateSourceEmbed
	}
	return &TemplateConfig{
		Source: source,
		Seed:   getEnv("TEMPLATE_SEED", "false") == "true",
	}
}
