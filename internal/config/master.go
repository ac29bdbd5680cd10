package config

import "os"

type AppConfig struct {
	DebugMode      bool
	ServerConfig   *ServerConfig
	SandboxConfig  *SandboxConfig
	ReviewConfig   *ReviewConfig
	TemplateConfig *TemplateConfig
	RedisConfig    *RedisConfig
	PostgresConfig *PostgresConfig
}

func NewSystemConfig() *AppConfig {
	return &AppConfig{
		DebugMode:      os.Getenv("DEBUG_MODE") == "true",
		ServerConfig:   NewServerConfig(),
		SandboxConfig:  NewSandboxConfig(),
		ReviewConfig:   NewReviewConfig(),
		TemplateConfig: NewTemplateConfig(),
		RedisConfig:    NewRedisConfig(),
		PostgresConfig: NewPostgresConfig(),
	}
}
