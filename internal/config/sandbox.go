package config

import "time"

// SandboxConfig points at the Jobe compatible execution sandbox
type SandboxConfig struct {
	BaseURL string
	Timeout time.Duration
}

func NewSandboxConfig() *SandboxConfig {
	return &SandboxConfig{
		BaseURL: getEnv("SANDBOX_BASE_URL", "http://localhost:4000/jobe/index.php/restapi"),
		Timeout: getSecondsEnv("SANDBOX_TIMEOUT_SEC", 30),
	}
}
