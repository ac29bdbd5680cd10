package config

import "time"

type ServerConfig struct {
	Port            int
	ServiceName     string
	ShutdownTimeout time.Duration
}

func NewServerConfig() *ServerConfig {
	return &ServerConfig{
		Port:            getIntEnv("SERVER_PORT", 8080),
		ServiceName:     getEnv("SERVICE_NAME", "codeReviewRelay"),
		ShutdownTimeout: getSecondsEnv("SHUTDOWN_TIMEOUT_SEC", 5),
	}
}
