package config

import "time"

type ReviewConfig struct {
	URL     string
	Timeout time.Duration
}

func NewReviewConfig() *ReviewConfig {
	return &ReviewConfig{
		URL:     getEnv("REVIEW_URL", "http://localhost:8000/review_code"),
		Timeout: getSecondsEnv("REVIEW_TIMEOUT_SEC", 120),
	}
}
