package module

import (
	"time"

	"densair/internal/platform/config"
)

// Options controls the upstream paper backend client
type Options struct {
	BaseURL    string
	APIKey     string
	UserAgent  string
	Timeout    time.Duration
	MaxRetries int
	RetryHint  time.Duration
}

// FromConfig reads upstream client settings from an already scoped
// config view (SERVICE_PAPERS_* in the api binary)
func FromConfig(pc config.Conf) Options {
	return Options{
		BaseURL:    pc.MustString("BASE_URL"),
		APIKey:     pc.MayString("API_KEY", ""),
		UserAgent:  pc.MayString("UA", "densair-api"),
		Timeout:    pc.MayDuration("TIMEOUT", 15*time.Second),
		MaxRetries: pc.MayInt("MAX_RETRIES", 3),
		RetryHint:  pc.MayDuration("RETRY_HINT", 60*time.Second),
	}
}
