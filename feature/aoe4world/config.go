package aoe4world

import "time"

// Config holds configuration for the AoE4 World API client.
type Config struct {
	// BaseURL is the API root without a trailing slash.
	BaseURL string `mapstructure:"base_url" default:"https://aoe4world.com/api/v0"`
	// RateLimitDelay is the minimum spacing between the start of two requests. Zero means the default.
	RateLimitDelay time.Duration `mapstructure:"rate_limit_delay" default:"500ms"`
	// UserAgent is sent on every request.
	UserAgent string `mapstructure:"user_agent" default:"AoE4-Stats-Integration/1.0"`
	// TimeoutSeconds bounds each HTTP round-trip.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		BaseURL:        DefaultBaseURL,
		RateLimitDelay: DefaultRateLimitDelay,
		UserAgent:      DefaultUserAgent,
		TimeoutSeconds: 30,
	}
}
