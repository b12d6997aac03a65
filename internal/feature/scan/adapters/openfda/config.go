// Package openfda provides a client for the openFDA drug label API.
package openfda

import (
	"os"
	"time"
)

const defaultBaseURL = "https://api.fda.gov"

// Config holds configuration for the openFDA API client.
type Config struct {
	BaseURL string        // Base URL for the API (e.g., "https://api.fda.gov")
	APIKey  string        // Optional API key raising the rate limit
	Timeout time.Duration // HTTP request timeout
}

// LoadConfig loads openFDA configuration from environment variables.
func LoadConfig() Config {
	base := os.Getenv("OPENFDA_BASE_URL")
	if base == "" {
		base = defaultBaseURL
	}
	return Config{
		BaseURL: base,
		APIKey:  os.Getenv("OPENFDA_API_KEY"),
		Timeout: 10 * time.Second,
	}
}
