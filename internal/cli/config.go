package cli

import (
	"os"
)

// Config holds CLI configuration, populated from flags with environment
// variable fallbacks
type Config struct {
	ServerURL    string
	SessionToken string
	OutputFormat string
}

// Environment variable names
const (
	EnvServerURL    = "QUIZHOST_SERVER_URL"
	EnvSessionToken = "QUIZHOST_SESSION_TOKEN"
	EnvOutputFormat = "QUIZHOST_OUTPUT"
)

// DefaultServerURL is used when neither flag nor environment sets one
const DefaultServerURL = "http://localhost:8080"

// LoadConfig resolves configuration, preferring explicit flag values
func LoadConfig(serverURL, token, output string) Config {
	cfg := Config{
		ServerURL:    serverURL,
		SessionToken: token,
		OutputFormat: output,
	}

	if cfg.ServerURL == "" {
		cfg.ServerURL = os.Getenv(EnvServerURL)
	}
	if cfg.ServerURL == "" {
		cfg.ServerURL = DefaultServerURL
	}

	if cfg.SessionToken == "" {
		cfg.SessionToken = os.Getenv(EnvSessionToken)
	}

	if cfg.OutputFormat == "" {
		cfg.OutputFormat = os.Getenv(EnvOutputFormat)
	}
	if cfg.OutputFormat == "" {
		cfg.OutputFormat = OutputText
	}

	return cfg
}
