package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// ErrMissingBaseURL is returned when no backend base URL is configured.
// There is no sensible default; startup must fail.
var ErrMissingBaseURL = errors.New("AMLAK_API_BASE_URL is not set")

type Config struct {
	// BaseURL is the backend root, e.g. https://xyz.supabase.co.
	BaseURL string
	// APIKey is sent as the apikey header on every request when set.
	APIKey string
	// SessionDir holds the persisted session files.
	SessionDir string
}

// Load reads configuration from the environment, with an optional .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		BaseURL:    os.Getenv("AMLAK_API_BASE_URL"),
		APIKey:     os.Getenv("AMLAK_API_KEY"),
		SessionDir: os.Getenv("AMLAK_SESSION_DIR"),
	}
	if cfg.BaseURL == "" {
		return Config{}, ErrMissingBaseURL
	}
	if cfg.SessionDir == "" {
		cfg.SessionDir = defaultSessionDir()
	}
	return cfg, nil
}

func defaultSessionDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		// Session persistence degrades to a no-op store.
		return ""
	}
	return filepath.Join(base, "amlak")
}
