package config

import (
	"errors"
	"os"
)

// Config is the process runtime configuration, read once at startup.
type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string

	// Google Calendar integration; both optional. Without an API key the
	// server runs with availability checking degraded to "assume available".
	GoogleAPIKey      string
	DefaultCalendarID string
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:              getEnv("PORT", "8080"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		GoogleAPIKey:      os.Getenv("GOOGLE_API_KEY"),
		DefaultCalendarID: getEnv("GOOGLE_CALENDAR_ID", "primary"),
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is empty")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is empty")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
