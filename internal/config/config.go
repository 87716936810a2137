// Package config loads server configuration from the environment.
package config

import "os"

// Config holds the runtime settings. All fields have defaults so the
// server starts with no environment at all.
type Config struct {
	// Port the HTTP server listens on.
	Port string
	// GinMode is gin's run mode: debug, release or test.
	GinMode string
}

// Load reads configuration from environment variables. A .env file, if
// present, is loaded by main before this runs.
func Load() Config {
	return Config{
		Port:    getenv("PORT", "8080"),
		GinMode: getenv("GIN_MODE", "debug"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
