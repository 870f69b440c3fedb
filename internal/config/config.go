package config

import "os"

// Get returns the environment variable value or the fallback when unset.
// godotenv has already populated the environment by the time this runs.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
