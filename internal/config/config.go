// Package config loads runtime settings from the environment.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the process-wide settings.
type Config struct {
	// MapboxToken enables free-text geocoding. Without it only ZIP
	// searches resolve.
	MapboxToken string

	// DataPath optionally overrides the embedded pantry dataset.
	DataPath string
}

// Load reads a .env file when present, then the environment. A missing
// .env file is not an error.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		MapboxToken: os.Getenv("MAPBOX_ACCESS_TOKEN"),
		DataPath:    os.Getenv("PANTRY_DATA"),
	}
}
