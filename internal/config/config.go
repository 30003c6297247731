package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds the demo's tuning knobs.
type Config struct {
	// Animation settings
	FPS          int     `envconfig:"SHIMMER_FPS" default:"30"`
	SweepSeconds float64 `envconfig:"SHIMMER_SWEEP_SECONDS" default:"2"`

	// Logging settings
	LogLevel string `envconfig:"SHIMMER_LOG_LEVEL" default:"info"`
}

// Load reads configuration from an optional .env file and environment
// variables.
func Load() (*Config, error) {
	// Try to load .env file (optional for development)
	if err := godotenv.Load(); err != nil {
		// Not an error if file doesn't exist
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		}
	}

	// Parse environment variables into config struct
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	return &config, nil
}
