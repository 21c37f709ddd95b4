// Package config loads runtime configuration from the environment, with
// an optional .env file in the working directory.
package config

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/smt-joen/plunet2peppol/internal/codes"
)

// Config holds the runtime settings of the converter shell.
type Config struct {
	// DefaultCountry is assumed for parties without a country.
	DefaultCountry string
	LogLevel       string
	LogFormat      string
}

// Load reads configuration from the environment. A missing .env file is
// not an error; explicit environment variables always win over it.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		DefaultCountry: codes.DefaultCountry,
		LogLevel:       "info",
		LogFormat:      "console",
	}
	if v := os.Getenv("P2P_DEFAULT_COUNTRY"); v != "" {
		cfg.DefaultCountry = v
	}
	if v := os.Getenv("P2P_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("P2P_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	return cfg
}
