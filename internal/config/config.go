package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// DefaultDomain is the institutional email suffix logins must carry.
const DefaultDomain = "@klh.edu.in"

// Config holds the runtime settings for clinictrack.
type Config struct {
	// Home is the data directory holding the sqlite database.
	Home string
	// Domain is the required email suffix for sign-in.
	Domain string
}

// Load reads configuration from the environment, with a .env file as an
// optional source. Missing values fall back to defaults.
func Load() Config {
	_ = godotenv.Load() // no .env file is fine

	cfg := Config{
		Home:   os.Getenv("CLINICTRACK_HOME"),
		Domain: os.Getenv("CLINICTRACK_DOMAIN"),
	}

	if cfg.Home == "" {
		if home, err := os.UserHomeDir(); err == nil {
			cfg.Home = filepath.Join(home, ".clinictrack")
		}
	}
	if cfg.Domain == "" {
		cfg.Domain = DefaultDomain
	}

	return cfg
}
