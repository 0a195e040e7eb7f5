package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	DatabaseURL  string
	DatabaseName string
	Environment  string
	Port         string
}

// Load loads configuration from environment variables, attempting a .env
// file first when not in production. DATABASE_URL and DATABASE_NAME may
// be absent: the store adapter tolerates that and the /test endpoint
// reports it, so their absence is never a fatal error.
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment:  env,
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DatabaseName: os.Getenv("DATABASE_NAME"),
		Port:         os.Getenv("PORT"),
	}

	if cfg.Port == "" {
		cfg.Port = "8000"
	}

	return cfg, nil
}
