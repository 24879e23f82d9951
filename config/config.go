package config

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds everything the process needs from the environment. The admin
// token is read once here and passed explicitly to the middleware that uses
// it; nothing else reads the environment after startup.
type Config struct {
	Addr       string
	AdminToken string

	DBUser string
	DBPass string
	DBHost string
	DBPort string
	DBName string
}

// Load reads a .env file if present, then the process environment.
// It fails when ADMIN_TOKEN is unset: the write endpoints would otherwise
// accept an empty Authorization header.
func Load() (*Config, error) {
	_ = godotenv.Load()

	getEnv := func(key, fallback string) string {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			return v
		}
		return fallback
	}

	cfg := &Config{
		Addr:       getEnv("ADDR", ":8080"),
		AdminToken: strings.TrimSpace(os.Getenv("ADMIN_TOKEN")),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPass:     getEnv("DB_PASSWORD", ""),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBName:     getEnv("DB_NAME", "gogokodo"),
	}

	if cfg.AdminToken == "" {
		return nil, errors.New("ADMIN_TOKEN environment variable is not set")
	}
	return cfg, nil
}
