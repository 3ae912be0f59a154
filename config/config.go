package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Environment    string
	Port           string
	BackendURL     string
	BackendTimeout time.Duration
	AllowedOrigins []string
	CookieSecure   bool
}

// Load loads configuration from environment variables
// It attempts to load from .env file if not in production
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// In production .env might not exist and we rely on system environment
	// variables, so a missing file is only a warning.
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment: env,
		Port:        os.Getenv("PORT"),
		BackendURL:  os.Getenv("BACKEND_API_URL"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.BackendURL == "" {
		cfg.BackendURL = "http://localhost:3000"
	}

	timeout := 15
	if s := os.Getenv("BACKEND_TIMEOUT"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 {
			timeout = v
		}
	}
	cfg.BackendTimeout = time.Duration(timeout) * time.Second

	if s := os.Getenv("CORS_ALLOWED_ORIGINS"); s != "" {
		cfg.AllowedOrigins = strings.Split(s, ",")
	}

	cfg.CookieSecure = env == "production"
	if s := os.Getenv("COOKIE_SECURE"); s != "" {
		cfg.CookieSecure = s == "true" || s == "1"
	}

	return cfg, nil
}
