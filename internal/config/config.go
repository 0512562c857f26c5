package config

import (
	"log"
	"os"
	"time"
)

type Config struct {
	Port        string
	DBDriver    string
	DBDSN       string
	AutoMigrate bool
	SessionTTL  time.Duration
	FromEmail   string
	FromName    string
}

// FromEnv builds a Config from environment variables, with sane defaults.
func FromEnv() Config {
	cfg := Config{
		Port:        os.Getenv("PORT"),
		DBDriver:    os.Getenv("HOCS_DB_DRIVER"),
		DBDSN:       os.Getenv("HOCS_DB_DSN"),
		AutoMigrate: os.Getenv("HOCS_AUTO_MIGRATE") == "true",
		SessionTTL:  24 * time.Hour,
		FromEmail:   os.Getenv("FROM_EMAIL"),
		FromName:    os.Getenv("FROM_NAME"),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.FromEmail == "" {
		cfg.FromEmail = "onboarding@resend.dev"
	}
	if cfg.FromName == "" {
		cfg.FromName = "HOCS"
	}
	if raw := os.Getenv("HOCS_SESSION_TTL"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			cfg.SessionTTL = d
		} else {
			log.Printf("config: invalid HOCS_SESSION_TTL %q, using default", raw)
		}
	}
	return cfg
}
