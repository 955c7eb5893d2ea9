package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultPort          = "8080"
	defaultDatabaseURL   = "leads.db"
	defaultSiteURL       = "http://localhost:3000"
	defaultLeadDupWindow = "24h"
	defaultLeadInbox     = "patrick@mgphq.com"
)

// Config carries all environment-derived settings. It is built once in main
// and handed to the services, so nothing reads env vars ambiently.
type Config struct {
	AppEnv        string
	Port          string
	DatabaseURL   string
	SiteURL       string
	LeadDupWindow time.Duration

	ResendAPIKey    string
	ResendFromEmail string
	LeadInboxEmail  string
}

func Load() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.Port = strings.TrimSpace(getEnv("PORT", defaultPort))
	cfg.DatabaseURL = strings.TrimSpace(getEnv("DATABASE_URL", defaultDatabaseURL))
	cfg.SiteURL = strings.TrimRight(strings.TrimSpace(getEnv("SITE_URL", defaultSiteURL)), "/")

	var err error
	cfg.LeadDupWindow, err = parseDurationEnv("LEAD_DUP_WINDOW", defaultLeadDupWindow)
	if err != nil {
		return nil, err
	}

	cfg.ResendAPIKey = strings.TrimSpace(os.Getenv("RESEND_API_KEY"))
	cfg.ResendFromEmail = strings.TrimSpace(os.Getenv("RESEND_FROM_EMAIL"))
	cfg.LeadInboxEmail = strings.TrimSpace(getEnv("RESEND_TO_EMAIL", defaultLeadInbox))

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.LeadDupWindow <= 0 {
		return fmt.Errorf("LEAD_DUP_WINDOW must be > 0")
	}
	if cfg.Port == "" {
		return fmt.Errorf("PORT must not be empty")
	}

	if isProdLike(cfg.AppEnv) {
		if cfg.ResendAPIKey == "" {
			return fmt.Errorf("in prod/release RESEND_API_KEY must be set")
		}
		if cfg.ResendFromEmail == "" {
			return fmt.Errorf("in prod/release RESEND_FROM_EMAIL must be set")
		}
	}

	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
