// Copyright (c) 2025-2026 Terra Mia
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/terramia/faq-go/internal/util"
)

// knownWeakSecrets contains default/example secrets that must be rejected.
var knownWeakSecrets = []string{
	"change-me-to-32-byte-secret-key!",
	"REPLACE_WITH_YOUR_OWN_SECRET_KEY!",
}

// Config holds the application configuration loaded from environment variables.
type Config struct {
	DBPath        string `env:"FAQ_DB_PATH" envDefault:"./data/faq.db"`
	SessionSecret string `env:"FAQ_SESSION_SECRET,required"`
	ServerHost    string `env:"FAQ_SERVER_HOST" envDefault:"localhost"`
	ServerPort    int    `env:"FAQ_SERVER_PORT" envDefault:"8080"`
	Env           string `env:"FAQ_ENV" envDefault:"development"`
	LogLevel      string `env:"FAQ_LOG_LEVEL" envDefault:"info"`

	// RootSegment is the public path segment of the FAQ front office.
	RootSegment string `env:"FAQ_ROOT_SEGMENT" envDefault:"faq"`

	// Cache configuration
	RedisURL string `env:"FAQ_REDIS_URL"`                 // Optional Redis URL for distributed caching
	CacheTTL int    `env:"FAQ_CACHE_TTL" envDefault:"3600"` // Default cache TTL in seconds

	// Staging sites set this to keep crawlers away.
	RobotsDisallowAll bool `env:"FAQ_ROBOTS_DISALLOW_ALL" envDefault:"false"`

	// Seeding configuration
	DoSeed bool `env:"FAQ_DO_SEED" envDefault:"false"` // Enable demo content seeding
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// UseRedisCache returns true if Redis caching is configured.
func (c Config) UseRedisCache() bool {
	return c.RedisURL != ""
}

// MinSessionSecretLength is the minimum required length for the session secret.
const MinSessionSecretLength = 32

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if len(cfg.SessionSecret) < MinSessionSecretLength {
		return nil, fmt.Errorf("FAQ_SESSION_SECRET must be at least %d bytes long, got %d bytes; "+
			"generate a secure secret with: openssl rand -base64 32",
			MinSessionSecretLength, len(cfg.SessionSecret))
	}

	// Reject known weak/default secrets
	for _, weak := range knownWeakSecrets {
		if cfg.SessionSecret == weak {
			return nil, fmt.Errorf("FAQ_SESSION_SECRET is a known default value and must not be used; " +
				"generate a secure secret with: openssl rand -base64 32")
		}
	}

	// Warn about low-entropy secrets
	if !hasMinimumEntropy(cfg.SessionSecret) {
		slog.Warn("FAQ_SESSION_SECRET has low character diversity; " +
			"consider generating a random secret with: openssl rand -base64 32")
	}

	// The root segment ends up in every front-office URL.
	cfg.RootSegment = strings.Trim(cfg.RootSegment, "/")
	if cfg.RootSegment == "" || !util.IsValidSlug(cfg.RootSegment) {
		return nil, fmt.Errorf("FAQ_ROOT_SEGMENT must be a lowercase slug, got %q", cfg.RootSegment)
	}

	return cfg, nil
}

// hasMinimumEntropy checks that a secret contains at least 3 character classes
// (lowercase, uppercase, digits, special characters).
func hasMinimumEntropy(s string) bool {
	charTypes := 0
	if strings.ContainsAny(s, "abcdefghijklmnopqrstuvwxyz") {
		charTypes++
	}
	if strings.ContainsAny(s, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") {
		charTypes++
	}
	if strings.ContainsAny(s, "0123456789") {
		charTypes++
	}
	if strings.ContainsAny(s, "!@#$%^&*()-_=+[]{}|;:,.<>?/~`'\"\\") {
		charTypes++
	}
	return charTypes >= 3
}
