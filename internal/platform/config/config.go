// Package config loads application configuration from environment variables.
// All variables use the TWOXAI_ prefix.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Cache      CacheConfig
	Generation GenerationConfig
	Moderation ModerationConfig
	Log        LogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port int
	Host string
}

// DatabaseConfig holds PostgreSQL connection settings. An empty URL runs
// the server on in-memory stores (development only).
type DatabaseConfig struct {
	URL      string
	MaxConns int
	MinConns int
}

// CacheConfig holds Redis connection settings. An empty URL disables the
// generation content cache.
type CacheConfig struct {
	URL           string
	ContentTTLMin int
}

// GenerationConfig holds settings for the external generation service.
type GenerationConfig struct {
	BaseURL     string
	JWTSecret   string
	TokenTTLMin int
}

// ModerationConfig holds the keyword wordlist file paths.
type ModerationConfig struct {
	ForbiddenPath string
	AllowedPath   string
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables with TWOXAI_ prefix.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: envInt("TWOXAI_SERVER_PORT", 3200),
			Host: envStr("TWOXAI_SERVER_HOST", "0.0.0.0"),
		},
		Database: DatabaseConfig{
			URL:      envStr("TWOXAI_DATABASE_URL", ""),
			MaxConns: envInt("TWOXAI_DATABASE_MAX_CONNS", 25),
			MinConns: envInt("TWOXAI_DATABASE_MIN_CONNS", 5),
		},
		Cache: CacheConfig{
			URL:           envStr("TWOXAI_CACHE_URL", ""),
			ContentTTLMin: envInt("TWOXAI_CACHE_CONTENT_TTL_MIN", 60),
		},
		Generation: GenerationConfig{
			BaseURL:     envStr("TWOXAI_GENERATION_URL", ""),
			JWTSecret:   envStr("TWOXAI_GENERATION_JWT_SECRET", ""),
			TokenTTLMin: envInt("TWOXAI_GENERATION_TOKEN_TTL_MIN", 30),
		},
		Moderation: ModerationConfig{
			ForbiddenPath: envStr("TWOXAI_MODERATION_FORBIDDEN_PATH", "./data/badwords.xlsx"),
			AllowedPath:   envStr("TWOXAI_MODERATION_ALLOWED_PATH", "./data/allowwords.yaml"),
		},
		Log: LogConfig{
			Level:  envStr("TWOXAI_LOG_LEVEL", "info"),
			Format: envStr("TWOXAI_LOG_FORMAT", "json"),
		},
	}

	return cfg, nil
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	if c.Generation.BaseURL == "" {
		return fmt.Errorf("TWOXAI_GENERATION_URL is required")
	}
	if c.Generation.JWTSecret == "" {
		return fmt.Errorf("TWOXAI_GENERATION_JWT_SECRET is required")
	}
	if c.Moderation.ForbiddenPath == "" {
		return fmt.Errorf("TWOXAI_MODERATION_FORBIDDEN_PATH is required")
	}
	return nil
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		return strings.EqualFold(v, "true") || v == "1"
	}
	return fallback
}
