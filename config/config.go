package config

import (
	"os"
	"time"
)

// Development fallbacks. Real deployments must override the secrets
// through the environment.
const (
	defaultAddr          = ":5000"
	defaultDBPath        = "sniper.db"
	defaultCORSOrigin    = "http://localhost:8080"
	defaultJWTSecret     = "fallback-secret"
	defaultJWTExpiry     = 7 * 24 * time.Hour
	defaultEncryptionKey = "your-encryption-key-32-chars-long"
)

// Config carries every runtime setting. It is built once at startup and
// handed to each component at construction time; nothing reads the
// environment afterwards.
type Config struct {
	Addr          string
	DBPath        string
	CORSOrigin    string
	JWTSecret     string
	JWTExpiry     time.Duration
	EncryptionKey string
}

// Load builds a Config from the process environment, falling back to
// development defaults for anything unset.
func Load() Config {
	cfg := Config{
		Addr:          envOr("SNIPER_ADDR", defaultAddr),
		DBPath:        envOr("SNIPER_DB", defaultDBPath),
		CORSOrigin:    envOr("SNIPER_CORS_ORIGIN", defaultCORSOrigin),
		JWTSecret:     envOr("SNIPER_JWT_SECRET", defaultJWTSecret),
		JWTExpiry:     defaultJWTExpiry,
		EncryptionKey: envOr("SNIPER_ENCRYPTION_KEY", defaultEncryptionKey),
	}

	if v := os.Getenv("SNIPER_JWT_EXPIRY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.JWTExpiry = d
		}
	}
	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
