package httpapi

import (
	"fmt"
	"strings"
	"time"
)

const (
	defaultAllowedOrigin    = "http://localhost:8000"
	defaultSessionIssuer    = "tauth"
	defaultSessionCookie    = "app_session"
	defaultRateLimitRPS     = 5
	defaultRateLimitBurst   = 10
	defaultHistoryPageLimit = 100
	defaultRequestTimeout   = 5 * time.Second
	claimsContextKey        = "auth_claims"
)

// Config aggregates runtime settings for the HTTP API.
type Config struct {
	AllowedOrigins    []string
	SessionSigningKey string
	SessionIssuer     string
	SessionCookieName string
	// RateLimitRPS is the sustained per-user request rate; zero disables limiting.
	RateLimitRPS   float64
	RateLimitBurst int
	// HistoryPageLimit caps the page size a client may ask for.
	HistoryPageLimit int
	RequestTimeout   time.Duration
}

// Validate fills defaults and rejects unusable settings.
func (cfg *Config) Validate() error {
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{defaultAllowedOrigin}
	}
	cfg.SessionIssuer = defaultIfEmpty(cfg.SessionIssuer, defaultSessionIssuer)
	cfg.SessionCookieName = defaultIfEmpty(cfg.SessionCookieName, defaultSessionCookie)
	if cfg.RateLimitRPS < 0 {
		return fmt.Errorf("rate limit rps must not be negative")
	}
	if cfg.RateLimitRPS > 0 && cfg.RateLimitBurst <= 0 {
		cfg.RateLimitBurst = defaultRateLimitBurst
	}
	if cfg.HistoryPageLimit <= 0 {
		cfg.HistoryPageLimit = defaultHistoryPageLimit
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultRequestTimeout
	}
	if len(cfg.SessionSigningKey) == 0 {
		return fmt.Errorf("jwt signing key is required")
	}
	return nil
}

// DefaultRateLimitRPS is the per-user request rate used when none is configured.
func DefaultRateLimitRPS() float64 {
	return defaultRateLimitRPS
}

func defaultIfEmpty(value string, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

// ParseAllowedOrigins splits comma-delimited origins into a slice.
func ParseAllowedOrigins(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	normalized := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			normalized = append(normalized, trimmed)
		}
	}
	return normalized
}
