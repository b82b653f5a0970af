package daemon

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MarkoPoloResearchLab/kolofap/internal/httpapi"
	"github.com/MarkoPoloResearchLab/kolofap/pkg/ledger"
)

const (
	// StoreBackendGorm persists through GORM on SQLite or PostgreSQL.
	StoreBackendGorm  = "gorm"
	// StoreBackendPgx persists through a pgx pool on PostgreSQL.
	StoreBackendPgx   = "pgx"
	// LockBackendMemory serializes accounts inside this process.
	LockBackendMemory = "memory"
	// LockBackendRedis serializes accounts across processes sharing Redis.
	LockBackendRedis  = "redis"

	LogLevelInfo  = "info"
	LogLevelDebug = "debug"

	defaultDatabaseURL    = "sqlite:///tmp/kolofap.db"
	defaultHTTPListenAddr = ":8080"
	defaultGRPCListenAddr = ":7000"
	defaultRedisAddr      = "localhost:6379"
	defaultRequestTTL     = 72 * time.Hour
	defaultSweepInterval  = time.Minute
	shutdownTimeout       = 5 * time.Second
)

// ErrInvalidConfig marks a configuration the daemon refuses to start with.
var ErrInvalidConfig = errors.New("invalid daemon config")

// Config aggregates every runtime setting of kolofapd.
type Config struct {
	DatabaseURL    string
	StoreBackend   string
	HTTPListenAddr string
	GRPCListenAddr string
	LockTimeout    time.Duration
	LockBackend    string
	RedisAddr      string
	RequestTTL     time.Duration
	SweepInterval  time.Duration
	LogLevel       string
	HTTP           httpapi.Config
}

// Validate applies defaults and rejects unusable settings.
func (cfg *Config) Validate() error {
	cfg.DatabaseURL = defaultIfBlank(cfg.DatabaseURL, defaultDatabaseURL)
	cfg.StoreBackend = strings.ToLower(defaultIfBlank(cfg.StoreBackend, StoreBackendGorm))
	cfg.HTTPListenAddr = defaultIfBlank(cfg.HTTPListenAddr, defaultHTTPListenAddr)
	cfg.GRPCListenAddr = defaultIfBlank(cfg.GRPCListenAddr, defaultGRPCListenAddr)
	cfg.LockBackend = strings.ToLower(defaultIfBlank(cfg.LockBackend, LockBackendMemory))
	cfg.LogLevel = strings.ToLower(defaultIfBlank(cfg.LogLevel, LogLevelInfo))

	if cfg.LockTimeout < 0 || cfg.RequestTTL < 0 || cfg.SweepInterval < 0 {
		return fmt.Errorf("%w: durations must not be negative", ErrInvalidConfig)
	}
	if cfg.LockTimeout == 0 {
		cfg.LockTimeout = ledger.DefaultLockTimeout
	}
	if cfg.RequestTTL == 0 {
		cfg.RequestTTL = defaultRequestTTL
	}
	if cfg.SweepInterval == 0 {
		cfg.SweepInterval = defaultSweepInterval
	}

	switch cfg.StoreBackend {
	case StoreBackendGorm:
	case StoreBackendPgx:
		if !isPostgresURL(cfg.DatabaseURL) {
			return fmt.Errorf("%w: store backend %s needs a postgres database url", ErrInvalidConfig, StoreBackendPgx)
		}
	default:
		return fmt.Errorf("%w: unknown store backend %q", ErrInvalidConfig, cfg.StoreBackend)
	}
	switch cfg.LockBackend {
	case LockBackendMemory:
	case LockBackendRedis:
		cfg.RedisAddr = defaultIfBlank(cfg.RedisAddr, defaultRedisAddr)
	default:
		return fmt.Errorf("%w: unknown lock backend %q", ErrInvalidConfig, cfg.LockBackend)
	}
	switch cfg.LogLevel {
	case LogLevelInfo, LogLevelDebug:
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, cfg.LogLevel)
	}
	if err := cfg.HTTP.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

func defaultIfBlank(value string, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return strings.TrimSpace(value)
}
