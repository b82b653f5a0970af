package main

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/MarkoPoloResearchLab/kolofap/internal/daemon"
)

func TestLoadConfigReadsFlagsAndEnvironment(test *testing.T) {
	test.Setenv("KOLOFAP_JWT_SIGNING_KEY", "from-env")
	test.Setenv("KOLOFAP_REQUEST_TTL", "24h")

	cmd := newRootCommand()
	for name, value := range map[string]string{
		flagLockBackend:    "redis",
		flagRedisAddr:      "cache:6379",
		flagAllowedOrigins: "http://a.test, http://b.test",
		flagRateLimitRPS:   "0",
	} {
		if err := cmd.Flags().Set(name, value); err != nil {
			test.Fatalf("set %s: %v", name, err)
		}
	}

	var cfg daemon.Config
	if err := loadConfig(cmd, &cfg); err != nil {
		test.Fatalf("load config failed: %v", err)
	}
	if cfg.HTTP.SessionSigningKey != "from-env" || cfg.RequestTTL != 24*time.Hour {
		test.Fatalf("environment not applied: %+v", cfg)
	}
	if cfg.LockBackend != daemon.LockBackendRedis || cfg.RedisAddr != "cache:6379" {
		test.Fatalf("flags not applied: %+v", cfg)
	}
	if !reflect.DeepEqual(cfg.HTTP.AllowedOrigins, []string{"http://a.test", "http://b.test"}) {
		test.Fatalf("unexpected origins %v", cfg.HTTP.AllowedOrigins)
	}
	if cfg.HTTP.RateLimitRPS != 0 || cfg.SweepInterval != time.Minute {
		test.Fatalf("unexpected limits: %+v", cfg)
	}
}

func TestLoadConfigRequiresSigningKey(test *testing.T) {
	test.Setenv("KOLOFAP_JWT_SIGNING_KEY", "")
	var cfg daemon.Config
	if err := loadConfig(newRootCommand(), &cfg); !errors.Is(err, daemon.ErrInvalidConfig) {
		test.Fatalf("expected %v, got %v", daemon.ErrInvalidConfig, err)
	}
}
