package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/MarkoPoloResearchLab/kolofap/internal/daemon"
	"github.com/MarkoPoloResearchLab/kolofap/internal/httpapi"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	flagDatabaseURL      = "database-url"
	flagStoreBackend     = "store-backend"
	flagHTTPListenAddr   = "http-listen-addr"
	flagGRPCListenAddr   = "grpc-listen-addr"
	flagLockTimeout      = "lock-timeout"
	flagLockBackend      = "lock-backend"
	flagRedisAddr        = "redis-addr"
	flagRequestTTL       = "request-ttl"
	flagSweepInterval    = "sweep-interval"
	flagAllowedOrigins   = "allowed-origins"
	flagJWTSigningKey    = "jwt-signing-key"
	flagJWTIssuer        = "jwt-issuer"
	flagJWTCookieName    = "jwt-cookie-name"
	flagRateLimitRPS     = "rate-limit-rps"
	flagRateLimitBurst   = "rate-limit-burst"
	flagHistoryPageLimit = "history-page-limit"
	flagLogLevel         = "log-level"
	envPrefix            = "KOLOFAP"
)

var boundFlags = []string{
	flagDatabaseURL, flagStoreBackend, flagHTTPListenAddr, flagGRPCListenAddr, flagLockTimeout,
	flagLockBackend, flagRedisAddr, flagRequestTTL, flagSweepInterval, flagAllowedOrigins,
	flagJWTSigningKey, flagJWTIssuer, flagJWTCookieName, flagRateLimitRPS, flagRateLimitBurst,
	flagHistoryPageLimit, flagLogLevel,
}

func main() {
	rootCmd := newRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "kolofapd: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cfg := daemon.Config{}
	cmd := &cobra.Command{
		Use:           "kolofapd",
		Short:         "Kolofap points ledger with gRPC and HTTP APIs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(cmd, &cfg)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			logger, err := daemon.NewLogger(cfg.LogLevel)
			if err != nil {
				return fmt.Errorf("logger init: %w", err)
			}
			defer func() { _ = logger.Sync() }()
			logger.Info("kolofapd starting",
				zap.String("store_backend", cfg.StoreBackend),
				zap.String("lock_backend", cfg.LockBackend),
			)
			return daemon.Run(ctx, cfg, logger)
		},
	}

	cmd.Flags().String(flagDatabaseURL, "sqlite:///tmp/kolofap.db", "sqlite path or URL, or a postgres:// URL")
	cmd.Flags().String(flagStoreBackend, daemon.StoreBackendGorm, "store implementation: gorm or pgx")
	cmd.Flags().String(flagHTTPListenAddr, ":8080", "HTTP listen address")
	cmd.Flags().String(flagGRPCListenAddr, ":7000", "gRPC listen address")
	cmd.Flags().Duration(flagLockTimeout, 0, "maximum wait for account locks (default 2s)")
	cmd.Flags().String(flagLockBackend, daemon.LockBackendMemory, "account lock implementation: memory or redis")
	cmd.Flags().String(flagRedisAddr, "", "Redis address for the redis lock backend")
	cmd.Flags().Duration(flagRequestTTL, 0, "age after which pending requests expire (default 72h)")
	cmd.Flags().Duration(flagSweepInterval, 0, "cadence of the request expiry sweep (default 1m)")
	cmd.Flags().String(flagAllowedOrigins, "", "comma-separated list of allowed CORS origins")
	cmd.Flags().String(flagJWTSigningKey, "", "TAuth JWT signing key (required)")
	cmd.Flags().String(flagJWTIssuer, "", "expected JWT issuer")
	cmd.Flags().String(flagJWTCookieName, "", "JWT cookie name")
	cmd.Flags().Float64(flagRateLimitRPS, httpapi.DefaultRateLimitRPS(), "per-user HTTP request rate, 0 disables limiting")
	cmd.Flags().Int(flagRateLimitBurst, 0, "per-user HTTP burst size")
	cmd.Flags().Int(flagHistoryPageLimit, 0, "largest history page served over HTTP")
	cmd.Flags().String(flagLogLevel, daemon.LogLevelInfo, "log level: info or debug")

	return cmd
}

func loadConfig(cmd *cobra.Command, cfg *daemon.Config) error {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for _, flagName := range boundFlags {
		if err := v.BindPFlag(flagName, cmd.Flags().Lookup(flagName)); err != nil {
			return err
		}
	}

	cfg.DatabaseURL = strings.TrimSpace(v.GetString(flagDatabaseURL))
	cfg.StoreBackend = v.GetString(flagStoreBackend)
	cfg.HTTPListenAddr = strings.TrimSpace(v.GetString(flagHTTPListenAddr))
	cfg.GRPCListenAddr = strings.TrimSpace(v.GetString(flagGRPCListenAddr))
	cfg.LockTimeout = v.GetDuration(flagLockTimeout)
	cfg.LockBackend = v.GetString(flagLockBackend)
	cfg.RedisAddr = strings.TrimSpace(v.GetString(flagRedisAddr))
	cfg.RequestTTL = v.GetDuration(flagRequestTTL)
	cfg.SweepInterval = v.GetDuration(flagSweepInterval)
	cfg.LogLevel = v.GetString(flagLogLevel)
	cfg.HTTP = httpapi.Config{
		AllowedOrigins:    httpapi.ParseAllowedOrigins(v.GetString(flagAllowedOrigins)),
		SessionSigningKey: v.GetString(flagJWTSigningKey),
		SessionIssuer:     strings.TrimSpace(v.GetString(flagJWTIssuer)),
		SessionCookieName: strings.TrimSpace(v.GetString(flagJWTCookieName)),
		RateLimitRPS:      v.GetFloat64(flagRateLimitRPS),
		RateLimitBurst:    v.GetInt(flagRateLimitBurst),
		HistoryPageLimit:  v.GetInt(flagHistoryPageLimit),
	}

	return cfg.Validate()
}
