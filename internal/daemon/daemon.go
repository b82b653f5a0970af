// Package daemon assembles the kolofapd process: store, locker, ledger
// service, gRPC and HTTP servers and the request expiry sweeper.
package daemon

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	ledgerv1 "github.com/MarkoPoloResearchLab/kolofap/api/kolofap/ledger/v1"
	"github.com/MarkoPoloResearchLab/kolofap/internal/grpcserver"
	"github.com/MarkoPoloResearchLab/kolofap/internal/httpapi"
	"github.com/MarkoPoloResearchLab/kolofap/internal/lock/redislock"
	"github.com/MarkoPoloResearchLab/kolofap/internal/oplog"
	"github.com/MarkoPoloResearchLab/kolofap/internal/sweeper"
	"github.com/MarkoPoloResearchLab/kolofap/pkg/ledger"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
)

// NewLogger builds the process logger for level.
func NewLogger(level string) (*zap.Logger, error) {
	if level == LogLevelDebug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// Run serves until ctx is cancelled or a server fails, then shuts every
// component down.
func Run(ctx context.Context, cfg Config, logger *zap.Logger) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	locker, closeLocker, err := openLocker(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeLocker()

	ledgerService, err := ledger.NewService(store, func() time.Time { return time.Now().UTC() },
		ledger.WithLocker(locker),
		ledger.WithOperationLogger(oplog.New(logger)),
	)
	if err != nil {
		return fmt.Errorf("ledger service init: %w", err)
	}

	requestSweeper, err := sweeper.New(ledgerService, sweeper.Config{Interval: cfg.SweepInterval, RequestTTL: cfg.RequestTTL}, logger)
	if err != nil {
		return err
	}

	sessionValidator, err := httpapi.NewSessionValidator(cfg.HTTP)
	if err != nil {
		return err
	}
	router, err := httpapi.NewRouter(cfg.HTTP, ledgerService, sessionValidator, httpapi.NewMetrics(), logger.Named("http"))
	if err != nil {
		return err
	}
	httpServer := &http.Server{
		Addr:              cfg.HTTPListenAddr,
		Handler:           router,
		ReadHeaderTimeout: shutdownTimeout,
	}

	grpcListener, err := net.Listen("tcp", cfg.GRPCListenAddr)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	grpcServer := grpc.NewServer()
	ledgerv1.RegisterLedgerServiceServer(grpcServer, grpcserver.NewLedgerServiceServer(ledgerService))

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		logger.Info("gRPC server starting", zap.String("listen_addr", cfg.GRPCListenAddr))
		if serveErr := grpcServer.Serve(grpcListener); serveErr != nil && !errors.Is(serveErr, grpc.ErrServerStopped) {
			return fmt.Errorf("grpc serve: %w", serveErr)
		}
		return nil
	})
	group.Go(func() error {
		logger.Info("HTTP server starting", zap.String("listen_addr", cfg.HTTPListenAddr))
		if serveErr := httpServer.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			return fmt.Errorf("http serve: %w", serveErr)
		}
		return nil
	})
	group.Go(func() error {
		return requestSweeper.Run(groupCtx)
	})
	group.Go(func() error {
		<-groupCtx.Done()
		logger.Info("shutdown requested")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		grpcServer.GracefulStop()
		return httpServer.Shutdown(shutdownCtx)
	})
	return group.Wait()
}

func openLocker(ctx context.Context, cfg Config) (ledger.Locker, func(), error) {
	if cfg.LockBackend != LockBackendRedis {
		return ledger.NewKeyedLocker(cfg.LockTimeout), func() {}, nil
	}
	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("redis ping: %w", err)
	}
	locker, err := redislock.New(client, redislock.Config{Timeout: cfg.LockTimeout})
	if err != nil {
		_ = client.Close()
		return nil, nil, err
	}
	return locker, func() { _ = client.Close() }, nil
}
