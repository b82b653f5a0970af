// Package sweeper expires pending payment requests on a cron schedule.
package sweeper

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// ErrInvalidConfig reports a sweeper configuration that cannot run.
var ErrInvalidConfig = errors.New("invalid sweeper config")

// Expirer moves pending requests older than ttl to expired.
type Expirer interface {
	ExpireStale(ctx context.Context, ttl time.Duration) (int, error)
}

// Config controls the sweep cadence and the request age threshold.
type Config struct {
	Interval   time.Duration
	RequestTTL time.Duration
}

// Sweeper runs Expirer.ExpireStale every Interval. Overlapping runs are skipped.
type Sweeper struct {
	expirer  Expirer
	config   Config
	logger   *zap.Logger
	schedule *cron.Cron
}

// New validates config and prepares the schedule.
func New(expirer Expirer, config Config, logger *zap.Logger) (*Sweeper, error) {
	if expirer == nil {
		return nil, fmt.Errorf("%w: expirer is nil", ErrInvalidConfig)
	}
	if config.Interval <= 0 {
		return nil, fmt.Errorf("%w: interval must be positive", ErrInvalidConfig)
	}
	if config.RequestTTL <= 0 {
		return nil, fmt.Errorf("%w: request ttl must be positive", ErrInvalidConfig)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("sweeper")
	cronLog := cronLogger{logger: logger.Sugar()}
	return &Sweeper{
		expirer: expirer,
		config:  config,
		logger:  logger,
		schedule: cron.New(
			cron.WithLogger(cronLog),
			cron.WithChain(cron.Recover(cronLog), cron.SkipIfStillRunning(cronLog)),
		),
	}, nil
}

// Run blocks until ctx is cancelled, then waits for an in-flight sweep.
func (sweeper *Sweeper) Run(ctx context.Context) error {
	spec := fmt.Sprintf("@every %s", sweeper.config.Interval)
	if _, err := sweeper.schedule.AddFunc(spec, func() { _, _ = sweeper.SweepOnce(ctx) }); err != nil {
		return fmt.Errorf("schedule sweep: %w", err)
	}
	sweeper.logger.Info("request sweeper started",
		zap.Duration("interval", sweeper.config.Interval),
		zap.Duration("request_ttl", sweeper.config.RequestTTL),
	)
	sweeper.schedule.Start()
	<-ctx.Done()
	<-sweeper.schedule.Stop().Done()
	sweeper.logger.Info("request sweeper stopped")
	return nil
}

// SweepOnce runs a single expiry pass.
func (sweeper *Sweeper) SweepOnce(ctx context.Context) (int, error) {
	expired, err := sweeper.expirer.ExpireStale(ctx, sweeper.config.RequestTTL)
	if err != nil {
		if ctx.Err() == nil {
			sweeper.logger.Warn("request sweep failed", zap.Int("expired", expired), zap.Error(err))
		}
		return expired, err
	}
	if expired > 0 {
		sweeper.logger.Info("expired stale requests", zap.Int("expired", expired))
	}
	return expired, nil
}

// cronLogger adapts zap to cron.Logger.
type cronLogger struct {
	logger *zap.SugaredLogger
}

func (adapter cronLogger) Info(msg string, keysAndValues ...interface{}) {
	adapter.logger.Debugw(msg, keysAndValues...)
}

func (adapter cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	adapter.logger.Errorw(msg, append(keysAndValues, "error", err)...)
}
