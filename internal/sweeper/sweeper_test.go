package sweeper

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const errorMismatchMessage = "expected %v, got %v"

type countingExpirer struct {
	calls   atomic.Int32
	lastTTL atomic.Int64
	expired int
	err     error
}

func (expirer *countingExpirer) ExpireStale(_ context.Context, ttl time.Duration) (int, error) {
	expirer.calls.Add(1)
	expirer.lastTTL.Store(int64(ttl))
	return expirer.expired, expirer.err
}

func TestNewValidatesConfig(test *testing.T) {
	test.Parallel()
	testCases := []struct {
		name    string
		expirer Expirer
		config  Config
	}{
		{name: "nil expirer", config: Config{Interval: time.Second, RequestTTL: time.Hour}},
		{name: "zero interval", expirer: &countingExpirer{}, config: Config{RequestTTL: time.Hour}},
		{name: "negative ttl", expirer: &countingExpirer{}, config: Config{Interval: time.Second, RequestTTL: -time.Hour}},
	}
	for _, testCase := range testCases {
		testCase := testCase
		test.Run(testCase.name, func(test *testing.T) {
			test.Parallel()
			if _, err := New(testCase.expirer, testCase.config, nil); !errors.Is(err, ErrInvalidConfig) {
				test.Fatalf(errorMismatchMessage, ErrInvalidConfig, err)
			}
		})
	}
}

func TestSweepOnceLogsOutcome(test *testing.T) {
	test.Parallel()
	core, recorded := observer.New(zapcore.InfoLevel)
	expirer := &countingExpirer{expired: 3}
	sweeper, err := New(expirer, Config{Interval: time.Minute, RequestTTL: 72 * time.Hour}, zap.New(core))
	if err != nil {
		test.Fatalf("sweeper init failed: %v", err)
	}
	expired, err := sweeper.SweepOnce(context.Background())
	if err != nil || expired != 3 {
		test.Fatalf("expected 3 expired, got %d (%v)", expired, err)
	}
	if time.Duration(expirer.lastTTL.Load()) != 72*time.Hour {
		test.Fatalf("expected configured ttl to be passed through")
	}
	if recorded.FilterMessage("expired stale requests").Len() != 1 {
		test.Fatalf("expected an info entry for the sweep")
	}

	expirer.err = errors.New("database unavailable")
	if _, err := sweeper.SweepOnce(context.Background()); err == nil {
		test.Fatalf("expected sweep error")
	}
	if recorded.FilterMessage("request sweep failed").Len() != 1 {
		test.Fatalf("expected a warning for the failed sweep")
	}
}

func TestRunSweepsUntilCancelled(test *testing.T) {
	test.Parallel()
	expirer := &countingExpirer{}
	sweeper, err := New(expirer, Config{Interval: time.Second, RequestTTL: time.Hour}, nil)
	if err != nil {
		test.Fatalf("sweeper init failed: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- sweeper.Run(ctx) }()

	deadline := time.Now().Add(5 * time.Second)
	for expirer.calls.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(50 * time.Millisecond)
	}
	cancel()
	if err := <-done; err != nil {
		test.Fatalf("run returned error: %v", err)
	}
	if expirer.calls.Load() == 0 {
		test.Fatalf("expected at least one scheduled sweep")
	}
}
