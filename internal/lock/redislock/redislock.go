// Package redislock implements ledger.Locker on Redis so several kolofapd
// replicas can share one set of account locks.
package redislock

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MarkoPoloResearchLab/kolofap/pkg/ledger"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const (
	defaultKeyPrefix    = "kolofap:lock:"
	defaultLeaseTTL     = 30 * time.Second
	defaultPollInterval = 10 * time.Millisecond
)

// ErrInvalidConfig reports a missing client or inconsistent lock durations.
var ErrInvalidConfig = errors.New("invalid redis locker config")

// releaseScript deletes a key only while it still carries our token, so a
// lease that expired and was taken by another holder is left alone.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// Config tunes a Locker.
type Config struct {
	// Timeout bounds the total wait for all keys of one Lock call.
	Timeout time.Duration
	// LeaseTTL is the expiry set on every acquired key.
	LeaseTTL time.Duration
	// PollInterval is the pause between SET NX attempts on a busy key.
	PollInterval time.Duration
	KeyPrefix    string
}

// Locker grants keys with SET NX PX and releases them with a token check.
type Locker struct {
	client       redis.Cmdable
	timeout      time.Duration
	leaseTTL     time.Duration
	pollInterval time.Duration
	keyPrefix    string
	newToken     func() string
}

// New returns a Locker over client. Zero config values take defaults.
func New(client redis.Cmdable, config Config) (*Locker, error) {
	if client == nil {
		return nil, fmt.Errorf("%w: client is nil", ErrInvalidConfig)
	}
	if config.Timeout < 0 || config.LeaseTTL < 0 || config.PollInterval < 0 {
		return nil, fmt.Errorf("%w: durations must not be negative", ErrInvalidConfig)
	}
	locker := &Locker{
		client:       client,
		timeout:      config.Timeout,
		leaseTTL:     config.LeaseTTL,
		pollInterval: config.PollInterval,
		keyPrefix:    config.KeyPrefix,
		newToken:     uuid.NewString,
	}
	if locker.timeout == 0 {
		locker.timeout = ledger.DefaultLockTimeout
	}
	if locker.leaseTTL == 0 {
		locker.leaseTTL = defaultLeaseTTL
	}
	if locker.leaseTTL < locker.timeout {
		return nil, fmt.Errorf("%w: lease ttl %s is shorter than lock timeout %s", ErrInvalidConfig, locker.leaseTTL, locker.timeout)
	}
	if locker.pollInterval == 0 {
		locker.pollInterval = defaultPollInterval
	}
	if locker.keyPrefix == "" {
		locker.keyPrefix = defaultKeyPrefix
	}
	return locker, nil
}

// Lock acquires every key in ascending order within the configured timeout.
// On failure the keys already taken are released before returning.
func (locker *Locker) Lock(ctx context.Context, keys ...string) (ledger.Unlock, error) {
	ordered := ledger.SortedLockKeys(keys...)
	token := locker.newToken()
	waitCtx, cancel := context.WithTimeout(ctx, locker.timeout)
	defer cancel()

	held := make([]string, 0, len(ordered))
	for _, key := range ordered {
		if err := locker.acquire(waitCtx, locker.keyPrefix+key, token); err != nil {
			locker.release(held, token)
			return nil, err
		}
		held = append(held, locker.keyPrefix+key)
	}

	var once sync.Once
	return func() {
		once.Do(func() { locker.release(held, token) })
	}, nil
}

func (locker *Locker) acquire(ctx context.Context, key string, token string) error {
	ticker := time.NewTicker(locker.pollInterval)
	defer ticker.Stop()
	for {
		acquired, err := locker.client.SetNX(ctx, key, token, locker.leaseTTL).Result()
		if err != nil && ctx.Err() == nil {
			return fmt.Errorf("redis lock %s: %w", key, err)
		}
		if acquired {
			return nil
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %s", ledger.ErrLockTimeout, key)
		case <-ticker.C:
		}
	}
}

// release runs on a fresh context so a cancelled caller still frees its keys.
func (locker *Locker) release(keys []string, token string) {
	ctx, cancel := context.WithTimeout(context.Background(), locker.timeout)
	defer cancel()
	for index := len(keys) - 1; index >= 0; index-- {
		_ = releaseScript.Run(ctx, locker.client, []string{keys[index]}, token).Err()
	}
}
