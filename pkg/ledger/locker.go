package ledger

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"
)

const (
	// DefaultLockTimeout bounds how long an operation waits for its locks.
	DefaultLockTimeout = 2 * time.Second

	lockKeyAccountPrefix  = "account:"
	lockKeyGamertagPrefix = "gamertag:"
)

// Unlock releases every key acquired by a single Lock call.
type Unlock func()

// Locker grants exclusive access to a set of keys with a bounded wait.
// Lock must acquire keys in ascending order and report ErrLockTimeout when
// the wait expires; on failure no key stays held.
type Locker interface {
	Lock(ctx context.Context, keys ...string) (Unlock, error)
}

// KeyedLocker is an in-process Locker backed by one channel slot per key.
type KeyedLocker struct {
	mu      sync.Mutex
	slots   map[string]*lockSlot
	timeout time.Duration
}

type lockSlot struct {
	token chan struct{}
	refs  int
}

// NewKeyedLocker returns a Locker that waits at most timeout for all keys.
func NewKeyedLocker(timeout time.Duration) *KeyedLocker {
	if timeout <= 0 {
		timeout = DefaultLockTimeout
	}
	return &KeyedLocker{slots: make(map[string]*lockSlot), timeout: timeout}
}

// Lock acquires the keys in sorted order.
func (locker *KeyedLocker) Lock(ctx context.Context, keys ...string) (Unlock, error) {
	ordered := SortedLockKeys(keys...)
	timer := time.NewTimer(locker.timeout)
	defer timer.Stop()

	held := make([]string, 0, len(ordered))
	for _, key := range ordered {
		slot := locker.retain(key)
		select {
		case slot.token <- struct{}{}:
			held = append(held, key)
		case <-timer.C:
			locker.release(key, false)
			locker.releaseAll(held)
			return nil, fmt.Errorf("%w: waited %s for %s", ErrLockTimeout, locker.timeout, key)
		case <-ctx.Done():
			locker.release(key, false)
			locker.releaseAll(held)
			return nil, fmt.Errorf("%w: %v", ErrLockTimeout, ctx.Err())
		}
	}

	var once sync.Once
	return func() {
		once.Do(func() { locker.releaseAll(held) })
	}, nil
}

func (locker *KeyedLocker) retain(key string) *lockSlot {
	locker.mu.Lock()
	defer locker.mu.Unlock()
	slot, exists := locker.slots[key]
	if !exists {
		slot = &lockSlot{token: make(chan struct{}, 1)}
		locker.slots[key] = slot
	}
	slot.refs++
	return slot
}

func (locker *KeyedLocker) release(key string, holding bool) {
	locker.mu.Lock()
	defer locker.mu.Unlock()
	slot, exists := locker.slots[key]
	if !exists {
		return
	}
	if holding {
		<-slot.token
	}
	slot.refs--
	if slot.refs == 0 {
		delete(locker.slots, key)
	}
}

func (locker *KeyedLocker) releaseAll(held []string) {
	for index := len(held) - 1; index >= 0; index-- {
		locker.release(held[index], true)
	}
}

// SortedLockKeys dedupes and orders keys so that every caller acquires them
// in the same global order.
func SortedLockKeys(keys ...string) []string {
	seen := make(map[string]struct{}, len(keys))
	ordered := make([]string, 0, len(keys))
	for _, key := range keys {
		if _, exists := seen[key]; exists {
			continue
		}
		seen[key] = struct{}{}
		ordered = append(ordered, key)
	}
	sort.Strings(ordered)
	return ordered
}

func accountLockKey(identityID IdentityID) string {
	return lockKeyAccountPrefix + identityID.String()
}

func gamertagLockKey(gamertag Gamertag) string {
	return lockKeyGamertagPrefix + gamertag.Key()
}
