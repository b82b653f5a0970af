package httpapi

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const limiterIdleTTL = 10 * time.Minute

// rateLimiter keeps one token bucket per session user.
type rateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*limiterEntry
	limit    rate.Limit
	burst    int
	now      func() time.Time
	swept    time.Time
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newRateLimiter(requestsPerSecond float64, burst int) *rateLimiter {
	return &rateLimiter{
		limiters: make(map[string]*limiterEntry),
		limit:    rate.Limit(requestsPerSecond),
		burst:    burst,
		now:      time.Now,
	}
}

// allow reports whether key may proceed and drops buckets idle longer than
// limiterIdleTTL.
func (limiter *rateLimiter) allow(key string) bool {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	now := limiter.now()
	entry, exists := limiter.limiters[key]
	if !exists {
		entry = &limiterEntry{limiter: rate.NewLimiter(limiter.limit, limiter.burst)}
		limiter.limiters[key] = entry
	}
	entry.lastSeen = now
	if now.Sub(limiter.swept) > limiterIdleTTL {
		for otherKey, other := range limiter.limiters {
			if now.Sub(other.lastSeen) > limiterIdleTTL {
				delete(limiter.limiters, otherKey)
			}
		}
		limiter.swept = now
	}
	return entry.limiter.AllowN(now, 1)
}

func (handler *httpHandler) rateLimit() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if handler.limiter == nil {
			ctx.Next()
			return
		}
		key := ctx.ClientIP()
		if claims := getClaims(ctx); claims != nil {
			key = claims.GetUserID()
		}
		if !handler.limiter.allow(key) {
			handler.abortWithCode(ctx, codeRateLimited)
			return
		}
		ctx.Next()
	}
}
