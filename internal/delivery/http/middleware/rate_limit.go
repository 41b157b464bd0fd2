package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"hirehub-backend/config"
	"hirehub-backend/internal/delivery/http/response"
	"hirehub-backend/pkg/logger"
	"hirehub-backend/pkg/redis"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
)

// RateLimitConfig holds configuration for rate limiting
type RateLimitConfig struct {
	// Requests per window
	Limit int
	// Time window duration
	Window time.Duration
	// Key extractor (default: client IP)
	KeyFunc func(*gin.Context) string
	// Key prefix, shared by Redis and the in-memory store
	KeyPrefix string
	// Reject with 503 instead of falling back when Redis errors
	FailClosed bool
	// Store overrides the process-wide in-memory fallback
	Store *MemoryStore
}

// MemoryStore is the fixed-window fallback used when Redis is unavailable
type MemoryStore struct {
	entries sync.Map
}

type rateLimitEntry struct {
	mu      sync.Mutex
	count   int
	resetAt time.Time
	// removed is set by Sweep once the entry is out of the map
	removed bool
}

var (
	defaultStore = &MemoryStore{}
	cleanupOnce  sync.Once
)

// Atomic increment with TTL on first hit.
// KEYS[1] = counter key, ARGV[1] = TTL in seconds. Returns {count, ttl}.
const rateLimitLuaScript = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('TTL', KEYS[1])
return {count, ttl}
`

// Hit counts one request for key and returns the running count and window reset
func (s *MemoryStore) Hit(key string, window time.Duration, now time.Time) (int, time.Time) {
	for {
		v, _ := s.entries.LoadOrStore(key, &rateLimitEntry{resetAt: now.Add(window)})
		if count, resetAt, ok := v.(*rateLimitEntry).hit(window, now); ok {
			return count, resetAt
		}
		// Swept between load and lock; retry against the live entry.
	}
}

func (e *rateLimitEntry) hit(window time.Duration, now time.Time) (int, time.Time, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.removed {
		return 0, time.Time{}, false
	}
	if now.After(e.resetAt) {
		e.count = 0
		e.resetAt = now.Add(window)
	}
	e.count++
	return e.count, e.resetAt, true
}

// Sweep drops expired windows
func (s *MemoryStore) Sweep(now time.Time) {
	s.entries.Range(func(key, value any) bool {
		entry := value.(*rateLimitEntry)
		entry.mu.Lock()
		if now.After(entry.resetAt) && s.entries.CompareAndDelete(key, entry) {
			entry.removed = true
		}
		entry.mu.Unlock()
		return true
	})
}

func startCleanup() {
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		for now := range ticker.C {
			defaultStore.Sweep(now)
		}
	}()
}

func clientIPKey(c *gin.Context) string {
	return c.ClientIP()
}

// GlobalRateLimitConfig applies to every /v1 route
func GlobalRateLimitConfig(cfg *config.Config) RateLimitConfig {
	return RateLimitConfig{
		Limit:     cfg.RateLimitGlobalThreshold,
		Window:    time.Duration(cfg.RateLimitWindowSeconds) * time.Second,
		KeyPrefix: "rl:ip:",
		KeyFunc:   clientIPKey,
	}
}

// ChatRateLimitConfig is the tighter per-IP budget for the chatbot endpoint
func ChatRateLimitConfig(cfg *config.Config) RateLimitConfig {
	return RateLimitConfig{
		Limit:     cfg.ChatRateLimit,
		Window:    time.Duration(cfg.RateLimitWindowSeconds) * time.Second,
		KeyPrefix: "rl:chat:",
		KeyFunc:   clientIPKey,
	}
}

// RateLimitMiddleware enforces a fixed window per key.
// Uses Redis when initialized, the in-memory store otherwise.
func RateLimitMiddleware(rl RateLimitConfig) gin.HandlerFunc {
	if rl.KeyFunc == nil {
		rl.KeyFunc = clientIPKey
	}
	if rl.Window <= 0 {
		rl.Window = time.Minute
	}
	store := rl.Store
	if store == nil {
		store = defaultStore
		cleanupOnce.Do(startCleanup)
	}

	return func(c *gin.Context) {
		fullKey := rl.KeyPrefix + rl.KeyFunc(c)
		now := time.Now()

		var count int
		var resetAt time.Time

		if client := redis.Client(); client != nil {
			var err error
			count, resetAt, err = checkRateLimitRedis(c.Request.Context(), client, fullKey, rl.Window)
			if err != nil {
				logger.Log.WarnContext(c.Request.Context(), "Rate limit store unavailable",
					"key_prefix", rl.KeyPrefix,
					"error", err,
				)
				if rl.FailClosed {
					response.Error(c, http.StatusServiceUnavailable, "Service temporarily unavailable. Please try again.", nil)
					c.Abort()
					return
				}
				count, resetAt = store.Hit(fullKey, rl.Window, now)
			}
		} else {
			count, resetAt = store.Hit(fullKey, rl.Window, now)
		}

		remaining := rl.Limit - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", resetAt.Format(time.RFC3339))

		if count > rl.Limit {
			retryAfter := int(time.Until(resetAt).Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))

			logger.Log.WarnContext(c.Request.Context(), "Rate limit exceeded",
				"key_prefix", rl.KeyPrefix,
				"client_ip", c.ClientIP(),
				"path", c.FullPath(),
				"request_id", c.GetString(RequestIDKey),
			)
			response.Error(c, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}

func checkRateLimitRedis(ctx context.Context, client *goredis.Client, key string, window time.Duration) (int, time.Time, error) {
	result, err := client.Eval(ctx, rateLimitLuaScript, []string{key}, int(window.Seconds())).Result()
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("redis rate limit eval failed: %w", err)
	}

	arr, ok := result.([]interface{})
	if !ok || len(arr) < 2 {
		return 0, time.Time{}, fmt.Errorf("unexpected redis result format")
	}
	count, _ := arr[0].(int64)
	ttl, _ := arr[1].(int64)

	return int(count), time.Now().Add(time.Duration(ttl) * time.Second), nil
}
