package ratelimit

import (
	"sync"
	"time"
)

// TokenBucket represents a token bucket for rate limiting
type TokenBucket struct {
	tokens     int
	maxTokens  int
	refillRate int           // tokens added per refill interval
	refillTime time.Duration // refill interval
	lastRefill time.Time
	lastSeen   time.Time
	now        func() time.Time
	mutex      sync.Mutex
}

func NewTokenBucket(maxTokens, refillRate int, refillTime time.Duration) *TokenBucket {
	return newTokenBucket(maxTokens, refillRate, refillTime, time.Now)
}

func newTokenBucket(maxTokens, refillRate int, refillTime time.Duration, now func() time.Time) *TokenBucket {
	t := now()
	return &TokenBucket{
		tokens:     maxTokens,
		maxTokens:  maxTokens,
		refillRate: refillRate,
		refillTime: refillTime,
		lastRefill: t,
		lastSeen:   t,
		now:        now,
	}
}

// Allow consumes a token if one is available. Otherwise it returns the wait
// until the next refill.
func (tb *TokenBucket) Allow() (bool, time.Duration) {
	tb.mutex.Lock()
	defer tb.mutex.Unlock()

	now := tb.now()
	tb.lastSeen = now

	elapsed := now.Sub(tb.lastRefill)
	intervals := int(elapsed / tb.refillTime)
	if intervals > 0 {
		tb.tokens += intervals * tb.refillRate
		if tb.tokens > tb.maxTokens {
			tb.tokens = tb.maxTokens
		}
		tb.lastRefill = tb.lastRefill.Add(time.Duration(intervals) * tb.refillTime)
	}

	if tb.tokens > 0 {
		tb.tokens--
		return true, 0
	}

	return false, tb.lastRefill.Add(tb.refillTime).Sub(now)
}

func (tb *TokenBucket) GetTokens() int {
	tb.mutex.Lock()
	defer tb.mutex.Unlock()
	return tb.tokens
}

// Limit configures the bucket created for one action.
type Limit struct {
	MaxTokens  int
	RefillRate int
	RefillTime time.Duration
}

// Login allows 5 attempts per minute per client.
var Login = Limit{MaxTokens: 5, RefillRate: 1, RefillTime: 12 * time.Second}

var defaultLimit = Limit{MaxTokens: 20, RefillRate: 1, RefillTime: 3 * time.Second}

// RateLimiter keeps one bucket per client and action.
type RateLimiter struct {
	buckets map[string]*TokenBucket
	limits  map[string]Limit
	now     func() time.Time
	mutex   sync.RWMutex
}

func NewRateLimiter(limits map[string]Limit) *RateLimiter {
	return &RateLimiter{
		buckets: make(map[string]*TokenBucket),
		limits:  limits,
		now:     time.Now,
	}
}

// Allow checks if an action by client is allowed
func (rl *RateLimiter) Allow(client, action string) (bool, time.Duration) {
	key := client + ":" + action

	rl.mutex.RLock()
	bucket, exists := rl.buckets[key]
	rl.mutex.RUnlock()

	if !exists {
		rl.mutex.Lock()
		if bucket, exists = rl.buckets[key]; !exists {
			limit, ok := rl.limits[action]
			if !ok {
				limit = defaultLimit
			}
			bucket = newTokenBucket(limit.MaxTokens, limit.RefillRate, limit.RefillTime, rl.now)
			rl.buckets[key] = bucket
		}
		rl.mutex.Unlock()
	}

	return bucket.Allow()
}

// Cleanup removes buckets that haven't been used for an hour
func (rl *RateLimiter) Cleanup() {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	now := rl.now()
	for key, bucket := range rl.buckets {
		bucket.mutex.Lock()
		idle := now.Sub(bucket.lastSeen)
		bucket.mutex.Unlock()
		if idle > time.Hour {
			delete(rl.buckets, key)
		}
	}
}

// StartCleanupRoutine runs Cleanup every 30 minutes until stop is closed.
func (rl *RateLimiter) StartCleanupRoutine(stop <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(30 * time.Minute)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				rl.Cleanup()
			case <-stop:
				return
			}
		}
	}()
}
