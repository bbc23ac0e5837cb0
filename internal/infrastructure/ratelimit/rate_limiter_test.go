package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func TestTokenBucketRefills(t *testing.T) {
	c := &clock{t: time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)}
	tb := newTokenBucket(2, 1, 10*time.Second, c.now)

	ok, _ := tb.Allow()
	assert.True(t, ok)
	ok, _ = tb.Allow()
	assert.True(t, ok)

	ok, wait := tb.Allow()
	assert.False(t, ok)
	assert.Equal(t, 10*time.Second, wait)

	c.t = c.t.Add(4 * time.Second)
	ok, wait = tb.Allow()
	assert.False(t, ok)
	assert.Equal(t, 6*time.Second, wait)

	c.t = c.t.Add(6 * time.Second)
	ok, _ = tb.Allow()
	assert.True(t, ok)
	assert.Equal(t, 0, tb.GetTokens())
}

func TestRateLimiterSeparatesClientsAndActions(t *testing.T) {
	c := &clock{t: time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)}
	rl := NewRateLimiter(map[string]Limit{"login": {MaxTokens: 1, RefillRate: 1, RefillTime: time.Minute}})
	rl.now = c.now

	ok, _ := rl.Allow("10.0.0.1", "login")
	assert.True(t, ok)
	ok, _ = rl.Allow("10.0.0.1", "login")
	assert.False(t, ok)

	ok, _ = rl.Allow("10.0.0.2", "login")
	assert.True(t, ok)

	ok, _ = rl.Allow("10.0.0.1", "other")
	assert.True(t, ok)

	c.t = c.t.Add(2 * time.Hour)
	rl.Cleanup()
	assert.Empty(t, rl.buckets)
}
