package http

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_Allow(t *testing.T) {
	rl := NewRateLimiter(60, 3)
	defer rl.Stop()

	now := time.Now()
	for i := 0; i < 3; i++ {
		assert.True(t, rl.allowAt("10.0.0.1", now), "request %d", i)
	}
	assert.False(t, rl.allowAt("10.0.0.1", now))
	assert.True(t, rl.allowAt("10.0.0.2", now), "clients are limited separately")

	// 60 per minute refills one token per second.
	assert.True(t, rl.allowAt("10.0.0.1", now.Add(time.Second)))
	assert.False(t, rl.allowAt("10.0.0.1", now.Add(time.Second)))
}

func TestRateLimiter_Cleanup(t *testing.T) {
	rl := NewRateLimiter(60, 1)
	defer rl.Stop()

	now := time.Now()
	rl.allowAt("stale", now.Add(-2*time.Hour))
	rl.allowAt("fresh", now)

	rl.cleanup(now)

	rl.mu.Lock()
	defer rl.mu.Unlock()
	assert.NotContains(t, rl.clients, "stale")
	assert.Contains(t, rl.clients, "fresh")
}

func TestRateLimiter_StopTwice(t *testing.T) {
	rl := NewRateLimiter(60, 1)
	rl.Stop()
	assert.NotPanics(t, rl.Stop)
}
