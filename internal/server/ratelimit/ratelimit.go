// Package ratelimit provides per-client rate limiting using a token bucket.
package ratelimit

import (
	"sync"
	"time"
)

// cleanupInterval is how often idle client buckets are evicted.
const cleanupInterval = 5 * time.Minute

// tokenBucket allows a steady request rate with a burst capacity.
type tokenBucket struct {
	capacity   int
	refillRate float64 // tokens per second
	tokens     float64
	lastRefill time.Time
	mu         sync.Mutex
}

func newTokenBucket(capacity int, refillRate float64) *tokenBucket {
	return &tokenBucket{
		capacity:   capacity,
		refillRate: refillRate,
		tokens:     float64(capacity),
		lastRefill: time.Now(),
	}
}

// allow consumes a token if one is available.
func (tb *tokenBucket) allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(tb.lastRefill)
	tb.tokens = min(float64(tb.capacity), tb.tokens+elapsed.Seconds()*tb.refillRate)
	tb.lastRefill = now

	if tb.tokens >= 1.0 {
		tb.tokens -= 1.0
		return true
	}
	return false
}

// Limiter tracks one token bucket per client key (typically the client IP).
// A zero or negative rate disables limiting entirely.
type Limiter struct {
	rps   float64
	burst int

	mu         sync.Mutex
	buckets    map[string]*tokenBucket
	lastAccess map[string]time.Time

	cleanupTicker *time.Ticker
	cleanupStop   chan struct{}
}

// NewLimiter creates a limiter allowing rps requests per second per client
// with the given burst capacity. burst <= 0 defaults to max(1, rps).
func NewLimiter(rps float64, burst int) *Limiter {
	if burst <= 0 {
		burst = int(rps)
		if burst < 1 {
			burst = 1
		}
	}

	l := &Limiter{
		rps:         rps,
		burst:       burst,
		buckets:     make(map[string]*tokenBucket),
		lastAccess:  make(map[string]time.Time),
		cleanupStop: make(chan struct{}),
	}

	if l.Enabled() {
		l.cleanupTicker = time.NewTicker(cleanupInterval)
		go l.cleanupLoop()
	}

	return l
}

// Enabled reports whether the limiter enforces a limit.
func (l *Limiter) Enabled() bool {
	return l.rps > 0
}

// Allow reports whether the client may make another request now.
func (l *Limiter) Allow(client string) bool {
	if !l.Enabled() {
		return true
	}

	l.mu.Lock()
	bucket, ok := l.buckets[client]
	if !ok {
		bucket = newTokenBucket(l.burst, l.rps)
		l.buckets[client] = bucket
	}
	l.lastAccess[client] = time.Now()
	l.mu.Unlock()

	return bucket.allow()
}

// Stop ends the background cleanup goroutine.
func (l *Limiter) Stop() {
	if l.cleanupTicker != nil {
		l.cleanupTicker.Stop()
		close(l.cleanupStop)
	}
}

func (l *Limiter) cleanupLoop() {
	for {
		select {
		case <-l.cleanupTicker.C:
			l.evictIdle(cleanupInterval)
		case <-l.cleanupStop:
			return
		}
	}
}

// evictIdle drops buckets not used within maxIdle.
func (l *Limiter) evictIdle(maxIdle time.Duration) {
	cutoff := time.Now().Add(-maxIdle)

	l.mu.Lock()
	defer l.mu.Unlock()
	for client, last := range l.lastAccess {
		if last.Before(cutoff) {
			delete(l.buckets, client)
			delete(l.lastAccess, client)
		}
	}
}
