// Package ratelimiter implements a token bucket per client key.
package ratelimiter

import (
	"sync"
	"time"
)

type bucket struct {
	tokens     float64
	lastRefill time.Time
}

// Limiter keeps one token bucket per key. Buckets idle longer than ttl are dropped.
type Limiter struct {
	mu        sync.Mutex
	buckets   map[string]*bucket
	rate      float64
	capacity  float64
	ttl       time.Duration
	lastSweep time.Time
	now       func() time.Time
}

// New creates a limiter refilling rate tokens per second up to capacity.
func New(rate float64, capacity float64, ttl time.Duration) *Limiter {
	return &Limiter{
		buckets:   make(map[string]*bucket),
		rate:      rate,
		capacity:  capacity,
		ttl:       ttl,
		now:       time.Now,
		lastSweep: time.Now(),
	}
}

// Allow takes one token from the bucket of key if there is one.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)

	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{tokens: l.capacity, lastRefill: now}
		l.buckets[key] = b
	}

	b.tokens += now.Sub(b.lastRefill).Seconds() * l.rate
	if b.tokens > l.capacity {
		b.tokens = l.capacity
	}
	b.lastRefill = now

	if b.tokens >= 1 {
		b.tokens--
		return true
	}
	return false
}

// Len returns the number of tracked keys.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}

// sweep runs at most once per ttl. Must be called with mu held.
func (l *Limiter) sweep(now time.Time) {
	if l.ttl <= 0 || now.Sub(l.lastSweep) < l.ttl {
		return
	}
	for key, b := range l.buckets {
		if now.Sub(b.lastRefill) >= l.ttl {
			delete(l.buckets, key)
		}
	}
	l.lastSweep = now
}
