// Package ratelimit provides a keyed token-bucket limiter.
// Allow is for inbound protection, Wait for pacing outbound calls.
package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// idleTTL is how long an untouched key keeps its bucket.
const idleTTL = 10 * time.Minute

type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// KeyedLimiter gives every key its own independent limiter.
type KeyedLimiter struct {
	mu      sync.RWMutex
	entries map[string]*entry
	limit   rate.Limit
	burst   int

	now      func() time.Time
	done     chan struct{}
	stopOnce sync.Once
}

// New creates a KeyedLimiter allowing rps events per second with the given
// burst. A background goroutine evicts idle keys every cleanupInterval;
// call Stop on shutdown.
func New(rps float64, burst int, cleanupInterval time.Duration) *KeyedLimiter {
	kl := &KeyedLimiter{
		entries: make(map[string]*entry),
		limit:   rate.Limit(rps),
		burst:   burst,
		now:     time.Now,
		done:    make(chan struct{}),
	}
	if cleanupInterval > 0 {
		go kl.cleanup(cleanupInterval)
	}
	return kl
}

// Allow reports whether an event for key may happen now.
func (kl *KeyedLimiter) Allow(key string) bool {
	return kl.get(key).Allow()
}

// Wait blocks until an event for key is allowed or ctx is done.
func (kl *KeyedLimiter) Wait(ctx context.Context, key string) error {
	return kl.get(key).Wait(ctx)
}

// RetryAfter is the approximate delay before one token is refilled.
func (kl *KeyedLimiter) RetryAfter() time.Duration {
	if kl.limit <= 0 {
		return time.Minute
	}
	return time.Duration(float64(time.Second) / float64(kl.limit))
}

// Len returns the number of tracked keys.
func (kl *KeyedLimiter) Len() int {
	kl.mu.RLock()
	defer kl.mu.RUnlock()
	return len(kl.entries)
}

// Stop terminates the cleanup goroutine. Safe to call more than once.
func (kl *KeyedLimiter) Stop() {
	kl.stopOnce.Do(func() {
		close(kl.done)
	})
}

func (kl *KeyedLimiter) get(key string) *rate.Limiter {
	now := kl.now()

	kl.mu.RLock()
	e, ok := kl.entries[key]
	kl.mu.RUnlock()
	if ok {
		kl.mu.Lock()
		e.lastSeen = now
		kl.mu.Unlock()
		return e.limiter
	}

	kl.mu.Lock()
	defer kl.mu.Unlock()

	if e, ok = kl.entries[key]; ok {
		e.lastSeen = now
		return e.limiter
	}
	e = &entry{limiter: rate.NewLimiter(kl.limit, kl.burst), lastSeen: now}
	kl.entries[key] = e
	return e.limiter
}

func (kl *KeyedLimiter) evictIdle() {
	cutoff := kl.now().Add(-idleTTL)

	kl.mu.Lock()
	defer kl.mu.Unlock()
	for key, e := range kl.entries {
		if e.lastSeen.Before(cutoff) {
			delete(kl.entries, key)
		}
	}
}

func (kl *KeyedLimiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-kl.done:
			return
		case <-ticker.C:
			kl.evictIdle()
		}
	}
}
