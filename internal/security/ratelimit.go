package security

import (
	"sync"
	"time"
)

const (
	DefaultRateLimitMax    = 10
	DefaultRateLimitWindow = 60 * time.Second
)

// RateLimiter is a sliding-window limiter keyed by action type.
// Each key keeps at most limit timestamps in a ring, so memory per key is bounded.
type RateLimiter struct {
	mu     sync.Mutex
	limit  int
	window time.Duration
	now    func() time.Time
	keys   map[string]*stampRing
}

type LimiterOption func(*RateLimiter)

func WithClock(now func() time.Time) LimiterOption {
	return func(l *RateLimiter) {
		l.now = now
	}
}

func NewRateLimiter(limit int, window time.Duration, opts ...LimiterOption) *RateLimiter {
	if limit <= 0 {
		limit = DefaultRateLimitMax
	}
	if window <= 0 {
		window = DefaultRateLimitWindow
	}
	l := &RateLimiter{
		limit:  limit,
		window: window,
		now:    time.Now,
		keys:   make(map[string]*stampRing),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Allow records an action for key and reports whether it fits in the current window.
// A rejected action is not recorded.
func (l *RateLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	r, ok := l.keys[key]
	if !ok {
		r = &stampRing{stamps: make([]time.Time, l.limit)}
		l.keys[key] = r
	}
	r.prune(now, l.window)
	if r.size >= l.limit {
		return false
	}
	r.push(now)
	return true
}

// Reset forgets the given keys, or every key when none are given.
func (l *RateLimiter) Reset(keys ...string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(keys) == 0 {
		l.keys = make(map[string]*stampRing)
		return
	}
	for _, k := range keys {
		delete(l.keys, k)
	}
}

// Sweep drops keys with no action inside the window and returns how many were dropped.
func (l *RateLimiter) Sweep() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	dropped := 0
	for k, r := range l.keys {
		r.prune(now, l.window)
		if r.size == 0 {
			delete(l.keys, k)
			dropped++
		}
	}
	return dropped
}

// Keys returns how many action keys are currently tracked.
func (l *RateLimiter) Keys() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.keys)
}

type stampRing struct {
	stamps []time.Time
	head   int
	size   int
}

func (r *stampRing) prune(now time.Time, window time.Duration) {
	for r.size > 0 && now.Sub(r.stamps[r.head]) >= window {
		r.head = (r.head + 1) % len(r.stamps)
		r.size--
	}
}

func (r *stampRing) push(t time.Time) {
	r.stamps[(r.head+r.size)%len(r.stamps)] = t
	r.size++
}
