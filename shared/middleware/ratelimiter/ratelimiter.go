// Package ratelimiter implements a keyed token bucket limiter. Buckets that
// stay idle longer than the configured TTL are evicted by a background sweep.
package ratelimiter

import (
	"sync"
	"time"
)

type bucket struct {
	tokens   float64
	lastSeen time.Time
}

type Limiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	rate    float64 // tokens per second
	burst   float64
	idleTTL time.Duration
	now     func() time.Time

	stop     chan struct{}
	stopOnce sync.Once
}

// New returns a limiter refilling perMinute tokens a minute up to burst.
func New(perMinute float64, burst int, idleTTL time.Duration) *Limiter {
	l := newLimiter(perMinute, burst, idleTTL, time.Now)
	go l.sweepLoop()
	return l
}

func newLimiter(perMinute float64, burst int, idleTTL time.Duration, now func() time.Time) *Limiter {
	return &Limiter{
		buckets: make(map[string]*bucket),
		rate:    perMinute / 60,
		burst:   float64(burst),
		idleTTL: idleTTL,
		now:     now,
		stop:    make(chan struct{}),
	}
}

// Allow takes one token from key's bucket if available.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{tokens: l.burst, lastSeen: now}
		l.buckets[key] = b
	} else {
		b.tokens = min(l.burst, b.tokens+now.Sub(b.lastSeen).Seconds()*l.rate)
		b.lastSeen = now
	}

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

// Len reports how many keys currently hold a bucket.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}

func (l *Limiter) sweep() {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.now().Add(-l.idleTTL)
	for key, b := range l.buckets {
		if b.lastSeen.Before(cutoff) {
			delete(l.buckets, key)
		}
	}
}

func (l *Limiter) sweepLoop() {
	ticker := time.NewTicker(l.idleTTL)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			l.sweep()
		case <-l.stop:
			return
		}
	}
}

// Stop ends the background sweep. Allow keeps working afterwards.
func (l *Limiter) Stop() {
	l.stopOnce.Do(func() { close(l.stop) })
}
