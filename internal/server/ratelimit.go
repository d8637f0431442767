package server

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	cleanupInterval = 5 * time.Minute
	idleTimeout     = 10 * time.Minute
)

// RateLimiter keeps a token bucket per client address.
type RateLimiter struct {
	cleanupAt time.Time
	limiters  map[string]*limiterEntry
	now       func() time.Time
	rate      rate.Limit
	burst     int
	mu        sync.Mutex
}

type limiterEntry struct {
	lastSeen time.Time
	limiter  *rate.Limiter
}

// NewRateLimiter allows perSecond requests per client with the given burst.
// A non-positive rate disables limiting.
func NewRateLimiter(perSecond float64, burst int) *RateLimiter {
	limit := rate.Limit(perSecond)
	if perSecond <= 0 {
		limit = rate.Inf
	}

	if burst < 1 {
		burst = 1
	}

	return &RateLimiter{
		limiters:  make(map[string]*limiterEntry),
		rate:      limit,
		burst:     burst,
		now:       time.Now,
		cleanupAt: time.Now().Add(cleanupInterval),
	}
}

// Allow reports whether the client at ip may make a request now.
func (l *RateLimiter) Allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	if now.After(l.cleanupAt) {
		l.cleanup(now)
		l.cleanupAt = now.Add(cleanupInterval)
	}

	entry, ok := l.limiters[ip]
	if !ok {
		entry = &limiterEntry{limiter: rate.NewLimiter(l.rate, l.burst)}
		l.limiters[ip] = entry
	}

	entry.lastSeen = now

	return entry.limiter.AllowN(now, 1)
}

// cleanup removes limiters that have been idle for a while.
// Must be called with mu held.
func (l *RateLimiter) cleanup(now time.Time) {
	cutoff := now.Add(-idleTimeout)

	for ip, entry := range l.limiters {
		if entry.lastSeen.Before(cutoff) {
			delete(l.limiters, ip)
		}
	}
}

// Active returns the number of tracked clients.
func (l *RateLimiter) Active() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.limiters)
}

// clientIP returns the address of the socket peer. Forwarding headers are
// ignored since clients can set them to anything.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
