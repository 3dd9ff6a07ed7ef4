package middleware

import (
	"errors"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/phrazzld/podcast-api/internal/api/shared"
	"golang.org/x/time/rate"
)

var errRateLimited = errors.New("rate limit exceeded")

const defaultIdleTTL = 10 * time.Minute

// IPRateLimiter applies a token bucket per client IP and periodically
// evicts idle buckets.
type IPRateLimiter struct {
	limit   rate.Limit
	burst   int
	idleTTL time.Duration
	now     func() time.Time

	mu    sync.Mutex
	byKey map[string]*bucket
	hits  uint64
}

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewIPRateLimiter returns nil when rps or burst is not positive; a nil
// limiter allows everything.
func NewIPRateLimiter(rps float64, burst int) *IPRateLimiter {
	if rps <= 0 || burst <= 0 {
		return nil
	}
	return &IPRateLimiter{
		limit:   rate.Limit(rps),
		burst:   burst,
		idleTTL: defaultIdleTTL,
		now:     time.Now,
		byKey:   make(map[string]*bucket),
	}
}

// Allow reports whether one request from key may proceed now.
func (l *IPRateLimiter) Allow(key string) bool {
	if l == nil || key == "" {
		return true
	}
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.byKey[key]
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.byKey[key] = b
	}
	b.lastSeen = now
	allowed := b.limiter.AllowN(now, 1)

	l.hits++
	if l.hits%512 == 0 {
		cutoff := now.Add(-l.idleTTL)
		for k, v := range l.byKey {
			if v.lastSeen.Before(cutoff) {
				delete(l.byKey, k)
			}
		}
	}
	return allowed
}

// Middleware answers 429 once the client's bucket is empty.
func (l *IPRateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.Allow(clientIP(r)) {
			w.Header().Set("Retry-After", "1")
			shared.RespondWithErrorAndLog(w, r, http.StatusTooManyRequests,
				"Too many requests", errRateLimited)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP reads the host part of RemoteAddr. Proxy headers are resolved
// upstream by chi's RealIP middleware.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return strings.TrimSpace(r.RemoteAddr)
	}
	return host
}
