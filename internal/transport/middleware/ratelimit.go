package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/heartmarshall/petmemorial-backend/internal/config"
)

// RateLimiter keeps one token bucket per client IP. A client may burst up to
// cfg.Requests and then refills at cfg.Requests per cfg.Window.
type RateLimiter struct {
	clients *cache.Cache // client key -> *rate.Limiter
	mu      sync.Mutex
	limit   rate.Limit
	burst   int
	now     func() time.Time

	stop     chan struct{}
	stopOnce sync.Once
}

// NewRateLimiter creates the limiter and starts evicting buckets idle for a
// whole window every cfg.CleanupPeriod. Call Stop on shutdown.
func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	rl := &RateLimiter{
		// An idle bucket has refilled after one window, so it can be dropped.
		clients: cache.New(cfg.Window, 0),
		limit:   rate.Every(cfg.Window / time.Duration(cfg.Requests)),
		burst:   cfg.Requests,
		now:     time.Now,
		stop:    make(chan struct{}),
	}
	if cfg.CleanupPeriod > 0 {
		go rl.evictLoop(cfg.CleanupPeriod)
	}
	return rl
}

// Stop ends background eviction. Safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

// Limit rejects clients over budget with 429 RATE_LIMITED and a Retry-After
// header saying when the next token arrives.
func (rl *RateLimiter) Limit() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if wait := rl.reserve(clientKey(r)); wait > 0 {
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
				writeError(w, http.StatusTooManyRequests, CodeRateLimited, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// reserve takes a token for key and returns zero, or returns how long the
// client has to wait. A refused reservation is cancelled so it costs nothing.
func (rl *RateLimiter) reserve(key string) time.Duration {
	now := rl.now()
	res := rl.limiterFor(key).ReserveN(now, 1)
	if !res.OK() {
		return time.Duration(math.MaxInt64)
	}
	wait := res.DelayFrom(now)
	if wait > 0 {
		res.CancelAt(now)
	}
	return wait
}

func (rl *RateLimiter) limiterFor(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	l, ok := rl.clients.Get(key)
	if !ok {
		l = rate.NewLimiter(rl.limit, rl.burst)
	}
	// Re-setting slides the idle expiry forward.
	rl.clients.SetDefault(key, l)
	return l.(*rate.Limiter)
}

func (rl *RateLimiter) evictLoop(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.clients.DeleteExpired()
		}
	}
}

// clientKey is the remote IP without the port, so one client reconnecting
// on fresh ports shares a single bucket.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
