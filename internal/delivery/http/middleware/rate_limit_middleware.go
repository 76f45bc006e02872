package middleware

import (
	"net"
	"net/http"
	"time"

	"clinic-booking-api/config"
	"clinic-booking-api/pkg/response"

	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

const defaultLimiterIdleTTL = 10 * time.Minute

// RateLimiter keeps one token bucket per client IP. Buckets of clients that
// stay quiet for IdleTTL are evicted.
type RateLimiter struct {
	limiters *cache.Cache
	rate     rate.Limit
	burst    int
}

func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	idle := cfg.IdleTTL
	if idle <= 0 {
		idle = defaultLimiterIdleTTL
	}
	return &RateLimiter{
		limiters: cache.New(idle, idle),
		rate:     rate.Limit(cfg.RPS),
		burst:    cfg.Burst,
	}
}

func (rl *RateLimiter) limiter(key string) *rate.Limiter {
	if cached, found := rl.limiters.Get(key); found {
		l := cached.(*rate.Limiter)
		// Refresh the idle expiry on every hit
		rl.limiters.SetDefault(key, l)
		return l
	}

	l := rate.NewLimiter(rl.rate, rl.burst)
	if err := rl.limiters.Add(key, l, cache.DefaultExpiration); err != nil {
		// Another request for the same client won the race
		if cached, found := rl.limiters.Get(key); found {
			return cached.(*rate.Limiter)
		}
	}
	return l
}

func (rl *RateLimiter) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.limiter(clientIP(r)).Allow() {
			response.TooManyRequests(w, "Request was throttled")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
