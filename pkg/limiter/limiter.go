package limiter

import (
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Limiter wraps a token-bucket rate limiter shared by all requests of a service.
type Limiter struct {
	logger *zap.Logger
	l      *rate.Limiter
}

// New creates a new rate limiter with the given sustained limit and burst size.
func New(logger *zap.Logger, limit, burst int) *Limiter {
	return &Limiter{logger: logger, l: rate.NewLimiter(rate.Limit(limit), burst)}
}

// Limit reports whether the current request must be rejected.
func (l *Limiter) Limit() bool {
	allowed := l.l.Allow()
	l.logger.Debug("Rate limit check",
		zap.Bool("allowed", allowed),
		zap.Float64("limit", float64(l.l.Limit())),
		zap.Int("burst", l.l.Burst()),
	)
	return !allowed
}

// Middleware rejects requests above the configured rate with 429.
func (l *Limiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if l.Limit() {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, req)
	})
}
