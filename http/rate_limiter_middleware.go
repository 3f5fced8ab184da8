package http

import (
	"net"
	"net/http"

	"go.uber.org/zap"

	"loan-offer/metrics"
)

func RateLimitMiddleware(limiter *RateLimiter, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}

			if !limiter.Allow(ip) {
				metrics.RateLimited.Inc()
				logger.Debug("rate limit exceeded",
					zap.String("op", "http.RateLimitMiddleware"),
					zap.String("client", ip),
					zap.String("path", r.URL.Path),
				)
				writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
