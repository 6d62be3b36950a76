package middlewares

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"
)

// CreateRateLimiters returns the global per-IP limiter and the stricter one
// guarding endpoints that send requests to the backend.
func (m *Middlewares) CreateRateLimiters() (globalLimiter, submitLimiter func(next http.Handler) http.Handler) {
	globalLimiter = httprate.LimitByIP(m.InternalConfig.App.MaxRequests, time.Second)

	perMinute := m.InternalConfig.App.SubmitRateLimitPerMinute
	if perMinute <= 0 {
		perMinute = 1
	}
	submit := NewRateLimiter(
		perMinute,
		time.Minute/time.Duration(perMinute),
		time.Duration(m.InternalConfig.App.SubmitBlockTimeInMinutes)*time.Minute,
		m.Log,
	)
	return globalLimiter, submit.Limit
}
