package middlewares

import (
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"necessitous-service/internal/pkg/exceptions"
	"necessitous-service/internal/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RateLimiter allows burst requests per IP, refilled one every per. An IP
// that runs dry is blocked for blockTime.
type RateLimiter struct {
	visitors  map[string]*visitor
	blocked   map[string]time.Time
	mu        sync.Mutex
	requests  int
	per       time.Duration
	blockTime time.Duration
	lastSweep time.Time
	log       *zap.Logger
	now       func() time.Time
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewRateLimiter(burst int, per, blockTime time.Duration, logger *zap.Logger) *RateLimiter {
	return &RateLimiter{
		visitors:  make(map[string]*visitor),
		blocked:   make(map[string]time.Time),
		requests:  burst,
		per:       per,
		blockTime: blockTime,
		log:       logger,
		now:       time.Now,
	}
}

func (r *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ip, _, err := net.SplitHostPort(req.RemoteAddr)
		if err != nil {
			ip = req.RemoteAddr
		}

		if !r.allow(ip) {
			utils.BuildErrorResponse(r.log, w, exceptions.ErrTooManyRequests(errors.New(ip)))
			return
		}

		next.ServeHTTP(w, req)
	})
}

func (r *RateLimiter) allow(ip string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.sweep(now)

	if blockedUntil, found := r.blocked[ip]; found {
		if now.Before(blockedUntil) {
			return false
		}
		delete(r.blocked, ip)
		delete(r.visitors, ip)
	}

	v, exists := r.visitors[ip]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(rate.Every(r.per), r.requests)}
		r.visitors[ip] = v
	}
	v.lastSeen = now

	if !v.limiter.AllowN(now, 1) {
		r.blocked[ip] = now.Add(r.blockTime)
		return false
	}
	return true
}

// sweep drops visitors idle long enough for their bucket to be full again,
// and blocks that have run out. It runs at most once per refill period.
func (r *RateLimiter) sweep(now time.Time) {
	idleAfter := r.per * time.Duration(r.requests)
	if now.Sub(r.lastSweep) < idleAfter {
		return
	}
	r.lastSweep = now

	for ip, v := range r.visitors {
		if now.Sub(v.lastSeen) >= idleAfter {
			delete(r.visitors, ip)
		}
	}
	for ip, blockedUntil := range r.blocked {
		if !now.Before(blockedUntil) {
			delete(r.blocked, ip)
		}
	}
}
