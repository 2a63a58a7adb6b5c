// internal/middleware/rate_limit.go
package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// staleAfter is how long an idle client keeps its bucket before eviction.
const staleAfter = 5 * time.Minute

type clientBucket struct {
	limiter *rate.Limiter
	seen    time.Time
}

// IPRateLimiter hands out one token bucket per client IP and evicts buckets
// that have gone quiet.
type IPRateLimiter struct {
	mu      sync.Mutex
	clients map[string]*clientBucket
	limit   rate.Limit
	burst   int
}

func NewIPRateLimiter(limit rate.Limit, burst int) *IPRateLimiter {
	l := &IPRateLimiter{
		clients: make(map[string]*clientBucket),
		limit:   limit,
		burst:   burst,
	}
	go l.evictStale()
	return l
}

func (l *IPRateLimiter) evictStale() {
	ticker := time.NewTicker(time.Minute)
	for range ticker.C {
		l.mu.Lock()
		for ip, c := range l.clients {
			if time.Since(c.seen) > staleAfter {
				delete(l.clients, ip)
			}
		}
		l.mu.Unlock()
	}
}

func (l *IPRateLimiter) bucketFor(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	c, ok := l.clients[ip]
	if !ok {
		c = &clientBucket{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[ip] = c
	}
	c.seen = time.Now()
	return c.limiter
}

func (l *IPRateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.bucketFor(c.ClientIP()).Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many requests",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// Three tiers: a general cap on API traffic, a tight allowance on credential
// endpoints, and a slower one on avatar and passport image uploads.
var (
	generalLimiter = NewIPRateLimiter(rate.Limit(10), 20)
	authLimiter    = NewIPRateLimiter(rate.Every(10*time.Second), 6)
	uploadLimiter  = NewIPRateLimiter(rate.Every(5*time.Second), 4)
)

func GeneralRateLimit() gin.HandlerFunc {
	return generalLimiter.Handler()
}

func AuthRateLimit() gin.HandlerFunc {
	return authLimiter.Handler()
}

func UploadRateLimit() gin.HandlerFunc {
	return uploadLimiter.Handler()
}
