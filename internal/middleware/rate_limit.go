package middleware

import (
	"net/http"
	"sync"

	"go-salary/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type IPRateLimiter struct {
	ips map[string]*rate.Limiter
	mu  *sync.RWMutex
	r   rate.Limit // jumlah request per detik
	b   int        // burst (kapasitas kantong)
}

func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	return &IPRateLimiter{
		ips: make(map[string]*rate.Limiter),
		mu:  &sync.RWMutex{},
		r:   r,
		b:   b,
	}
}

func (i *IPRateLimiter) GetLimiter(key string) *rate.Limiter {
	i.mu.Lock()
	defer i.mu.Unlock()

	limiter, exists := i.ips[key]
	if !exists {
		limiter = rate.NewLimiter(i.r, i.b)
		i.ips[key] = limiter
	}

	return limiter
}

// RejectFunc writes the response for a throttled request.
type RejectFunc func(c *gin.Context, err error)

// RateLimitByIP: r = request per detik, b = burst. A nil reject answers
// 429 directly.
func RateLimitByIP(r rate.Limit, b int, reject RejectFunc) gin.HandlerFunc {
	limiter := NewIPRateLimiter(r, b)
	return func(c *gin.Context) {
		if limiter.GetLimiter(c.ClientIP()).Allow() {
			c.Next()
			return
		}

		if reject == nil {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"message": apperror.ErrTooManyRequests.Message})
			return
		}
		reject(c, apperror.ErrTooManyRequests)
		c.Abort()
	}
}
