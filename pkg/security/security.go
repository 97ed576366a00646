package security

import (
	"math"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	corsAllowMethods  = "GET, POST, PUT, DELETE, OPTIONS"
	corsAllowHeaders  = "Authorization, Content-Type, X-Request-ID"
	corsExposeHeaders = "X-Request-ID"
	corsMaxAge        = "600"
)

// CORS 前端白名单；报告接口全部走 Bearer 头，不需要 Cookie 凭证
func CORS(allowedOrigins []string) gin.HandlerFunc {
	originSet := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		originSet[o] = struct{}{}
	}

	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Add("Vary", "Origin")

		origin := c.GetHeader("Origin")
		if _, ok := originSet[origin]; ok {
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Access-Control-Expose-Headers", corsExposeHeaders)
		}

		if c.Request.Method == http.MethodOptions {
			h.Set("Access-Control-Allow-Methods", corsAllowMethods)
			h.Set("Access-Control-Allow-Headers", corsAllowHeaders)
			h.Set("Access-Control-Max-Age", corsMaxAge)
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// Secure 报告里带有个人成绩，API 响应一律不缓存
func Secure() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "no-referrer")
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			h.Set("Cache-Control", "no-store")
		}
		if c.Request.TLS != nil {
			h.Set("Strict-Transport-Security", "max-age=31536000")
		}

		c.Next()
	}
}

// limiterStore 按客户端 IP 保存令牌桶
type limiterStore struct {
	mu       sync.Mutex
	interval time.Duration
	burst    int
	expiry   time.Duration
	visitors map[string]*visitor
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newLimiterStore(maxRequests int, window time.Duration) *limiterStore {
	if maxRequests < 1 {
		maxRequests = 1
	}
	expiry := window * 2
	if expiry < time.Minute {
		expiry = time.Minute
	}
	return &limiterStore{
		interval: window / time.Duration(maxRequests),
		burst:    maxRequests,
		expiry:   expiry,
		visitors: make(map[string]*visitor),
	}
}

func (s *limiterStore) get(key string, now time.Time) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rate.Every(s.interval), s.burst)}
		s.visitors[key] = v
	}
	v.lastSeen = now
	return v.limiter
}

// sweep 删除长时间没有请求的 IP
func (s *limiterStore) sweep(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, v := range s.visitors {
		if now.Sub(v.lastSeen) > s.expiry {
			delete(s.visitors, key)
		}
	}
}

func (s *limiterStore) size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.visitors)
}

// retryAfter 补充一个令牌所需的秒数，至少 1
func (s *limiterStore) retryAfter() int {
	secs := int(math.Ceil(s.interval.Seconds()))
	if secs < 1 {
		return 1
	}
	return secs
}

// RateLimiter 按 IP 限流；健康检查与指标抓取不计数
func RateLimiter(maxRequests int, window time.Duration, exemptPaths ...string) gin.HandlerFunc {
	store := newLimiterStore(maxRequests, window)
	exempt := make(map[string]struct{}, len(exemptPaths))
	for _, p := range exemptPaths {
		exempt[p] = struct{}{}
	}

	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for now := range ticker.C {
			store.sweep(now)
		}
	}()

	return func(c *gin.Context) {
		if _, ok := exempt[c.Request.URL.Path]; ok {
			c.Next()
			return
		}

		limiter := store.get(c.ClientIP(), time.Now())
		if !limiter.Allow() {
			c.Header("Retry-After", strconv.Itoa(store.retryAfter()))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"code": http.StatusTooManyRequests, "message": "too many requests"})
			return
		}

		c.Next()
	}
}
