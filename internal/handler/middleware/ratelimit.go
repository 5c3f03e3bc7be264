package middleware

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"halisaha-api/internal/domain/user"
	"halisaha-api/internal/handler/httperr"
	"halisaha-api/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const rateLimitPrefix = "rl"

var errRateLimited = errors.New("rate limit exceeded")

// LimitRule describes one fixed-window limiter. Key and Limit see the request after any
// earlier middleware, so per-user rules must be mounted behind RequireAuth.
type LimitRule struct {
	Name    string
	Window  time.Duration
	Limit   func(c *gin.Context) int64
	Key     func(c *gin.Context) string
	Message string
}

type RateLimiter struct {
	rdb     *redis.Client
	enabled bool
	cfg     config.RateLimitConfig
	logger  *slog.Logger
}

// NewRateLimiter accepts a nil client; every limiter then lets requests through.
func NewRateLimiter(rdb *redis.Client, cfg config.RateLimitConfig, logger *slog.Logger) *RateLimiter {
	return &RateLimiter{
		rdb:     rdb,
		enabled: cfg.Enabled && rdb != nil,
		cfg:     cfg,
		logger:  logger,
	}
}

func (l *RateLimiter) Global() gin.HandlerFunc {
	return l.Handler(LimitRule{
		Name:    "global",
		Window:  l.cfg.GlobalWindow,
		Limit:   fixedLimit(l.cfg.GlobalMax),
		Key:     clientIPKey,
		Message: "Çok fazla istek yaptınız. Lütfen bir süre sonra tekrar deneyin.",
	})
}

func (l *RateLimiter) Auth() gin.HandlerFunc {
	return l.Handler(LimitRule{
		Name:    "auth",
		Window:  l.cfg.AuthWindow,
		Limit:   fixedLimit(l.cfg.AuthMax),
		Key:     clientIPKey,
		Message: "Çok fazla oturum açma denemesi. Lütfen 5 dakika sonra tekrar deneyin.",
	})
}

// Reservation is keyed by user and tiered by role.
func (l *RateLimiter) Reservation() gin.HandlerFunc {
	return l.Handler(LimitRule{
		Name:   "reservation",
		Window: l.cfg.ReservationWindow,
		Limit: func(c *gin.Context) int64 {
			role, _ := GetUserRole(c)
			switch role {
			case user.RoleAdmin:
				return l.cfg.ReservationAdmin
			case user.RoleOwner:
				return l.cfg.ReservationOwner
			default:
				return l.cfg.ReservationUser
			}
		},
		Key: func(c *gin.Context) string {
			if id, ok := GetUserID(c); ok {
				return "user:" + id.String()
			}
			return clientIPKey(c)
		},
		Message: "Çok fazla rezervasyon isteği yaptınız. Lütfen bir süre sonra tekrar deneyin.",
	})
}

func (l *RateLimiter) Handler(rule LimitRule) gin.HandlerFunc {
	if !l.enabled {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		limit := rule.Limit(c)
		key := rateLimitPrefix + ":" + rule.Name + ":" + rule.Key(c)

		count, ttl, err := l.hit(c.Request.Context(), key, rule.Window)
		if err != nil {
			l.logger.Warn("rate limiter unavailable, letting request through",
				slog.String("limiter", rule.Name),
				slog.String("error", err.Error()))
			c.Next()
			return
		}

		resetSecs := int(math.Ceil(ttl.Seconds()))
		c.Header("X-RateLimit-Limit", strconv.FormatInt(limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(max(limit-count, 0), 10))
		c.Header("X-RateLimit-Reset", strconv.Itoa(resetSecs))

		if count > limit {
			l.logger.Warn("rate limit exceeded",
				slog.String("limiter", rule.Name),
				slog.String("method", c.Request.Method),
				slog.String("path", c.Request.URL.Path),
				slog.String("client_ip", c.ClientIP()))
			c.Header("Retry-After", strconv.Itoa(resetSecs))
			httperr.AbortWithError(c, http.StatusTooManyRequests, errRateLimited, rule.Message, nil)
			return
		}
		c.Next()
	}
}

// hit counts one request in the current window and returns the count and the time left.
func (l *RateLimiter) hit(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	var (
		incr *redis.IntCmd
		pttl *redis.DurationCmd
	)
	_, err := l.rdb.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.ExpireNX(ctx, key, window)
		pttl = pipe.PTTL(ctx, key)
		return nil
	})
	if err != nil {
		return 0, 0, err
	}

	ttl := pttl.Val()
	if ttl <= 0 {
		ttl = window
	}
	return incr.Val(), ttl, nil
}

func fixedLimit(n int64) func(*gin.Context) int64 {
	return func(*gin.Context) int64 { return n }
}

func clientIPKey(c *gin.Context) string {
	return "ip:" + c.ClientIP()
}
