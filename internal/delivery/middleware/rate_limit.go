package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"zakaz/config"
	deliverycontext "zakaz/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const rateLimitKeyPrefix = "rate_limit:"

// RateCounter counts hits of key within a fixed window starting at the first hit.
type RateCounter interface {
	Hit(ctx context.Context, key string, window time.Duration) (int64, error)
}

type redisRateCounter struct {
	client *redis.Client
}

// NewRedisRateCounter counts with INCR and starts the window expiry on the first hit.
func NewRedisRateCounter(client *redis.Client) RateCounter {
	return &redisRateCounter{client: client}
}

func (r *redisRateCounter) Hit(ctx context.Context, key string, window time.Duration) (int64, error) {
	current, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, errors.Wrap(err, "redis incr")
	}
	if current == 1 {
		if err := r.client.Expire(ctx, key, window).Err(); err != nil {
			return current, errors.Wrap(err, "redis expire")
		}
	}

	return current, nil
}

// RateLimitMiddleware rejects clients that exceed rateLimit.limit requests per rateLimit.window.
type RateLimitMiddleware struct {
	counter RateCounter
	limit   int64
	window  time.Duration
	logger  *slog.Logger
}

// NewRateLimitMiddleware returns nil when rate limiting is disabled or Redis is not configured.
func NewRateLimitMiddleware(client *redis.Client, cfg *config.Config, logger *slog.Logger) *RateLimitMiddleware {
	if client == nil || cfg.RateLimit == nil || !cfg.RateLimit.Enabled {
		return nil
	}

	return newRateLimitMiddleware(NewRedisRateCounter(client), cfg.RateLimit.Limit, cfg.RateLimit.Window, logger)
}

func newRateLimitMiddleware(counter RateCounter, limit int64, window time.Duration, logger *slog.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		counter: counter,
		limit:   limit,
		window:  window,
		logger:  logger,
	}
}

// Handle counts the request against the client IP. When the counter is unreachable
// the request is let through and the failure logged.
func (m *RateLimitMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		current, err := m.counter.Hit(ctx, rateLimitKeyPrefix+c.RealIP(), m.window)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).WarnContext(ctx, "Rate limiter unavailable", slog.Any("error", err))

			return next(c)
		}

		remaining := max(m.limit-current, 0)
		header := c.Response().Header()
		header.Set("X-RateLimit-Limit", strconv.FormatInt(m.limit, 10))
		header.Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if current > m.limit {
			header.Set("Retry-After", strconv.Itoa(int(m.window.Seconds())))

			return echo.NewHTTPError(http.StatusTooManyRequests, "Juda ko'p so'rov, keyinroq urinib ko'ring")
		}

		return next(c)
	}
}
