// Package cache holds the Redis client and the read-through caches built on it.
package cache

import (
	"context"
	"log/slog"
	"time"

	"zakaz/config"
	"zakaz/internal/domain/lifecycle"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// ErrMiss is returned by a Store when the key holds no value.
var ErrMiss = errors.New("cache miss")

// Store is the byte-level cache the decorators read through.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

type redisStore struct {
	client *redis.Client
}

// NewRedisStore adapts client to Store.
func NewRedisStore(client *redis.Client) Store {
	return &redisStore{client: client}
}

func (s *redisStore) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, errors.Wrapf(err, "redis get %s", key)
	}

	return value, nil
}

func (s *redisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return errors.Wrapf(s.client.Set(ctx, key, value, ttl).Err(), "redis set %s", key)
}

// Params defines the dependencies of the Redis client.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewRedisClient connects to the configured Redis. It returns a nil client when
// redis.addr is empty; consumers then run without cache and rate limiting.
func NewRedisClient(params Params) *redis.Client {
	cfg := params.Config.Redis
	if !cfg.Enabled() {
		params.Logger.Info("Redis not configured, cache and rate limiting disabled")

		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}
			params.Logger.Info("Redis connected", slog.String("addr", cfg.Addr))

			return nil
		},
		OnStop: func(_ context.Context) error {
			return errors.WithStack(client.Close())
		},
	})

	return client
}
