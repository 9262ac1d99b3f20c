package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"zakaz/internal/domain/entity"
	"zakaz/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	categoryListKey   = "categories:all"
	categoryKeyPrefix = "category:"
)

// cachedCategoryRepository reads categories through a Store. Cache failures are
// logged and fall back to the primary repository; not-found results are never cached.
type cachedCategoryRepository struct {
	primary repository.CategoryRepository
	store   Store
	ttl     time.Duration
	logger  *slog.Logger
}

// NewCachedCategoryRepository decorates primary with a read-through cache.
func NewCachedCategoryRepository(primary repository.CategoryRepository, store Store, ttl time.Duration, logger *slog.Logger) repository.CategoryRepository {
	return &cachedCategoryRepository{
		primary: primary,
		store:   store,
		ttl:     ttl,
		logger:  logger,
	}
}

func (r *cachedCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	key := categoryKeyPrefix + id.String()

	var category entity.Category
	if r.load(ctx, key, &category) {
		return &category, nil
	}

	found, err := r.primary.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	r.save(ctx, key, found)

	return found, nil
}

func (r *cachedCategoryRepository) List(ctx context.Context) ([]*entity.Category, error) {
	var categories []*entity.Category
	if r.load(ctx, categoryListKey, &categories) {
		return categories, nil
	}

	categories, err := r.primary.List(ctx)
	if err != nil {
		return nil, err
	}
	r.save(ctx, categoryListKey, categories)

	return categories, nil
}

// load reports whether key held a decodable value.
func (r *cachedCategoryRepository) load(ctx context.Context, key string, dest any) bool {
	data, err := r.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrMiss) {
			r.logger.WarnContext(ctx, "Category cache read failed", slog.String("key", key), slog.Any("error", err))
		}

		return false
	}

	if err := json.Unmarshal(data, dest); err != nil {
		r.logger.WarnContext(ctx, "Category cache entry is corrupt", slog.String("key", key), slog.Any("error", err))

		return false
	}

	return true
}

func (r *cachedCategoryRepository) save(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}

	if err := r.store.Set(ctx, key, data, r.ttl); err != nil {
		r.logger.WarnContext(ctx, "Category cache write failed", slog.String("key", key), slog.Any("error", err))
	}
}
