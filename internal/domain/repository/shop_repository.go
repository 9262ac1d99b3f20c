package repository

import (
	"context"
	"errors"

	"zakaz/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrShopNotFound is returned when a shop is not found.
var ErrShopNotFound = errors.New("shop not found")

// ShopRepository defines persistence operations for shops.
type ShopRepository interface {
	Create(ctx context.Context, shop *entity.Shop) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error)

	// FindByIDForUpdate locks the shop row. Rating writes use it to serialize per shop.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Shop, error)

	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Shop, error)

	// ListActive returns active shops whose owner account is active, newest first.
	ListActive(ctx context.Context) ([]*entity.Shop, error)

	UpdateRating(ctx context.Context, id uuid.UUID, rating float64) error
}
