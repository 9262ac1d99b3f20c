package usecase

import (
	"context"

	"zakaz/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateShopInput defines the data required to open a shop.
type CreateShopInput struct {
	Name        string  `validate:"required,min=2,max=100"`
	Description *string `validate:"omitempty,max=1000"`
	Address     string  `validate:"required,min=5"`
	Phone       string  `validate:"required,uzphone"`
	ImageURL    *string `validate:"omitempty,url"`
}

// ShopUsecase defines shop management operations.
type ShopUsecase interface {
	// CreateShop opens the single shop a shop-role user may own.
	CreateShop(ctx context.Context, ownerID uuid.UUID, input *CreateShopInput) (*entity.Shop, error)
	GetShops(ctx context.Context) ([]*entity.Shop, error)
	GetShop(ctx context.Context, shopID uuid.UUID) (*entity.Shop, error)
}
