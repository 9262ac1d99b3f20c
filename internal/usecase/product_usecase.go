package usecase

import (
	"context"

	"zakaz/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateProductInput defines the data required to list a product in the caller's shop.
type CreateProductInput struct {
	CategoryID  uuid.UUID       `validate:"required"`
	Name        string          `validate:"required,min=2,max=200"`
	Description *string         `validate:"omitempty,max=2000"`
	Price       decimal.Decimal // must be positive
	ImageURL    *string         `validate:"omitempty,url"`
	Quantity    int             `validate:"gte=0"`
	IsAvailable *bool
}

// UpdateProductInput carries the fields to change. Nil fields are left as they are.
type UpdateProductInput struct {
	CategoryID  *uuid.UUID
	Name        *string          `validate:"omitempty,min=2,max=200"`
	Description *string          `validate:"omitempty,max=2000"`
	Price       *decimal.Decimal // must be positive when set
	ImageURL    *string          `validate:"omitempty,url"`
	IsAvailable *bool
}

// ProductQuery filters the public product listing.
type ProductQuery struct {
	ShopID     *uuid.UUID
	CategoryID *uuid.UUID
}

// ProductUsecase defines catalog operations.
type ProductUsecase interface {
	CreateProduct(ctx context.Context, ownerID uuid.UUID, input *CreateProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, ownerID, productID uuid.UUID, input *UpdateProductInput) (*entity.Product, error)
	GetProducts(ctx context.Context, query ProductQuery) ([]*entity.Product, error)
	GetCategories(ctx context.Context) ([]*entity.Category, error)
}
