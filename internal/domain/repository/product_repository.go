package repository

import (
	"context"
	"errors"

	"zakaz/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrCategoryNotFound is returned when a product category is not found.
	ErrCategoryNotFound = errors.New("category not found")
)

// ProductFilter narrows ListAvailable. Nil fields do not filter.
type ProductFilter struct {
	ShopID     *uuid.UUID
	CategoryID *uuid.UUID
}

// ProductRepository defines persistence operations for products and their stock.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error

	// Update writes the editable catalog fields. Stock and rating are not touched.
	Update(ctx context.Context, product *entity.Product) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindByIDForUpdate locks the product row. Rating writes use it to serialize per product.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindByIDs returns the products that exist among ids, in no particular order.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error)

	// ListAvailable returns available products matching filter, newest first.
	ListAvailable(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)

	// DecrementStock subtracts quantity only if enough stock remains.
	// It reports false when the row was left untouched.
	DecrementStock(ctx context.Context, id uuid.UUID, quantity int) (bool, error)

	UpdateRating(ctx context.Context, id uuid.UUID, rating float64) error
}

// CategoryRepository defines read operations for product categories.
type CategoryRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// List returns all categories ordered by name.
	List(ctx context.Context) ([]*entity.Category, error)
}
