package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "zakaz/internal/delivery/context"
	"zakaz/internal/domain/entity"
	domainerrors "zakaz/internal/domain/errors"
	"zakaz/internal/domain/repository"
	"zakaz/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// productService implements the ProductUsecase interface.
type productService struct {
	shopRepo     repository.ShopRepository
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	logger       *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ShopRepo     repository.ShopRepository
	ProductRepo  repository.ProductRepository
	CategoryRepo repository.CategoryRepository
	Logger       *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		shopRepo:     params.ShopRepo,
		productRepo:  params.ProductRepo,
		categoryRepo: params.CategoryRepo,
		logger:       params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateProduct lists a product in the shop owned by ownerID.
func (srv *productService) CreateProduct(ctx context.Context, ownerID uuid.UUID, input *usecase.CreateProductInput) (*entity.Product, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	if !input.Price.IsPositive() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("price must be positive")
	}

	shop, err := srv.ownedShop(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if err := srv.ensureCategory(ctx, input.CategoryID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	product := &entity.Product{
		ID:          uuid.New(),
		ShopID:      shop.ID,
		CategoryID:  input.CategoryID,
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		Price:       input.Price.Round(entity.MoneyPlaces),
		ImageURL:    input.ImageURL,
		Quantity:    input.Quantity,
		IsAvailable: input.IsAvailable == nil || *input.IsAvailable,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created", slog.String("product_id", product.ID.String()), slog.String("shop_id", shop.ID.String()))

	return product, nil
}

// UpdateProduct edits catalog fields of a product in the caller's shop. Stock is never touched here.
func (srv *productService) UpdateProduct(
	ctx context.Context,
	ownerID, productID uuid.UUID,
	input *usecase.UpdateProductInput,
) (*entity.Product, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	if input.Price != nil && !input.Price.IsPositive() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("price must be positive")
	}

	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, mapNotFound(err, repository.ErrProductNotFound, domainerrors.ErrProductNotFound, "failed to find product")
	}

	shop, err := srv.shopRepo.FindByID(ctx, product.ShopID)
	if err != nil {
		return nil, mapNotFound(err, repository.ErrShopNotFound, domainerrors.ErrShopNotFound, "failed to find shop")
	}
	if !shop.IsOwnedBy(ownerID) {
		return nil, domainerrors.ErrForbidden.WithDetails("product belongs to another shop")
	}

	if input.CategoryID != nil {
		if err := srv.ensureCategory(ctx, *input.CategoryID); err != nil {
			return nil, err
		}
		product.CategoryID = *input.CategoryID
	}
	if input.Name != nil {
		product.Name = strings.TrimSpace(*input.Name)
	}
	if input.Description != nil {
		product.Description = input.Description
	}
	if input.Price != nil {
		product.Price = input.Price.Round(entity.MoneyPlaces)
	}
	if input.ImageURL != nil {
		product.ImageURL = input.ImageURL
	}
	if input.IsAvailable != nil {
		product.IsAvailable = *input.IsAvailable
	}
	product.UpdatedAt = time.Now().UTC()

	if err := srv.productRepo.Update(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}

	return product, nil
}

// GetProducts lists available products, optionally narrowed to a shop or category.
func (srv *productService) GetProducts(ctx context.Context, query usecase.ProductQuery) ([]*entity.Product, error) {
	products, err := srv.productRepo.ListAvailable(ctx, repository.ProductFilter{
		ShopID:     query.ShopID,
		CategoryID: query.CategoryID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// GetCategories lists all product categories.
func (srv *productService) GetCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.categoryRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

func (srv *productService) ownedShop(ctx context.Context, ownerID uuid.UUID) (*entity.Shop, error) {
	shop, err := srv.shopRepo.FindByUserID(ctx, ownerID)
	if errors.Is(err, repository.ErrShopNotFound) {
		return nil, domainerrors.ErrForbidden.WithDetails("caller has no shop")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find shop")
	}

	return shop, nil
}

func (srv *productService) ensureCategory(ctx context.Context, categoryID uuid.UUID) error {
	_, err := srv.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		return mapNotFound(err, repository.ErrCategoryNotFound, domainerrors.ErrCategoryNotFound, "failed to find category")
	}

	return nil
}
