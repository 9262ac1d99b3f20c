package impl

import (
	"context"
	"testing"

	"zakaz/internal/domain/entity"
	domainerrors "zakaz/internal/domain/errors"
	"zakaz/internal/domain/repository"
	mockRepo "zakaz/internal/mocks/repository"
	"zakaz/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type productServiceFixture struct {
	service      usecase.ProductUsecase
	shopRepo     *mockRepo.MockShopRepository
	productRepo  *mockRepo.MockProductRepository
	categoryRepo *mockRepo.MockCategoryRepository
}

func createTestProductService(t *testing.T) *productServiceFixture {
	fx := &productServiceFixture{
		shopRepo:     mockRepo.NewMockShopRepository(t),
		productRepo:  mockRepo.NewMockProductRepository(t),
		categoryRepo: mockRepo.NewMockCategoryRepository(t),
	}
	fx.service = NewProductService(ProductServiceParams{
		ShopRepo:     fx.shopRepo,
		ProductRepo:  fx.productRepo,
		CategoryRepo: fx.categoryRepo,
		Logger:       newDiscardLogger(),
	})

	return fx
}

func TestProductService_CreateProduct(t *testing.T) {
	fx := createTestProductService(t)
	owner := newTestUser(entity.RoleShop)
	shop := newTestShop(owner)
	categoryID := uuid.New()

	fx.shopRepo.EXPECT().FindByUserID(mock.Anything, owner.ID).Return(shop, nil)
	fx.categoryRepo.EXPECT().FindByID(mock.Anything, categoryID).Return(&entity.Category{ID: categoryID, Name: "Non"}, nil)
	fx.productRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Product")).Return(nil)

	product, err := fx.service.CreateProduct(context.Background(), owner.ID, &usecase.CreateProductInput{
		CategoryID: categoryID,
		Name:       "Patir non",
		Price:      decimal.RequireFromString("7999.999"),
		Quantity:   20,
	})
	require.NoError(t, err)
	assert.Equal(t, shop.ID, product.ShopID)
	assert.Equal(t, "8000.00", product.Price.StringFixed(entity.MoneyPlaces))
	assert.True(t, product.IsAvailable)
}

func TestProductService_CreateProduct_Rejections(t *testing.T) {
	t.Run("non-positive price", func(t *testing.T) {
		fx := createTestProductService(t)

		_, err := fx.service.CreateProduct(context.Background(), uuid.New(), &usecase.CreateProductInput{
			CategoryID: uuid.New(),
			Name:       "Patir non",
			Price:      decimal.Zero,
		})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("negative stock", func(t *testing.T) {
		fx := createTestProductService(t)

		_, err := fx.service.CreateProduct(context.Background(), uuid.New(), &usecase.CreateProductInput{
			CategoryID: uuid.New(),
			Name:       "Patir non",
			Price:      decimal.NewFromInt(5),
			Quantity:   -1,
		})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("caller has no shop", func(t *testing.T) {
		fx := createTestProductService(t)
		ownerID := uuid.New()
		fx.shopRepo.EXPECT().FindByUserID(mock.Anything, ownerID).Return(nil, repository.ErrShopNotFound)

		_, err := fx.service.CreateProduct(context.Background(), ownerID, &usecase.CreateProductInput{
			CategoryID: uuid.New(),
			Name:       "Patir non",
			Price:      decimal.NewFromInt(5),
		})
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("unknown category", func(t *testing.T) {
		fx := createTestProductService(t)
		owner := newTestUser(entity.RoleShop)
		categoryID := uuid.New()
		fx.shopRepo.EXPECT().FindByUserID(mock.Anything, owner.ID).Return(newTestShop(owner), nil)
		fx.categoryRepo.EXPECT().FindByID(mock.Anything, categoryID).Return(nil, repository.ErrCategoryNotFound)

		_, err := fx.service.CreateProduct(context.Background(), owner.ID, &usecase.CreateProductInput{
			CategoryID: categoryID,
			Name:       "Patir non",
			Price:      decimal.NewFromInt(5),
		})
		assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
	})
}

func TestProductService_UpdateProduct(t *testing.T) {
	fx := createTestProductService(t)
	owner := newTestUser(entity.RoleShop)
	shop := newTestShop(owner)
	product := newTestProduct(shop, "10.00", 7)
	price := decimal.RequireFromString("12.50")
	off := false

	fx.productRepo.EXPECT().FindByID(mock.Anything, product.ID).Return(product, nil)
	fx.shopRepo.EXPECT().FindByID(mock.Anything, shop.ID).Return(shop, nil)
	fx.productRepo.EXPECT().Update(mock.Anything, product).Return(nil)

	updated, err := fx.service.UpdateProduct(context.Background(), owner.ID, product.ID, &usecase.UpdateProductInput{
		Price:       &price,
		IsAvailable: &off,
	})
	require.NoError(t, err)
	assert.Equal(t, "12.50", updated.Price.StringFixed(entity.MoneyPlaces))
	assert.False(t, updated.IsAvailable)
	assert.Equal(t, 7, updated.Quantity)
}

func TestProductService_UpdateProduct_NotOwner(t *testing.T) {
	fx := createTestProductService(t)
	shop := newTestShop(newTestUser(entity.RoleShop))
	product := newTestProduct(shop, "10.00", 7)

	fx.productRepo.EXPECT().FindByID(mock.Anything, product.ID).Return(product, nil)
	fx.shopRepo.EXPECT().FindByID(mock.Anything, shop.ID).Return(shop, nil)

	_, err := fx.service.UpdateProduct(context.Background(), uuid.New(), product.ID, &usecase.UpdateProductInput{})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	fx.productRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestProductService_GetProducts_PassesFilter(t *testing.T) {
	fx := createTestProductService(t)
	shopID := uuid.New()

	fx.productRepo.EXPECT().
		ListAvailable(mock.Anything, repository.ProductFilter{ShopID: &shopID}).
		Return([]*entity.Product{{ID: uuid.New(), ShopID: shopID}}, nil)

	products, err := fx.service.GetProducts(context.Background(), usecase.ProductQuery{ShopID: &shopID})
	require.NoError(t, err)
	assert.Len(t, products, 1)
}
