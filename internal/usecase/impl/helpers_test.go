package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"zakaz/internal/domain/entity"
	"zakaz/internal/domain/repository"
	mockRepo "zakaz/internal/mocks/repository"
	mockSvc "zakaz/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// txFixture wires a transaction manager mock that runs the callback against a
// factory of repository mocks, returning whatever the callback returns.
type txFixture struct {
	txManager        *mockRepo.MockTransactionManager
	factory          *mockRepo.MockRepositoryFactory
	userRepo         *mockRepo.MockUserRepository
	shopRepo         *mockRepo.MockShopRepository
	productRepo      *mockRepo.MockProductRepository
	orderRepo        *mockRepo.MockOrderRepository
	ratingRepo       *mockRepo.MockRatingRepository
	notificationRepo *mockRepo.MockNotificationRepository
	publisher        *mockSvc.MockEventPublisher
}

func newTxFixture(t *testing.T) *txFixture {
	t.Helper()

	f := &txFixture{
		txManager:        mockRepo.NewMockTransactionManager(t),
		factory:          mockRepo.NewMockRepositoryFactory(t),
		userRepo:         mockRepo.NewMockUserRepository(t),
		shopRepo:         mockRepo.NewMockShopRepository(t),
		productRepo:      mockRepo.NewMockProductRepository(t),
		orderRepo:        mockRepo.NewMockOrderRepository(t),
		ratingRepo:       mockRepo.NewMockRatingRepository(t),
		notificationRepo: mockRepo.NewMockNotificationRepository(t),
		publisher:        mockSvc.NewMockEventPublisher(t),
	}

	f.factory.EXPECT().UserRepo().Return(f.userRepo).Maybe()
	f.factory.EXPECT().ShopRepo().Return(f.shopRepo).Maybe()
	f.factory.EXPECT().ProductRepo().Return(f.productRepo).Maybe()
	f.factory.EXPECT().OrderRepo().Return(f.orderRepo).Maybe()
	f.factory.EXPECT().RatingRepo().Return(f.ratingRepo).Maybe()
	f.factory.EXPECT().NotificationRepo().Return(f.notificationRepo).Maybe()

	f.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.factory)
		}).
		Maybe()

	return f
}

// expectPublished accepts any number of notification events.
func (f *txFixture) expectPublished() {
	f.publisher.EXPECT().PublishNotificationEvent(mock.Anything, mock.Anything).Return(nil).Maybe()
}

func notificationFor(userID uuid.UUID, notificationType entity.NotificationType) interface{} {
	return mock.MatchedBy(func(n *entity.Notification) bool {
		return n.UserID == userID && n.Type == notificationType
	})
}

func newTestUser(role entity.Role) *entity.User {
	return &entity.User{
		ID:       uuid.New(),
		Email:    uuid.NewString() + "@example.uz",
		Phone:    "+998901234567",
		Role:     role,
		FullName: "Test " + role.String(),
		IsActive: true,
	}
}

func newTestShop(owner *entity.User) *entity.Shop {
	return &entity.Shop{
		ID:       uuid.New(),
		UserID:   owner.ID,
		Name:     "Test shop",
		Address:  "Toshkent, Chilonzor 1",
		Phone:    "+998901112233",
		IsActive: true,
	}
}

func newTestProduct(shop *entity.Shop, price string, stock int) *entity.Product {
	return &entity.Product{
		ID:          uuid.New(),
		ShopID:      shop.ID,
		CategoryID:  uuid.New(),
		Name:        "Product " + price,
		Price:       decimal.RequireFromString(price),
		Quantity:    stock,
		IsAvailable: true,
	}
}
