package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	"zakaz/internal/domain/entity"
	domainerrors "zakaz/internal/domain/errors"
	"zakaz/internal/domain/repository"
	"zakaz/internal/domain/service"
	"zakaz/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func newTestOrderService(f *txFixture) usecase.OrderUsecase {
	return NewOrderService(OrderServiceParams{
		TxManager: f.txManager,
		OrderRepo: f.orderRepo,
		UserRepo:  f.userRepo,
		ShopRepo:  f.shopRepo,
		Publisher: f.publisher,
		Logger:    newDiscardLogger(),
	})
}

type orderScenario struct {
	customer *entity.User
	owner    *entity.User
	shop     *entity.Shop
	p1, p2   *entity.Product
}

func newOrderScenario() *orderScenario {
	customer := newTestUser(entity.RoleCustomer)
	owner := newTestUser(entity.RoleShop)
	shop := newTestShop(owner)

	return &orderScenario{
		customer: customer,
		owner:    owner,
		shop:     shop,
		p1:       newTestProduct(shop, "15.50", 10),
		p2:       newTestProduct(shop, "25.00", 4),
	}
}

func (s *orderScenario) input(items ...usecase.OrderItemInput) *usecase.CreateOrderInput {
	return &usecase.CreateOrderInput{
		ShopID:          s.shop.ID,
		Items:           items,
		DeliveryAddress: "Toshkent, Yunusobod 4-kvartal",
		DeliveryPhone:   "+998901234567",
	}
}

func (s *orderScenario) expectCatalog(f *txFixture, ids []uuid.UUID, products ...*entity.Product) {
	f.userRepo.EXPECT().FindByID(mock.Anything, s.customer.ID).Return(s.customer, nil)
	f.shopRepo.EXPECT().FindByID(mock.Anything, s.shop.ID).Return(s.shop, nil)
	f.productRepo.EXPECT().FindByIDs(mock.Anything, ids).Return(products, nil)
}

func TestOrderService_CreateOrder_ComputesTotalAndReservesStock(t *testing.T) {
	f := newTxFixture(t)
	srv := newTestOrderService(f)
	s := newOrderScenario()
	ctx := context.Background()

	s.expectCatalog(f, []uuid.UUID{s.p1.ID, s.p2.ID}, s.p1, s.p2)

	var stored *entity.Order
	f.orderRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) { stored = order }).
		Return(nil)
	f.productRepo.EXPECT().DecrementStock(mock.Anything, s.p1.ID, 2).Return(true, nil)
	f.productRepo.EXPECT().DecrementStock(mock.Anything, s.p2.ID, 1).Return(true, nil)
	f.notificationRepo.EXPECT().
		Create(mock.Anything, notificationFor(s.owner.ID, entity.NotificationTypeNewOrder)).
		Return(nil).
		Once()
	f.publisher.EXPECT().
		PublishNotificationEvent(mock.Anything, mock.MatchedBy(func(e *service.NotificationEvent) bool {
			return e.UserID == s.owner.ID.String() && e.Type == string(entity.NotificationTypeNewOrder) && e.OrderID != ""
		})).
		Return(nil).
		Once()

	order, err := srv.CreateOrder(ctx, s.customer.ID, s.input(
		usecase.OrderItemInput{ProductID: s.p1.ID, Quantity: 2},
		usecase.OrderItemInput{ProductID: s.p2.ID, Quantity: 1},
	))
	require.NoError(t, err)

	assert.Same(t, stored, order)
	assert.Equal(t, "56.00", order.TotalAmount.StringFixed(entity.MoneyPlaces))
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Nil(t, order.CourierID)
	require.Len(t, order.Items, 2)
	assert.Equal(t, "31.00", order.Items[0].TotalPrice.StringFixed(entity.MoneyPlaces))
	assert.Equal(t, "25.00", order.Items[1].TotalPrice.StringFixed(entity.MoneyPlaces))
	for _, item := range order.Items {
		assert.Equal(t, order.ID, item.OrderID)
	}
}

func TestOrderService_CreateOrder_InsufficientStock(t *testing.T) {
	f := newTxFixture(t)
	srv := newTestOrderService(f)
	s := newOrderScenario()

	s.expectCatalog(f, []uuid.UUID{s.p2.ID}, s.p2)

	order, err := srv.CreateOrder(context.Background(), s.customer.ID, s.input(
		usecase.OrderItemInput{ProductID: s.p2.ID, Quantity: 5},
	))
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientStock)
	assert.Nil(t, order)
	f.orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.productRepo.AssertNotCalled(t, "DecrementStock", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderService_CreateOrder_RepeatedLinesShareStock(t *testing.T) {
	f := newTxFixture(t)
	srv := newTestOrderService(f)
	s := newOrderScenario()

	s.expectCatalog(f, []uuid.UUID{s.p2.ID}, s.p2)

	_, err := srv.CreateOrder(context.Background(), s.customer.ID, s.input(
		usecase.OrderItemInput{ProductID: s.p2.ID, Quantity: 3},
		usecase.OrderItemInput{ProductID: s.p2.ID, Quantity: 2},
	))
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientStock)
}

func TestOrderService_CreateOrder_StockTakenConcurrently(t *testing.T) {
	f := newTxFixture(t)
	srv := newTestOrderService(f)
	s := newOrderScenario()

	s.expectCatalog(f, []uuid.UUID{s.p1.ID}, s.p1)
	f.orderRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	f.productRepo.EXPECT().DecrementStock(mock.Anything, s.p1.ID, 3).Return(false, nil)

	_, err := srv.CreateOrder(context.Background(), s.customer.ID, s.input(
		usecase.OrderItemInput{ProductID: s.p1.ID, Quantity: 3},
	))
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientStock)
	f.notificationRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.publisher.AssertNotCalled(t, "PublishNotificationEvent", mock.Anything, mock.Anything)
}

func TestOrderService_CreateOrder_ProductUnavailable(t *testing.T) {
	tests := []struct {
		name    string
		product func(s *orderScenario) *entity.Product
	}{
		{
			name: "missing product",
			product: func(*orderScenario) *entity.Product {
				return nil
			},
		},
		{
			name: "product of another shop",
			product: func(*orderScenario) *entity.Product {
				return newTestProduct(newTestShop(newTestUser(entity.RoleShop)), "10.00", 10)
			},
		},
		{
			name: "product switched off",
			product: func(s *orderScenario) *entity.Product {
				p := newTestProduct(s.shop, "10.00", 10)
				p.IsAvailable = false

				return p
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTxFixture(t)
			srv := newTestOrderService(f)
			s := newOrderScenario()

			productID := uuid.New()
			var found []*entity.Product
			if p := tt.product(s); p != nil {
				p.ID = productID
				found = append(found, p)
			}
			s.expectCatalog(f, []uuid.UUID{productID}, found...)

			_, err := srv.CreateOrder(context.Background(), s.customer.ID, s.input(
				usecase.OrderItemInput{ProductID: productID, Quantity: 1},
			))
			assert.ErrorIs(t, err, domainerrors.ErrProductUnavailable)
		})
	}
}

func TestOrderService_CreateOrder_InactiveParties(t *testing.T) {
	t.Run("inactive customer", func(t *testing.T) {
		f := newTxFixture(t)
		srv := newTestOrderService(f)
		s := newOrderScenario()
		s.customer.IsActive = false

		f.userRepo.EXPECT().FindByID(mock.Anything, s.customer.ID).Return(s.customer, nil)

		_, err := srv.CreateOrder(context.Background(), s.customer.ID, s.input(
			usecase.OrderItemInput{ProductID: s.p1.ID, Quantity: 1},
		))
		assert.ErrorIs(t, err, domainerrors.ErrCustomerInvalid)
	})

	t.Run("inactive shop", func(t *testing.T) {
		f := newTxFixture(t)
		srv := newTestOrderService(f)
		s := newOrderScenario()
		s.shop.IsActive = false

		f.userRepo.EXPECT().FindByID(mock.Anything, s.customer.ID).Return(s.customer, nil)
		f.shopRepo.EXPECT().FindByID(mock.Anything, s.shop.ID).Return(s.shop, nil)

		_, err := srv.CreateOrder(context.Background(), s.customer.ID, s.input(
			usecase.OrderItemInput{ProductID: s.p1.ID, Quantity: 1},
		))
		assert.ErrorIs(t, err, domainerrors.ErrShopInvalid)
	})
}

func TestOrderService_CreateOrder_ValidationRejectedBeforeTransaction(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *usecase.CreateOrderInput)
	}{
		{name: "bad phone", mutate: func(in *usecase.CreateOrderInput) { in.DeliveryPhone = "+7 900 123 45 67" }},
		{name: "no items", mutate: func(in *usecase.CreateOrderInput) { in.Items = nil }},
		{name: "zero quantity", mutate: func(in *usecase.CreateOrderInput) { in.Items[0].Quantity = 0 }},
		{name: "short address", mutate: func(in *usecase.CreateOrderInput) { in.DeliveryAddress = "x" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTxFixture(t)
			srv := newTestOrderService(f)
			s := newOrderScenario()

			in := s.input(usecase.OrderItemInput{ProductID: s.p1.ID, Quantity: 1})
			tt.mutate(in)

			_, err := srv.CreateOrder(context.Background(), s.customer.ID, in)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
			assert.Equal(t, domainerrors.KindValidation, domainerrors.KindOf(err))
			f.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
		})
	}
}

func TestOrderService_CreateOrder_PublishFailureIsNotFatal(t *testing.T) {
	f := newTxFixture(t)
	srv := newTestOrderService(f)
	s := newOrderScenario()

	s.expectCatalog(f, []uuid.UUID{s.p1.ID}, s.p1)
	f.orderRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	f.productRepo.EXPECT().DecrementStock(mock.Anything, s.p1.ID, 1).Return(true, nil)
	f.notificationRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	f.publisher.EXPECT().PublishNotificationEvent(mock.Anything, mock.Anything).Return(errors.New("broker down"))

	order, err := srv.CreateOrder(context.Background(), s.customer.ID, s.input(
		usecase.OrderItemInput{ProductID: s.p1.ID, Quantity: 1},
	))
	require.NoError(t, err)
	assert.Equal(t, "15.50", order.TotalAmount.StringFixed(entity.MoneyPlaces))
}

func TestOrderService_CreateOrder_NotificationWriteFailureRollsBack(t *testing.T) {
	f := newTxFixture(t)
	srv := newTestOrderService(f)
	s := newOrderScenario()

	s.expectCatalog(f, []uuid.UUID{s.p1.ID}, s.p1)
	f.orderRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	f.productRepo.EXPECT().DecrementStock(mock.Anything, s.p1.ID, 1).Return(true, nil)
	f.notificationRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("db error"))

	order, err := srv.CreateOrder(context.Background(), s.customer.ID, s.input(
		usecase.OrderItemInput{ProductID: s.p1.ID, Quantity: 1},
	))
	assert.Error(t, err)
	assert.Nil(t, order)
	f.publisher.AssertNotCalled(t, "PublishNotificationEvent", mock.Anything, mock.Anything)
}

type statusCase struct {
	name     string
	current  entity.OrderStatus
	assigned bool // order has the courier assigned
	caller   string
	next     entity.OrderStatus
	wantErr  error
}

func TestOrderService_UpdateOrderStatus_Rejections(t *testing.T) {
	tests := []statusCase{
		{name: "owner cannot set picked_up", current: entity.OrderStatusPending, caller: "owner", next: entity.OrderStatusPickedUp, wantErr: domainerrors.ErrInvalidStatusForRole},
		{name: "courier cannot set preparing", current: entity.OrderStatusPickedUp, assigned: true, caller: "courier", next: entity.OrderStatusPreparing, wantErr: domainerrors.ErrInvalidStatusForRole},
		{name: "courier cannot go back", current: entity.OrderStatusOnTheWay, assigned: true, caller: "courier", next: entity.OrderStatusPickedUp, wantErr: domainerrors.ErrBackwardMoveForbidden},
		{name: "delivered is terminal for owner", current: entity.OrderStatusDelivered, assigned: true, caller: "owner", next: entity.OrderStatusReady, wantErr: domainerrors.ErrOrderTerminal},
		{name: "delivered is terminal for stranger", current: entity.OrderStatusDelivered, assigned: true, caller: "stranger", next: entity.OrderStatusReady, wantErr: domainerrors.ErrOrderTerminal},
		{name: "unassigned courier", current: entity.OrderStatusReady, caller: "courier", next: entity.OrderStatusOnTheWay, wantErr: domainerrors.ErrForbidden},
		{name: "stranger", current: entity.OrderStatusPending, caller: "stranger", next: entity.OrderStatusConfirmed, wantErr: domainerrors.ErrForbidden},
		{name: "nobody sets cancelled", current: entity.OrderStatusPending, caller: "owner", next: entity.OrderStatusCancelled, wantErr: domainerrors.ErrInvalidStatusForRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTxFixture(t)
			srv := newTestOrderService(f)
			s := newOrderScenario()
			courier := newTestUser(entity.RoleCourier)

			order := &entity.Order{ID: uuid.New(), CustomerID: s.customer.ID, ShopID: s.shop.ID, Status: tt.current}
			if tt.assigned {
				order.CourierID = &courier.ID
			}
			callers := map[string]uuid.UUID{"owner": s.owner.ID, "courier": courier.ID, "stranger": uuid.New()}

			f.orderRepo.EXPECT().FindByIDForUpdate(mock.Anything, order.ID).Return(order, nil)
			f.shopRepo.EXPECT().FindByID(mock.Anything, s.shop.ID).Return(s.shop, nil)

			updated, err := srv.UpdateOrderStatus(context.Background(), callers[tt.caller], order.ID, &usecase.UpdateOrderStatusInput{Status: tt.next})
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, updated)
			assert.Equal(t, tt.current, order.Status)
			f.orderRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
		})
	}
}

func TestOrderService_UpdateOrderStatus_UnknownStatus(t *testing.T) {
	f := newTxFixture(t)
	srv := newTestOrderService(f)

	_, err := srv.UpdateOrderStatus(context.Background(), uuid.New(), uuid.New(), &usecase.UpdateOrderStatusInput{Status: "lost"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderService_UpdateOrderStatus_OrderNotFound(t *testing.T) {
	f := newTxFixture(t)
	srv := newTestOrderService(f)
	orderID := uuid.New()

	f.orderRepo.EXPECT().FindByIDForUpdate(mock.Anything, orderID).Return(nil, repository.ErrOrderNotFound)

	_, err := srv.UpdateOrderStatus(context.Background(), uuid.New(), orderID, &usecase.UpdateOrderStatusInput{Status: entity.OrderStatusConfirmed})
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
	assert.Equal(t, domainerrors.KindNotFound, domainerrors.KindOf(err))
}

func TestOrderService_UpdateOrderStatus_OwnerMayMoveBack(t *testing.T) {
	f := newTxFixture(t)
	f.expectPublished()
	srv := newTestOrderService(f)
	s := newOrderScenario()

	order := &entity.Order{ID: uuid.New(), CustomerID: s.customer.ID, ShopID: s.shop.ID, Status: entity.OrderStatusReady}
	f.orderRepo.EXPECT().FindByIDForUpdate(mock.Anything, order.ID).Return(order, nil)
	f.shopRepo.EXPECT().FindByID(mock.Anything, s.shop.ID).Return(s.shop, nil)
	f.orderRepo.EXPECT().UpdateStatus(mock.Anything, order).Return(nil)
	f.notificationRepo.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(n *entity.Notification) bool {
			return n.UserID == s.customer.ID && n.Type == entity.NotificationTypeOrderUpdate && n.Title == orderStatusChangedTitle
		})).
		Return(nil)

	updated, err := srv.UpdateOrderStatus(context.Background(), s.owner.ID, order.ID, &usecase.UpdateOrderStatusInput{Status: entity.OrderStatusConfirmed})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusConfirmed, updated.Status)
}

func TestOrderService_UpdateOrderStatus_CourierDelivers(t *testing.T) {
	f := newTxFixture(t)
	f.expectPublished()
	srv := newTestOrderService(f)
	s := newOrderScenario()
	courier := newTestUser(entity.RoleCourier)
	notes := "Eshik oldida qoldirildi"

	order := &entity.Order{ID: uuid.New(), CustomerID: s.customer.ID, ShopID: s.shop.ID, CourierID: &courier.ID, Status: entity.OrderStatusOnTheWay}
	f.orderRepo.EXPECT().FindByIDForUpdate(mock.Anything, order.ID).Return(order, nil)
	f.shopRepo.EXPECT().FindByID(mock.Anything, s.shop.ID).Return(s.shop, nil)
	f.orderRepo.EXPECT().UpdateStatus(mock.Anything, order).Return(nil)
	f.notificationRepo.EXPECT().Create(mock.Anything, notificationFor(s.customer.ID, entity.NotificationTypeOrderUpdate)).Return(nil)

	updated, err := srv.UpdateOrderStatus(context.Background(), courier.ID, order.ID, &usecase.UpdateOrderStatusInput{
		Status:       entity.OrderStatusDelivered,
		CourierNotes: &notes,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusDelivered, updated.Status)
	require.NotNil(t, updated.ActualDeliveryTime)
	require.NotNil(t, updated.CourierNotes)
	assert.Equal(t, notes, *updated.CourierNotes)
}

func TestOrderService_AcceptOrder(t *testing.T) {
	f := newTxFixture(t)
	srv := newTestOrderService(f)
	s := newOrderScenario()
	courier := newTestUser(entity.RoleCourier)

	order := &entity.Order{ID: uuid.New(), CustomerID: s.customer.ID, ShopID: s.shop.ID, Status: entity.OrderStatusReady}
	f.userRepo.EXPECT().FindByID(mock.Anything, courier.ID).Return(courier, nil)
	f.orderRepo.EXPECT().FindByID(mock.Anything, order.ID).Return(order, nil)
	f.orderRepo.EXPECT().AssignCourier(mock.Anything, order.ID, courier.ID, mock.AnythingOfType("time.Time")).Return(true, nil)
	f.shopRepo.EXPECT().FindByID(mock.Anything, s.shop.ID).Return(s.shop, nil)
	f.notificationRepo.EXPECT().Create(mock.Anything, notificationFor(s.customer.ID, entity.NotificationTypeOrderUpdate)).Return(nil).Once()
	f.notificationRepo.EXPECT().Create(mock.Anything, notificationFor(s.owner.ID, entity.NotificationTypeOrderUpdate)).Return(nil).Once()
	f.publisher.EXPECT().PublishNotificationEvent(mock.Anything, mock.Anything).Return(nil).Times(2)

	accepted, err := srv.AcceptOrder(context.Background(), courier.ID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPickedUp, accepted.Status)
	require.NotNil(t, accepted.CourierID)
	assert.Equal(t, courier.ID, *accepted.CourierID)
}

func TestOrderService_AcceptOrder_Rejections(t *testing.T) {
	otherCourier := uuid.New()

	tests := []struct {
		name    string
		order   func(o *entity.Order)
		role    entity.Role
		wantErr error
	}{
		{name: "already assigned", order: func(o *entity.Order) { o.CourierID = &otherCourier; o.Status = entity.OrderStatusPickedUp }, role: entity.RoleCourier, wantErr: domainerrors.ErrAlreadyAccepted},
		{name: "not ready yet", order: func(o *entity.Order) { o.Status = entity.OrderStatusPreparing }, role: entity.RoleCourier, wantErr: domainerrors.ErrNotReadyForPickup},
		{name: "caller is not a courier", order: func(*entity.Order) {}, role: entity.RoleCustomer, wantErr: domainerrors.ErrCourierInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTxFixture(t)
			srv := newTestOrderService(f)
			caller := newTestUser(tt.role)

			order := &entity.Order{ID: uuid.New(), CustomerID: uuid.New(), ShopID: uuid.New(), Status: entity.OrderStatusReady}
			tt.order(order)
			f.userRepo.EXPECT().FindByID(mock.Anything, caller.ID).Return(caller, nil)
			f.orderRepo.EXPECT().FindByID(mock.Anything, order.ID).Return(order, nil).Maybe()

			_, err := srv.AcceptOrder(context.Background(), caller.ID, order.ID)
			assert.ErrorIs(t, err, tt.wantErr)
			f.orderRepo.AssertNotCalled(t, "AssignCourier", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestOrderService_AcceptOrder_SecondCourierLoses(t *testing.T) {
	f := newTxFixture(t)
	f.expectPublished()
	srv := newTestOrderService(f)
	s := newOrderScenario()
	courierA := newTestUser(entity.RoleCourier)
	courierB := newTestUser(entity.RoleCourier)
	orderID := uuid.New()

	// Each transaction reads its own snapshot of the ready order.
	f.orderRepo.EXPECT().
		FindByID(mock.Anything, orderID).
		RunAndReturn(func(context.Context, uuid.UUID) (*entity.Order, error) {
			return &entity.Order{ID: orderID, CustomerID: s.customer.ID, ShopID: s.shop.ID, Status: entity.OrderStatusReady}, nil
		})
	f.userRepo.EXPECT().FindByID(mock.Anything, courierA.ID).Return(courierA, nil)
	f.userRepo.EXPECT().FindByID(mock.Anything, courierB.ID).Return(courierB, nil)

	var mu sync.Mutex
	var winner *uuid.UUID
	f.orderRepo.EXPECT().
		AssignCourier(mock.Anything, orderID, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ uuid.UUID, courierID uuid.UUID, _ time.Time) (bool, error) {
			mu.Lock()
			defer mu.Unlock()
			if winner != nil {
				return false, nil
			}
			winner = &courierID

			return true, nil
		})
	f.shopRepo.EXPECT().FindByID(mock.Anything, s.shop.ID).Return(s.shop, nil).Once()
	f.notificationRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Times(2)

	errs := make([]error, 2)
	var g errgroup.Group
	for i, courier := range []*entity.User{courierA, courierB} {
		g.Go(func() error {
			_, errs[i] = srv.AcceptOrder(context.Background(), courier.ID, orderID)

			return nil
		})
	}
	require.NoError(t, g.Wait())

	var accepted, rejected int
	for _, err := range errs {
		switch {
		case err == nil:
			accepted++
		case errors.Is(err, domainerrors.ErrAlreadyAccepted):
			rejected++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, accepted)
	assert.Equal(t, 1, rejected)
	require.NotNil(t, winner)
}

func TestOrderService_GetOrders_FilterByRole(t *testing.T) {
	shopID := uuid.New()

	tests := []struct {
		name   string
		role   entity.Role
		filter func(user *entity.User) repository.OrderFilter
	}{
		{
			name:   "customer sees own orders",
			role:   entity.RoleCustomer,
			filter: func(u *entity.User) repository.OrderFilter { return repository.OrderFilter{CustomerID: &u.ID} },
		},
		{
			name: "courier sees assigned and open orders",
			role: entity.RoleCourier,
			filter: func(u *entity.User) repository.OrderFilter {
				return repository.OrderFilter{CourierID: &u.ID, IncludeReadyUnassigned: true}
			},
		},
		{
			name:   "shop owner sees shop orders",
			role:   entity.RoleShop,
			filter: func(*entity.User) repository.OrderFilter { return repository.OrderFilter{ShopID: &shopID} },
		},
		{
			name:   "admin sees everything",
			role:   entity.RoleAdmin,
			filter: func(*entity.User) repository.OrderFilter { return repository.OrderFilter{} },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTxFixture(t)
			srv := newTestOrderService(f)
			user := newTestUser(tt.role)

			f.userRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil)
			if tt.role == entity.RoleShop {
				f.shopRepo.EXPECT().FindByUserID(mock.Anything, user.ID).Return(&entity.Shop{ID: shopID, UserID: user.ID}, nil)
			}
			f.orderRepo.EXPECT().List(mock.Anything, tt.filter(user)).Return([]*entity.Order{{ID: uuid.New()}}, nil)

			orders, err := srv.GetOrders(context.Background(), user.ID)
			require.NoError(t, err)
			assert.Len(t, orders, 1)
		})
	}
}

func TestOrderService_GetOrders_ShopOwnerWithoutShop(t *testing.T) {
	f := newTxFixture(t)
	srv := newTestOrderService(f)
	owner := newTestUser(entity.RoleShop)

	f.userRepo.EXPECT().FindByID(mock.Anything, owner.ID).Return(owner, nil)
	f.shopRepo.EXPECT().FindByUserID(mock.Anything, owner.ID).Return(nil, repository.ErrShopNotFound)

	orders, err := srv.GetOrders(context.Background(), owner.ID)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderService_GetOrder_Visibility(t *testing.T) {
	s := newOrderScenario()
	assigned := newTestUser(entity.RoleCourier)

	tests := []struct {
		name    string
		user    *entity.User
		status  entity.OrderStatus
		courier *uuid.UUID
		visible bool
	}{
		{name: "customer", user: s.customer, status: entity.OrderStatusPending, visible: true},
		{name: "shop owner", user: s.owner, status: entity.OrderStatusPending, visible: true},
		{name: "assigned courier", user: assigned, status: entity.OrderStatusPickedUp, courier: &assigned.ID, visible: true},
		{name: "any courier on open order", user: newTestUser(entity.RoleCourier), status: entity.OrderStatusReady, visible: true},
		{name: "other courier on taken order", user: newTestUser(entity.RoleCourier), status: entity.OrderStatusPickedUp, courier: &assigned.ID},
		{name: "other customer", user: newTestUser(entity.RoleCustomer), status: entity.OrderStatusPending},
		{name: "other shop owner", user: newTestUser(entity.RoleShop), status: entity.OrderStatusPending},
		{name: "admin", user: newTestUser(entity.RoleAdmin), status: entity.OrderStatusDelivered, visible: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTxFixture(t)
			srv := newTestOrderService(f)

			order := &entity.Order{ID: uuid.New(), CustomerID: s.customer.ID, ShopID: s.shop.ID, Status: tt.status, CourierID: tt.courier}
			f.orderRepo.EXPECT().FindByID(mock.Anything, order.ID).Return(order, nil)
			f.userRepo.EXPECT().FindByID(mock.Anything, tt.user.ID).Return(tt.user, nil)
			f.shopRepo.EXPECT().FindByID(mock.Anything, s.shop.ID).Return(s.shop, nil).Maybe()

			got, err := srv.GetOrder(context.Background(), tt.user.ID, order.ID)
			if tt.visible {
				require.NoError(t, err)
				assert.Equal(t, order.ID, got.ID)

				return
			}
			assert.ErrorIs(t, err, domainerrors.ErrForbidden)
		})
	}
}
