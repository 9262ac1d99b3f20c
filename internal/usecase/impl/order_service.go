package impl

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	deliverycontext "zakaz/internal/delivery/context"
	"zakaz/internal/domain/entity"
	domainerrors "zakaz/internal/domain/errors"
	"zakaz/internal/domain/repository"
	"zakaz/internal/domain/service"
	"zakaz/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	newOrderTitle           = "Yangi buyurtma"
	orderStatusChangedTitle = "Buyurtma holati o'zgardi"
	orderAcceptedTitle      = "Buyurtmangiz qabul qilindi"
	orderPickedUpTitle      = "Buyurtma kuryer tomonidan qabul qilindi"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	userRepo  repository.UserRepository
	shopRepo  repository.ShopRepository
	notifier  *notifier
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	UserRepo  repository.UserRepository
	ShopRepo  repository.ShopRepository
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		userRepo:  params.UserRepo,
		shopRepo:  params.ShopRepo,
		notifier:  &notifier{publisher: params.Publisher, logger: params.Logger},
		logger:    params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOrder validates the basket, reserves stock and records the order atomically.
func (srv *orderService) CreateOrder(ctx context.Context, customerID uuid.UUID, input *usecase.CreateOrderInput) (*entity.Order, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	var (
		order   *entity.Order
		pending outbox
	)
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		var err error
		order, err = srv.placeOrder(ctx, repos, customerID, input, &pending)

		return err
	})
	if err != nil {
		srv.log(ctx).Warn("Order creation rejected",
			slog.String("customer_id", customerID.String()),
			slog.String("shop_id", input.ShopID.String()),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to create order")
	}

	srv.log(ctx).Info("Order created",
		slog.String("order_id", order.ID.String()),
		slog.String("total_amount", order.TotalAmount.StringFixed(entity.MoneyPlaces)),
	)
	srv.notifier.dispatch(ctx, &order.ID, pending.notifications...)

	return order, nil
}

func (srv *orderService) placeOrder(
	ctx context.Context,
	repos repository.RepositoryFactory,
	customerID uuid.UUID,
	input *usecase.CreateOrderInput,
	pending *outbox,
) (*entity.Order, error) {
	customer, err := repos.UserRepo().FindByID(ctx, customerID)
	if err != nil {
		return nil, mapNotFound(err, repository.ErrUserNotFound, domainerrors.ErrCustomerInvalid, "failed to load customer")
	}
	if !customer.IsActive {
		return nil, domainerrors.ErrCustomerInvalid
	}

	shop, err := repos.ShopRepo().FindByID(ctx, input.ShopID)
	if err != nil {
		return nil, mapNotFound(err, repository.ErrShopNotFound, domainerrors.ErrShopInvalid, "failed to load shop")
	}
	if !shop.IsActive {
		return nil, domainerrors.ErrShopInvalid
	}

	// Quantities of repeated lines for the same product are reserved together.
	requested := make(map[uuid.UUID]int, len(input.Items))
	productIDs := make([]uuid.UUID, 0, len(input.Items))
	for _, item := range input.Items {
		if _, seen := requested[item.ProductID]; !seen {
			productIDs = append(productIDs, item.ProductID)
		}
		requested[item.ProductID] += item.Quantity
	}

	productRepo := repos.ProductRepo()
	products, err := productRepo.FindByIDs(ctx, productIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load products")
	}
	byID := make(map[uuid.UUID]*entity.Product, len(products))
	for _, product := range products {
		byID[product.ID] = product
	}

	for _, id := range productIDs {
		if !byID[id].CanBeOrderedFrom(shop.ID) {
			return nil, domainerrors.ErrProductUnavailable.WithDetails("product " + id.String())
		}
	}
	for _, id := range productIDs {
		if product := byID[id]; product.Quantity < requested[id] {
			return nil, domainerrors.ErrInsufficientStock.WithDetails(
				fmt.Sprintf("%s: available %d, requested %d", product.Name, product.Quantity, requested[id]),
			)
		}
	}

	now := time.Now().UTC()
	order := &entity.Order{
		ID:              uuid.New(),
		CustomerID:      customer.ID,
		ShopID:          shop.ID,
		Status:          entity.OrderStatusPending,
		DeliveryAddress: strings.TrimSpace(input.DeliveryAddress),
		DeliveryPhone:   input.DeliveryPhone,
		CustomerNotes:   input.CustomerNotes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	for _, line := range input.Items {
		item := entity.NewOrderItem(byID[line.ProductID], line.Quantity)
		item.OrderID = order.ID
		item.CreatedAt = now
		order.Items = append(order.Items, item)
	}
	order.TotalAmount = entity.SumItems(order.Items)

	if err := repos.OrderRepo().Create(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to insert order")
	}

	// Stable lock order keeps concurrent orders on overlapping products from deadlocking.
	slices.SortFunc(productIDs, func(a, b uuid.UUID) int { return bytes.Compare(a[:], b[:]) })
	for _, id := range productIDs {
		reserved, err := productRepo.DecrementStock(ctx, id, requested[id])
		if err != nil {
			return nil, errors.Wrap(err, "failed to decrement stock")
		}
		if !reserved {
			return nil, domainerrors.ErrInsufficientStock.WithDetails(byID[id].Name + ": stock changed, try again")
		}
	}

	message := fmt.Sprintf("Sizga %s tomonidan yangi buyurtma keldi. Umumiy summa: %s so'm",
		customer.FullName, order.TotalAmount.StringFixed(entity.MoneyPlaces))
	if err := pending.notify(ctx, repos.NotificationRepo(), shop.UserID, newOrderTitle, message, entity.NotificationTypeNewOrder); err != nil {
		return nil, err
	}

	return order, nil
}

// UpdateOrderStatus moves an order along its lifecycle on behalf of the shop owner or the assigned courier.
func (srv *orderService) UpdateOrderStatus(
	ctx context.Context,
	callerID, orderID uuid.UUID,
	input *usecase.UpdateOrderStatusInput,
) (*entity.Order, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	if !input.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown status " + input.Status.String())
	}

	var (
		order   *entity.Order
		pending outbox
	)
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		orderRepo := repos.OrderRepo()

		var err error
		order, err = orderRepo.FindByIDForUpdate(ctx, orderID)
		if err != nil {
			return mapNotFound(err, repository.ErrOrderNotFound, domainerrors.ErrOrderNotFound, "failed to load order")
		}

		shop, err := repos.ShopRepo().FindByID(ctx, order.ShopID)
		if err != nil {
			return mapNotFound(err, repository.ErrShopNotFound, domainerrors.ErrShopNotFound, "failed to load shop")
		}

		actor := order.ActorFor(callerID, shop)
		if err := order.CheckTransition(input.Status, actor); err != nil {
			return err
		}

		order.ApplyStatus(entity.StatusChange{
			Status:                input.Status,
			CourierNotes:          input.CourierNotes,
			EstimatedDeliveryTime: input.EstimatedDeliveryTime,
		}, actor, time.Now().UTC())

		if err := orderRepo.UpdateStatus(ctx, order); err != nil {
			return errors.Wrap(err, "failed to update order status")
		}

		message := fmt.Sprintf("Buyurtma #%s holati: %s", order.ShortID(), order.Status.Label())

		return pending.notify(ctx, repos.NotificationRepo(), order.CustomerID, orderStatusChangedTitle, message, entity.NotificationTypeOrderUpdate)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update order status")
	}

	srv.log(ctx).Info("Order status updated",
		slog.String("order_id", order.ID.String()),
		slog.String("status", order.Status.String()),
	)
	srv.notifier.dispatch(ctx, &order.ID, pending.notifications...)

	return order, nil
}

// AcceptOrder assigns a ready order to the first courier that claims it.
func (srv *orderService) AcceptOrder(ctx context.Context, courierID, orderID uuid.UUID) (*entity.Order, error) {
	var (
		order   *entity.Order
		pending outbox
	)
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		courier, err := repos.UserRepo().FindByID(ctx, courierID)
		if err != nil {
			return mapNotFound(err, repository.ErrUserNotFound, domainerrors.ErrCourierInvalid, "failed to load courier")
		}
		if !courier.IsActiveCourier() {
			return domainerrors.ErrCourierInvalid
		}

		orderRepo := repos.OrderRepo()
		order, err = orderRepo.FindByID(ctx, orderID)
		if err != nil {
			return mapNotFound(err, repository.ErrOrderNotFound, domainerrors.ErrOrderNotFound, "failed to load order")
		}
		if order.CourierID != nil {
			return domainerrors.ErrAlreadyAccepted
		}
		if order.Status != entity.OrderStatusReady {
			return domainerrors.ErrNotReadyForPickup.WithDetails("current status: " + order.Status.String())
		}

		now := time.Now().UTC()
		claimed, err := orderRepo.AssignCourier(ctx, order.ID, courier.ID, now)
		if err != nil {
			return errors.Wrap(err, "failed to assign courier")
		}
		if !claimed {
			return domainerrors.ErrAlreadyAccepted
		}
		order.CourierID = &courier.ID
		order.Status = entity.OrderStatusPickedUp
		order.UpdatedAt = now

		shop, err := repos.ShopRepo().FindByID(ctx, order.ShopID)
		if err != nil {
			return mapNotFound(err, repository.ErrShopNotFound, domainerrors.ErrShopNotFound, "failed to load shop")
		}

		notifications := repos.NotificationRepo()
		customerMessage := fmt.Sprintf("Buyurtmangiz #%s kuryer %s tomonidan qabul qilindi.", order.ShortID(), courier.FullName)
		if err := pending.notify(ctx, notifications, order.CustomerID, orderAcceptedTitle, customerMessage, entity.NotificationTypeOrderUpdate); err != nil {
			return err
		}
		shopMessage := fmt.Sprintf("Buyurtma #%s kuryer tomonidan qabul qilindi.", order.ShortID())

		return pending.notify(ctx, notifications, shop.UserID, orderPickedUpTitle, shopMessage, entity.NotificationTypeOrderUpdate)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to accept order")
	}

	srv.log(ctx).Info("Order accepted",
		slog.String("order_id", order.ID.String()),
		slog.String("courier_id", courierID.String()),
	)
	srv.notifier.dispatch(ctx, &order.ID, pending.notifications...)

	return order, nil
}

// GetOrders lists the orders visible to the user according to their role.
func (srv *orderService) GetOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, mapNotFound(err, repository.ErrUserNotFound, domainerrors.ErrUserNotFound, "failed to load user")
	}

	var filter repository.OrderFilter
	switch user.Role {
	case entity.RoleCustomer:
		filter.CustomerID = &user.ID
	case entity.RoleShop:
		shop, err := srv.shopRepo.FindByUserID(ctx, user.ID)
		if errors.Is(err, repository.ErrShopNotFound) {
			return []*entity.Order{}, nil
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to load shop")
		}
		filter.ShopID = &shop.ID
	case entity.RoleCourier:
		filter.CourierID = &user.ID
		filter.IncludeReadyUnassigned = true
	case entity.RoleAdmin:
	default:
		return nil, domainerrors.ErrForbidden
	}

	orders, err := srv.orderRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// GetOrder returns one order if the user may see it.
func (srv *orderService) GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, mapNotFound(err, repository.ErrOrderNotFound, domainerrors.ErrOrderNotFound, "failed to load order")
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, mapNotFound(err, repository.ErrUserNotFound, domainerrors.ErrUserNotFound, "failed to load user")
	}

	switch {
	case user.Role == entity.RoleAdmin, order.CustomerID == user.ID, order.IsAssignedTo(user.ID):
		return order, nil
	case user.Role == entity.RoleCourier && order.CourierID == nil && order.Status == entity.OrderStatusReady:
		return order, nil
	case user.Role == entity.RoleShop:
		shop, err := srv.shopRepo.FindByID(ctx, order.ShopID)
		if err != nil {
			return nil, mapNotFound(err, repository.ErrShopNotFound, domainerrors.ErrShopNotFound, "failed to load shop")
		}
		if shop.IsOwnedBy(user.ID) {
			return order, nil
		}
	}

	return nil, domainerrors.ErrForbidden
}

// mapNotFound replaces a repository not-found sentinel with the domain error callers see,
// and wraps any other failure with context.
func mapNotFound(err, sentinel error, appErr *domainerrors.BaseError, msg string) error {
	if errors.Is(err, sentinel) {
		return appErr
	}

	return errors.Wrap(err, msg)
}
