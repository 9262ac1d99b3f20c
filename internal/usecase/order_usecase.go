package usecase

import (
	"context"
	"time"

	"zakaz/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderItemInput is one requested line of a new order.
type OrderItemInput struct {
	ProductID uuid.UUID `validate:"required"`
	Quantity  int       `validate:"gt=0"`
}

// CreateOrderInput defines the data required to place an order.
type CreateOrderInput struct {
	ShopID          uuid.UUID        `validate:"required"`
	Items           []OrderItemInput `validate:"required,min=1,dive"`
	DeliveryAddress string           `validate:"required,min=5"`
	DeliveryPhone   string           `validate:"required,uzphone"`
	CustomerNotes   *string          `validate:"omitempty,max=500"`
}

// UpdateOrderStatusInput defines a requested status change.
type UpdateOrderStatusInput struct {
	Status                entity.OrderStatus `validate:"required"`
	CourierNotes          *string            `validate:"omitempty,max=500"`
	EstimatedDeliveryTime *time.Time
}

// OrderUsecase defines the order workflow.
type OrderUsecase interface {
	// CreateOrder validates the basket, reserves stock and records the order atomically.
	CreateOrder(ctx context.Context, customerID uuid.UUID, input *CreateOrderInput) (*entity.Order, error)

	// UpdateOrderStatus moves an order along its lifecycle on behalf of the shop owner or the assigned courier.
	UpdateOrderStatus(ctx context.Context, callerID, orderID uuid.UUID, input *UpdateOrderStatusInput) (*entity.Order, error)

	// AcceptOrder assigns a ready order to the first courier that claims it.
	AcceptOrder(ctx context.Context, courierID, orderID uuid.UUID) (*entity.Order, error)

	// GetOrders lists the orders visible to the user according to their role.
	GetOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// GetOrder returns one order if the user may see it.
	GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error)
}
