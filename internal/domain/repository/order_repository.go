package repository

import (
	"context"
	"errors"
	"time"

	"zakaz/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderFilter selects orders for listing. Set fields are combined with AND, except
// IncludeReadyUnassigned which ORs in every ready order without a courier.
type OrderFilter struct {
	CustomerID             *uuid.UUID
	ShopID                 *uuid.UUID
	CourierID              *uuid.UUID
	IncludeReadyUnassigned bool
}

// OrderRepository defines persistence operations for orders and their items.
type OrderRepository interface {
	// Create inserts the order together with its items.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID returns the order with its items.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByIDForUpdate returns the order without items and locks its row.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// List returns orders matching filter, newest first.
	List(ctx context.Context, filter OrderFilter) ([]*entity.Order, error)

	// UpdateStatus writes status, notes, delivery times and updated_at of order.
	UpdateStatus(ctx context.Context, order *entity.Order) error

	// AssignCourier claims a ready, unassigned order for courierID and moves it to picked_up.
	// It reports false when another courier got there first or the order is not ready.
	AssignCourier(ctx context.Context, orderID, courierID uuid.UUID, at time.Time) (bool, error)

	// HasDeliveredFromShop reports whether customerID has a delivered order from shopID.
	HasDeliveredFromShop(ctx context.Context, customerID, shopID uuid.UUID) (bool, error)

	// HasDeliveredWithProduct reports whether customerID has a delivered order containing productID.
	HasDeliveredWithProduct(ctx context.Context, customerID, productID uuid.UUID) (bool, error)

	// HasDeliveredByCourier reports whether customerID has a delivered order carried by courierID.
	HasDeliveredByCourier(ctx context.Context, customerID, courierID uuid.UUID) (bool, error)
}
