package entity

import (
	"slices"
	"time"

	domainerrors "zakaz/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MoneyPlaces is the number of fractional digits kept on every money amount.
const MoneyPlaces = 2

// OrderStatus is a state of the order lifecycle.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusPickedUp  OrderStatus = "picked_up"
	OrderStatusOnTheWay  OrderStatus = "on_the_way"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Actor is the side of an order on whose behalf a caller acts.
type Actor int

const (
	// ActorNone is a caller with no relation to the order.
	ActorNone Actor = iota
	// ActorShopOwner owns the shop the order was placed with.
	ActorShopOwner
	// ActorCourier is the courier assigned to the order.
	ActorCourier
)

type statusNode struct {
	setBy    Actor         // who may request this status
	terminal bool          // no transition leaves this status
	forward  []OrderStatus // targets that are not a backward move, including the status itself
}

// statusGraph is the order lifecycle. Cancelled is terminal and no actor may set it.
var statusGraph = map[OrderStatus]statusNode{
	OrderStatusPending: {
		setBy: ActorShopOwner,
		forward: []OrderStatus{
			OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing, OrderStatusReady,
			OrderStatusPickedUp, OrderStatusOnTheWay, OrderStatusDelivered,
		},
	},
	OrderStatusConfirmed: {
		setBy: ActorShopOwner,
		forward: []OrderStatus{
			OrderStatusConfirmed, OrderStatusPreparing, OrderStatusReady,
			OrderStatusPickedUp, OrderStatusOnTheWay, OrderStatusDelivered,
		},
	},
	OrderStatusPreparing: {
		setBy: ActorShopOwner,
		forward: []OrderStatus{
			OrderStatusPreparing, OrderStatusReady,
			OrderStatusPickedUp, OrderStatusOnTheWay, OrderStatusDelivered,
		},
	},
	OrderStatusReady: {
		setBy: ActorShopOwner,
		forward: []OrderStatus{
			OrderStatusReady, OrderStatusPickedUp, OrderStatusOnTheWay, OrderStatusDelivered,
		},
	},
	OrderStatusPickedUp: {
		setBy:   ActorCourier,
		forward: []OrderStatus{OrderStatusPickedUp, OrderStatusOnTheWay, OrderStatusDelivered},
	},
	OrderStatusOnTheWay: {
		setBy:   ActorCourier,
		forward: []OrderStatus{OrderStatusOnTheWay, OrderStatusDelivered},
	},
	OrderStatusDelivered: {
		setBy:    ActorCourier,
		terminal: true,
	},
	OrderStatusCancelled: {
		setBy:    ActorNone,
		terminal: true,
	},
}

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

var statusLabels = map[OrderStatus]string{
	OrderStatusPending:   "Kutilmoqda",
	OrderStatusConfirmed: "Tasdiqlandi",
	OrderStatusPreparing: "Tayyorlanmoqda",
	OrderStatusReady:     "Tayyor",
	OrderStatusPickedUp:  "Kuryer oldi",
	OrderStatusOnTheWay:  "Yo'lda",
	OrderStatusDelivered: "Yetkazildi",
	OrderStatusCancelled: "Bekor qilindi",
}

// Label returns the status as shown to customers.
func (s OrderStatus) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}

	return string(s)
}

// IsValid checks if the OrderStatus is a known lifecycle state.
func (s OrderStatus) IsValid() bool {
	_, ok := statusGraph[s]

	return ok
}

// IsTerminal reports whether the order can no longer change status.
func (s OrderStatus) IsTerminal() bool {
	return statusGraph[s].terminal
}

// SettableBy reports whether actor may request s.
func (s OrderStatus) SettableBy(actor Actor) bool {
	node, ok := statusGraph[s]

	return ok && actor != ActorNone && node.setBy == actor
}

// IsBackwardFrom reports whether moving from current to s goes back in the lifecycle.
func (s OrderStatus) IsBackwardFrom(current OrderStatus) bool {
	return !slices.Contains(statusGraph[current].forward, s)
}

// Order is a customer's purchase from one shop.
type Order struct {
	ID                    uuid.UUID       `json:"id"`
	CustomerID            uuid.UUID       `json:"customer_id"`
	ShopID                uuid.UUID       `json:"shop_id"`
	CourierID             *uuid.UUID      `json:"courier_id"`
	Status                OrderStatus     `json:"status"`
	TotalAmount           decimal.Decimal `json:"total_amount"`
	DeliveryAddress       string          `json:"delivery_address"`
	DeliveryPhone         string          `json:"delivery_phone"`
	CustomerNotes         *string         `json:"customer_notes,omitempty"`
	CourierNotes          *string         `json:"courier_notes,omitempty"`
	EstimatedDeliveryTime *time.Time      `json:"estimated_delivery_time,omitempty"`
	ActualDeliveryTime    *time.Time      `json:"actual_delivery_time,omitempty"`
	Items                 []*OrderItem    `json:"items,omitempty"`
	CreatedAt             time.Time       `json:"created_at"`
	UpdatedAt             time.Time       `json:"updated_at"`
}

// OrderItem is one line of an order. Prices are snapshots taken when the order was placed.
type OrderItem struct {
	ID         uuid.UUID       `json:"id"`
	OrderID    uuid.UUID       `json:"order_id"`
	ProductID  uuid.UUID       `json:"product_id"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
	CreatedAt  time.Time       `json:"created_at"`
}

// NewOrderItem prices quantity units of product at its current price.
func NewOrderItem(product *Product, quantity int) *OrderItem {
	unit := product.Price.Round(MoneyPlaces)

	return &OrderItem{
		ID:         uuid.New(),
		ProductID:  product.ID,
		Quantity:   quantity,
		UnitPrice:  unit,
		TotalPrice: unit.Mul(decimal.NewFromInt(int64(quantity))).Round(MoneyPlaces),
	}
}

// SumItems returns the order total for items.
func SumItems(items []*OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.TotalPrice)
	}

	return total.Round(MoneyPlaces)
}

// IsAssignedTo reports whether courierID has claimed the order.
func (o *Order) IsAssignedTo(courierID uuid.UUID) bool {
	return o.CourierID != nil && *o.CourierID == courierID
}

// ActorFor resolves the side userID acts for on this order. shop must be the order's shop.
func (o *Order) ActorFor(userID uuid.UUID, shop *Shop) Actor {
	switch {
	case shop.IsOwnedBy(userID):
		return ActorShopOwner
	case o.IsAssignedTo(userID):
		return ActorCourier
	default:
		return ActorNone
	}
}

// CheckTransition validates a move to next on behalf of actor. The terminal check
// runs first so a finished order reports OrderTerminal to every caller.
func (o *Order) CheckTransition(next OrderStatus, actor Actor) error {
	if o.Status.IsTerminal() {
		return domainerrors.ErrOrderTerminal.WithDetails("current status: " + o.Status.String())
	}
	if actor == ActorNone {
		return domainerrors.ErrForbidden
	}
	if !next.SettableBy(actor) {
		return domainerrors.ErrInvalidStatusForRole.WithDetails("requested status: " + next.String())
	}
	if next.IsBackwardFrom(o.Status) && actor != ActorShopOwner {
		return domainerrors.ErrBackwardMoveForbidden.WithDetails(o.Status.String() + " -> " + next.String())
	}

	return nil
}

// StatusChange carries the optional fields that accompany a status update.
type StatusChange struct {
	Status                OrderStatus
	CourierNotes          *string
	EstimatedDeliveryTime *time.Time
}

// ApplyStatus records a validated status change made by actor at now.
func (o *Order) ApplyStatus(change StatusChange, actor Actor, now time.Time) {
	o.Status = change.Status
	o.UpdatedAt = now
	if actor == ActorCourier && change.CourierNotes != nil {
		o.CourierNotes = change.CourierNotes
	}
	if change.EstimatedDeliveryTime != nil {
		o.EstimatedDeliveryTime = change.EstimatedDeliveryTime
	}
	if change.Status == OrderStatusDelivered {
		delivered := now
		o.ActualDeliveryTime = &delivered
	}
}

// ShortID is the prefix of the order id shown to people.
func (o *Order) ShortID() string {
	return o.ID.String()[:8]
}
