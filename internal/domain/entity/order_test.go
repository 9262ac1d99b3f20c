package entity

import (
	"testing"
	"time"

	domainerrors "zakaz/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allStatuses = []OrderStatus{
	OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing, OrderStatusReady,
	OrderStatusPickedUp, OrderStatusOnTheWay, OrderStatusDelivered, OrderStatusCancelled,
}

func TestOrder_CheckTransition_TerminalStatusesRejectEverything(t *testing.T) {
	for _, current := range []OrderStatus{OrderStatusDelivered, OrderStatusCancelled} {
		for _, next := range allStatuses {
			for _, actor := range []Actor{ActorNone, ActorShopOwner, ActorCourier} {
				order := &Order{Status: current}
				err := order.CheckTransition(next, actor)
				assert.ErrorIs(t, err, domainerrors.ErrOrderTerminal, "%s -> %s by %d", current, next, actor)
			}
		}
	}
}

func TestOrder_CheckTransition_UnrelatedCallerIsForbidden(t *testing.T) {
	for _, next := range allStatuses {
		order := &Order{Status: OrderStatusPreparing}
		assert.ErrorIs(t, order.CheckTransition(next, ActorNone), domainerrors.ErrForbidden)
	}
}

func TestOrder_CheckTransition_RoleScopedStatuses(t *testing.T) {
	shopSet := []OrderStatus{OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing, OrderStatusReady}
	courierSet := []OrderStatus{OrderStatusPickedUp, OrderStatusOnTheWay, OrderStatusDelivered}

	for _, next := range allStatuses {
		order := &Order{Status: OrderStatusPending}
		err := order.CheckTransition(next, ActorShopOwner)
		if containsStatus(shopSet, next) {
			assert.NoError(t, err, "shop owner should set %s", next)
		} else {
			assert.ErrorIs(t, err, domainerrors.ErrInvalidStatusForRole, "shop owner must not set %s", next)
		}

		order = &Order{Status: OrderStatusPickedUp}
		err = order.CheckTransition(next, ActorCourier)
		if containsStatus(courierSet, next) {
			assert.NoError(t, err, "courier should set %s", next)
		} else {
			assert.ErrorIs(t, err, domainerrors.ErrInvalidStatusForRole, "courier must not set %s", next)
		}
	}
}

func TestOrder_CheckTransition_BackwardMoves(t *testing.T) {
	order := &Order{Status: OrderStatusOnTheWay}
	assert.ErrorIs(t, order.CheckTransition(OrderStatusPickedUp, ActorCourier), domainerrors.ErrBackwardMoveForbidden)

	order = &Order{Status: OrderStatusReady}
	assert.NoError(t, order.CheckTransition(OrderStatusConfirmed, ActorShopOwner))
	assert.NoError(t, order.CheckTransition(OrderStatusReady, ActorShopOwner))

	order = &Order{Status: OrderStatusPickedUp}
	assert.NoError(t, order.CheckTransition(OrderStatusPreparing, ActorShopOwner))
	assert.NoError(t, order.CheckTransition(OrderStatusDelivered, ActorCourier))
}

func TestOrder_ActorFor(t *testing.T) {
	ownerID, courierID, strangerID := uuid.New(), uuid.New(), uuid.New()
	shop := &Shop{ID: uuid.New(), UserID: ownerID}
	order := &Order{ShopID: shop.ID, CourierID: &courierID}

	assert.Equal(t, ActorShopOwner, order.ActorFor(ownerID, shop))
	assert.Equal(t, ActorCourier, order.ActorFor(courierID, shop))
	assert.Equal(t, ActorNone, order.ActorFor(strangerID, shop))

	order.CourierID = nil
	assert.Equal(t, ActorNone, order.ActorFor(courierID, shop))
}

func TestOrder_ApplyStatus(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	eta := now.Add(30 * time.Minute)
	notes := "kirish eshigi orqada"

	t.Run("courier notes and delivery time", func(t *testing.T) {
		order := &Order{Status: OrderStatusOnTheWay}
		order.ApplyStatus(StatusChange{Status: OrderStatusDelivered, CourierNotes: &notes, EstimatedDeliveryTime: &eta}, ActorCourier, now)

		assert.Equal(t, OrderStatusDelivered, order.Status)
		assert.Equal(t, now, order.UpdatedAt)
		require.NotNil(t, order.CourierNotes)
		assert.Equal(t, notes, *order.CourierNotes)
		require.NotNil(t, order.ActualDeliveryTime)
		assert.Equal(t, now, *order.ActualDeliveryTime)
		assert.Equal(t, &eta, order.EstimatedDeliveryTime)
	})

	t.Run("shop owner cannot write courier notes", func(t *testing.T) {
		order := &Order{Status: OrderStatusPending}
		order.ApplyStatus(StatusChange{Status: OrderStatusConfirmed, CourierNotes: &notes}, ActorShopOwner, now)

		assert.Equal(t, OrderStatusConfirmed, order.Status)
		assert.Nil(t, order.CourierNotes)
		assert.Nil(t, order.ActualDeliveryTime)
	})
}

func TestSumItems_FixedPointTotal(t *testing.T) {
	p1 := &Product{ID: uuid.New(), Price: decimal.RequireFromString("15.50")}
	p2 := &Product{ID: uuid.New(), Price: decimal.RequireFromString("25.00")}

	items := []*OrderItem{NewOrderItem(p1, 2), NewOrderItem(p2, 1)}

	assert.True(t, items[0].TotalPrice.Equal(decimal.RequireFromString("31.00")))
	assert.True(t, SumItems(items).Equal(decimal.RequireFromString("56.00")))
	assert.Equal(t, "56.00", SumItems(items).StringFixed(MoneyPlaces))
}

func TestSumItems_NoFloatDrift(t *testing.T) {
	p := &Product{ID: uuid.New(), Price: decimal.RequireFromString("0.10")}

	items := make([]*OrderItem, 0, 10)
	for range 10 {
		items = append(items, NewOrderItem(p, 1))
	}

	assert.True(t, SumItems(items).Equal(decimal.NewFromInt(1)))
}

func containsStatus(set []OrderStatus, s OrderStatus) bool {
	for _, candidate := range set {
		if candidate == s {
			return true
		}
	}

	return false
}
