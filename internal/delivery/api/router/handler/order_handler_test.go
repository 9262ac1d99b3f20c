package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"zakaz/internal/domain/entity"
	domainerrors "zakaz/internal/domain/errors"
	mockUC "zakaz/internal/mocks/usecase"
	"zakaz/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newOrderTestEcho(t *testing.T, callerID uuid.UUID, role entity.Role) (*echo.Echo, *mockUC.MockOrderUsecase) {
	t.Helper()

	orderUC := mockUC.NewMockOrderUsecase(t)
	h := NewOrderHandler(OrderHandlerParams{OrderUC: orderUC, Logger: newDiscardLogger()})

	e := newTestEcho()
	g := e.Group("/orders", asCaller(callerID, role))
	g.POST("", h.CreateOrder)
	g.GET("", h.GetOrders)
	g.GET("/:id", h.GetOrder)
	g.PATCH("/:id/status", h.UpdateOrderStatus)
	g.POST("/:id/accept", h.AcceptOrder)

	return e, orderUC
}

func sampleOrder(customerID uuid.UUID) *entity.Order {
	item := &entity.OrderItem{
		ID:         uuid.New(),
		ProductID:  uuid.New(),
		Quantity:   4,
		UnitPrice:  decimal.RequireFromString("14"),
		TotalPrice: decimal.RequireFromString("56"),
	}

	return &entity.Order{
		ID:              uuid.New(),
		CustomerID:      customerID,
		ShopID:          uuid.New(),
		Status:          entity.OrderStatusPending,
		TotalAmount:     decimal.RequireFromString("56"),
		DeliveryAddress: "Chilonzor 9-kvartal, 12-uy",
		DeliveryPhone:   "+998901234567",
		Items:           []*entity.OrderItem{item},
		CreatedAt:       time.Now().UTC(),
		UpdatedAt:       time.Now().UTC(),
	}
}

func TestOrderHandler_CreateOrder(t *testing.T) {
	customerID := uuid.New()
	e, orderUC := newOrderTestEcho(t, customerID, entity.RoleCustomer)
	order := sampleOrder(customerID)
	productID := order.Items[0].ProductID

	orderUC.EXPECT().
		CreateOrder(mock.Anything, customerID, mock.MatchedBy(func(in *usecase.CreateOrderInput) bool {
			return in.ShopID == order.ShopID && len(in.Items) == 1 &&
				in.Items[0].ProductID == productID && in.Items[0].Quantity == 4
		})).
		Return(order, nil)

	body := `{"shop_id":"` + order.ShopID.String() + `","items":[{"product_id":"` + productID.String() +
		`","quantity":4}],"delivery_address":"Chilonzor 9-kvartal, 12-uy","delivery_phone":"+998901234567"}`
	rec := doRequest(e, http.MethodPost, "/orders", body)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var got orderView
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &got))
	assert.Equal(t, "56.00", got.TotalAmount)
	assert.Equal(t, "14.00", got.Items[0].UnitPrice)
	assert.Equal(t, "Kutilmoqda", got.StatusLabel)
	assert.Equal(t, entity.OrderStatusPending, got.Status)
}

func TestOrderHandler_CreateOrder_InvalidBody(t *testing.T) {
	shopID := uuid.New().String()

	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"shop_id":`},
		{name: "no items", body: `{"shop_id":"` + shopID + `","items":[],"delivery_address":"Yunusobod 4","delivery_phone":"+998901234567"}`},
		{name: "zero quantity", body: `{"shop_id":"` + shopID + `","items":[{"product_id":"` + uuid.NewString() + `","quantity":0}],"delivery_address":"Yunusobod 4","delivery_phone":"+998901234567"}`},
		{name: "bad phone", body: `{"shop_id":"` + shopID + `","items":[{"product_id":"` + uuid.NewString() + `","quantity":1}],"delivery_address":"Yunusobod 4","delivery_phone":"12345"}`},
		{name: "short address", body: `{"shop_id":"` + shopID + `","items":[{"product_id":"` + uuid.NewString() + `","quantity":1}],"delivery_address":"abc","delivery_phone":"+998901234567"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, orderUC := newOrderTestEcho(t, uuid.New(), entity.RoleCustomer)

			rec := doRequest(e, http.MethodPost, "/orders", tt.body)

			requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
			orderUC.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestOrderHandler_CreateOrder_DomainErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantName string
	}{
		{name: "insufficient stock", err: domainerrors.ErrInsufficientStock.WithDetails("product x"), wantCode: http.StatusConflict, wantName: "INSUFFICIENT_STOCK"},
		{name: "unavailable product", err: domainerrors.ErrProductUnavailable, wantCode: http.StatusNotFound, wantName: "PRODUCT_UNAVAILABLE"},
		{name: "unexpected failure", err: errors.New("connection reset"), wantCode: http.StatusInternalServerError, wantName: "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, orderUC := newOrderTestEcho(t, uuid.New(), entity.RoleCustomer)
			orderUC.EXPECT().CreateOrder(mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.err)

			body := `{"shop_id":"` + uuid.NewString() + `","items":[{"product_id":"` + uuid.NewString() +
				`","quantity":1}],"delivery_address":"Yunusobod 4","delivery_phone":"901234567"}`
			rec := doRequest(e, http.MethodPost, "/orders", body)

			requireErrorCode(t, rec, tt.wantCode, tt.wantName)
		})
	}
}

func TestOrderHandler_UpdateOrderStatus(t *testing.T) {
	courierID := uuid.New()
	e, orderUC := newOrderTestEcho(t, courierID, entity.RoleCourier)
	order := sampleOrder(uuid.New())
	order.Status = entity.OrderStatusOnTheWay
	order.CourierID = &courierID

	orderUC.EXPECT().
		UpdateOrderStatus(mock.Anything, courierID, order.ID, mock.MatchedBy(func(in *usecase.UpdateOrderStatusInput) bool {
			return in.Status == entity.OrderStatusOnTheWay && in.CourierNotes != nil && *in.CourierNotes == "Eshik oldida"
		})).
		Return(order, nil)

	rec := doRequest(e, http.MethodPatch, "/orders/"+order.ID.String()+"/status",
		`{"status":"on_the_way","courier_notes":"Eshik oldida"}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var got orderView
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &got))
	assert.Equal(t, entity.OrderStatusOnTheWay, got.Status)
	require.NotNil(t, got.CourierID)
	assert.Equal(t, courierID, *got.CourierID)
}

func TestOrderHandler_UpdateOrderStatus_Rejections(t *testing.T) {
	orderID := uuid.NewString()

	tests := []struct {
		name     string
		path     string
		body     string
		ucErr    error
		wantCode int
		wantName string
	}{
		{name: "bad order id", path: "/orders/abc/status", body: `{"status":"ready"}`, wantCode: http.StatusBadRequest, wantName: "VALIDATION_FAILED"},
		{name: "unknown status", path: "/orders/" + orderID + "/status", body: `{"status":"lost"}`, wantCode: http.StatusBadRequest, wantName: "VALIDATION_FAILED"},
		{name: "terminal order", path: "/orders/" + orderID + "/status", body: `{"status":"ready"}`, ucErr: domainerrors.ErrOrderTerminal, wantCode: http.StatusConflict, wantName: "ORDER_TERMINAL"},
		{name: "backward move", path: "/orders/" + orderID + "/status", body: `{"status":"picked_up"}`, ucErr: domainerrors.ErrBackwardMoveForbidden, wantCode: http.StatusForbidden, wantName: "BACKWARD_MOVE_FORBIDDEN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, orderUC := newOrderTestEcho(t, uuid.New(), entity.RoleShop)
			if tt.ucErr != nil {
				orderUC.EXPECT().UpdateOrderStatus(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.ucErr)
			}

			rec := doRequest(e, http.MethodPatch, tt.path, tt.body)

			requireErrorCode(t, rec, tt.wantCode, tt.wantName)
		})
	}
}

func TestOrderHandler_AcceptOrder(t *testing.T) {
	courierID := uuid.New()
	e, orderUC := newOrderTestEcho(t, courierID, entity.RoleCourier)
	order := sampleOrder(uuid.New())
	order.Status = entity.OrderStatusPickedUp
	order.CourierID = &courierID

	orderUC.EXPECT().AcceptOrder(mock.Anything, courierID, order.ID).Return(order, nil).Once()
	orderUC.EXPECT().AcceptOrder(mock.Anything, courierID, order.ID).Return(nil, domainerrors.ErrAlreadyAccepted).Once()

	rec := doRequest(e, http.MethodPost, "/orders/"+order.ID.String()+"/accept", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doRequest(e, http.MethodPost, "/orders/"+order.ID.String()+"/accept", "")
	requireErrorCode(t, rec, http.StatusConflict, "ALREADY_ACCEPTED")
}

func TestOrderHandler_GetOrders(t *testing.T) {
	customerID := uuid.New()
	e, orderUC := newOrderTestEcho(t, customerID, entity.RoleCustomer)

	orderUC.EXPECT().GetOrders(mock.Anything, customerID).Return(nil, nil).Once()
	orderUC.EXPECT().GetOrders(mock.Anything, customerID).Return([]*entity.Order{sampleOrder(customerID)}, nil).Once()

	rec := doRequest(e, http.MethodGet, "/orders", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, string(decodeEnvelope(t, rec).Data))

	rec = doRequest(e, http.MethodGet, "/orders", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var got []orderView
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &got))
	assert.Len(t, got, 1)
}

func TestOrderHandler_GetOrder_NotFound(t *testing.T) {
	e, orderUC := newOrderTestEcho(t, uuid.New(), entity.RoleCustomer)
	orderID := uuid.New()
	orderUC.EXPECT().GetOrder(mock.Anything, mock.Anything, orderID).Return(nil, domainerrors.ErrOrderNotFound)

	rec := doRequest(e, http.MethodGet, "/orders/"+orderID.String(), "")

	requireErrorCode(t, rec, http.StatusNotFound, "ORDER_NOT_FOUND")
}

func TestOrderHandler_RequiresCaller(t *testing.T) {
	orderUC := mockUC.NewMockOrderUsecase(t)
	h := NewOrderHandler(OrderHandlerParams{OrderUC: orderUC, Logger: newDiscardLogger()})
	e := newTestEcho()
	e.GET("/orders", h.GetOrders)

	rec := doRequest(e, http.MethodGet, "/orders", "")

	requireErrorCode(t, rec, http.StatusForbidden, "FORBIDDEN")
}
