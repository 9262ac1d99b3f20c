package handler

import (
	"log/slog"
	"net/http"
	"time"

	"zakaz/internal/delivery/api/response"
	"zakaz/internal/domain/entity"
	"zakaz/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler serves the order workflow.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// OrderItemRequest is one line of CreateOrderRequest.
type OrderItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"gt=0"`
}

// CreateOrderRequest is the body of POST /orders.
type CreateOrderRequest struct {
	ShopID          uuid.UUID          `json:"shop_id" validate:"required"`
	Items           []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	DeliveryAddress string             `json:"delivery_address" validate:"required,min=5"`
	DeliveryPhone   string             `json:"delivery_phone" validate:"required,uzphone"`
	CustomerNotes   *string            `json:"customer_notes" validate:"omitempty,max=500"`
}

// UpdateOrderStatusRequest is the body of PATCH /orders/:id/status.
type UpdateOrderStatusRequest struct {
	Status                string     `json:"status" validate:"required,oneof=pending confirmed preparing ready picked_up on_the_way delivered cancelled"`
	CourierNotes          *string    `json:"courier_notes" validate:"omitempty,max=500"`
	EstimatedDeliveryTime *time.Time `json:"estimated_delivery_time"`
}

// CreateOrder places an order for the caller.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	customerID, err := callerID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CreateOrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	items := make([]usecase.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, usecase.OrderItemInput{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	order, err := h.orderUC.CreateOrder(c.Request().Context(), customerID, &usecase.CreateOrderInput{
		ShopID:          req.ShopID,
		Items:           items,
		DeliveryAddress: req.DeliveryAddress,
		DeliveryPhone:   req.DeliveryPhone,
		CustomerNotes:   req.CustomerNotes,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newOrderView(order))
}

// GetOrders lists the orders visible to the caller's role.
func (h *OrderHandler) GetOrders(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	orders, err := h.orderUC.GetOrders(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newOrderViews(orders))
}

// GetOrder returns one order if the caller is a party to it.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	orderID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), userID, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newOrderView(order))
}

// UpdateOrderStatus moves an order through its lifecycle.
func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	orderID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateOrderStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.orderUC.UpdateOrderStatus(c.Request().Context(), userID, orderID, &usecase.UpdateOrderStatusInput{
		Status:                entity.OrderStatus(req.Status),
		CourierNotes:          req.CourierNotes,
		EstimatedDeliveryTime: req.EstimatedDeliveryTime,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newOrderView(order))
}

// AcceptOrder assigns a ready order to the calling courier.
func (h *OrderHandler) AcceptOrder(c echo.Context) error {
	courierID, err := callerID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	orderID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.orderUC.AcceptOrder(c.Request().Context(), courierID, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newOrderView(order))
}
