package handler

import (
	"log/slog"
	"net/http"

	"zakaz/internal/delivery/api/response"
	"zakaz/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CourierHandlerParams holds dependencies for CourierHandler, injected by Fx.
type CourierHandlerParams struct {
	fx.In

	CourierUC usecase.CourierUsecase
	Logger    *slog.Logger
}

// CourierHandler serves courier location reports.
type CourierHandler struct {
	courierUC usecase.CourierUsecase
	logger    *slog.Logger
}

// NewCourierHandler is the constructor for CourierHandler
func NewCourierHandler(params CourierHandlerParams) *CourierHandler {
	return &CourierHandler{
		courierUC: params.CourierUC,
		logger:    params.Logger,
	}
}

// UpdateLocationRequest is the body of PUT /courier/location.
type UpdateLocationRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
	Accuracy  *float64 `json:"accuracy" validate:"omitempty,gt=0"`
	IsOnline  *bool    `json:"is_online"`
}

// UpdateLocation stores the caller's current position. is_online defaults to true.
func (h *CourierHandler) UpdateLocation(c echo.Context) error {
	courierID, err := callerID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateLocationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	online := true
	if req.IsOnline != nil {
		online = *req.IsOnline
	}

	location, err := h.courierUC.UpdateLocation(c.Request().Context(), courierID, &usecase.UpdateLocationInput{
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
		Accuracy:  req.Accuracy,
		IsOnline:  online,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, location)
}

// GetLocation returns the last reported position of a courier.
func (h *CourierHandler) GetLocation(c echo.Context) error {
	courierID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	location, err := h.courierUC.GetLocation(c.Request().Context(), courierID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, location)
}
