package handler

import (
	"log/slog"
	"net/http"

	"zakaz/internal/delivery/api/response"
	"zakaz/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ShopHandlerParams holds dependencies for ShopHandler, injected by Fx.
type ShopHandlerParams struct {
	fx.In

	ShopUC usecase.ShopUsecase
	Logger *slog.Logger
}

// ShopHandler serves the shop endpoints.
type ShopHandler struct {
	shopUC usecase.ShopUsecase
	logger *slog.Logger
}

// NewShopHandler is the constructor for ShopHandler
func NewShopHandler(params ShopHandlerParams) *ShopHandler {
	return &ShopHandler{
		shopUC: params.ShopUC,
		logger: params.Logger,
	}
}

// CreateShopRequest is the body of POST /shops.
type CreateShopRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=100"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
	Address     string  `json:"address" validate:"required,min=5"`
	Phone       string  `json:"phone" validate:"required,uzphone"`
	ImageURL    *string `json:"image_url" validate:"omitempty,url"`
}

// CreateShop opens a shop owned by the caller.
func (h *ShopHandler) CreateShop(c echo.Context) error {
	ownerID, err := callerID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CreateShopRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	shop, err := h.shopUC.CreateShop(c.Request().Context(), ownerID, &usecase.CreateShopInput{
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
		Phone:       req.Phone,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, shop)
}

// GetShops lists active shops.
func (h *ShopHandler) GetShops(c echo.Context) error {
	shops, err := h.shopUC.GetShops(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, shops)
}

// GetShop returns one shop.
func (h *ShopHandler) GetShop(c echo.Context) error {
	shopID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	shop, err := h.shopUC.GetShop(c.Request().Context(), shopID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, shop)
}
