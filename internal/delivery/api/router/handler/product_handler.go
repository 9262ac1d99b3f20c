package handler

import (
	"log/slog"
	"net/http"

	"zakaz/internal/delivery/api/response"
	"zakaz/internal/domain/entity"
	"zakaz/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	Logger    *slog.Logger
}

// ProductHandler serves products and categories.
type ProductHandler struct {
	productUC usecase.ProductUsecase
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC: params.ProductUC,
		logger:    params.Logger,
	}
}

// CreateProductRequest is the body of POST /products. Price accepts a JSON string or number.
type CreateProductRequest struct {
	CategoryID  uuid.UUID       `json:"category_id" validate:"required"`
	Name        string          `json:"name" validate:"required,min=2,max=200"`
	Description *string         `json:"description" validate:"omitempty,max=2000"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    *string         `json:"image_url" validate:"omitempty,url"`
	Quantity    int             `json:"quantity" validate:"gte=0"`
	IsAvailable *bool           `json:"is_available"`
}

// UpdateProductRequest is the body of PATCH /products/:id. Absent fields are left unchanged.
type UpdateProductRequest struct {
	CategoryID  *uuid.UUID       `json:"category_id"`
	Name        *string          `json:"name" validate:"omitempty,min=2,max=200"`
	Description *string          `json:"description" validate:"omitempty,max=2000"`
	Price       *decimal.Decimal `json:"price"`
	ImageURL    *string          `json:"image_url" validate:"omitempty,url"`
	IsAvailable *bool            `json:"is_available"`
}

// CreateProduct adds a product to the caller's shop.
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	ownerID, err := callerID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CreateProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.productUC.CreateProduct(c.Request().Context(), ownerID, &usecase.CreateProductInput{
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Quantity:    req.Quantity,
		IsAvailable: req.IsAvailable,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newProductView(product))
}

// UpdateProduct edits a product of the caller's shop.
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	ownerID, err := callerID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	productID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.productUC.UpdateProduct(c.Request().Context(), ownerID, productID, &usecase.UpdateProductInput{
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		IsAvailable: req.IsAvailable,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newProductView(product))
}

// GetProducts lists available products, optionally filtered by shop_id and category_id.
func (h *ProductHandler) GetProducts(c echo.Context) error {
	shopID, err := optionalQueryID(c, "shop_id")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	categoryID, err := optionalQueryID(c, "category_id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	products, err := h.productUC.GetProducts(c.Request().Context(), usecase.ProductQuery{
		ShopID:     shopID,
		CategoryID: categoryID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	views := make([]productView, 0, len(products))
	for _, p := range products {
		views = append(views, newProductView(p))
	}

	return response.Success(c, http.StatusOK, views)
}

// GetCategories lists product categories.
func (h *ProductHandler) GetCategories(c echo.Context) error {
	categories, err := h.productUC.GetCategories(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if categories == nil {
		categories = []*entity.Category{}
	}

	return response.Success(c, http.StatusOK, categories)
}
