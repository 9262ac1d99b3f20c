package handler

import (
	"log/slog"
	"net/http"

	"zakaz/internal/delivery/api/response"
	"zakaz/internal/domain/entity"
	domainerrors "zakaz/internal/domain/errors"
	"zakaz/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RatingHandlerParams holds dependencies for RatingHandler, injected by Fx.
type RatingHandlerParams struct {
	fx.In

	RatingUC usecase.RatingUsecase
	Logger   *slog.Logger
}

// RatingHandler serves ratings of shops, products and couriers.
type RatingHandler struct {
	ratingUC usecase.RatingUsecase
	logger   *slog.Logger
}

// NewRatingHandler is the constructor for RatingHandler
func NewRatingHandler(params RatingHandlerParams) *RatingHandler {
	return &RatingHandler{
		ratingUC: params.RatingUC,
		logger:   params.Logger,
	}
}

// CreateRatingRequest is the body of POST /ratings.
type CreateRatingRequest struct {
	TargetType string    `json:"target_type" validate:"required,oneof=shop product courier"`
	TargetID   uuid.UUID `json:"target_id" validate:"required"`
	Rating     int       `json:"rating" validate:"gte=1,lte=5"`
	Comment    *string   `json:"comment" validate:"omitempty,max=500"`
}

// CreateRating rates a target the caller received a delivered order from.
func (h *RatingHandler) CreateRating(c echo.Context) error {
	raterID, err := callerID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CreateRatingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	rating, err := h.ratingUC.CreateRating(c.Request().Context(), raterID, &usecase.CreateRatingInput{
		Target:  entity.RatingTarget{Type: entity.RatingTargetType(req.TargetType), ID: req.TargetID},
		Score:   req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, rating)
}

// GetRatings lists ratings of the target named by target_type and target_id.
func (h *RatingHandler) GetRatings(c echo.Context) error {
	targetID, err := optionalQueryID(c, "target_id")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if targetID == nil {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("target_id: required"))
	}

	ratings, err := h.ratingUC.GetRatings(c.Request().Context(), entity.RatingTarget{
		Type: entity.RatingTargetType(c.QueryParam("target_type")),
		ID:   *targetID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if ratings == nil {
		ratings = []*entity.Rating{}
	}

	return response.Success(c, http.StatusOK, ratings)
}
