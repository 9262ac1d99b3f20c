package usecase

import (
	"context"

	"zakaz/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateLocationInput is a position report from a courier.
type UpdateLocationInput struct {
	Latitude  float64  `validate:"gte=-90,lte=90"`
	Longitude float64  `validate:"gte=-180,lte=180"`
	Accuracy  *float64 `validate:"omitempty,gt=0"`
	IsOnline  bool
}

// CourierUsecase defines courier tracking operations.
type CourierUsecase interface {
	UpdateLocation(ctx context.Context, courierID uuid.UUID, input *UpdateLocationInput) (*entity.CourierLocation, error)
	GetLocation(ctx context.Context, courierID uuid.UUID) (*entity.CourierLocation, error)
}
