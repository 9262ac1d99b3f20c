package repository

import (
	"context"
	"errors"

	"zakaz/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCourierLocationNotFound is returned when a courier has never reported a location.
var ErrCourierLocationNotFound = errors.New("courier location not found")

// CourierLocationRepository stores the last known position of each courier.
type CourierLocationRepository interface {
	// Upsert inserts or replaces the location row of location.CourierID.
	Upsert(ctx context.Context, location *entity.CourierLocation) error

	FindByCourierID(ctx context.Context, courierID uuid.UUID) (*entity.CourierLocation, error)
}
