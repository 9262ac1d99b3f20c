package repository

import (
	"context"

	"zakaz/internal/domain/entity"

	"github.com/google/uuid"
)

// RatingRepository defines persistence operations for ratings.
type RatingRepository interface {
	Create(ctx context.Context, rating *entity.Rating) error

	ExistsForUser(ctx context.Context, userID uuid.UUID, target entity.RatingTarget) (bool, error)

	// Average returns the mean score over every rating of target, or 0 when there are none.
	Average(ctx context.Context, target entity.RatingTarget) (float64, error)

	// ListByTarget returns ratings of target, newest first.
	ListByTarget(ctx context.Context, target entity.RatingTarget) ([]*entity.Rating, error)
}
