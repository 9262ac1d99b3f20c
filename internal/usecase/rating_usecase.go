package usecase

import (
	"context"

	"zakaz/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateRatingInput defines a rating submission.
type CreateRatingInput struct {
	Target  entity.RatingTarget
	Score   int     `validate:"gte=1,lte=5"`
	Comment *string `validate:"omitempty,max=500"`
}

// RatingUsecase defines rating operations.
type RatingUsecase interface {
	// CreateRating records a rating from a customer who received a delivery involving the target,
	// then refreshes the target's average.
	CreateRating(ctx context.Context, raterID uuid.UUID, input *CreateRatingInput) (*entity.Rating, error)
	GetRatings(ctx context.Context, target entity.RatingTarget) ([]*entity.Rating, error)
}
