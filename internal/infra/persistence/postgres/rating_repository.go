package postgres

import (
	"context"

	"zakaz/internal/domain/entity"
	domainerrors "zakaz/internal/domain/errors"
	"zakaz/internal/domain/repository"
	"zakaz/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ratingRepository implements the repository.RatingRepository interface.
type ratingRepository struct {
	db *gorm.DB
}

// NewRatingRepository is the constructor for ratingRepository.
func NewRatingRepository(db *gorm.DB) repository.RatingRepository {
	return &ratingRepository{db: db}
}

// Create persists a new rating. The unique (user, target) index backs the duplicate check.
func (repo *ratingRepository) Create(ctx context.Context, rating *entity.Rating) error {
	ratingM := fromRatingDomain(rating)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(ratingM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateRating
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails(constraintName(err))
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create rating")
	}

	return nil
}

func (repo *ratingRepository) ExistsForUser(ctx context.Context, userID uuid.UUID, target entity.RatingTarget) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.RatingModel{}).
		Where("user_id = ? AND target_type = ? AND target_id = ?", userID, string(target.Type), target.ID).
		Limit(1).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check rating existence")
	}

	return count > 0, nil
}

// Average returns the mean score over every rating of target, or 0 when there are none.
func (repo *ratingRepository) Average(ctx context.Context, target entity.RatingTarget) (float64, error) {
	var average float64

	if err := repo.db.WithContext(ctx).
		Model(&model.RatingModel{}).
		Select("COALESCE(AVG(rating), 0)::float8").
		Where("target_type = ? AND target_id = ?", string(target.Type), target.ID).
		Scan(&average).Error; err != nil {
		return 0, errors.Wrap(err, "failed to average ratings")
	}

	return average, nil
}

// ListByTarget returns ratings of target, newest first.
func (repo *ratingRepository) ListByTarget(ctx context.Context, target entity.RatingTarget) ([]*entity.Rating, error) {
	var ratingModels []*model.RatingModel

	if err := repo.db.WithContext(ctx).
		Where("target_type = ? AND target_id = ?", string(target.Type), target.ID).
		Order("created_at DESC").
		Find(&ratingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list ratings")
	}

	ratings := make([]*entity.Rating, 0, len(ratingModels))
	for _, ratingM := range ratingModels {
		ratings = append(ratings, toRatingDomain(ratingM))
	}

	return ratings, nil
}

func toRatingDomain(data *model.RatingModel) *entity.Rating {
	return &entity.Rating{
		ID:     data.ID,
		UserID: data.UserID,
		Target: entity.RatingTarget{
			Type: entity.RatingTargetType(data.TargetType),
			ID:   data.TargetID,
		},
		Score:     data.Rating,
		Comment:   data.Comment,
		CreatedAt: data.CreatedAt,
	}
}

func fromRatingDomain(data *entity.Rating) *model.RatingModel {
	return &model.RatingModel{
		ID:         data.ID,
		UserID:     data.UserID,
		TargetType: string(data.Target.Type),
		TargetID:   data.Target.ID,
		Rating:     data.Score,
		Comment:    data.Comment,
		CreatedAt:  data.CreatedAt,
	}
}
