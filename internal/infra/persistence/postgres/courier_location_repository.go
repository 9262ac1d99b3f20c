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

type courierLocationRepository struct {
	db *gorm.DB
}

// NewCourierLocationRepository is the constructor for courierLocationRepository.
func NewCourierLocationRepository(db *gorm.DB) repository.CourierLocationRepository {
	return &courierLocationRepository{db: db}
}

// Upsert inserts the location or overwrites the existing row of the same courier.
func (repo *courierLocationRepository) Upsert(ctx context.Context, location *entity.CourierLocation) error {
	locationM := fromCourierLocationDomain(location)

	err := repo.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "courier_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"latitude", "longitude", "accuracy", "is_online", "updated_at"}),
		}).
		Create(locationM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCourierInvalid
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert courier location")
	}

	return nil
}

func (repo *courierLocationRepository) FindByCourierID(ctx context.Context, courierID uuid.UUID) (*entity.CourierLocation, error) {
	var locationM model.CourierLocationModel

	if err := repo.db.WithContext(ctx).Where("courier_id = ?", courierID).First(&locationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCourierLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find courier location")
	}

	return &entity.CourierLocation{
		ID:        locationM.ID,
		CourierID: locationM.CourierID,
		Latitude:  locationM.Latitude,
		Longitude: locationM.Longitude,
		Accuracy:  locationM.Accuracy,
		IsOnline:  locationM.IsOnline,
		UpdatedAt: locationM.UpdatedAt,
	}, nil
}

func fromCourierLocationDomain(data *entity.CourierLocation) *model.CourierLocationModel {
	return &model.CourierLocationModel{
		ID:        data.ID,
		CourierID: data.CourierID,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		Accuracy:  data.Accuracy,
		IsOnline:  data.IsOnline,
		UpdatedAt: data.UpdatedAt,
	}
}
