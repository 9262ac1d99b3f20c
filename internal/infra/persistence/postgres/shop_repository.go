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

// shopRepository implements the repository.ShopRepository interface.
type shopRepository struct {
	db *gorm.DB
}

// NewShopRepository is the constructor for shopRepository.
func NewShopRepository(db *gorm.DB) repository.ShopRepository {
	return &shopRepository{db: db}
}

// Create persists a new shop.
func (repo *shopRepository) Create(ctx context.Context, shop *entity.Shop) error {
	shopM := fromShopDomain(shop)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(shopM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WithDetails("shop owner does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("missing required shop information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create shop")
	}

	return nil
}

// FindByID retrieves a shop by its unique ID.
func (repo *shopRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error) {
	return repo.findOne(repo.db.WithContext(ctx).Where("id = ?", id))
}

// FindByIDForUpdate retrieves a shop and locks its row.
func (repo *shopRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Shop, error) {
	return repo.findOne(repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("id = ?", id))
}

// FindByUserID retrieves the shop owned by userID.
func (repo *shopRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Shop, error) {
	return repo.findOne(repo.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at ASC"))
}

func (repo *shopRepository) findOne(query *gorm.DB) (*entity.Shop, error) {
	var shopM model.ShopModel
	if err := query.First(&shopM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to find shop")
	}

	return toShopDomain(&shopM), nil
}

// ListActive returns active shops whose owner account is active, newest first.
func (repo *shopRepository) ListActive(ctx context.Context) ([]*entity.Shop, error) {
	var shopModels []*model.ShopModel

	if err := repo.db.WithContext(ctx).
		Joins("JOIN users ON users.id = shops.user_id").
		Where("shops.is_active = ? AND users.is_active = ?", true, true).
		Order("shops.created_at DESC").
		Find(&shopModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list active shops")
	}

	shops := make([]*entity.Shop, 0, len(shopModels))
	for _, shopM := range shopModels {
		shops = append(shops, toShopDomain(shopM))
	}

	return shops, nil
}

// UpdateRating stores the recomputed average rating of a shop.
func (repo *shopRepository) UpdateRating(ctx context.Context, id uuid.UUID, rating float64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ShopModel{}).
		Where("id = ?", id).
		Update("rating", rating)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update shop rating")
	}
	if result.RowsAffected == 0 {
		return repository.ErrShopNotFound
	}

	return nil
}

func toShopDomain(data *model.ShopModel) *entity.Shop {
	if data == nil {
		return nil
	}

	return &entity.Shop{
		ID:          data.ID,
		UserID:      data.UserID,
		Name:        data.Name,
		Description: data.Description,
		Address:     data.Address,
		Phone:       data.Phone,
		ImageURL:    data.ImageURL,
		IsActive:    data.IsActive,
		Rating:      data.Rating,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromShopDomain(data *entity.Shop) *model.ShopModel {
	if data == nil {
		return nil
	}

	return &model.ShopModel{
		ID:          data.ID,
		UserID:      data.UserID,
		Name:        data.Name,
		Description: data.Description,
		Address:     data.Address,
		Phone:       data.Phone,
		ImageURL:    data.ImageURL,
		IsActive:    data.IsActive,
		Rating:      data.Rating,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
