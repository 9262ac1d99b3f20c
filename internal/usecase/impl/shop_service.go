package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "zakaz/internal/delivery/context"
	"zakaz/internal/domain/entity"
	domainerrors "zakaz/internal/domain/errors"
	"zakaz/internal/domain/repository"
	"zakaz/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// shopService implements the ShopUsecase interface.
type shopService struct {
	txManager repository.TransactionManager
	shopRepo  repository.ShopRepository
	logger    *slog.Logger
}

// ShopServiceParams holds dependencies for ShopService, injected by Fx.
type ShopServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	ShopRepo  repository.ShopRepository
	Logger    *slog.Logger
}

// NewShopService is the constructor for shopService.
func NewShopService(params ShopServiceParams) usecase.ShopUsecase {
	return &shopService{
		txManager: params.TxManager,
		shopRepo:  params.ShopRepo,
		logger:    params.Logger,
	}
}

func (srv *shopService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateShop opens the single shop a shop-role user may own. The owner row is locked
// so two concurrent requests cannot both pass the one-shop check.
func (srv *shopService) CreateShop(ctx context.Context, ownerID uuid.UUID, input *usecase.CreateShopInput) (*entity.Shop, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	var shop *entity.Shop
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		owner, err := repos.UserRepo().FindByIDForUpdate(ctx, ownerID)
		if err != nil {
			return mapNotFound(err, repository.ErrUserNotFound, domainerrors.ErrUserNotFound, "failed to lock owner")
		}
		if owner.Role != entity.RoleShop || !owner.IsActive {
			return domainerrors.ErrForbidden.WithDetails("only active shop accounts can open a shop")
		}

		shopRepo := repos.ShopRepo()
		_, err = shopRepo.FindByUserID(ctx, owner.ID)
		if err == nil {
			return domainerrors.ErrShopAlreadyExists
		}
		if !errors.Is(err, repository.ErrShopNotFound) {
			return errors.Wrap(err, "failed to check existing shop")
		}

		now := time.Now().UTC()
		shop = &entity.Shop{
			ID:          uuid.New(),
			UserID:      owner.ID,
			Name:        strings.TrimSpace(input.Name),
			Description: input.Description,
			Address:     strings.TrimSpace(input.Address),
			Phone:       input.Phone,
			ImageURL:    input.ImageURL,
			IsActive:    true,
			CreatedAt:   now,
			UpdatedAt:   now,
		}

		return errors.Wrap(shopRepo.Create(ctx, shop), "failed to create shop")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open shop")
	}

	srv.log(ctx).Info("Shop created", slog.String("shop_id", shop.ID.String()), slog.String("owner_id", ownerID.String()))

	return shop, nil
}

// GetShops lists active shops.
func (srv *shopService) GetShops(ctx context.Context) ([]*entity.Shop, error) {
	shops, err := srv.shopRepo.ListActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shops")
	}

	return shops, nil
}

// GetShop returns a shop regardless of its active flag.
func (srv *shopService) GetShop(ctx context.Context, shopID uuid.UUID) (*entity.Shop, error) {
	shop, err := srv.shopRepo.FindByID(ctx, shopID)
	if err != nil {
		return nil, mapNotFound(err, repository.ErrShopNotFound, domainerrors.ErrShopNotFound, "failed to find shop")
	}

	return shop, nil
}
