package impl

import (
	"context"
	"log/slog"
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

// ratingTargetOps binds a target type to the queries that validate and aggregate it.
type ratingTargetOps struct {
	// lock checks the target exists and holds its row until commit, serializing ratings per target.
	lock func(ctx context.Context, repos repository.RepositoryFactory, id uuid.UUID) error
	// hasInteraction reports whether raterID received a delivered order involving the target.
	hasInteraction func(ctx context.Context, orders repository.OrderRepository, raterID, id uuid.UUID) (bool, error)
	// storeAverage writes the recomputed mean. Nil when the aggregate is not kept.
	storeAverage func(ctx context.Context, repos repository.RepositoryFactory, id uuid.UUID, average float64) error
}

var ratingTargets = map[entity.RatingTargetType]ratingTargetOps{
	entity.RatingTargetShop: {
		lock: func(ctx context.Context, repos repository.RepositoryFactory, id uuid.UUID) error {
			_, err := repos.ShopRepo().FindByIDForUpdate(ctx, id)

			return mapNotFound(err, repository.ErrShopNotFound, domainerrors.ErrTargetNotFound, "failed to lock shop")
		},
		hasInteraction: func(ctx context.Context, orders repository.OrderRepository, raterID, id uuid.UUID) (bool, error) {
			return orders.HasDeliveredFromShop(ctx, raterID, id)
		},
		storeAverage: func(ctx context.Context, repos repository.RepositoryFactory, id uuid.UUID, average float64) error {
			return repos.ShopRepo().UpdateRating(ctx, id, average)
		},
	},
	entity.RatingTargetProduct: {
		lock: func(ctx context.Context, repos repository.RepositoryFactory, id uuid.UUID) error {
			_, err := repos.ProductRepo().FindByIDForUpdate(ctx, id)

			return mapNotFound(err, repository.ErrProductNotFound, domainerrors.ErrTargetNotFound, "failed to lock product")
		},
		hasInteraction: func(ctx context.Context, orders repository.OrderRepository, raterID, id uuid.UUID) (bool, error) {
			return orders.HasDeliveredWithProduct(ctx, raterID, id)
		},
		storeAverage: func(ctx context.Context, repos repository.RepositoryFactory, id uuid.UUID, average float64) error {
			return repos.ProductRepo().UpdateRating(ctx, id, average)
		},
	},
	entity.RatingTargetCourier: {
		lock: func(ctx context.Context, repos repository.RepositoryFactory, id uuid.UUID) error {
			user, err := repos.UserRepo().FindByIDForUpdate(ctx, id)
			if err != nil {
				return mapNotFound(err, repository.ErrUserNotFound, domainerrors.ErrTargetNotFound, "failed to lock courier")
			}
			if user.Role != entity.RoleCourier {
				return domainerrors.ErrTargetNotFound
			}

			return nil
		},
		hasInteraction: func(ctx context.Context, orders repository.OrderRepository, raterID, id uuid.UUID) (bool, error) {
			return orders.HasDeliveredByCourier(ctx, raterID, id)
		},
	},
}

// ratingService implements the RatingUsecase interface.
type ratingService struct {
	txManager  repository.TransactionManager
	ratingRepo repository.RatingRepository
	logger     *slog.Logger
}

// RatingServiceParams holds dependencies for RatingService, injected by Fx.
type RatingServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	RatingRepo repository.RatingRepository
	Logger     *slog.Logger
}

// NewRatingService is the constructor for ratingService.
func NewRatingService(params RatingServiceParams) usecase.RatingUsecase {
	return &ratingService{
		txManager:  params.TxManager,
		ratingRepo: params.RatingRepo,
		logger:     params.Logger,
	}
}

func (srv *ratingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateRating records a rating and refreshes the target's average in the same transaction.
func (srv *ratingService) CreateRating(ctx context.Context, raterID uuid.UUID, input *usecase.CreateRatingInput) (*entity.Rating, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	ops, ok := ratingTargets[input.Target.Type]
	if !ok {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown target type " + string(input.Target.Type))
	}
	if !entity.IsValidScore(input.Score) || !entity.IsValidComment(input.Comment) {
		return nil, domainerrors.ErrValidationFailed
	}

	rating := &entity.Rating{
		ID:      uuid.New(),
		UserID:  raterID,
		Target:  input.Target,
		Score:   input.Score,
		Comment: input.Comment,
	}

	var average float64
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if err := ops.lock(ctx, repos, input.Target.ID); err != nil {
			return err
		}

		interacted, err := ops.hasInteraction(ctx, repos.OrderRepo(), raterID, input.Target.ID)
		if err != nil {
			return errors.Wrap(err, "failed to check delivered orders")
		}
		if !interacted {
			return domainerrors.ErrNoInteraction
		}

		ratingRepo := repos.RatingRepo()
		exists, err := ratingRepo.ExistsForUser(ctx, raterID, input.Target)
		if err != nil {
			return errors.Wrap(err, "failed to check existing rating")
		}
		if exists {
			return domainerrors.ErrDuplicateRating
		}

		rating.CreatedAt = time.Now().UTC()
		if err := ratingRepo.Create(ctx, rating); err != nil {
			return errors.Wrap(err, "failed to insert rating")
		}

		if ops.storeAverage == nil {
			return nil
		}
		average, err = ratingRepo.Average(ctx, input.Target)
		if err != nil {
			return errors.Wrap(err, "failed to compute average rating")
		}

		return ops.storeAverage(ctx, repos, input.Target.ID, average)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create rating")
	}

	srv.log(ctx).Info("Rating created",
		slog.String("target_type", string(input.Target.Type)),
		slog.String("target_id", input.Target.ID.String()),
		slog.Int("score", input.Score),
		slog.Float64("average", average),
	)

	return rating, nil
}

// GetRatings lists the ratings of a target, newest first.
func (srv *ratingService) GetRatings(ctx context.Context, target entity.RatingTarget) ([]*entity.Rating, error) {
	if !target.Type.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown target type " + string(target.Type))
	}

	ratings, err := srv.ratingRepo.ListByTarget(ctx, target)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list ratings")
	}

	return ratings, nil
}
