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

// courierService implements the CourierUsecase interface.
type courierService struct {
	userRepo     repository.UserRepository
	locationRepo repository.CourierLocationRepository
	logger       *slog.Logger
}

// CourierServiceParams holds dependencies for CourierService, injected by Fx.
type CourierServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	LocationRepo repository.CourierLocationRepository
	Logger       *slog.Logger
}

// NewCourierService is the constructor for courierService.
func NewCourierService(params CourierServiceParams) usecase.CourierUsecase {
	return &courierService{
		userRepo:     params.UserRepo,
		locationRepo: params.LocationRepo,
		logger:       params.Logger,
	}
}

func (srv *courierService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// UpdateLocation replaces the courier's last known position.
func (srv *courierService) UpdateLocation(
	ctx context.Context,
	courierID uuid.UUID,
	input *usecase.UpdateLocationInput,
) (*entity.CourierLocation, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	courier, err := srv.userRepo.FindByID(ctx, courierID)
	if err != nil {
		return nil, mapNotFound(err, repository.ErrUserNotFound, domainerrors.ErrCourierInvalid, "failed to find courier")
	}
	if !courier.IsActiveCourier() {
		return nil, domainerrors.ErrForbidden.WithDetails("only active couriers report a location")
	}

	location := &entity.CourierLocation{
		ID:        uuid.New(),
		CourierID: courier.ID,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		Accuracy:  input.Accuracy,
		IsOnline:  input.IsOnline,
		UpdatedAt: time.Now().UTC(),
	}
	if !location.HasValidCoordinates() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("coordinates out of range")
	}

	if err := srv.locationRepo.Upsert(ctx, location); err != nil {
		return nil, errors.Wrap(err, "failed to store courier location")
	}

	srv.log(ctx).Debug("Courier location updated", slog.String("courier_id", courier.ID.String()), slog.Bool("online", location.IsOnline))

	return location, nil
}

// GetLocation returns the last reported position of a courier.
func (srv *courierService) GetLocation(ctx context.Context, courierID uuid.UUID) (*entity.CourierLocation, error) {
	location, err := srv.locationRepo.FindByCourierID(ctx, courierID)
	if err != nil {
		return nil, mapNotFound(err, repository.ErrCourierLocationNotFound, domainerrors.ErrCourierLocationNotFound, "failed to find courier location")
	}

	return location, nil
}
