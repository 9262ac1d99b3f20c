package impl

import (
	"context"
	"log/slog"

	deliverycontext "zakaz/internal/delivery/context"
	"zakaz/internal/domain/entity"
	domainerrors "zakaz/internal/domain/errors"
	"zakaz/internal/domain/repository"
	"zakaz/internal/domain/service"
	"zakaz/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultNotificationPageSize = 50

// notificationService implements the NotificationUsecase interface.
type notificationService struct {
	userRepo         repository.UserRepository
	notificationRepo repository.NotificationRepository
	notifier         *notifier
	logger           *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	UserRepo         repository.UserRepository
	NotificationRepo repository.NotificationRepository
	Publisher        service.EventPublisher
	Logger           *slog.Logger
}

// NewNotificationService creates a new notification service.
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		userRepo:         params.UserRepo,
		notificationRepo: params.NotificationRepo,
		notifier:         &notifier{publisher: params.Publisher, logger: params.Logger},
		logger:           params.Logger,
	}
}

func (s *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// CreateNotification stores a notification for an existing user and publishes it.
func (s *notificationService) CreateNotification(ctx context.Context, input *usecase.CreateNotificationInput) (*entity.Notification, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.FindByID(ctx, input.UserID); err != nil {
		return nil, mapNotFound(err, repository.ErrUserNotFound, domainerrors.ErrUserNotFound, "failed to find recipient")
	}

	var pending outbox
	if err := pending.notify(ctx, s.notificationRepo, input.UserID, input.Title, input.Message, input.Type); err != nil {
		return nil, err
	}

	s.log(ctx).Info("Notification created", slog.String("user_id", input.UserID.String()), slog.String("type", string(input.Type)))
	s.notifier.dispatch(ctx, nil, pending.notifications...)

	return pending.notifications[0], nil
}

// GetNotifications returns a page of the user's notifications, newest first.
func (s *notificationService) GetNotifications(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Notification, error) {
	if limit <= 0 {
		limit = defaultNotificationPageSize
	}
	if offset < 0 {
		offset = 0
	}

	notifications, err := s.notificationRepo.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	return notifications, nil
}

// MarkNotificationRead flags one of the user's own notifications as read.
func (s *notificationService) MarkNotificationRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	notification, err := s.notificationRepo.FindByID(ctx, notificationID)
	if err != nil {
		return mapNotFound(err, repository.ErrNotificationNotFound, domainerrors.ErrNotificationNotFound, "failed to find notification")
	}
	if notification.UserID != userID {
		return domainerrors.ErrForbidden.WithDetails("notification belongs to another user")
	}
	if notification.IsRead {
		return nil
	}

	if err := s.notificationRepo.MarkRead(ctx, notificationID, userID); err != nil {
		return mapNotFound(err, repository.ErrNotificationNotFound, domainerrors.ErrNotificationNotFound, "failed to mark notification read")
	}

	return nil
}
