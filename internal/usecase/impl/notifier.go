package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "zakaz/internal/delivery/context"
	"zakaz/internal/domain/entity"
	"zakaz/internal/domain/repository"
	"zakaz/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// outbox collects notifications written inside a transaction. They are handed to
// the event publisher only after the transaction commits.
type outbox struct {
	notifications []*entity.Notification
}

func (o *outbox) notify(
	ctx context.Context,
	repo repository.NotificationRepository,
	userID uuid.UUID,
	title, message string,
	notificationType entity.NotificationType,
) error {
	notification := &entity.Notification{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     title,
		Message:   message,
		Type:      notificationType,
		CreatedAt: time.Now().UTC(),
	}

	if err := repo.Create(ctx, notification); err != nil {
		return errors.Wrap(err, "failed to persist notification")
	}
	o.notifications = append(o.notifications, notification)

	return nil
}

// notifier dispatches committed notifications. Dispatch is best effort: a publish
// failure is logged and never reaches the caller.
type notifier struct {
	publisher service.EventPublisher
	logger    *slog.Logger
}

func (n *notifier) dispatch(ctx context.Context, orderID *uuid.UUID, notifications ...*entity.Notification) {
	if n.publisher == nil {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, n.logger)
	requestID := deliverycontext.GetRequestIDFromContext(ctx)

	for _, notification := range notifications {
		event := &service.NotificationEvent{
			RequestID:      requestID,
			NotificationID: notification.ID.String(),
			UserID:         notification.UserID.String(),
			Type:           string(notification.Type),
			Title:          notification.Title,
			Message:        notification.Message,
			CreatedAt:      notification.CreatedAt.Format(time.RFC3339),
		}
		if orderID != nil {
			event.OrderID = orderID.String()
		}

		if err := n.publisher.PublishNotificationEvent(ctx, event); err != nil {
			logger.Warn("Failed to publish notification event",
				slog.String("notification_id", event.NotificationID),
				slog.Any("error", err),
			)
		}
	}
}
