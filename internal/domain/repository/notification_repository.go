package repository

import (
	"context"
	"errors"

	"zakaz/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrNotificationNotFound is returned when a notification is not found or belongs to someone else.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository defines the interface for notification-related database operations.
type NotificationRepository interface {
	// Create persists a new notification.
	Create(ctx context.Context, notification *entity.Notification) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error)

	// ListByUser retrieves the notifications of a user, newest first. Non-positive limit means no limit.
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Notification, error)

	// MarkRead flags the notification as read if it belongs to userID.
	MarkRead(ctx context.Context, id, userID uuid.UUID) error
}
