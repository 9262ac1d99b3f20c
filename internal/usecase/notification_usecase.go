package usecase

import (
	"context"

	"zakaz/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateNotificationInput defines a notification sent by an administrator.
type CreateNotificationInput struct {
	UserID  uuid.UUID               `validate:"required"`
	Title   string                  `validate:"required,max=200"`
	Message string                  `validate:"required,max=2000"`
	Type    entity.NotificationType `validate:"required,oneof=order_update new_order rating system"`
}

// NotificationUsecase defines the interface for notification management use cases
type NotificationUsecase interface {
	CreateNotification(ctx context.Context, input *CreateNotificationInput) (*entity.Notification, error)

	// GetNotifications returns the user's notifications, newest first.
	GetNotifications(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Notification, error)

	// MarkNotificationRead flags one of the user's own notifications as read.
	MarkNotificationRead(ctx context.Context, userID, notificationID uuid.UUID) error
}
