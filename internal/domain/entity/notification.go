package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType categorizes a notification for the client.
type NotificationType string

const (
	NotificationTypeOrderUpdate NotificationType = "order_update"
	NotificationTypeNewOrder    NotificationType = "new_order"
	NotificationTypeRating      NotificationType = "rating"
	NotificationTypeSystem      NotificationType = "system"
)

// IsValid checks if the NotificationType is a valid value.
func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationTypeOrderUpdate, NotificationTypeNewOrder, NotificationTypeRating, NotificationTypeSystem:
		return true
	default:
		return false
	}
}

// Notification is an in-app message addressed to one user.
type Notification struct {
	ID        uuid.UUID        `json:"id"`
	UserID    uuid.UUID        `json:"user_id"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Type      NotificationType `json:"type"`
	IsRead    bool             `json:"is_read"`
	CreatedAt time.Time        `json:"created_at"`
}
