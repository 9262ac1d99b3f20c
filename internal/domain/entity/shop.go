package entity

import (
	"time"

	"github.com/google/uuid"
)

// Shop is owned by a single user with the shop role.
type Shop struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Address     string    `json:"address"`
	Phone       string    `json:"phone"`
	ImageURL    *string   `json:"image_url,omitempty"`
	IsActive    bool      `json:"is_active"`
	Rating      float64   `json:"rating"` // mean of all shop ratings
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// IsOwnedBy reports whether userID owns the shop.
func (s *Shop) IsOwnedBy(userID uuid.UUID) bool {
	return s != nil && s.UserID == userID
}
