package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account of any role. The role is fixed at registration.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Username     *string   `json:"username,omitempty"`
	Phone        string    `json:"phone"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	FullName     string    `json:"full_name"`
	AvatarURL    *string   `json:"avatar_url,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsActiveCourier reports whether the user can take deliveries.
func (u *User) IsActiveCourier() bool {
	return u != nil && u.IsActive && u.Role == RoleCourier
}
