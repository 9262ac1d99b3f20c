// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"zakaz/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterUserInput defines the data required to register a new account.
type RegisterUserInput struct {
	Email     string      `validate:"required,email,max=255"`
	Username  *string     `validate:"omitempty,min=3,max=50"`
	Phone     string      `validate:"required,uzphone"`
	Password  string      `validate:"required,min=6,max=72"`
	Role      entity.Role `validate:"required,oneof=customer shop courier"`
	FullName  string      `validate:"required,min=2,max=100"`
	AvatarURL *string     `validate:"omitempty,url"`
}

// UserUsecase defines the interface for account operations.
type UserUsecase interface {
	RegisterUser(ctx context.Context, input *RegisterUserInput) (*entity.User, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}
