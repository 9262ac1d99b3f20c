package service

import (
	"zakaz/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims are the identity claims carried by an access token.
type Claims struct {
	UserID uuid.UUID
	Roles  entity.Roles
	jwt.RegisteredClaims
}

// TokenService validates bearer tokens issued by the identity provider.
type TokenService interface {
	// ValidateToken parses and verifies tokenString and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)
}
