// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"zakaz/config"
	"zakaz/internal/domain/entity"
	"zakaz/internal/domain/service"
	"zakaz/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const accessTokenType = "access"

// accessClaims is the wire form of an access token issued by the identity provider.
type accessClaims struct {
	Roles []string `json:"roles"`
	Type  string   `json:"type,omitempty"`
	jwt.RegisteredClaims
}

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// It only verifies tokens; issuing them is the identity provider's job.
type jwtService struct {
	accessSecret []byte
	parser       *jwt.Parser
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &jwtService{
		accessSecret: []byte(cfg.SecretKey.Access),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
		),
	}, nil
}

// ValidateToken verifies the signature and expiry of tokenString and extracts the caller identity.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	var claims accessClaims

	token, err := s.parser.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (any, error) {
		return s.accessSecret, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}
	if claims.Type != "" && claims.Type != accessTokenType {
		return nil, errors.Errorf("unexpected token type %q", claims.Type)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Wrap(err, "token subject is not a user id")
	}

	roles := entity.RolesFromStrings(claims.Roles)
	if len(roles) == 0 {
		return nil, errors.New("token carries no known role")
	}

	return &service.Claims{
		UserID:           userID,
		Roles:            roles,
		RegisteredClaims: claims.RegisteredClaims,
	}, nil
}
