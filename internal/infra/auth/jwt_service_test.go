package auth

import (
	"testing"
	"time"

	"zakaz/config"
	"zakaz/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAccessSecret = "test_access_secret_key_very_long_for_testing"

func newTestJWTService(t *testing.T) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = testAccessSecret

	srv, err := NewJWTService(cfg)
	require.NoError(t, err)

	return srv.(*jwtService)
}

func signToken(t *testing.T, method jwt.SigningMethod, key any, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)

	return token
}

func validClaims(userID uuid.UUID, roles ...string) jwt.MapClaims {
	return jwt.MapClaims{
		"sub":   userID.String(),
		"roles": roles,
		"type":  "access",
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(15 * time.Minute).Unix(),
	}
}

func TestJWTService_ValidateToken(t *testing.T) {
	srv := newTestJWTService(t)
	userID := uuid.New()

	token := signToken(t, jwt.SigningMethodHS256, []byte(testAccessSecret), validClaims(userID, "courier"))

	claims, err := srv.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, entity.Roles{entity.RoleCourier}, claims.Roles)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestJWTService_ValidateToken_Rejections(t *testing.T) {
	srv := newTestJWTService(t)
	userID := uuid.New()

	expired := validClaims(userID, "customer")
	expired["exp"] = time.Now().Add(-time.Minute).Unix()

	noExpiry := validClaims(userID, "customer")
	delete(noExpiry, "exp")

	refresh := validClaims(userID, "customer")
	refresh["type"] = "refresh"

	badSubject := validClaims(userID, "customer")
	badSubject["sub"] = "user-42"

	tests := []struct {
		name  string
		token string
	}{
		{name: "not a jwt", token: "clearly-not-a-jwt-token-format"},
		{name: "wrong secret", token: signToken(t, jwt.SigningMethodHS256, []byte("another-secret"), validClaims(userID, "customer"))},
		{name: "unexpected algorithm", token: signToken(t, jwt.SigningMethodHS512, []byte(testAccessSecret), validClaims(userID, "customer"))},
		{name: "expired", token: signToken(t, jwt.SigningMethodHS256, []byte(testAccessSecret), expired)},
		{name: "missing expiry", token: signToken(t, jwt.SigningMethodHS256, []byte(testAccessSecret), noExpiry)},
		{name: "refresh token", token: signToken(t, jwt.SigningMethodHS256, []byte(testAccessSecret), refresh)},
		{name: "subject is not a uuid", token: signToken(t, jwt.SigningMethodHS256, []byte(testAccessSecret), badSubject)},
		{name: "unknown role", token: signToken(t, jwt.SigningMethodHS256, []byte(testAccessSecret), validClaims(userID, "merchant"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := srv.ValidateToken(tt.token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}
