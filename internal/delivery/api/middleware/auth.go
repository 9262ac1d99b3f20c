package middleware

import (
	"log/slog"
	"strings"

	"zakaz/internal/delivery/api/response"
	deliverycontext "zakaz/internal/delivery/context"
	"zakaz/internal/domain/entity"
	domainerrors "zakaz/internal/domain/errors"
	"zakaz/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware authenticates callers with the bearer token and enforces role requirements.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the access token and stores the caller's id and roles on the request.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization sarlavhasi yo'q")
		}

		tokenString, found := strings.CutPrefix(authHeader, bearerPrefix)
		if !found || tokenString == "" {
			return response.Unauthorized(c, "INVALID_TOKEN_FORMAT", "Bearer token kutilmoqda")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Token yaroqsiz yoki muddati o'tgan")
		}

		c.Set(string(deliverycontext.KeyUserID), claims.UserID)
		c.Set(string(deliverycontext.KeyRoles), claims.Roles)

		ctx := deliverycontext.WithUserID(c.Request().Context(), claims.UserID)
		if logger := deliverycontext.GetLogger(ctx); logger != nil {
			ctx = deliverycontext.WithLogger(ctx, logger.With(slog.String("user_id", claims.UserID.String())))
		}
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// RequireRole lets the request through when the token carries any of roles.
// It must be used after Authenticate.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			callerRoles, ok := GetRoles(c)
			if !ok {
				return response.AppError(c, domainerrors.ErrForbidden)
			}

			for _, role := range roles {
				if callerRoles.Contains(role) {
					return next(c)
				}
			}

			return response.AppError(c, domainerrors.ErrForbidden.WithDetails("required role: "+joinRoles(roles)))
		}
	}
}

func joinRoles(roles []entity.Role) string {
	return strings.Join(entity.Roles(roles).ToStrings(), " | ")
}

// GetUserID returns the authenticated caller set by Authenticate.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(string(deliverycontext.KeyUserID)).(uuid.UUID)

	return userID, ok
}

// GetRoles returns the roles carried by the caller's token.
func GetRoles(c echo.Context) (entity.Roles, bool) {
	roles, ok := c.Get(string(deliverycontext.KeyRoles)).(entity.Roles)

	return roles, ok
}
