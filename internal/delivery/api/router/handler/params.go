package handler

import (
	"strconv"

	"zakaz/internal/delivery/api/middleware"
	domainerrors "zakaz/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// pathID parses the uuid path parameter name.
func pathID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails(name + ": must be a uuid")
	}

	return id, nil
}

// optionalQueryID parses an optional uuid query parameter.
func optionalQueryID(c echo.Context, name string) (*uuid.UUID, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(name + ": must be a uuid")
	}

	return &id, nil
}

// queryInt parses an optional non-negative integer query parameter.
func queryInt(c echo.Context, name string, fallback int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0, domainerrors.ErrValidationFailed.WithDetails(name + ": must be a non-negative integer")
	}

	return value, nil
}

// callerID returns the authenticated caller or a forbidden error when the route was mounted without Authenticate.
func callerID(c echo.Context) (uuid.UUID, error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, domainerrors.ErrForbidden.WithDetails("caller is not authenticated")
	}

	return userID, nil
}

// bindAndValidate decodes the JSON body into req and runs its validate tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	return c.Validate(req)
}
