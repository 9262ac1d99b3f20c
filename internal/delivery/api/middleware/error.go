// Package middleware holds the echo middleware specific to the JSON API: error rendering and authentication.
package middleware

import (
	"log/slog"
	"net/http"

	"zakaz/internal/delivery/api/response"
	deliverycontext "zakaz/internal/delivery/context"
	domainerrors "zakaz/internal/domain/errors"
	"zakaz/internal/errors"

	"github.com/labstack/echo/v4"
)

// httpErrorCodes names the machine codes of errors raised by echo itself.
var httpErrorCodes = map[int]string{
	http.StatusNotFound:              "ROUTE_NOT_FOUND",
	http.StatusMethodNotAllowed:      "METHOD_NOT_ALLOWED",
	http.StatusRequestEntityTooLarge: "REQUEST_TOO_LARGE",
	http.StatusTooManyRequests:       "RATE_LIMITED",
	http.StatusUnauthorized:          "UNAUTHORIZED",
	http.StatusBadRequest:            "BAD_REQUEST",
}

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError is echo's HTTPErrorHandler. Domain errors are rendered with their
// own status and code; anything unrecognized is logged and answered with a generic 500.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, m.logger)

	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		if appErr.Kind() == domainerrors.KindInternal {
			logger.ErrorContext(ctx, "Request failed", slog.Any("error", err))
		}
		_ = response.AppError(c, appErr)

		return
	}

	if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
		code, known := httpErrorCodes[httpErr.Code]
		if !known {
			code = "HTTP_ERROR"
		}

		_ = response.Error(c, httpErr.Code, code, message, nil)

		return
	}

	logger.ErrorContext(ctx, "Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.InternalServerError(c, domainerrors.ErrInternalError.ErrorCode(), domainerrors.ErrInternalError.Message())
}
