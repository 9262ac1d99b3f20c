package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"zakaz/internal/delivery/api/response"
	deliverycontext "zakaz/internal/delivery/context"
	"zakaz/internal/domain/entity"
	domainerrors "zakaz/internal/domain/errors"
	"zakaz/internal/domain/service"
	mockSvc "zakaz/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func errorCodeOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	require.NotNil(t, body.Error)

	return body.Error.Code
}

func newAuthTestEcho(tokenSvc service.TokenService, roles ...entity.Role) *echo.Echo {
	auth := NewAuthMiddleware(tokenSvc)

	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(newDiscardLogger()).HandleHTTPError
	mws := []echo.MiddlewareFunc{auth.Authenticate}
	if len(roles) > 0 {
		mws = append(mws, auth.RequireRole(roles...))
	}
	e.GET("/whoami", func(c echo.Context) error {
		userID, _ := GetUserID(c)
		fromCtx, _ := deliverycontext.GetUserIDFromContext(c.Request().Context())
		if userID != fromCtx {
			return errors.New("request context out of sync")
		}

		return c.String(http.StatusOK, userID.String())
	}, mws...)

	return e
}

func serveWithAuth(e *echo.Echo, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestAuthenticate_Success(t *testing.T) {
	userID := uuid.New()
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateToken("good").Return(&service.Claims{UserID: userID, Roles: entity.Roles{entity.RoleCourier}}, nil)

	rec := serveWithAuth(newAuthTestEcho(tokenSvc), "Bearer good")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, userID.String(), rec.Body.String())
}

func TestAuthenticate_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		setup    func(m *mockSvc.MockTokenService)
		wantCode string
	}{
		{name: "no header", header: "", wantCode: "MISSING_TOKEN"},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz", wantCode: "INVALID_TOKEN_FORMAT"},
		{name: "empty bearer", header: "Bearer ", wantCode: "INVALID_TOKEN_FORMAT"},
		{
			name:   "expired token",
			header: "Bearer stale",
			setup: func(m *mockSvc.MockTokenService) {
				m.EXPECT().ValidateToken("stale").Return(nil, errors.New("token is expired"))
			},
			wantCode: "INVALID_TOKEN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockSvc.NewMockTokenService(t)
			if tt.setup != nil {
				tt.setup(tokenSvc)
			}

			rec := serveWithAuth(newAuthTestEcho(tokenSvc), tt.header)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, tt.wantCode, errorCodeOf(t, rec))
		})
	}
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name     string
		has      entity.Roles
		required []entity.Role
		wantCode int
	}{
		{name: "matching role", has: entity.Roles{entity.RoleShop}, required: []entity.Role{entity.RoleShop}, wantCode: http.StatusOK},
		{name: "any of several", has: entity.Roles{entity.RoleCourier}, required: []entity.Role{entity.RoleShop, entity.RoleCourier}, wantCode: http.StatusOK},
		{name: "customer on courier route", has: entity.Roles{entity.RoleCustomer}, required: []entity.Role{entity.RoleCourier}, wantCode: http.StatusForbidden},
		{name: "admin is not implied", has: entity.Roles{entity.RoleAdmin}, required: []entity.Role{entity.RoleShop}, wantCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockSvc.NewMockTokenService(t)
			tokenSvc.EXPECT().ValidateToken("tok").Return(&service.Claims{UserID: uuid.New(), Roles: tt.has}, nil)

			rec := serveWithAuth(newAuthTestEcho(tokenSvc, tt.required...), "Bearer tok")

			require.Equal(t, tt.wantCode, rec.Code, rec.Body.String())
			if tt.wantCode == http.StatusForbidden {
				assert.Equal(t, "FORBIDDEN", errorCodeOf(t, rec))
			}
		})
	}
}

func TestHandleHTTPError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantLogged bool
	}{
		{name: "domain conflict", err: errors.Wrap(domainerrors.ErrInsufficientStock, "create order"), wantStatus: http.StatusConflict, wantCode: "INSUFFICIENT_STOCK"},
		{name: "domain internal", err: domainerrors.ErrTransactionFailed, wantStatus: http.StatusInternalServerError, wantCode: "TRANSACTION_FAILED", wantLogged: true},
		{name: "unknown route", err: echo.ErrNotFound, wantStatus: http.StatusNotFound, wantCode: "ROUTE_NOT_FOUND"},
		{name: "body too large", err: echo.ErrStatusRequestEntityTooLarge, wantStatus: http.StatusRequestEntityTooLarge, wantCode: "REQUEST_TOO_LARGE"},
		{name: "teapot", err: echo.NewHTTPError(http.StatusTeapot), wantStatus: http.StatusTeapot, wantCode: "HTTP_ERROR"},
		{name: "plain error", err: errors.New("dial tcp: refused"), wantStatus: http.StatusInternalServerError, wantCode: "INTERNAL_ERROR", wantLogged: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs bytes.Buffer
			m := NewErrorMiddleware(slog.New(slog.NewTextHandler(&logs, nil)))

			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/x", nil), rec)

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, errorCodeOf(t, rec))
			assert.Equal(t, tt.wantLogged, logs.Len() > 0, logs.String())
			assert.NotContains(t, rec.Body.String(), "dial tcp")
		})
	}
}

func TestHandleHTTPError_DetailsHiddenForInternal(t *testing.T) {
	m := NewErrorMiddleware(newDiscardLogger())
	e := echo.New()

	rec := httptest.NewRecorder()
	m.HandleHTTPError(domainerrors.ErrInternalError.WithDetails("pq: relation missing"), e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec))
	assert.NotContains(t, rec.Body.String(), "relation missing")

	rec = httptest.NewRecorder()
	m.HandleHTTPError(domainerrors.ErrValidationFailed.WithDetails("phone: uzphone"), e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec))
	assert.Contains(t, rec.Body.String(), "phone: uzphone")
}
