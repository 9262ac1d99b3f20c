package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"zakaz/internal/delivery/api/response"
	"zakaz/internal/domain/entity"
	domainerrors "zakaz/internal/domain/errors"
	"zakaz/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler serves account registration and the caller's profile.
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Email     string  `json:"email" validate:"required,email,max=255"`
	Username  *string `json:"username" validate:"omitempty,min=3,max=50"`
	Phone     string  `json:"phone" validate:"required,uzphone"`
	Password  string  `json:"password" validate:"required,min=6,max=72"`
	Role      string  `json:"role" validate:"required,oneof=customer shop courier"`
	FullName  string  `json:"full_name" validate:"required,min=2,max=100"`
	AvatarURL *string `json:"avatar_url" validate:"omitempty,url"`
}

// Register creates an account. Tokens are issued by the identity provider, not here.
func (h *UserHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("malformed request body"))
	}
	req.Email = strings.TrimSpace(req.Email)
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.userUC.RegisterUser(c.Request().Context(), &usecase.RegisterUserInput{
		Email:     req.Email,
		Username:  req.Username,
		Phone:     req.Phone,
		Password:  req.Password,
		Role:      entity.Role(req.Role),
		FullName:  req.FullName,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, user)
}

// Me returns the authenticated caller's account.
func (h *UserHandler) Me(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.userUC.GetUser(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}
