package handler

import (
	"log/slog"
	"net/http"

	"zakaz/internal/delivery/api/response"
	"zakaz/internal/domain/entity"
	"zakaz/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	defaultNotificationLimit = 20
	maxNotificationLimit     = 100
)

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
	Logger         *slog.Logger
}

// NotificationHandler serves the caller's in-app notifications.
type NotificationHandler struct {
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: params.NotificationUC,
		logger:         params.Logger,
	}
}

// CreateNotificationRequest is the body of POST /notifications.
type CreateNotificationRequest struct {
	UserID  uuid.UUID `json:"user_id" validate:"required"`
	Title   string    `json:"title" validate:"required,max=200"`
	Message string    `json:"message" validate:"required,max=2000"`
	Type    string    `json:"type" validate:"required,oneof=order_update new_order rating system"`
}

// GetNotifications pages through the caller's notifications, newest first.
func (h *NotificationHandler) GetNotifications(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	limit, err := queryInt(c, "limit", defaultNotificationLimit)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	offset, err := queryInt(c, "offset", 0)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if limit == 0 || limit > maxNotificationLimit {
		limit = maxNotificationLimit
	}

	notifications, err := h.notificationUC.GetNotifications(c.Request().Context(), userID, limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if notifications == nil {
		notifications = []*entity.Notification{}
	}

	return response.Success(c, http.StatusOK, notifications)
}

// CreateNotification sends a notification to any user.
func (h *NotificationHandler) CreateNotification(c echo.Context) error {
	var req CreateNotificationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	notification, err := h.notificationUC.CreateNotification(c.Request().Context(), &usecase.CreateNotificationInput{
		UserID:  req.UserID,
		Title:   req.Title,
		Message: req.Message,
		Type:    entity.NotificationType(req.Type),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, notification)
}

// MarkRead marks one of the caller's notifications as read.
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	notificationID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.notificationUC.MarkNotificationRead(c.Request().Context(), userID, notificationID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
