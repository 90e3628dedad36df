package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"tuition/internal/delivery/api/response"
	"tuition/internal/usecase"
)

// ActivityHandlerParams holds dependencies for ActivityHandler, injected by Fx.
type ActivityHandlerParams struct {
	fx.In

	ActivityUC     usecase.ActivityUsecase
	NotificationUC usecase.NotificationUsecase
	Logger         *slog.Logger
}

// ActivityHandler serves the admin activity log and users' notifications.
type ActivityHandler struct {
	activityUC     usecase.ActivityUsecase
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

// NewActivityHandler is the constructor for ActivityHandler
func NewActivityHandler(params ActivityHandlerParams) *ActivityHandler {
	return &ActivityHandler{
		activityUC:     params.ActivityUC,
		notificationUC: params.NotificationUC,
		logger:         params.Logger,
	}
}

// ListActivity pages through the activity log.
func (h *ActivityHandler) ListActivity(c echo.Context) error {
	query, err := bindListQuery(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	page, err := h.activityUC.ListActivity(c.Request().Context(), query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, page)
}

// ListNotifications pages through the caller's notifications. status=unread|read filters.
func (h *ActivityHandler) ListNotifications(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	query, err := bindListQuery(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	page, err := h.notificationUC.ListNotifications(c.Request().Context(), userID, query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, page)
}

// MarkNotificationRead marks one of the caller's notifications as read.
func (h *ActivityHandler) MarkNotificationRead(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	notificationID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.notificationUC.MarkRead(c.Request().Context(), userID, notificationID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithMessage(c, http.StatusOK, "notification marked as read", map[string]string{"id": notificationID.String()})
}
