package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/octobees/crm-backend/internal/entity"
	"github.com/octobees/crm-backend/internal/service"
)

// NotificationsHandler exposes the /api/notifications endpoints.
type NotificationsHandler struct {
	service *service.NotificationsService
}

// NewNotificationsHandler creates a new handler instance.
func NewNotificationsHandler(service *service.NotificationsService) *NotificationsHandler {
	return &NotificationsHandler{service: service}
}

// List handles GET /api/notifications.
func (h *NotificationsHandler) List(c echo.Context) error {
	notifications, err := h.service.List(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err, "Failed to fetch notifications")
	}
	if notifications == nil {
		notifications = []entity.Notification{}
	}
	return c.JSON(http.StatusOK, notifications)
}

// MarkRead handles PUT /api/notifications/:id/read. Re-marking an already
// read notification is a no-op and still answers 200.
func (h *NotificationsHandler) MarkRead(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return JSONError(c, http.StatusNotFound, "Notification not found")
	}

	notification, err := h.service.MarkRead(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err, fmt.Sprintf("Failed to mark notification %d as read", id))
	}
	return c.JSON(http.StatusOK, notification)
}
