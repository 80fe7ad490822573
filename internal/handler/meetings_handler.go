package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/octobees/crm-backend/internal/dto"
	"github.com/octobees/crm-backend/internal/entity"
	"github.com/octobees/crm-backend/internal/service"
)

// MeetingsHandler exposes the /api/meetings endpoints.
type MeetingsHandler struct {
	service *service.MeetingsService
}

// NewMeetingsHandler creates a new handler instance.
func NewMeetingsHandler(service *service.MeetingsService) *MeetingsHandler {
	return &MeetingsHandler{service: service}
}

// List handles GET /api/meetings. Only upcoming meetings are returned unless
// all=true is passed.
func (h *MeetingsHandler) List(c echo.Context) error {
	includePast := c.QueryParam("all") == "true"

	meetings, err := h.service.List(c.Request().Context(), includePast)
	if err != nil {
		return writeServiceError(c, err, "Failed to fetch meetings")
	}
	if meetings == nil {
		meetings = []entity.Meeting{}
	}
	return c.JSON(http.StatusOK, meetings)
}

// Get handles GET /api/meetings/:id.
func (h *MeetingsHandler) Get(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return JSONError(c, http.StatusNotFound, "Meeting not found")
	}

	meeting, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err, fmt.Sprintf("Failed to fetch meeting with ID %d", id))
	}
	return c.JSON(http.StatusOK, meeting)
}

// Create handles POST /api/meetings.
func (h *MeetingsHandler) Create(c echo.Context) error {
	var payload dto.MeetingCreate
	if err := c.Bind(&payload); err != nil {
		return JSONError(c, http.StatusBadRequest, "Invalid request payload")
	}

	meeting, err := h.service.Create(c.Request().Context(), payload)
	if err != nil {
		return writeServiceError(c, err, "Failed to create meeting")
	}
	return c.JSON(http.StatusCreated, meeting)
}

// Update handles PUT /api/meetings/:id.
func (h *MeetingsHandler) Update(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return JSONError(c, http.StatusNotFound, "Meeting not found")
	}

	var payload dto.MeetingPatch
	if err := c.Bind(&payload); err != nil {
		return JSONError(c, http.StatusBadRequest, "Invalid request payload")
	}

	meeting, err := h.service.Update(c.Request().Context(), id, payload)
	if err != nil {
		return writeServiceError(c, err, fmt.Sprintf("Failed to update meeting with ID %d", id))
	}
	return c.JSON(http.StatusOK, meeting)
}

// Delete handles DELETE /api/meetings/:id.
func (h *MeetingsHandler) Delete(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return JSONError(c, http.StatusNotFound, "Meeting not found")
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return writeServiceError(c, err, fmt.Sprintf("Failed to delete meeting with ID %d", id))
	}
	return JSONMessage(c, http.StatusOK, fmt.Sprintf("Meeting with ID %d deleted successfully", id))
}

// UpcomingCount handles GET /api/meetings/upcoming/count.
func (h *MeetingsHandler) UpcomingCount(c echo.Context) error {
	count, err := h.service.UpcomingCount(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err, "Failed to count upcoming meetings")
	}
	return c.JSON(http.StatusOK, map[string]int64{"count": count})
}
