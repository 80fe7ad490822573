package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/octobees/crm-backend/internal/repository"
	"github.com/octobees/crm-backend/internal/service"
)

// JSONError sends the legacy error body: {"error": "<message>"}.
func JSONError(c echo.Context, status int, message string) error {
	if status == 0 {
		status = http.StatusInternalServerError
	}
	return c.JSON(status, map[string]string{"error": message})
}

// JSONMessage sends the legacy confirmation body: {"message": "<message>"}.
func JSONMessage(c echo.Context, status int, message string) error {
	if status == 0 {
		status = http.StatusOK
	}
	return c.JSON(status, map[string]string{"message": message})
}

// writeServiceError maps service/repository errors onto the legacy status
// codes: validation failures are 400, missing rows are 404, and everything
// else is logged server-side and answered with a generic 500 so no internal
// detail leaks to the client.
func writeServiceError(c echo.Context, err error, fallback string) error {
	var validationErr service.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return JSONError(c, http.StatusBadRequest, validationErr.Message)
	case errors.Is(err, repository.ErrContactNotFound):
		return JSONError(c, http.StatusNotFound, "Contact not found")
	case errors.Is(err, repository.ErrCompanyNotFound):
		return JSONError(c, http.StatusNotFound, "Company not found")
	case errors.Is(err, repository.ErrInteractionNotFound):
		return JSONError(c, http.StatusNotFound, "Interaction not found")
	case errors.Is(err, repository.ErrNotificationNotFound):
		return JSONError(c, http.StatusNotFound, "Notification not found")
	case errors.Is(err, repository.ErrMeetingNotFound):
		return JSONError(c, http.StatusNotFound, "Meeting not found")
	case errors.Is(err, repository.ErrTaskNotFound):
		return JSONError(c, http.StatusNotFound, "Task not found")
	default:
		log.Printf("handler error: %v", err)
		return JSONError(c, http.StatusInternalServerError, fallback)
	}
}

// parseID reads the :id path parameter. The legacy router used an integer
// path converter, so a non-numeric id behaves like a missing row.
func parseID(c echo.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
