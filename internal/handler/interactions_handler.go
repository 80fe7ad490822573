package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/octobees/crm-backend/internal/dto"
	"github.com/octobees/crm-backend/internal/entity"
	"github.com/octobees/crm-backend/internal/service"
)

// InteractionsHandler exposes the /api/interactions endpoints.
type InteractionsHandler struct {
	service *service.InteractionsService
}

// NewInteractionsHandler creates a new handler instance.
func NewInteractionsHandler(service *service.InteractionsService) *InteractionsHandler {
	return &InteractionsHandler{service: service}
}

// List handles GET /api/interactions.
func (h *InteractionsHandler) List(c echo.Context) error {
	interactions, err := h.service.List(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err, "Failed to fetch interactions")
	}
	if interactions == nil {
		interactions = []entity.Interaction{}
	}
	return c.JSON(http.StatusOK, interactions)
}

// Count handles GET /api/interactions/count.
func (h *InteractionsHandler) Count(c echo.Context) error {
	count, err := h.service.Count(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err, "Failed to count interactions")
	}
	return c.JSON(http.StatusOK, map[string]int64{"count": count})
}

// Create handles POST /api/interactions. The interaction and its
// notification commit in the same transaction.
func (h *InteractionsHandler) Create(c echo.Context) error {
	var payload dto.InteractionCreate
	if err := c.Bind(&payload); err != nil {
		return JSONError(c, http.StatusBadRequest, "Invalid request payload")
	}

	interaction, err := h.service.Create(c.Request().Context(), payload)
	if err != nil {
		return writeServiceError(c, err, "Failed to create interaction")
	}
	return c.JSON(http.StatusCreated, interaction)
}

// Delete handles DELETE /api/interactions/:id.
func (h *InteractionsHandler) Delete(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return JSONError(c, http.StatusNotFound, "Interaction not found")
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return writeServiceError(c, err, fmt.Sprintf("Failed to delete interaction with ID %d", id))
	}
	return JSONMessage(c, http.StatusOK, fmt.Sprintf("Interaction with ID %d deleted successfully", id))
}
