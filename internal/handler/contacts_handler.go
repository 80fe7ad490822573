package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/octobees/crm-backend/internal/dto"
	"github.com/octobees/crm-backend/internal/entity"
	"github.com/octobees/crm-backend/internal/service"
)

// ContactsHandler exposes the /api/contacts endpoints.
type ContactsHandler struct {
	service *service.ContactsService
}

// NewContactsHandler creates a new handler instance.
func NewContactsHandler(service *service.ContactsService) *ContactsHandler {
	return &ContactsHandler{service: service}
}

// List handles GET /api/contacts.
func (h *ContactsHandler) List(c echo.Context) error {
	contacts, err := h.service.List(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err, "Failed to fetch contacts")
	}
	if contacts == nil {
		contacts = []entity.Contact{}
	}
	return c.JSON(http.StatusOK, contacts)
}

// Get handles GET /api/contacts/:id.
func (h *ContactsHandler) Get(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return JSONError(c, http.StatusNotFound, "Contact not found")
	}

	contact, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err, fmt.Sprintf("Failed to fetch contact with ID %d", id))
	}
	return c.JSON(http.StatusOK, contact)
}

// Create handles POST /api/contacts.
func (h *ContactsHandler) Create(c echo.Context) error {
	var payload dto.ContactCreate
	if err := c.Bind(&payload); err != nil {
		return JSONError(c, http.StatusBadRequest, "Invalid request payload")
	}

	contact, err := h.service.Create(c.Request().Context(), payload)
	if err != nil {
		return writeServiceError(c, err, "Failed to create contact")
	}
	return c.JSON(http.StatusCreated, contact)
}

// Update handles PUT /api/contacts/:id.
func (h *ContactsHandler) Update(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return JSONError(c, http.StatusNotFound, "Contact not found")
	}

	var payload dto.ContactPatch
	if err := c.Bind(&payload); err != nil {
		return JSONError(c, http.StatusBadRequest, "Invalid request payload")
	}

	contact, err := h.service.Update(c.Request().Context(), id, payload)
	if err != nil {
		return writeServiceError(c, err, fmt.Sprintf("Failed to update contact with ID %d", id))
	}
	return c.JSON(http.StatusOK, contact)
}

// Delete handles DELETE /api/contacts/:id.
func (h *ContactsHandler) Delete(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return JSONError(c, http.StatusNotFound, "Contact not found")
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return writeServiceError(c, err, fmt.Sprintf("Failed to delete contact with ID %d", id))
	}
	return JSONMessage(c, http.StatusOK, fmt.Sprintf("Contact with ID %d deleted successfully", id))
}
