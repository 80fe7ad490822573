package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/octobees/crm-backend/internal/dto"
	"github.com/octobees/crm-backend/internal/entity"
	"github.com/octobees/crm-backend/internal/service"
)

// CompaniesHandler exposes the /api/companies endpoints.
type CompaniesHandler struct {
	service *service.CompaniesService
}

// NewCompaniesHandler creates a new handler instance.
func NewCompaniesHandler(service *service.CompaniesService) *CompaniesHandler {
	return &CompaniesHandler{service: service}
}

// List handles GET /api/companies.
func (h *CompaniesHandler) List(c echo.Context) error {
	companies, err := h.service.List(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err, "Failed to fetch companies")
	}
	if companies == nil {
		companies = []entity.Company{}
	}
	return c.JSON(http.StatusOK, companies)
}

// Get handles GET /api/companies/:id.
func (h *CompaniesHandler) Get(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return JSONError(c, http.StatusNotFound, "Company not found")
	}

	company, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err, fmt.Sprintf("Failed to fetch company with ID %d", id))
	}
	return c.JSON(http.StatusOK, company)
}

// Create handles POST /api/companies. Duplicate names are not pre-checked;
// the unique constraint rejects them and the client sees a generic failure.
func (h *CompaniesHandler) Create(c echo.Context) error {
	var payload dto.CompanyCreate
	if err := c.Bind(&payload); err != nil {
		return JSONError(c, http.StatusBadRequest, "Invalid request payload")
	}

	company, err := h.service.Create(c.Request().Context(), payload)
	if err != nil {
		return writeServiceError(c, err, "Failed to create company")
	}
	return c.JSON(http.StatusCreated, company)
}

// Update handles PUT /api/companies/:id.
func (h *CompaniesHandler) Update(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return JSONError(c, http.StatusNotFound, "Company not found")
	}

	var payload dto.CompanyPatch
	if err := c.Bind(&payload); err != nil {
		return JSONError(c, http.StatusBadRequest, "Invalid request payload")
	}

	company, err := h.service.Update(c.Request().Context(), id, payload)
	if err != nil {
		return writeServiceError(c, err, fmt.Sprintf("Failed to update company with ID %d", id))
	}
	return c.JSON(http.StatusOK, company)
}

// Delete handles DELETE /api/companies/:id.
func (h *CompaniesHandler) Delete(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return JSONError(c, http.StatusNotFound, "Company not found")
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return writeServiceError(c, err, fmt.Sprintf("Failed to delete company with ID %d", id))
	}
	return JSONMessage(c, http.StatusOK, fmt.Sprintf("Company with ID %d deleted successfully", id))
}
