package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/octobees/crm-backend/internal/service"
)

// ReportsHandler exposes the dashboard aggregate endpoints.
type ReportsHandler struct {
	service *service.ReportsService
}

// NewReportsHandler creates a new handler instance.
func NewReportsHandler(service *service.ReportsService) *ReportsHandler {
	return &ReportsHandler{service: service}
}

// InteractionsByType handles GET /api/reports/interactions-by-type.
func (h *ReportsHandler) InteractionsByType(c echo.Context) error {
	counts, err := h.service.InteractionsByType(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err, "Failed to build interaction report")
	}
	return c.JSON(http.StatusOK, counts)
}

// SalesPipeline handles GET /api/sales/pipeline.
func (h *ReportsHandler) SalesPipeline(c echo.Context) error {
	pipeline, err := h.service.SalesPipeline(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err, "Failed to build sales pipeline")
	}
	return c.JSON(http.StatusOK, pipeline)
}
