package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/octobees/crm-backend/internal/dto"
	"github.com/octobees/crm-backend/internal/entity"
	"github.com/octobees/crm-backend/internal/service"
)

// TasksHandler exposes the /api/tasks endpoints.
type TasksHandler struct {
	service *service.TasksService
}

// NewTasksHandler creates a new handler instance.
func NewTasksHandler(service *service.TasksService) *TasksHandler {
	return &TasksHandler{service: service}
}

// List handles GET /api/tasks with optional contact_id, company_id and
// status query filters. Unparsable id filters are ignored, like the legacy
// integer query converters did.
func (h *TasksHandler) List(c echo.Context) error {
	var filter dto.TaskFilter
	if raw := c.QueryParam("contact_id"); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			filter.ContactID = &id
		}
	}
	if raw := c.QueryParam("company_id"); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			filter.CompanyID = &id
		}
	}
	if raw := c.QueryParam("status"); raw != "" {
		filter.Status = &raw
	}

	tasks, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return writeServiceError(c, err, "Failed to fetch tasks")
	}
	if tasks == nil {
		tasks = []entity.Task{}
	}
	return c.JSON(http.StatusOK, tasks)
}

// Get handles GET /api/tasks/:id.
func (h *TasksHandler) Get(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return JSONError(c, http.StatusNotFound, "Task not found")
	}

	task, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err, fmt.Sprintf("Failed to fetch task with ID %d", id))
	}
	return c.JSON(http.StatusOK, task)
}

// Create handles POST /api/tasks.
func (h *TasksHandler) Create(c echo.Context) error {
	var payload dto.TaskCreate
	if err := c.Bind(&payload); err != nil {
		return JSONError(c, http.StatusBadRequest, "Invalid request payload")
	}

	task, err := h.service.Create(c.Request().Context(), payload)
	if err != nil {
		return writeServiceError(c, err, "Failed to create task")
	}
	return c.JSON(http.StatusCreated, task)
}

// Update handles PUT /api/tasks/:id.
func (h *TasksHandler) Update(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return JSONError(c, http.StatusNotFound, "Task not found")
	}

	var payload dto.TaskPatch
	if err := c.Bind(&payload); err != nil {
		return JSONError(c, http.StatusBadRequest, "Invalid request payload")
	}

	task, err := h.service.Update(c.Request().Context(), id, payload)
	if err != nil {
		return writeServiceError(c, err, fmt.Sprintf("Failed to update task with ID %d", id))
	}
	return c.JSON(http.StatusOK, task)
}

// Delete handles DELETE /api/tasks/:id.
func (h *TasksHandler) Delete(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return JSONError(c, http.StatusNotFound, "Task not found")
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return writeServiceError(c, err, fmt.Sprintf("Failed to delete task with ID %d", id))
	}
	return JSONMessage(c, http.StatusOK, fmt.Sprintf("Task with ID %d deleted successfully", id))
}

// Count handles GET /api/tasks/count, returning a count per status name.
func (h *TasksHandler) Count(c echo.Context) error {
	counts, err := h.service.CountByStatus(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err, "Failed to count tasks")
	}
	return c.JSON(http.StatusOK, counts)
}
