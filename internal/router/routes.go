package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/octobees/crm-backend/internal/config"
	"github.com/octobees/crm-backend/internal/handler"
	middlewarepkg "github.com/octobees/crm-backend/internal/middleware"
)

// Handlers aggregates HTTP handlers used by the router.
type Handlers struct {
	Contacts      *handler.ContactsHandler
	Companies     *handler.CompaniesHandler
	Interactions  *handler.InteractionsHandler
	Notifications *handler.NotificationsHandler
	Meetings      *handler.MeetingsHandler
	Tasks         *handler.TasksHandler
	Reports       *handler.ReportsHandler
}

// Register wires all HTTP routes for the API.
func Register(e *echo.Echo, cfg *config.Config, handlers Handlers) {
	api := e.Group("/api")

	api.GET("", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "API is running"})
	})

	writeLimiter := middlewarepkg.WriteRateLimiter(cfg.RateLimitWrite)

	api.GET("/contacts", handlers.Contacts.List)
	api.GET("/contacts/:id", handlers.Contacts.Get)
	api.POST("/contacts", handlers.Contacts.Create, writeLimiter)
	api.PUT("/contacts/:id", handlers.Contacts.Update, writeLimiter)
	api.DELETE("/contacts/:id", handlers.Contacts.Delete, writeLimiter)

	api.GET("/companies", handlers.Companies.List)
	api.GET("/companies/:id", handlers.Companies.Get)
	api.POST("/companies", handlers.Companies.Create, writeLimiter)
	api.PUT("/companies/:id", handlers.Companies.Update, writeLimiter)
	api.DELETE("/companies/:id", handlers.Companies.Delete, writeLimiter)

	api.GET("/interactions", handlers.Interactions.List)
	api.GET("/interactions/count", handlers.Interactions.Count)
	api.POST("/interactions", handlers.Interactions.Create, writeLimiter)
	api.DELETE("/interactions/:id", handlers.Interactions.Delete, writeLimiter)

	api.GET("/notifications", handlers.Notifications.List)
	api.PUT("/notifications/:id/read", handlers.Notifications.MarkRead, writeLimiter)

	api.GET("/meetings", handlers.Meetings.List)
	api.GET("/meetings/:id", handlers.Meetings.Get)
	api.GET("/meetings/upcoming/count", handlers.Meetings.UpcomingCount)
	api.POST("/meetings", handlers.Meetings.Create, writeLimiter)
	api.PUT("/meetings/:id", handlers.Meetings.Update, writeLimiter)
	api.DELETE("/meetings/:id", handlers.Meetings.Delete, writeLimiter)

	api.GET("/tasks", handlers.Tasks.List)
	api.GET("/tasks/count", handlers.Tasks.Count)
	api.GET("/tasks/:id", handlers.Tasks.Get)
	api.POST("/tasks", handlers.Tasks.Create, writeLimiter)
	api.PUT("/tasks/:id", handlers.Tasks.Update, writeLimiter)
	api.DELETE("/tasks/:id", handlers.Tasks.Delete, writeLimiter)

	api.GET("/reports/interactions-by-type", handlers.Reports.InteractionsByType)
	api.GET("/sales/pipeline", handlers.Reports.SalesPipeline)

	if cfg.StaticDir != "" {
		e.Use(echoMiddleware.StaticWithConfig(echoMiddleware.StaticConfig{
			Root:  cfg.StaticDir,
			HTML5: true,
		}))
	}
}
