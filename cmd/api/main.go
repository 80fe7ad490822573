package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/octobees/crm-backend/internal/config"
	"github.com/octobees/crm-backend/internal/database"
	"github.com/octobees/crm-backend/internal/handler"
	middlewarepkg "github.com/octobees/crm-backend/internal/middleware"
	"github.com/octobees/crm-backend/internal/repository"
	"github.com/octobees/crm-backend/internal/router"
	"github.com/octobees/crm-backend/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	contactsRepo := repository.NewPGXContactsRepository(pool)
	companiesRepo := repository.NewPGXCompaniesRepository(pool)
	interactionsRepo := repository.NewPGXInteractionsRepository(pool)
	notificationsRepo := repository.NewPGXNotificationsRepository(pool)
	meetingsRepo := repository.NewPGXMeetingsRepository(pool)
	tasksRepo := repository.NewPGXTasksRepository(pool)

	contactsService := service.NewContactsService(contactsRepo, companiesRepo, interactionsRepo)
	companiesService := service.NewCompaniesService(companiesRepo, interactionsRepo)
	interactionsService := service.NewInteractionsService(interactionsRepo, contactsRepo, companiesRepo)
	notificationsService := service.NewNotificationsService(notificationsRepo)
	meetingsService := service.NewMeetingsService(meetingsRepo, contactsRepo)
	tasksService := service.NewTasksService(tasksRepo)
	reportsService := service.NewReportsService(interactionsRepo, contactsRepo)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middlewarepkg.RequestID())
	e.Use(middlewarepkg.Logging())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
	}))

	router.Register(e, cfg, router.Handlers{
		Contacts:      handler.NewContactsHandler(contactsService),
		Companies:     handler.NewCompaniesHandler(companiesService),
		Interactions:  handler.NewInteractionsHandler(interactionsService),
		Notifications: handler.NewNotificationsHandler(notificationsService),
		Meetings:      handler.NewMeetingsHandler(meetingsService),
		Tasks:         handler.NewTasksHandler(tasksService),
		Reports:       handler.NewReportsHandler(reportsService),
	})

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- e.Start(":" + cfg.Port)
	}()
	log.Printf("listening on port %s", cfg.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
		return
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}
