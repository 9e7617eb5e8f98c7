package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/ArowuTest/oripay-exchange-backend/api/routes"
	"github.com/ArowuTest/oripay-exchange-backend/internal/app"
	"github.com/ArowuTest/oripay-exchange-backend/internal/config"
	"github.com/ArowuTest/oripay-exchange-backend/internal/guard"
	"github.com/ArowuTest/oripay-exchange-backend/internal/handlers"
	"github.com/ArowuTest/oripay-exchange-backend/internal/services"
	"github.com/ArowuTest/oripay-exchange-backend/internal/session"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] No .env file found, using environment variables")
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("[FATAL] Failed to load configuration: %v", err)
	}
	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.Open(rootCtx, cfg)
	if err != nil {
		log.Fatalf("[FATAL] Failed to open storage: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		a.Close(ctx)
	}()

	// Services
	repos := a.Repos
	contentService := services.NewContentService(repos.Content, repos.Services, repos.Announcements)
	authService := services.NewAuthService(a.Provider)
	onboardingService := services.NewOnboardingService(repos.Users, repos.Settings)
	userService := services.NewUserService(repos.Users, repos.Admins, repos.Countries, a.Provider)
	settingsService := services.NewSystemSettingsService(repos.Settings, repos.Currencies, repos.Countries)
	reconciliationService := services.NewReconciliationService(a.Provider, repos.Users, repos.Admins)

	// Sessions
	registry := session.NewRegistry(a.Provider, cfg.Session.IdleTimeout)
	defer registry.CloseAll()
	go registry.Run(rootCtx)

	if cfg.Reconcile.Interval > 0 {
		go reconciliationService.Run(rootCtx, cfg.Reconcile.Interval, cfg.Reconcile.Repair)
	}

	deps := routes.HandlerDependencies{
		PageHandler:           handlers.NewPageHandler(contentService),
		AuthHandler:           handlers.NewAuthHandler(cfg, authService),
		OnboardingHandler:     handlers.NewOnboardingHandler(cfg, onboardingService),
		UserHandler:           handlers.NewUserHandler(userService),
		ContentHandler:        handlers.NewContentHandler(contentService),
		SystemSettingsHandler: handlers.NewSystemSettingsHandler(settingsService),
		Registry:              registry,
		Guard:                 guard.New(repos.Admins),
	}
	router := routes.SetupRouter(cfg, deps)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("[INFO] Server starting on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("[ERROR] listen: %v", err)
			stop()
		}
	}()

	<-rootCtx.Done()
	log.Println("[INFO] Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("[ERROR] Server forced to shutdown: %v", err)
	}
	log.Println("[INFO] Server exiting")
}
