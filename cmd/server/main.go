// Command server runs the BookNest web tier: a thin HTTP service over the
// BookNest REST API that serves the browsing, booking, and moderation screens.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"booknest/config"
	_ "booknest/docs"
	"booknest/internal/backend"
	delivery "booknest/internal/delivery/http"
	"booknest/internal/delivery/http/controllers"
	"booknest/internal/delivery/http/middleware"
	"booknest/internal/services"
	"booknest/internal/session"
)

// @title BookNest web tier
// @version 1.0
// @description Screen and action endpoints over the BookNest reservation backend.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger := config.NewLogger()

	client := backend.New(cfg.BackendURL, cfg.BackendTimeout, logger, nil)
	store := session.NewStore(cfg.CookieSecure)

	eventSvc := services.NewEventService(client)
	reservationSvc := services.NewReservationService(client)
	userSvc := services.NewUserService(client)
	authSvc := services.NewAuthService(client)
	dashboardSvc := services.NewDashboardService(client)

	eventsCtrl := controllers.NewEventsController(logger, eventSvc, store)
	reservationsCtrl := controllers.NewReservationsController(logger, reservationSvc, eventSvc, dashboardSvc, store)
	adminCtrl := controllers.NewAdminController(logger, eventSvc, reservationSvc, userSvc, dashboardSvc, store)
	authCtrl := controllers.NewAuthController(logger, authSvc, store)

	mux := delivery.NewRouter(eventsCtrl, reservationsCtrl, adminCtrl, authCtrl)

	var handler http.Handler = mux
	handler = middleware.WithSession(store, handler)
	handler = middleware.CORS(cfg.AllowedOrigins, handler)
	handler = middleware.LoggingMiddleware(logger, handler)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "backend", cfg.BackendURL)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("graceful shutdown failed: %v", err)
	}
	logger.Info("server stopped")
}
