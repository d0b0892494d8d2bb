package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"disasterhub/internal/cache"
	"disasterhub/internal/config"
	"disasterhub/internal/db"
	"disasterhub/internal/handler"
	"disasterhub/internal/logger"
	"disasterhub/internal/repository"
	"disasterhub/internal/router"
	"disasterhub/internal/service"
)

// @title Disaster Hub API
// @version 1.0
// @description Disaster management API: users, incident reports with status history, relief resources and volunteer profiles.
// @host localhost:8080
// @BasePath /api
// @schemes http
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New("info").Fatalf("config: %v", err)
	}
	log := logger.New(cfg.LogLevel)

	gormDB, err := db.Open(cfg.DBDriver, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}
	if err := db.Migrate(gormDB, cfg.ResetDB, log); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	pingCtx, cancelPing := context.WithTimeout(context.Background(), 2*time.Second)
	if err := cacheClient.Ping(pingCtx); err != nil {
		log.WithError(err).Warn("redis unavailable, serving without cache")
	}
	cancelPing()
	defer cacheClient.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	incidentRepo := repository.NewIncidentRepository(gormDB)
	historyRepo := repository.NewIncidentHistoryLogRepository(gormDB)
	resourceRepo := repository.NewResourceRepository(gormDB)
	volunteerRepo := repository.NewVolunteerProfileRepository(gormDB)

	// Initialize services
	userService := service.NewUserService(userRepo, cacheClient, log)
	incidentService := service.NewIncidentService(incidentRepo, historyRepo, userRepo, cacheClient, log)
	resourceService := service.NewResourceService(resourceRepo, userRepo, log)
	volunteerService := service.NewVolunteerService(volunteerRepo, userRepo, log)

	e := echo.New()
	e.HideBanner = true
	router.Register(
		e,
		cfg,
		log,
		handler.NewUserHandler(userService),
		handler.NewIncidentHandler(incidentService),
		handler.NewResourceHandler(resourceService),
		handler.NewVolunteerHandler(volunteerService),
	)

	log.Infof("Swagger documentation available at: %s", swaggerURL(cfg))

	go func() {
		addr := ":" + cfg.ServerPort
		log.Infof("listening on %s", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Errorf("forced shutdown: %v", err)
	}
	if sqlDB, err := gormDB.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Info("Server gracefully stopped")
}

func swaggerURL(cfg *config.Config) string {
	host := cfg.SwaggerHost
	if host == "" {
		host = "localhost:" + cfg.ServerPort
	}
	if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
		host = "http://" + host
	}
	return host + "/swagger/index.html"
}
