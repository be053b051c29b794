package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/noah-isme/course-planner/api/swagger"
	"github.com/noah-isme/course-planner/internal/bootstrap"
	"github.com/noah-isme/course-planner/internal/handler"
	internalmiddleware "github.com/noah-isme/course-planner/internal/middleware"
	"github.com/noah-isme/course-planner/internal/service"
	"github.com/noah-isme/course-planner/pkg/config"
	"github.com/noah-isme/course-planner/pkg/logger"
	corsmiddleware "github.com/noah-isme/course-planner/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/course-planner/pkg/middleware/requestid"
)

// @title Course Planner API
// @version 1.0.0
// @description Ranks conflict-free combinations of course sections against student preferences
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	metrics := service.NewMetricsService()

	catalog, err := bootstrap.OpenCatalog(cfg, metrics, logr)
	if err != nil {
		logr.Sugar().Fatalw("failed to open catalog", "driver", cfg.Catalog.Driver, "error", err)
	}
	defer func() {
		if err := catalog.Close(); err != nil {
			logr.Sugar().Warnw("catalog close failed", "error", err)
		}
	}()

	planner := service.NewPlannerService(catalog.Lookup, metrics, validator.New(), logr, bootstrap.PlannerConfig(cfg.Planner))
	plannerHandler := handler.NewPlannerHandler(planner)
	metricsHandler := handler.NewMetricsHandler(metrics, catalog.Checks...)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr, "/health", "/ready", "/metrics"))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(internalmiddleware.Metrics(metrics))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Ready)
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	schedules := api.Group("/schedules")
	schedules.POST("/plan", plannerHandler.Plan)
	schedules.POST("/plan/export", plannerHandler.Export)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env, "catalog", cfg.Catalog.Driver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logr.Sugar().Infow("server shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Sugar().Errorw("graceful shutdown failed", "error", err)
	}
}
