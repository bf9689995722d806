package main

import (
	"context"
	"fmt"
	"log"
	"mySkinMatch/app/echo-server/router"
	"mySkinMatch/business/preference"
	"mySkinMatch/business/product"
	"mySkinMatch/business/recommender"
	"mySkinMatch/business/stats"
	userService "mySkinMatch/business/user"
	"mySkinMatch/internal/middleware"
	psqlRepo "mySkinMatch/internal/repository/postgres"
	redisRepo "mySkinMatch/internal/repository/redis"
	"mySkinMatch/internal/rest"
	"mySkinMatch/pkg/config"
	"mySkinMatch/pkg/database"
	redisdb "mySkinMatch/pkg/database/redis"
	"mySkinMatch/pkg/logger"
	"mySkinMatch/pkg/metrics"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting mySkinMatch", "version", cfg.App.Version)

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	redisClient, err := redisdb.NewRedisClient(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", "error", err)
	}
	defer redisdb.CloseRedisClient(redisClient)

	logger.Info("Redis connected successfully")

	metrics.Init()

	// Init validate
	validate := validator.New()

	// Init repo
	userRepo := psqlRepo.NewUserRepository(db)
	productRepo := psqlRepo.NewProductRepository(db)
	preferenceRepo := psqlRepo.NewPreferenceRepository(db)
	eventRepo := psqlRepo.NewRecommendationEventRepository(db)
	statsRepo := psqlRepo.NewStatsRepository(db)
	tokenRepo := redisRepo.NewTokenRepository(redisClient)

	// Init service
	userSvc := userService.NewUserService(userRepo, tokenRepo, validate)
	productSvc := product.NewProductService(productRepo)
	preferenceSvc := preference.NewPreferenceService(preferenceRepo)
	recommenderSvc := recommender.NewRecommenderService(productRepo, eventRepo)
	statsSvc := stats.NewStatsService(statsRepo)

	// Init handler
	userHandler := rest.NewUserHandler(userSvc)
	productHandler := rest.NewProductHandler(productSvc)
	preferenceHandler := rest.NewPreferenceHandler(preferenceSvc)
	recommendationHandler := rest.NewRecommendationHandler(recommenderSvc, preferenceSvc)
	adminHandler := rest.NewAdminHandler(statsSvc)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(middleware.TraceID())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	// Auth middleware
	authRequired := middleware.AuthMiddleware(userSvc)
	adminOnly := middleware.AdminOnly()
	selfOrAdmin := middleware.SelfOrAdmin()

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupUserRoutes(api, userHandler, authRequired, adminOnly, selfOrAdmin)
	router.SetupProductRoutes(api, productHandler, authRequired, adminOnly)
	router.SetupPreferenceRoutes(api, preferenceHandler, authRequired)
	router.SetupRecommendationRoutes(api, recommendationHandler, authRequired, adminOnly)
	router.SetupAdminRoutes(api, adminHandler, authRequired, adminOnly)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Warm the recommendation index so the first request does not pay the
	// build cost. Failure here is non-fatal, the index builds lazily.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()
		if _, err := recommenderSvc.LoadCatalog(ctx); err != nil {
			logger.Warn("Initial index build failed, will retry lazily", "error", err)
		}
	}()

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
