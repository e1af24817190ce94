package main

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"fritzoria/internal/handler"
	mid "fritzoria/internal/middleware"
	"fritzoria/internal/repository"
	"fritzoria/pkg/config"
	"fritzoria/pkg/database"
	"fritzoria/pkg/jwtutil"
	"fritzoria/pkg/logger"
	"fritzoria/prometheus"
)

func main() {
	// Load configuration (reads .env if present)
	appConfig, err := config.Load()
	if err != nil {
		// Can't use structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	logger.InitLogger(appConfig)
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting fritzoria",
		zap.String("environment", appConfig.Server.Env),
		zap.String("port", appConfig.Server.Port))

	// Initialize JWT utility
	jwtutil.Initialize(&appConfig.JWT)
	log.Info("JWT utility initialized")

	// Initialize Prometheus metrics
	prometheus.InitMetrics(appConfig)
	log.Info("Prometheus metrics initialized",
		zap.String("metrics_prefix", appConfig.Metrics.Prefix))

	// Initialize database
	if err := database.InitDB(appConfig); err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	log.Info("Database connection established")

	books := repository.NewBookRepository(database.GetDB())
	users := repository.NewUserRepository(database.GetDB())

	bookHandler := handler.NewBookHandler(books)
	authHandler := handler.NewAuthHandler(users)
	adminHandler := handler.NewAdminHandler(appConfig)

	// Initialize Echo instance
	e := echo.New()

	// Middleware
	e.Use(middleware.Recover())
	e.Use(mid.RequestIDMiddleware)
	e.Use(mid.MetricsMiddleware)

	// Metrics endpoint
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Catalog routes - reads are public, mutations need an admin token
	bookAPI := e.Group("/api/books")
	bookAPI.GET("", bookHandler.ListBooks)
	bookAPI.GET("/new-releases", bookHandler.NewReleases)
	bookAPI.GET("/bestsellers", bookHandler.Bestsellers)
	bookAPI.GET("/promotions", bookHandler.Promotions)
	bookAPI.GET("/:id", bookHandler.GetBook)
	bookAPI.GET("/:id/related", bookHandler.RelatedBooks)
	bookAPI.POST("", bookHandler.CreateBook, mid.AuthMiddleware, mid.RequireAdmin)
	bookAPI.PUT("/:id", bookHandler.UpdateBook, mid.AuthMiddleware, mid.RequireAdmin)
	bookAPI.DELETE("/:id", bookHandler.DeleteBook, mid.AuthMiddleware, mid.RequireAdmin)

	// Auth routes
	authAPI := e.Group("/api/auth")
	authAPI.POST("/login", authHandler.Login)
	authAPI.POST("/register", authHandler.Register)

	// Promo code validation
	e.POST("/api/promo/validate", handler.ValidatePromo)

	// Database initialization, gated by the shared init key
	e.POST("/api/db/init", adminHandler.InitDatabase)

	// Start server
	port := appConfig.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}
