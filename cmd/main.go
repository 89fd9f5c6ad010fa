package main

import (
	"buyer-service/internal/auth"
	"buyer-service/internal/cache"
	"buyer-service/internal/handler"
	mid "buyer-service/internal/middleware"
	"buyer-service/internal/repository"
	"buyer-service/pkg/config"
	"buyer-service/pkg/database"
	"buyer-service/pkg/jwtutil"
	"buyer-service/pkg/logger"
	"buyer-service/prometheus"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		// Can't use structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	if err := logger.InitLogger(appConfig); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting buyer-service",
		zap.String("environment", appConfig.Server.Env),
		zap.String("port", appConfig.Server.Port))

	// Initialize Prometheus metrics
	prometheus.InitMetrics(appConfig)
	log.Info("Metrics initialized",
		zap.String("metrics_prefix", appConfig.Metrics.Prefix))

	// Initialize database
	if err := database.InitDB(appConfig); err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	log.Info("Database connection established")

	db := database.GetDB()

	// Wire the core services
	jwtUtil := jwtutil.New(&jwtutil.JWTConfig{
		SigningKey:      appConfig.JWT.SigningKey,
		ExpirationHours: appConfig.JWT.ExpirationHours,
	})
	listingCache := cache.New(appConfig.Cache)

	companies := repository.NewCompanyRepository(db)
	buyers := repository.NewBuyerRepository(db, listingCache)
	products := repository.NewProductRepository(db)
	guard := auth.NewGuard(companies, jwtUtil)

	buyerHandler := handler.NewBuyerHandler(buyers, companies, guard, listingCache)
	productHandler := handler.NewProductHandler(products, listingCache)
	authHandler := handler.NewAuthHandler(companies, jwtUtil)

	// Initialize Echo instance
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewRequestValidator()
	e.HTTPErrorHandler = handler.HTTPErrorHandler

	// Middleware
	e.Use(middleware.Recover())
	e.Use(mid.RequestIDMiddleware)
	e.Use(mid.MetricsMiddleware)

	// Routes
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/health", handler.Health)
	e.GET("/", handler.Default)
	e.GET("/api/doc", handler.Doc)

	e.POST("/api/login_check", authHandler.Login)

	e.GET("/api/buyers", buyerHandler.List)
	e.GET("/api/buyer/:id", buyerHandler.Detail)
	e.POST("/api/buyer", buyerHandler.Create)
	e.PUT("/api/buyer/:id", buyerHandler.Update)
	e.DELETE("/api/buyer/:id", buyerHandler.Delete)

	e.GET("/api/products", productHandler.List)
	e.GET("/api/products/:id", productHandler.Detail)

	// Start server
	log.Info("Starting server", zap.String("port", appConfig.Server.Port))
	if err := e.Start(":" + appConfig.Server.Port); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}
