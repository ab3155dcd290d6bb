package main

import (
	"github.com/OmandamRheajen/Point-Of-Sale/internal/events"
	"github.com/OmandamRheajen/Point-Of-Sale/internal/handler"
	mid "github.com/OmandamRheajen/Point-Of-Sale/internal/middleware"
	"github.com/OmandamRheajen/Point-Of-Sale/internal/repository"
	"github.com/OmandamRheajen/Point-Of-Sale/internal/service"
	"github.com/OmandamRheajen/Point-Of-Sale/pkg/config"
	"github.com/OmandamRheajen/Point-Of-Sale/pkg/database"
	"github.com/OmandamRheajen/Point-Of-Sale/pkg/jwtutil"
	"github.com/OmandamRheajen/Point-Of-Sale/pkg/logger"
	"github.com/OmandamRheajen/Point-Of-Sale/prometheus"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	// Load .env file. Missing files are fine; production environments
	// set real environment variables instead.
	_ = godotenv.Load()

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

	log.Info("Starting pos-service",
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
	db := database.GetDB()

	// Initialize the order event producer when brokers are configured
	var producer events.IProducer
	if len(appConfig.Kafka.Brokers) > 0 {
		kafkaProducer, err := events.NewKafkaProducer(appConfig.Kafka.Brokers, appConfig.Kafka.Topic)
		if err != nil {
			log.Fatal("Failed to initialize Kafka producer", zap.Error(err))
		}
		defer kafkaProducer.Close()
		producer = kafkaProducer
		log.Info("Kafka producer initialized",
			zap.Strings("brokers", appConfig.Kafka.Brokers),
			zap.String("topic", appConfig.Kafka.Topic))
	} else {
		log.Info("Kafka producer disabled, no brokers configured")
	}

	// Wire repositories, services, and handlers
	catalogRepo := repository.NewCatalogRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	reportRepo := repository.NewReportRepository(db)
	userRepo := repository.NewUserRepository(db)

	catalogService := service.NewCatalogService(catalogRepo, log)
	orderService := service.NewOrderService(orderRepo, producer, log)
	reportService := service.NewReportService(reportRepo, log)

	authHandler := handler.NewAuthHandler(userRepo)
	productHandler := handler.NewProductHandler(catalogService)
	orderHandler := handler.NewOrderHandler(orderService)
	reportHandler := handler.NewReportHandler(reportService)

	// Initialize Echo instance
	e := echo.New()

	// Middleware
	e.Use(middleware.Recover())
	e.Use(mid.RequestIDMiddleware)
	e.Use(mid.MetricsMiddleware)

	// Metrics endpoint
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Health check endpoint
	e.GET("/health", handler.Health)

	// Auth routes
	e.POST("/api/auth/register", authHandler.Register)
	e.POST("/api/auth/login", authHandler.Login)

	// Product API routes - auth middleware resolves the request principal
	productAPI := e.Group("/api/products", mid.AuthMiddleware)
	productAPI.GET("", productHandler.ListProducts)
	productAPI.GET("/:id", productHandler.GetProduct)
	productAPI.POST("", productHandler.CreateProduct)
	productAPI.PUT("/:id", productHandler.UpdateProduct)
	productAPI.DELETE("/:id", productHandler.DeleteProduct)

	// Order API routes
	orderAPI := e.Group("/api/orders", mid.AuthMiddleware)
	orderAPI.POST("", orderHandler.CreateOrder)

	transactionAPI := e.Group("/api/transactions", mid.AuthMiddleware)
	transactionAPI.GET("", orderHandler.ListTransactions)
	transactionAPI.GET("/:id", orderHandler.GetTransaction)
	transactionAPI.DELETE("/:id", orderHandler.DeleteTransaction)

	// Reporting routes
	reportAPI := e.Group("/api/reports", mid.AuthMiddleware)
	reportAPI.GET("/dashboard", reportHandler.Dashboard)
	reportAPI.GET("/summary", reportHandler.Summary)
	reportAPI.GET("/best-sellers", reportHandler.BestSellers)
	reportAPI.GET("/daily-revenue", reportHandler.DailyRevenue)
	reportAPI.GET("/recent-orders", reportHandler.RecentOrders)

	// Start server
	port := appConfig.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}
