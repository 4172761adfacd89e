package main

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"scheme-finder/catalog"
	"scheme-finder/config"
	"scheme-finder/handler"
	"scheme-finder/logging"
	"scheme-finder/middleware"
	"scheme-finder/service"
)

func main() {
	// Initialize configuration
	cfg := config.LoadConfig()

	// Initialize logger
	logger := logging.New(cfg.LogLevel, cfg.LogFormat)
	defer logger.Sync()

	// Load the scheme catalog once; the process cannot serve without it
	cat, err := catalog.Load(cfg.DataPath)
	if err != nil {
		logger.Fatal("failed to load scheme catalog", zap.Error(err))
	}
	logger.Info("scheme catalog loaded",
		zap.Int("schemes", cat.Len()),
		zap.Int("banks", len(cat.Banks())),
	)

	// Initialize service layer
	matchService := service.NewMatchService(cat, logger)

	// Initialize handler layer
	schemeHandler := handler.NewSchemeHandler(matchService, logger)
	matchHandler := handler.NewMatchHandler(matchService, logger)

	// Setup Gin router
	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(logger),
		middleware.Metrics(),
	)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	handler.RegisterRoutes(router, schemeHandler, matchHandler)

	// Start server
	logger.Info("starting Bank Scheme Finder", zap.String("port", cfg.ServerPort))
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}
