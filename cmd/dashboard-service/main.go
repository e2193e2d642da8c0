package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang-stock-forecaster/internal/dashboard/config"
	delivery "golang-stock-forecaster/internal/dashboard/delivery/http"
	_ "golang-stock-forecaster/internal/dashboard/docs"
	"golang-stock-forecaster/internal/dashboard/repository"
	"golang-stock-forecaster/internal/dashboard/service"
	"golang-stock-forecaster/internal/forecast"
	"golang-stock-forecaster/pkg/logger"
	"golang-stock-forecaster/pkg/sysload"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	swagger "github.com/swaggo/echo-swagger"
)

var configPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the dashboard service",
	Run:   runServe,
}

func runServe(cmd *cobra.Command, args []string) {
	// Create a context that is canceled on interrupt signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	appLogger.Info("Starting Dashboard Service", logger.Field("name", cfg.App.Name))

	// Initialize the CPU load sensor; it is sampled once per forecast request
	sampleInterval, err := time.ParseDuration(cfg.Forecast.CPUSampleInterval)
	if err != nil {
		sampleInterval = 250 * time.Millisecond
	}
	sampler := sysload.NewCPUSampler(sampleInterval)

	// Initialize repositories
	stockRepo := repository.NewYahooRepository(cfg, appLogger)

	// Initialize services
	engine := forecast.NewEngine(appLogger)
	stockSvc := service.NewStockService(stockRepo, appLogger)
	forecastSvc := service.NewForecastService(
		stockRepo, engine, sampler,
		cfg.Forecast.HistoryRange, cfg.Forecast.MaxHorizonDays,
		appLogger,
	)

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true

	// Initialize handlers and routes
	apiV1 := e.Group("/api/v1")
	stocksGroup := apiV1.Group("/stocks")

	stockHandler := delivery.NewStockHandler(stockSvc, appLogger)
	stockHandler.RegisterRoutes(stocksGroup)

	forecastHandler := delivery.NewForecastHandler(forecastSvc, appLogger)
	forecastHandler.RegisterRoutes(stocksGroup)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/swagger/*", swagger.WrapHandler)

	// Start server
	go func() {
		addr := fmt.Sprintf(":%d", cfg.API.Port)
		appLogger.Info("HTTP server starting", logger.Field("address", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			appLogger.Error("HTTP server failed to start", logger.ErrorField(err))
			stop() // trigger shutdown
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()

	appLogger.Info("Shutting down server...")

	// Gracefully shutdown the server
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", logger.ErrorField(err))
	}

	appLogger.Info("Server exiting")
}

// @title Stock Forecast Dashboard API
// @version 1.0
// @description Company metadata, price history, EMA indicator and SVR price forecasts.
// @BasePath /api/v1
func main() {
	rootCmd := &cobra.Command{Use: "dashboard-service"}

	serveCmd.Flags().StringVarP(&configPath, "config", "c", "configs/config-dashboard.yaml", "Path to the configuration file")

	rootCmd.AddCommand(serveCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing dashboard-service CLI: %s\n", err)
		os.Exit(1)
	}
}
