// File: servyadmin/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"servyadmin/backend"
	"servyadmin/config"
	"servyadmin/handlers"
	"servyadmin/middleware"
	"servyadmin/routes"
	"servyadmin/services/dashboard"
	"servyadmin/services/directory"
	"servyadmin/services/report"
	"servyadmin/services/verification"
	"servyadmin/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// Backend client shared by all services.
	backendClient := backend.NewHTTPClient(config.AppConfig.BackendBaseURL, config.BackendTimeout())
	utils.StartHealthMonitor(backendClient)

	// Create the Gin router.
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RateLimitMiddleware())

	// services.
	dashboardService := dashboard.NewDefaultDashboardService(backendClient, config.SnapshotTTL())
	directoryService := directory.NewDefaultDirectoryService(backendClient, config.AppConfig.PageSize, config.SnapshotTTL())
	verificationService := verification.NewDefaultVerificationService(backendClient, config.AppConfig.PageSize, config.SnapshotTTL())
	reportService := report.NewDefaultReportService(backendClient, config.SnapshotTTL())

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Dashboard:    handlers.NewDashboardHandler(dashboardService),
		Directory:    handlers.NewDirectoryHandler(directoryService),
		Verification: handlers.NewVerificationHandler(verificationService),
		Reports:      handlers.NewReportHandler(reportService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
