package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"solbridge/config"
	"solbridge/handlers"
	"solbridge/middleware"
	"solbridge/routes"
	"solbridge/services/intake"
	"solbridge/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(middleware.RequestLoggerMiddleware())

	// IntakeQ gateway and service.
	gateway := intake.NewGateway(intake.GatewayConfig{
		BaseURL: config.AppConfig.IntakeQBaseURL,
		Credentials: intake.Credentials{
			CashPayKey:   config.AppConfig.CashPayAPIKey,
			InsuranceKey: config.AppConfig.InsuranceAPIKey,
		},
		CreateTimeout: time.Duration(config.AppConfig.IntakeQCreateTimeoutS) * time.Second,
		SearchTimeout: time.Duration(config.AppConfig.IntakeQSearchTimeoutS) * time.Second,
	}, logger)

	intakeService := &intake.DefaultIntakeService{
		Gateway: gateway,
		Logger:  logger,
	}
	intakeHandler := handlers.NewIntakeHandler(intakeService)

	routes.RegisterRoutes(router, intakeHandler)

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
