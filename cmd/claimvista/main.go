package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"claimvista/internal/api"
	"claimvista/internal/api/handlers"
	"claimvista/internal/repository"
	"claimvista/internal/service"
	"claimvista/internal/store"
	"claimvista/pkg/auth"
	"claimvista/pkg/config"
	"claimvista/pkg/logger"
	"claimvista/pkg/postgres"

	"go.uber.org/zap"
)

// @title ClaimVista API
// @version 1.0
// @description Insurance claims service with role-based dashboards and a dual (hospital + agent) approval workflow
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@claimvista.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting ClaimVista service")

	// Initialize database (user accounts only; claims live in memory)
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Initialize repositories and stores
	userRepo := repository.NewUserRepository(db, appLogger)
	claimStore := store.NewClaimStore(appLogger)
	refStore := store.NewReferenceStore()

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration, cfg.JWT.RefreshExp)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager, appLogger)
	claimService := service.NewClaimService(claimStore, refStore, appLogger)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, appLogger)
	claimHandler := handlers.NewClaimHandler(claimService, appLogger)
	refHandler := handlers.NewReferenceHandler(refStore, appLogger)

	// Setup router
	app := api.SetupRouter(authHandler, claimHandler, refHandler, jwtManager, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
