package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ssakpotato/internal/api"
	"ssakpotato/internal/api/handlers"
	"ssakpotato/internal/repository"
	"ssakpotato/internal/service"
	"ssakpotato/pkg/auth"
	"ssakpotato/pkg/config"
	"ssakpotato/pkg/logger"
	"ssakpotato/pkg/postgres"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting refrigerator server")

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	userRepo := repository.NewUserRepository(db, appLogger)
	itemRepo := repository.NewItemRepository(db, appLogger)

	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration, cfg.JWT.RefreshExp)

	authService := service.NewAuthService(userRepo, jwtManager, appLogger)
	fridgeService := service.NewFridgeService(itemRepo, appLogger)

	geminiService, err := service.NewGeminiService(&cfg.Gemini, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize Gemini service", zap.Error(err))
	}
	defer geminiService.Close()

	ocrService := service.NewOCRService(geminiService, appLogger)
	classifier := service.NewClassifierService(appLogger)
	receiptService := service.NewReceiptService(ocrService, classifier, appLogger)

	authHandler := handlers.NewAuthHandler(authService, appLogger)
	itemHandler := handlers.NewItemHandler(fridgeService, appLogger)
	receiptHandler := handlers.NewReceiptHandler(receiptService, appLogger)

	app := api.SetupRouter(authHandler, itemHandler, receiptHandler, jwtManager, appLogger)

	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
