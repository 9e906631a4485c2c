package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ssakpotato/internal/api"
	"ssakpotato/internal/api/handlers"
	"ssakpotato/internal/service"
	"ssakpotato/pkg/config"
	"ssakpotato/pkg/logger"

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
	appLogger.Info("Starting recipe service")

	geminiService, err := service.NewGeminiService(&cfg.Gemini, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize Gemini service", zap.Error(err))
	}
	defer geminiService.Close()

	recipeService := service.NewRecipeService(geminiService, &cfg.AI, appLogger)
	recipeHandler := handlers.NewRecipeHandler(recipeService, appLogger)

	app := api.SetupAIRouter(recipeHandler)

	go func() {
		addr := ":" + cfg.AI.Port
		appLogger.Info("Recipe service starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Recipe service failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down recipe service")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Shutdown error", zap.Error(err))
	}
}
