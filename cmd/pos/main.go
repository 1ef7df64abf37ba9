package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/fekuna/tortilleria-pos/config"
	"github.com/fekuna/tortilleria-pos/internal/logger"
	"go.uber.org/zap"

	catalogRepoPkg "github.com/fekuna/tortilleria-pos/internal/catalog/repository"
	catalogUCPkg "github.com/fekuna/tortilleria-pos/internal/catalog/usecase"
	movementRepoPkg "github.com/fekuna/tortilleria-pos/internal/movement/repository"
	salesRepoPkg "github.com/fekuna/tortilleria-pos/internal/sales/repository"
	salesUCPkg "github.com/fekuna/tortilleria-pos/internal/sales/usecase"
	"github.com/fekuna/tortilleria-pos/internal/storage"
	userRepoPkg "github.com/fekuna/tortilleria-pos/internal/user/repository"
	userUCPkg "github.com/fekuna/tortilleria-pos/internal/user/usecase"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.Config{
		IsDevelopment:     false,
		Encoding:          "json",
		Level:             "info",
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}
	if cfg.App.Env == "dev" || cfg.App.Env == "development" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = cfg.Logger.Encoding
		logConfig.Level = cfg.Logger.Level
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	// 3. Initialize Repositories
	catalogRepo := catalogRepoPkg.NewMemoryRepository()
	salesRepo := salesRepoPkg.NewMemoryRepository()
	userRepo := userRepoPkg.NewMemoryRepository()
	movementRepo := movementRepoPkg.NewMemoryRepository()

	// 4. Initialize Persistence Gateway and load data
	gateway := storage.NewJSONGateway(cfg.Storage, catalogRepo, salesRepo, userRepo, movementRepo, appLogger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := gateway.Load(ctx); err != nil {
		appLogger.Fatal("could not load data files", zap.Error(err))
	}
	appLogger.Info("data loaded", zap.String("data_dir", cfg.Storage.DataDir))

	// 5. Initialize UseCases
	catalogUC := catalogUCPkg.NewCatalogUseCase(catalogRepo, movementRepo, appLogger)
	userUC := userUCPkg.NewUserUseCase(userRepo, appLogger)
	salesUC := salesUCPkg.NewSalesUseCase(salesRepo, catalogUC, gateway, appLogger)

	// 6. Run the terminal UI; flush everything on the way out
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-quit
		appLogger.Info("shutting down, saving data")
		if err := gateway.SaveAll(ctx); err != nil {
			appLogger.Error("failed to save data on shutdown", zap.Error(err))
		}
		os.Exit(0)
	}()

	s := newSession(catalogUC, salesUC, userUC, movementRepo, gateway)
	s.run(ctx)

	if err := gateway.SaveAll(ctx); err != nil {
		appLogger.Error("failed to save data on exit", zap.Error(err))
	}
	appLogger.Info("bye")
}
