package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/fundedpeak/portal-api/internal/domain/entity"
	referralUseCase "github.com/fundedpeak/portal-api/internal/domain/usecase/referral"
	userUseCase "github.com/fundedpeak/portal-api/internal/domain/usecase/user"
	walletUseCase "github.com/fundedpeak/portal-api/internal/domain/usecase/wallet"

	"github.com/fundedpeak/portal-api/internal/infrastructure/adapter/api/handler"
	"github.com/fundedpeak/portal-api/internal/infrastructure/adapter/api/routes"
	"github.com/fundedpeak/portal-api/internal/infrastructure/adapter/database"
	"github.com/fundedpeak/portal-api/internal/infrastructure/adapter/logger"
	"github.com/fundedpeak/portal-api/internal/infrastructure/adapter/repository"
	timeProvider "github.com/fundedpeak/portal-api/internal/infrastructure/adapter/time"
	"github.com/fundedpeak/portal-api/internal/infrastructure/auth"
	"github.com/fundedpeak/portal-api/internal/infrastructure/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	tp := timeProvider.NewRealTimeProvider()

	dbConfig := &database.Config{
		Driver:          cfg.Database.Driver,
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		QueryTimeout:    cfg.Database.QueryTimeout,
		LogLevel:        cfg.Logger.Level,
		RetryAttempts:   cfg.Database.RetryAttempts,
		RetryDelay:      int(cfg.Database.RetryDelay.Seconds()),
	}
	if err := dbConfig.Validate(); err != nil {
		log.Fatalf("Database configuration validation failed: %v", err)
	}

	dbManager := database.NewManager(dbConfig, appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer dbManager.Close()

	if err := dbManager.Migrate(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Repositories and unit of work
	userRepo := repository.NewUserRepository(dbManager.DB())
	referralRepo := repository.NewReferralRepository(dbManager.DB())
	transactionRepo := repository.NewTransactionRepository(dbManager.DB())
	uow := dbManager.CreateUnitOfWork()

	// Token manager
	tokens, err := auth.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, tp)
	if err != nil {
		appLogger.Error("Failed to initialize token manager", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Use cases
	assumedPriceCents, err := entity.ParsePositiveAmount(cfg.Referral.AssumedChallengePrice)
	if err != nil {
		appLogger.Error("Invalid assumed challenge price in configuration", map[string]any{
			"value": cfg.Referral.AssumedChallengePrice,
			"error": err.Error(),
		})
		os.Exit(1)
	}

	userService := userUseCase.NewService(userRepo, tp, appLogger)
	referralService := referralUseCase.NewService(
		uow,
		userRepo,
		referralRepo,
		transactionRepo,
		tp,
		appLogger,
		referralUseCase.Config{
			RewardPercent:              cfg.Referral.RewardPercent,
			AssumedChallengePriceCents: assumedPriceCents,
			ReferralLinkBase:           cfg.Referral.FrontendBaseURL,
			LeaderboardLimit:           cfg.Referral.LeaderboardLimit,
		},
	)
	walletService := walletUseCase.NewService(uow, userRepo, transactionRepo, tp, appLogger)

	// API handlers
	authHandler := handler.NewAuthHandler(userService, referralService, tokens, appLogger)
	referralHandler := handler.NewReferralHandler(referralService, walletService, appLogger)
	walletHandler := handler.NewWalletHandler(walletService, appLogger)

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger)
	routes.SetupRoutes(router, authHandler, referralHandler, walletHandler, tokens)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port": cfg.Server.Port,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}
