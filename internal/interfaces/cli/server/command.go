// Package server implements the `server` CLI command: configuration,
// dependency wiring, and the HTTP server lifecycle.
package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/ledgercloud/ledgercloud/internal/application/billing/usecases"
	"github.com/ledgercloud/ledgercloud/internal/domain/billing"
	"github.com/ledgercloud/ledgercloud/internal/infrastructure/cache"
	"github.com/ledgercloud/ledgercloud/internal/infrastructure/config"
	"github.com/ledgercloud/ledgercloud/internal/infrastructure/database"
	"github.com/ledgercloud/ledgercloud/internal/infrastructure/migration"
	"github.com/ledgercloud/ledgercloud/internal/infrastructure/payment"
	"github.com/ledgercloud/ledgercloud/internal/infrastructure/repository"
	httpRouter "github.com/ledgercloud/ledgercloud/internal/interfaces/http"
	"github.com/ledgercloud/ledgercloud/internal/interfaces/http/handlers"
	"github.com/ledgercloud/ledgercloud/internal/shared/logger"
)

var (
	env         string
	autoMigrate bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the LedgerCloud HTTP server with specified configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Automatically run database migrations on startup (not recommended for production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	logger.Info("starting server",
		"environment", env,
		"auto_migrate", autoMigrate)

	gin.SetMode(mapEnvToGinMode(env))
	gin.DefaultWriter = io.Discard

	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("failed to initialize database", "error", err)
	}
	defer database.Close()

	if autoMigrate {
		if env == "production" {
			logger.Warn("auto-migration is enabled in production environment - this is not recommended!")
		}
		migrationManager := migration.NewManager(env)
		if err := migrationManager.Migrate(database.Get(), migration.AutoMigrateModels()...); err != nil {
			logger.Fatal("auto-migration failed", "error", err)
		}
	}

	log := logger.NewLogger()

	planRepo := repository.NewPlanRepository(database.Get(), log)
	profileRepo := repository.NewBillingProfileRepository(database.Get(), log)
	subscriptionRepo := repository.NewSubscriptionRepository(database.Get(), log)

	plans := planRepo
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		if err := redisClient.Ping(cmd.Context()).Err(); err != nil {
			logger.Fatal("failed to connect to redis", "error", err)
		}

		plans = cache.NewCachedPlanRepository(planRepo, redisClient, cfg.Redis.PlanCacheTTL, log)
		logger.Info("plan catalog cache enabled", "addr", cfg.Redis.GetAddr())
	}

	paymentClient := payment.NewClient(&cfg.Payment, log)

	createSubscriptionUC := usecases.NewCreateSubscriptionUseCase(
		plans,
		profileRepo,
		subscriptionRepo,
		billing.AllowAllAuthorizer{},
		log,
	)
	updateStatusUC := usecases.NewUpdatePaymentMethodStatusUseCase(profileRepo, paymentClient, log)

	subscriptionHandler := handlers.NewSubscriptionHandler(createSubscriptionUC, log)
	webhookHandler := handlers.NewBillingWebhookHandler(updateStatusUC, cfg.Payment.WebhookSecret, log)

	router := httpRouter.NewRouter(subscriptionHandler, webhookHandler, &cfg.Server, log)
	router.SetupRoutes()

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.GetEngine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting", "address", cfg.Server.GetAddr())

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		return err
	}

	logger.Info("server exited gracefully")
	return nil
}

func mapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return gin.ReleaseMode
	case "test", "testing":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
