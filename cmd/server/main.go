package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/dukaanhq/dukaan/internal/adapter/http"
	"github.com/dukaanhq/dukaan/internal/adapter/http/handler"
	"github.com/dukaanhq/dukaan/internal/adapter/http/middleware"
	postgresRepo "github.com/dukaanhq/dukaan/internal/adapter/repository/postgres"
	redisRepo "github.com/dukaanhq/dukaan/internal/adapter/repository/redis"
	"github.com/dukaanhq/dukaan/internal/infrastructure/auth"
	"github.com/dukaanhq/dukaan/internal/infrastructure/config"
	"github.com/dukaanhq/dukaan/internal/infrastructure/kafka"
	"github.com/dukaanhq/dukaan/internal/infrastructure/logger"
	"github.com/dukaanhq/dukaan/internal/infrastructure/logging"
	"github.com/dukaanhq/dukaan/internal/infrastructure/metrics"
	"github.com/dukaanhq/dukaan/internal/infrastructure/postgres"
	"github.com/dukaanhq/dukaan/internal/infrastructure/redis"
	"github.com/dukaanhq/dukaan/internal/usecase"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	zlog := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	log.Logger = zlog

	// Infra components (migrator, retrier) log through slog.
	slog.SetDefault(logging.New(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat).Logger)

	ctx := context.Background()

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		zlog.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	zlog.Info().Msg("connected to postgres")

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		zlog.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	zlog.Info().Msg("connected to redis")

	// Event publisher is optional
	var events usecase.EventPublisher = kafka.NoopPublisher{}
	if len(cfg.KafkaBrokers) > 0 && cfg.KafkaBrokers[0] != "" {
		publisher := kafka.NewPublisher(cfg.KafkaBrokers, cfg.KafkaTopic, zlog)
		defer publisher.Close()
		events = publisher
		zlog.Info().Strs("brokers", cfg.KafkaBrokers).Str("topic", cfg.KafkaTopic).Msg("kafka publisher enabled")
	}

	m := metrics.New()

	// Repositories
	txManager := postgresRepo.NewTxManager(pool)
	ledgerRepo := postgresRepo.NewLedgerRepository(pool)
	transactionRepo := postgresRepo.NewTransactionRepository(pool)
	auditRepo := postgresRepo.NewAuditRepository(pool)
	productRepo := postgresRepo.NewProductRepository(pool)
	customerRepo := postgresRepo.NewCustomerRepository(pool)
	supplierRepo := postgresRepo.NewSupplierRepository(pool)
	orderRepo := postgresRepo.NewOrderRepository(pool)
	purchaseRepo := postgresRepo.NewPurchaseRepository(pool)
	userRepo := postgresRepo.NewUserRepository(pool)
	idGen := postgresRepo.NewULIDGenerator()
	retrier := postgresRepo.NewRetrier()
	cache := redisRepo.NewCache(redisClient)
	sessions := redisRepo.NewSessionStore(redisClient)

	// Use cases
	ledgerUC := usecase.NewLedgerUseCase(txManager, ledgerRepo, transactionRepo, auditRepo, idGen, cache, events, retrier)
	productUC := usecase.NewProductUseCase(productRepo, idGen)
	customerUC := usecase.NewCustomerUseCase(customerRepo, idGen)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo, idGen)
	orderUC := usecase.NewOrderUseCase(txManager, orderRepo, productRepo, customerRepo, idGen, events, retrier)
	purchaseUC := usecase.NewPurchaseUseCase(txManager, purchaseRepo, productRepo, supplierRepo, idGen, events, retrier)
	userUC := usecase.NewUserUseCase(userRepo, sessions, auth.NewBcryptHasher(), auth.NewJWTManager(cfg.JWTSecret), idGen)

	if cfg.AuthEnabled && cfg.JWTSecret == "" {
		zlog.Fatal().Msg("AUTH_ENABLED requires JWT_SECRET")
	}

	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		LedgerHandler:   handler.NewLedgerHandler(ledgerUC),
		ProductHandler:  handler.NewProductHandler(productUC),
		CustomerHandler: handler.NewCustomerHandler(customerUC),
		SupplierHandler: handler.NewSupplierHandler(supplierUC),
		OrderHandler:    handler.NewOrderHandler(orderUC, customerUC),
		PurchaseHandler: handler.NewPurchaseHandler(purchaseUC),
		UserHandler:     handler.NewUserHandler(userUC),
		AuthHandler:     handler.NewAuthHandler(userUC, m),
		HealthHandler:   handler.NewHealthHandler(pool, redisClient),

		Auth:        middleware.NewAuthMiddleware(userUC, cfg.AuthEnabled),
		Logging:     middleware.NewLoggingMiddleware(zlog),
		Metrics:     middleware.NewMetricsMiddleware(m),
		RateLimiter: middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, m),
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	go func() {
		zlog.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zlog.Fatal().Err(err).Msg("server forced to shutdown")
	}

	zlog.Info().Msg("server stopped")
}
