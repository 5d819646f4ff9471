package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"casino-ledger/internal/config"
	"casino-ledger/internal/database"
	"casino-ledger/internal/handler"
	"casino-ledger/internal/jackpot"
	"casino-ledger/internal/ledger"
	"casino-ledger/internal/logger"
	"casino-ledger/internal/loyalty"
	"casino-ledger/internal/notify"
	"casino-ledger/internal/repository/postgres"
	"casino-ledger/internal/revenue"
	"casino-ledger/internal/service"
	"casino-ledger/internal/worker"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	_ "casino-ledger/docs"
)

// @title Casino Ledger API
// @version 1.0
// @description Wagering and balance ledger with bonus allocation and bet settlement
// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Setup logger
	log := logger.New(true)

	// Local development overrides; absent in production
	_ = godotenv.Load()

	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	// Initialize database connection
	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbPool, err := database.NewPool(dbCtx, cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer dbPool.Close()

	if err := database.Migrate(dbCtx, dbPool); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Redis carries loyalty accrual and realtime pub/sub
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer rdb.Close()

	if err := rdb.Ping(dbCtx).Err(); err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	// Repositories
	balanceRepo := postgres.NewBalanceRepository(dbPool)
	grantRepo := postgres.NewGrantRepository(dbPool)
	transactionRepo := postgres.NewTransactionRepository(dbPool)
	jackpotRepo := postgres.NewJackpotRepository(dbPool)
	revenueRepo := postgres.NewRevenueRepository(dbPool)

	// Transaction manager used by the ledger
	txManager := postgres.NewTransactionManager(dbPool)

	// Ledger and domain services
	ldg := ledger.New(txManager, balanceRepo, log)
	wageringManager := service.NewWageringManager(ldg, grantRepo, transactionRepo, cfg.Wagering, log)
	allocator := service.NewBonusAllocator(grantRepo, log)
	validator := service.NewLimitsValidator(transactionRepo, cfg.Limits)
	jackpotService := jackpot.NewService(jackpotRepo, cfg.Jackpot, log)
	loyaltyService := loyalty.NewService(rdb, cfg.Loyalty, log)
	revenueService := revenue.NewService(revenueRepo, log)
	notifier := notify.NewRedisPublisher(rdb, log)

	settlementService := service.NewSettlementOrchestrator(
		ldg, wageringManager, allocator, validator,
		jackpotService, loyaltyService, revenueService, notifier,
		transactionRepo, cfg.Worker.StageTimeout, log,
	)
	walletService := service.NewWalletService(ldg, wageringManager, grantRepo, transactionRepo, notifier, cfg.Wagering, log)
	expiryService := service.NewGrantExpiryService(ldg, grantRepo, transactionRepo, cfg.Worker, log)

	// Root context to be canceled on SIGINT / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Worker for bonus grant expiry
	expiryWorker := worker.NewGrantExpiryWorker(expiryService, cfg.Worker.GrantExpiryInterval, log)
	expiryWorker.Start(ctx)
	defer expiryWorker.Stop()

	// Websocket hub bridging redis pub/sub to connected players
	hub := notify.NewHub(rdb, log)
	go hub.Run(ctx)

	// http handler
	h := handler.NewHandler(settlementService, walletService, jackpotService, hub, cfg.Auth, log)
	router := h.SetupRoutes()

	// http server configuration
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Str("port", cfg.Server.Port).Msg("Server started")

	// Wait for shutdown signal
	<-ctx.Done()
	log.Info().Msg("Shutdown signal received, starting graceful shutdown...")

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown error")
	} else {
		log.Info().Msg("HTTP server stopped gracefully")
	}

	log.Info().Msg("Shutdown complete")
}
