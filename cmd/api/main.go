package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"custodial-payment-platform/config"
	httpHandler "custodial-payment-platform/internal/adapter/http/handler"
	"custodial-payment-platform/internal/adapter/ledger"
	memStorage "custodial-payment-platform/internal/adapter/storage/memory"
	pgStorage "custodial-payment-platform/internal/adapter/storage/postgres"
	redisStorage "custodial-payment-platform/internal/adapter/storage/redis"
	"custodial-payment-platform/internal/core/domain"
	"custodial-payment-platform/internal/core/ports"
	"custodial-payment-platform/internal/service"
	"custodial-payment-platform/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("storage", cfg.Storage.Backend).
		Str("request_storage", cfg.Storage.Requests).
		Msg("Starting Custodial Payment Platform")

	ctx := context.Background()

	// Storage backends. Payment requests can live in Redis independently of
	// the relational entities; everything defaults to in-memory.
	var (
		accountRepo     ports.AccountRepository
		opportunityRepo ports.OpportunityStore
		investmentRepo  ports.InvestmentStore
		oppSweepSource  ports.OpportunitySweepSource
		healthCheckers  []ports.HealthChecker
	)

	switch cfg.Storage.Backend {
	case "postgres":
		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
		}
		defer pool.Close()
		log.Info().Msg("PostgreSQL connected")

		accountRepo = pgStorage.NewAccountRepo(pool)
		pgOpportunities := pgStorage.NewOpportunityStore(pool)
		opportunityRepo = pgOpportunities
		oppSweepSource = pgOpportunities
		investmentRepo = pgStorage.NewInvestmentStore(pool)
		healthCheckers = append(healthCheckers, pgStorage.NewHealthCheck(pool))
	default:
		accountRepo = memStorage.NewAccountStore()
		memOpportunities := memStorage.NewOpportunityStore()
		opportunityRepo = memOpportunities
		oppSweepSource = memOpportunities
		investmentRepo = memStorage.NewInvestmentStore()
	}

	var (
		requestStore   ports.PaymentRequestStore
		reqSweepSource ports.RequestSweepSource
	)
	switch cfg.Storage.Requests {
	case "redis":
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		log.Info().Msg("Redis connected")

		redisRequests := redisStorage.NewRequestStore(rdb)
		requestStore = redisRequests
		reqSweepSource = redisRequests
		healthCheckers = append(healthCheckers, redisStorage.NewHealthCheck(rdb))
	default:
		memRequests := memStorage.NewRequestStore()
		requestStore = memRequests
		reqSweepSource = memRequests
	}

	portfolioStore := memStorage.NewPortfolioStore()
	invoiceStore := memStorage.NewInvoiceStore()

	// The simulated ledger doubles as the faucet behind the credit endpoint.
	network := ledger.NewSimulatedNetwork()

	// Business services
	registrySvc := service.NewRegistryService(accountRepo, network, log)
	requestSvc := service.NewRequestService(
		requestStore,
		cfg.Payment.RequestTTL,
		domain.TokenKind(cfg.Payment.DefaultTokenKind),
		nil,
		log,
	)
	settlementSvc := service.NewSettlementService(requestStore, registrySvc, nil, log)
	investmentSvc := service.NewInvestmentService(
		opportunityRepo,
		investmentRepo,
		portfolioStore,
		invoiceStore,
		registrySvc,
		cfg.Investment.OpportunityTTL,
		cfg.Investment.ReturnRate,
		nil,
		log,
	)

	// Background expiry sweeper
	if cfg.Sweeper.Enabled {
		sweeper, err := service.NewExpirySweeper(
			requestStore,
			reqSweepSource,
			opportunityRepo,
			oppSweepSource,
			cfg.Sweeper.Interval,
			cfg.Sweeper.PoolSize,
			cfg.Sweeper.BatchSize,
			nil,
			log,
		)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to start expiry sweeper")
		}
		sweeper.Start()
		defer sweeper.Stop()
		log.Info().Dur("interval", cfg.Sweeper.Interval).Msg("Expiry sweeper running")
	}

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		RegistrySvc:    registrySvc,
		RequestSvc:     requestSvc,
		SettlementSvc:  settlementSvc,
		InvestmentSvc:  investmentSvc,
		InvoiceStore:   invoiceStore,
		InvoiceSeeder:  invoiceStore,
		Faucet:         network,
		BaseURL:        cfg.Server.BaseURL,
		HealthCheckers: healthCheckers,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
