package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wager-arena/config"
	"wager-arena/internal/adapter/gateway/nowpayments"
	httpHandler "wager-arena/internal/adapter/http/handler"
	pgStorage "wager-arena/internal/adapter/storage/postgres"
	redisStorage "wager-arena/internal/adapter/storage/redis"
	"wager-arena/internal/core/ports"
	"wager-arena/internal/service"
	"wager-arena/pkg/logger"

	"golang.org/x/sync/errgroup"
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
		Msg("Starting Wager Arena core")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	accountRepo := pgStorage.NewAccountRepo(pool)
	entryRepo := pgStorage.NewEntryRepo(pool)
	sessionRepo := pgStorage.NewSessionRepo(pool)
	paymentRepo := pgStorage.NewPaymentRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize Redis stores
	idempotencyCache := redisStorage.NewIdempotencyCache(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Initialize payment gateway client
	gateway := nowpayments.NewClient(cfg.Gateway)

	// Initialize core services
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	ipnVerifier := service.NewHMACIPNVerifier(cfg.Gateway.IPNSecret)
	if cfg.Gateway.IPNSecret == "" {
		log.Warn().Msg("gateway.ipn_secret is empty, webhook signature verification is disabled")
	}

	ledgerSvc := service.NewLedgerService(accountRepo, entryRepo, idempotencyCache, transactor, cfg.Wager, log)
	sessionSvc := service.NewSessionService(sessionRepo, ledgerSvc, transactor, cfg.Wager, log)
	depositSvc := service.NewDepositService(paymentRepo, ledgerSvc, gateway, transactor, log)

	// The house account must exist before the first forfeit settles into it.
	if cfg.Wager.ForfeitPolicy == config.ForfeitHouse {
		if _, err := ledgerSvc.EnsureAccount(ctx, cfg.Wager.HouseAccountID); err != nil {
			log.Fatal().Err(err).Msg("Failed to provision house account")
		}
	}

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		LedgerSvc:      ledgerSvc,
		SessionSvc:     sessionSvc,
		DepositSvc:     depositSvc,
		TokenSvc:       tokenSvc,
		IPNVerifier:    ipnVerifier,
		EngineKey:      cfg.Engine.SharedKey,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	runCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(runCtx)

	g.Go(func() error {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	// Background reconciler: polls the provider for payments the webhook
	// never reached us about.
	reconciler := service.NewReconciler(depositSvc, paymentRepo, cfg.Gateway.PollInterval, cfg.Gateway.PollWorkers, log)
	g.Go(func() error {
		err := reconciler.Run(gCtx)
		if err == context.Canceled {
			return nil
		}
		return err
	})

	g.Go(func() error {
		<-gCtx.Done()
		log.Info().Msg("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
