package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ngo-funding-gateway/config"
	"ngo-funding-gateway/internal/adapter/chain"
	httpHandler "ngo-funding-gateway/internal/adapter/http/handler"
	"ngo-funding-gateway/internal/adapter/provider/maschain"
	pgStorage "ngo-funding-gateway/internal/adapter/storage/postgres"
	redisStorage "ngo-funding-gateway/internal/adapter/storage/redis"
	"ngo-funding-gateway/internal/core/ports"
	"ngo-funding-gateway/internal/service"
	"ngo-funding-gateway/pkg/logger"
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
		Bool("maschain_production", cfg.MasChain.Production).
		Msg("Starting NGO Funding Gateway")

	// Missing provider credentials are a startup failure, not a
	// per-request one.
	if err := cfg.MasChain.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid identity provider configuration")
	}

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	if err := pgStorage.InitSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database schema")
	}

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories and stores
	ngoRepo := pgStorage.NewNGOSessionRepo(pool)
	kycRepo := pgStorage.NewKYCSessionRepo(pool)
	verifiedCache := redisStorage.NewVerifiedCache(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Identity provider client
	provider := maschain.New(cfg.MasChain, nil, logger.Component(log, "maschain"))

	// Business services
	kycSvc := service.NewKYCService(provider, ngoRepo, kycRepo, verifiedCache, logger.Component(log, "kyc"))

	// On-chain gateway is optional: without an RPC endpoint the server
	// still runs the wallet/e-KYC flows.
	var campaignSvc ports.CampaignService
	if cfg.Chain.RPCURL != "" {
		gateway, err := chain.Dial(ctx, cfg.Chain, logger.Component(log, "chain"))
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to chain RPC")
		}
		campaignSvc = service.NewCampaignService(gateway, logger.Component(log, "campaign"))
	} else {
		log.Warn().Msg("chain rpc_url not configured, on-chain routes disabled")
	}

	// Health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		KYCSvc:          kycSvc,
		CampaignSvc:     campaignSvc,
		ProviderBaseURL: provider.BaseURL(),
		RateLimitStore:  rateLimitStore,
		HealthCheckers:  []ports.HealthChecker{pgHealth, redisHealth},
		Logger:          log,
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
