package handler

import (
	"ngo-funding-gateway/internal/adapter/http/middleware"
	redisStore "ngo-funding-gateway/internal/adapter/storage/redis"
	"ngo-funding-gateway/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	KYCSvc          ports.KYCService
	CampaignSvc     ports.CampaignService // nil = chain routes disabled
	ProviderBaseURL string
	RateLimitStore  *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers  []ports.HealthChecker
	Logger          zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	api := r.Group("/api")

	kycHandler := NewKYCHandler(deps.KYCSvc, deps.ProviderBaseURL)

	wallet := api.Group("/wallet")
	{
		wallet.POST("/create", rl("wallet_create"), kycHandler.CreateWallet)
	}

	kyc := api.Group("/kyc")
	{
		kyc.POST("/start", rl("kyc_start"), kycHandler.StartVerification)
		kyc.GET("/status/:walletAddress", rl("kyc_status"), kycHandler.Status)
	}

	api.GET("/test/maschain-url", kycHandler.ProviderURL)

	// --- On-chain submission (optional: requires a configured RPC endpoint) ---
	if deps.CampaignSvc != nil {
		chainHandler := NewChainHandler(deps.CampaignSvc)
		chain := api.Group("/chain")
		{
			chain.POST("/campaigns", rl("chain_submit"), chainHandler.CreateCampaign)
			chain.POST("/campaigns/:id/donate", rl("chain_submit"), chainHandler.Donate)
			chain.GET("/tx/:hash", rl("chain_status"), chainHandler.TxStatus)
		}
	}

	return r
}
