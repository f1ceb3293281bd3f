package handler

import (
	"wager-arena/internal/adapter/http/middleware"
	redisStore "wager-arena/internal/adapter/storage/redis"
	"wager-arena/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	LedgerSvc      ports.LedgerService
	SessionSvc     ports.SessionService
	DepositSvc     ports.DepositService
	TokenSvc       ports.TokenService
	IPNVerifier    ports.IPNVerifier
	EngineKey      string
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
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

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Provider webhook (signature-authenticated, no JWT) ---
	depositHandler := NewDepositHandler(deps.DepositSvc, deps.IPNVerifier, deps.Logger)
	v1.POST("/payments/webhook", rl("webhook"), depositHandler.Webhook)

	// --- Player routes (JWT) ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.LedgerSvc, deps.Logger)
	sessionHandler := NewSessionHandler(deps.SessionSvc, deps.LedgerSvc)
	accountHandler := NewAccountHandler(deps.LedgerSvc)

	sessions := v1.Group("/sessions", jwtAuth)
	{
		sessions.POST("", rl("sessions_start"), sessionHandler.Start)
		sessions.GET("/:id", rl("reads"), sessionHandler.Get)
		sessions.POST("/:id/cashout", rl("sessions_cashout"), sessionHandler.CashOut)
	}

	accounts := v1.Group("/accounts", jwtAuth)
	{
		accounts.GET("/balance", rl("reads"), accountHandler.GetBalance)
		accounts.GET("/entries", rl("reads"), accountHandler.ListEntries)
	}

	deposits := v1.Group("/deposits", jwtAuth)
	{
		deposits.POST("", rl("deposits"), depositHandler.CreateDeposit)
		deposits.GET("/:id", rl("reads"), depositHandler.GetPayment)
	}

	// --- Engine routes (shared-secret header) ---
	engineAuth := middleware.EngineAuth(deps.EngineKey, deps.Logger)
	engine := v1.Group("/engine/sessions", engineAuth)
	{
		engine.POST("/:id/value", sessionHandler.ReportValue)
		engine.POST("/:id/end", sessionHandler.EndSession)
	}

	return r
}
