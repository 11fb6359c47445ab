package handler

import (
	"stakeledger/internal/adapter/http/middleware"
	redisStore "stakeledger/internal/adapter/storage/redis"
	"stakeledger/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	SupplySvc      ports.SupplyService
	StakingSvc     ports.StakingService
	AdminSvc       ports.AdminService
	UpgradeSvc     ports.UpgradeService
	TokenSvc       ports.TokenService
	EventRepo      ports.EventRepository
	APIKey         string
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

	// --- Public routes (no auth) ---
	authHandler := NewAuthHandler(deps.APIKey, deps.TokenSvc)
	v1.POST("/auth/token", rl("auth_token"), authHandler.IssueToken)

	supplyHandler := NewSupplyHandler(deps.SupplySvc)
	stakingHandler := NewStakingHandler(deps.StakingSvc)
	ledgerHandler := NewLedgerHandler(deps.EventRepo)

	// Public reads: global supply, any account's position, the event log.
	v1.GET("/supply", rl("query"), supplyHandler.Overview)
	v1.GET("/accounts/:address", rl("query"), stakingHandler.PositionOf)
	v1.GET("/events", rl("query"), ledgerHandler.ListEvents)

	// --- JWT-authenticated routes ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)

	staking := v1.Group("/staking", jwtAuth)
	{
		staking.POST("/stake", rl("staking"), stakingHandler.Stake)
		staking.POST("/unstake", rl("staking"), stakingHandler.Unstake)
		staking.POST("/claim", rl("staking"), stakingHandler.ClaimRewards)
		staking.GET("/position", rl("query"), stakingHandler.Position)
	}

	supply := v1.Group("/supply", jwtAuth)
	{
		supply.POST("/mint", rl("mint"), supplyHandler.Mint)
		supply.PUT("/max", rl("admin"), supplyHandler.UpdateMaxSupply)
	}

	adminHandler := NewAdminHandler(deps.AdminSvc, deps.UpgradeSvc)
	admin := v1.Group("/admin", jwtAuth)
	{
		admin.PUT("/reward-rate", rl("admin"), adminHandler.SetRewardRate)
		admin.PUT("/min-staking-duration", rl("admin"), adminHandler.SetMinStakingDuration)
		admin.POST("/minters", rl("admin"), adminHandler.AddMinter)
		admin.DELETE("/minters/:address", rl("admin"), adminHandler.RemoveMinter)
		admin.GET("/minters", rl("query"), adminHandler.ListMinters)
		admin.PUT("/administrator", rl("admin"), adminHandler.TransferAdministrator)
		admin.PUT("/pause", rl("admin"), adminHandler.SetPaused)
		admin.POST("/upgrade", rl("admin"), adminHandler.AuthorizeUpgrade)
		admin.GET("/schema-version", rl("query"), adminHandler.SchemaVersion)
	}

	return r
}
