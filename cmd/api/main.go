package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stakeledger/config"
	httpHandler "stakeledger/internal/adapter/http/handler"
	pgStorage "stakeledger/internal/adapter/storage/postgres"
	redisStorage "stakeledger/internal/adapter/storage/redis"
	"stakeledger/internal/core/domain"
	"stakeledger/internal/core/ports"
	"stakeledger/internal/service"
	"stakeledger/pkg/apperror"
	"stakeledger/pkg/logger"

	"github.com/holiman/uint256"
	"github.com/rs/zerolog"
)

// schemaVersions lists the setup runs attempted at every boot, in order. The
// initialization guard makes re-runs a no-op, so a restarted node converges
// on the latest version without operator intervention.
var schemaVersions = []uint32{1, 2}

// logSwapHost is the default upgrade host. The authorization flow is real;
// the swap itself is delegated to the deployment tooling, so all this node
// can do is record that the handover was cleared.
type logSwapHost struct {
	log zerolog.Logger
}

func (h logSwapHost) Swap(ctx context.Context, newLogicHandle string) error {
	h.log.Info().Str("new_logic_handle", newLogicHandle).Msg("Logic swap authorized, handing off to deployment tooling")
	return nil
}

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
		Msg("Starting Stake Ledger")

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
	schemaRepo := pgStorage.NewSchemaRepo(pool)
	balanceRepo := pgStorage.NewBalanceRepo(pool)
	supplyRepo := pgStorage.NewSupplyRepo(pool)
	stakingRepo := pgStorage.NewStakingRepo(pool)
	roleRepo := pgStorage.NewRoleRepo(pool)
	eventRepo := pgStorage.NewEventRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	if err := schemaRepo.EnsureSchema(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to ensure database schema")
	}

	// Initialize Redis stores
	pauseGate := redisStorage.NewPauseGate(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Initialize core services
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	clock := service.NewSystemClock()

	// Event notifier (disabled when no webhook URL is configured)
	var notifier ports.EventNotifier
	if wn := service.NewWebhookNotifier(
		cfg.Webhook.URL,
		cfg.Webhook.Secret,
		&http.Client{Timeout: cfg.Webhook.Timeout},
		log,
	); wn != nil {
		notifier = wn
		log.Info().Str("url", cfg.Webhook.URL).Msg("Event webhook notifier enabled")
	}

	setupParams, err := loadSetupParams(cfg.Ledger)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid ledger configuration")
	}

	// Initialize business services
	upgradeSvc := service.NewUpgradeService(
		schemaRepo,
		supplyRepo,
		stakingRepo,
		roleRepo,
		eventRepo,
		transactor,
		logSwapHost{log: log},
		setupParams,
		log,
	)
	stakingSvc := service.NewStakingService(
		stakingRepo,
		supplyRepo,
		balanceRepo,
		eventRepo,
		transactor,
		pauseGate,
		clock,
		notifier,
		log,
	)
	supplySvc := service.NewSupplyService(
		supplyRepo,
		stakingRepo,
		balanceRepo,
		roleRepo,
		eventRepo,
		schemaRepo,
		transactor,
		pauseGate,
		notifier,
		log,
	)
	adminSvc := service.NewAdminService(
		stakingRepo,
		roleRepo,
		eventRepo,
		transactor,
		pauseGate,
		notifier,
		log,
	)

	// Run the one-time setup for each schema version. Versions that already
	// ran report INIT_001/INIT_002, which just means this node is not first.
	for _, v := range schemaVersions {
		if err := upgradeSvc.Setup(ctx, v); err != nil {
			var appErr *apperror.AppError
			if errors.As(err, &appErr) && (appErr.Code == "INIT_001" || appErr.Code == "INIT_002") {
				log.Debug().Uint32("version", v).Msg("Schema version already populated")
				continue
			}
			log.Fatal().Err(err).Uint32("version", v).Msg("Schema setup failed")
		}
		log.Info().Uint32("version", v).Msg("Schema version populated")
	}

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		SupplySvc:      supplySvc,
		StakingSvc:     stakingSvc,
		AdminSvc:       adminSvc,
		UpgradeSvc:     upgradeSvc,
		TokenSvc:       tokenSvc,
		EventRepo:      eventRepo,
		APIKey:         cfg.Auth.APIKey,
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

func loadSetupParams(cfg config.LedgerConfig) (service.SetupParams, error) {
	maxSupply, err := uint256.FromDecimal(cfg.InitialMaxSupply)
	if err != nil {
		return service.SetupParams{}, fmt.Errorf("parsing ledger.initial_max_supply %q: %w", cfg.InitialMaxSupply, err)
	}
	return service.SetupParams{
		Administrator:          domain.Address(cfg.Administrator),
		InitialMaxSupply:       maxSupply,
		RewardRateBps:          cfg.RewardRateBps,
		MinStakingDurationSecs: cfg.MinStakingDurationSecs,
	}, nil
}
