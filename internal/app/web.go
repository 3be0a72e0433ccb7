package app

import (
	"context"
	"net/http"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/esports-club/internal/config"
	"github.com/riskibarqy/esports-club/internal/domain/game"
	"github.com/riskibarqy/esports-club/internal/domain/player"
	"github.com/riskibarqy/esports-club/internal/infrastructure/botwebhook"
	cacherepo "github.com/riskibarqy/esports-club/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/esports-club/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/esports-club/internal/interfaces/httpapi"
	"github.com/riskibarqy/esports-club/internal/platform/cache"
	"github.com/riskibarqy/esports-club/internal/platform/id"
	"github.com/riskibarqy/esports-club/internal/platform/logging"
	"github.com/riskibarqy/esports-club/internal/platform/resilience"
	"github.com/riskibarqy/esports-club/internal/usecase"
)

// WebProcess is the wired web binary.
type WebProcess struct {
	Server *http.Server

	db     *sqlx.DB
	logger *logging.Logger
}

func NewWebProcess(ctx context.Context, cfg config.Config, logger *logging.Logger) (*WebProcess, error) {
	db, err := OpenDatabase(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	var (
		gameRepo   game.Repository   = postgres.NewGameRepository(db)
		playerRepo player.Repository = postgres.NewPlayerRepository(db)
	)
	if cfg.CacheEnabled {
		store := cache.NewStore[any](cfg.CacheTTL)
		gameRepo = cacherepo.NewGameRepository(gameRepo, store)
		playerRepo = cacherepo.NewPlayerRepository(playerRepo, store)
	}

	rosterSvc := usecase.NewRosterService(gameRepo, playerRepo)
	applicantSvc := usecase.NewApplicantService(postgres.NewApplicantRepository(db))

	client, err := botwebhook.NewClient(botwebhook.Config{
		URL:     cfg.BotWebhookURL,
		Timeout: cfg.BotWebhookTimeout,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.BotWebhookCircuitEnabled,
			FailureThreshold: cfg.BotWebhookCircuitFailures,
			OpenTimeout:      cfg.BotWebhookCircuitOpen,
			HalfOpenMaxReq:   cfg.BotWebhookCircuitHalfOpen,
		},
	}, logger.Named("botwebhook"))
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	forwardSvc := usecase.NewApplicationForwardService(client, id.NewUUIDGenerator(), logger.Named("application"))

	handler := httpapi.NewHandler(nil, forwardSvc, applicantSvc, rosterSvc, logger)
	server, err := newHTTPServer(cfg.HTTPAddr, httpapi.NewWebRouter(handler, logger, cfg.CORSAllowedOrigins), cfg)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	logger.Info("web process wired", "cache_enabled", cfg.CacheEnabled, "bot_webhook_url", cfg.BotWebhookURL)
	return &WebProcess{Server: server, db: db, logger: logger}, nil
}

func (p *WebProcess) Close() {
	if err := p.db.Close(); err != nil {
		p.logger.Warn("close database", "error", err)
	}
}
