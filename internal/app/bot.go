package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/jmoiron/sqlx"
	"github.com/panjf2000/ants/v2"

	"github.com/riskibarqy/esports-club/internal/config"
	"github.com/riskibarqy/esports-club/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/esports-club/internal/interfaces/discordbot"
	"github.com/riskibarqy/esports-club/internal/interfaces/httpapi"
	"github.com/riskibarqy/esports-club/internal/platform/cache"
	"github.com/riskibarqy/esports-club/internal/platform/logging"
	"github.com/riskibarqy/esports-club/internal/usecase"
)

// BotProcess is the wired bot binary: gateway session plus the webhook server.
type BotProcess struct {
	Server *http.Server
	Bot    *discordbot.Bot

	db     *sqlx.DB
	pool   *ants.Pool
	logger *logging.Logger
}

func NewBotProcess(ctx context.Context, cfg config.Config, logger *logging.Logger) (*BotProcess, error) {
	db, err := OpenDatabase(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	pool, err := ants.NewPool(cfg.DiscordWorkerPoolSize)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create interaction worker pool: %w", err)
	}

	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		pool.Release()
		_ = db.Close()
		return nil, fmt.Errorf("create discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds

	gameRepo := postgres.NewGameRepository(db)
	teamRepo := postgres.NewTeamRepository(db)
	playerRepo := postgres.NewPlayerRepository(db)
	adminRepo := postgres.NewAdminRepository(db)

	authSvc := usecase.NewAuthorizationService(adminRepo, logger.Named("authorization"))
	clubSvc := usecase.NewClubService(gameRepo, teamRepo, playerRepo)

	botLogger := logger.Named("discordbot")
	notifier := discordbot.NewNotifier(session, cfg.AdminChannelID, botLogger)
	dispatcher := discordbot.NewDispatcher(session, pool, authSvc, discordbot.NewHandlers(clubSvc, botLogger), botLogger)
	bot := discordbot.NewBot(session, dispatcher, notifier, discordbot.Config{
		ApplicationID: cfg.DiscordApplicationID,
		GuildID:       cfg.DiscordGuildID,
	}, botLogger)

	appSvc := usecase.NewApplicationService(notifier, cache.NewStore[time.Time](cfg.WebhookIdempotencyTTL), logger.Named("application"))
	handler := httpapi.NewHandler(appSvc, nil, nil, nil, logger)

	server, err := newHTTPServer(cfg.WebhookAddr, httpapi.NewBotRouter(handler, logger), cfg)
	if err != nil {
		pool.Release()
		_ = db.Close()
		return nil, err
	}

	return &BotProcess{
		Server: server,
		Bot:    bot,
		db:     db,
		pool:   pool,
		logger: logger,
	}, nil
}

// Close releases the session, worker pool and database in that order.
// The HTTP server is shut down by the caller first.
func (p *BotProcess) Close() {
	if err := p.Bot.Close(); err != nil {
		p.logger.Warn("close discord session", "error", err)
	}
	p.pool.Release()
	if err := p.db.Close(); err != nil {
		p.logger.Warn("close database", "error", err)
	}
}

func newHTTPServer(addr string, handler http.Handler, cfg config.Config) (*http.Server, error) {
	if addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}
	return &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}, nil
}
