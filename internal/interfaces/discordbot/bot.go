package discordbot

import (
	"github.com/bwmarrin/discordgo"

	"github.com/riskibarqy/esports-club/internal/platform/logging"
)

type Config struct {
	ApplicationID string
	GuildID       string
}

// Bot owns the gateway session lifecycle.
type Bot struct {
	session    Session
	dispatcher *Dispatcher
	notifier   *Notifier
	cfg        Config
	logger     *logging.Logger
	removers   []func()
}

func NewBot(session Session, dispatcher *Dispatcher, notifier *Notifier, cfg Config, logger *logging.Logger) *Bot {
	if logger == nil {
		logger = logging.Default()
	}
	return &Bot{
		session:    session,
		dispatcher: dispatcher,
		notifier:   notifier,
		cfg:        cfg,
		logger:     logger,
	}
}

// Start registers event handlers and opens the gateway connection.
func (b *Bot) Start() error {
	b.removers = append(b.removers,
		b.session.AddHandler(b.onReady),
		b.session.AddHandler(b.onDisconnect),
		b.session.AddHandler(b.onResumed),
		b.session.AddHandler(b.dispatcher.HandleInteraction),
	)

	b.logger.Info("opening discord gateway connection")
	return b.session.Open()
}

func (b *Bot) Close() error {
	b.notifier.SetReady(false)
	for _, remove := range b.removers {
		remove()
	}
	b.removers = nil

	b.logger.Info("closing discord gateway connection")
	return b.session.Close()
}

func (b *Bot) onReady(_ *discordgo.Session, r *discordgo.Ready) {
	b.handleReady(r)
}

func (b *Bot) onDisconnect(_ *discordgo.Session, _ *discordgo.Disconnect) {
	b.notifier.SetReady(false)
	b.logger.Warn("discord gateway disconnected")
}

func (b *Bot) onResumed(_ *discordgo.Session, _ *discordgo.Resumed) {
	b.notifier.SetReady(true)
	b.logger.Info("discord gateway resumed")
}

func (b *Bot) handleReady(r *discordgo.Ready) {
	appID := b.cfg.ApplicationID
	if r != nil {
		if r.User != nil {
			b.logger.Info("logged in", "user", r.User.Username)
		}
		if appID == "" && r.Application != nil {
			appID = r.Application.ID
		}
	}

	b.notifier.SetReady(true)
	b.registerCommands(appID)
}

func (b *Bot) registerCommands(appID string) {
	if appID == "" {
		b.logger.Error("cannot register commands without an application id")
		return
	}

	created, err := b.session.ApplicationCommandBulkOverwrite(appID, b.cfg.GuildID, CommandDefinitions())
	if err != nil {
		b.logger.Error("error registering commands", "application_id", appID, "guild_id", b.cfg.GuildID, "error", err)
		return
	}
	b.logger.Info("registered application commands", "count", len(created), "guild_id", b.cfg.GuildID)
}
