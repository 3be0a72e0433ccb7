package discordbot

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/bwmarrin/discordgo"
	"github.com/panjf2000/ants/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/esports-club/internal/platform/logging"
)

const msgUnauthorized = "🚨 **Unauthorized:** This command can only be used by bot administrators."

var botTracer = otel.Tracer("esports-club/internal/interfaces/discordbot")

// AdminChecker returns an error (usecase.ErrUnauthorized) when a Discord
// user may not run gated commands. Any error denies the command.
type AdminChecker interface {
	RequireAdmin(ctx context.Context, discordID string) error
}

type reply struct {
	content   string
	ephemeral bool
}

type commandFunc func(ctx context.Context, in commandInput) reply

type command struct {
	gated bool
	run   commandFunc
}

type commandInput struct {
	name     string
	userID   string
	options  map[string]*discordgo.ApplicationCommandInteractionDataOption
	resolved *discordgo.ApplicationCommandInteractionDataResolved
}

func (in commandInput) str(name string) string {
	opt, ok := in.options[name]
	if !ok || opt.Type != discordgo.ApplicationCommandOptionString {
		return ""
	}
	return opt.StringValue()
}

func (in commandInput) int(name string) int64 {
	opt, ok := in.options[name]
	if !ok || opt.Type != discordgo.ApplicationCommandOptionInteger {
		return 0
	}
	return opt.IntValue()
}

func (in commandInput) user(name string) (*discordgo.User, bool) {
	opt, ok := in.options[name]
	if !ok || opt.Type != discordgo.ApplicationCommandOptionUser {
		return nil, false
	}
	id, ok := opt.Value.(string)
	if !ok || id == "" {
		return nil, false
	}
	if in.resolved != nil {
		if u, found := in.resolved.Users[id]; found && u != nil {
			return u, true
		}
	}
	return &discordgo.User{ID: id, Username: id}, true
}

// Dispatcher routes slash commands to exactly one handler, running the admin
// check first for gated commands.
type Dispatcher struct {
	session  Session
	pool     *ants.Pool
	admins   AdminChecker
	commands map[string]command
	logger   *logging.Logger
}

// NewDispatcher runs interactions on pool; a nil pool runs them inline.
func NewDispatcher(session Session, pool *ants.Pool, admins AdminChecker, handlers *Handlers, logger *logging.Logger) *Dispatcher {
	if logger == nil {
		logger = logging.Default()
	}

	return &Dispatcher{
		session: session,
		pool:    pool,
		admins:  admins,
		commands: map[string]command{
			cmdPing:         {gated: false, run: handlers.Ping},
			cmdListTeams:    {gated: false, run: handlers.ListTeams},
			cmdAddGame:      {gated: true, run: handlers.AddGame},
			cmdAddTeam:      {gated: true, run: handlers.AddTeam},
			cmdRemoveGame:   {gated: true, run: handlers.RemoveGame},
			cmdAddPlayer:    {gated: true, run: handlers.AddPlayer},
			cmdRemovePlayer: {gated: true, run: handlers.RemovePlayer},
		},
		logger: logger,
	}
}

// HandleInteraction is registered with the gateway session.
func (d *Dispatcher) HandleInteraction(_ *discordgo.Session, ic *discordgo.InteractionCreate) {
	if ic == nil || ic.Interaction == nil {
		return
	}
	interaction := ic.Interaction

	if d.pool == nil {
		d.Dispatch(context.Background(), interaction)
		return
	}
	if err := d.pool.Submit(func() { d.Dispatch(context.Background(), interaction) }); err != nil {
		d.logger.Error("interaction dropped", "interaction_id", interaction.ID, "error", err)
	}
}

// Dispatch handles one interaction synchronously.
func (d *Dispatcher) Dispatch(ctx context.Context, interaction *discordgo.Interaction) {
	if interaction.Type != discordgo.InteractionApplicationCommand {
		d.logger.Debug("ignoring non-command interaction", "type", int(interaction.Type))
		return
	}

	data := interaction.ApplicationCommandData()
	cmd, ok := d.commands[data.Name]
	if !ok {
		d.logger.Debug("ignoring unknown command", "command", data.Name)
		return
	}

	ctx, span := botTracer.Start(ctx, "discordbot.Dispatcher."+data.Name)
	defer span.End()

	in := commandInput{
		name:     data.Name,
		userID:   invokingUserID(interaction),
		options:  make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(data.Options)),
		resolved: data.Resolved,
	}
	for _, opt := range data.Options {
		in.options[opt.Name] = opt
	}
	span.SetAttributes(
		attribute.String("discord.command", in.name),
		attribute.String("discord.user_id", in.userID),
	)

	replied := false
	defer func() {
		if rec := recover(); rec != nil {
			d.logger.ErrorContext(ctx, "panic recovered in command handler",
				"command", in.name,
				"panic", fmt.Sprint(rec),
				"stack", string(debug.Stack()),
			)
			if !replied {
				d.respond(ctx, interaction, reply{content: msgUnknownDBError, ephemeral: true})
			}
		}
	}()

	var out reply
	if err := d.gate(ctx, cmd, in.userID); err != nil {
		d.logger.WarnContext(ctx, "unauthorized command attempt", "command", in.name, "user_id", in.userID, "error", err)
		out = reply{content: msgUnauthorized, ephemeral: true}
	} else {
		out = cmd.run(ctx, in)
	}

	replied = true
	d.respond(ctx, interaction, out)
}

func (d *Dispatcher) gate(ctx context.Context, cmd command, userID string) error {
	if !cmd.gated {
		return nil
	}
	return d.admins.RequireAdmin(ctx, userID)
}

func (d *Dispatcher) respond(ctx context.Context, interaction *discordgo.Interaction, out reply) {
	data := &discordgo.InteractionResponseData{Content: out.content}
	if out.ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}

	err := d.session.InteractionRespond(interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
	if err != nil {
		d.logger.ErrorContext(ctx, "interaction reply failed", "interaction_id", interaction.ID, "error", err)
	}
}

func invokingUserID(interaction *discordgo.Interaction) string {
	if interaction.Member != nil && interaction.Member.User != nil {
		return interaction.Member.User.ID
	}
	if interaction.User != nil {
		return interaction.User.ID
	}
	return ""
}
