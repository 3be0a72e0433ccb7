package discordbot

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/bwmarrin/discordgo"
	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/esports-club/internal/domain/application"
	"github.com/riskibarqy/esports-club/internal/platform/logging"
	"github.com/riskibarqy/esports-club/internal/usecase"
)

const (
	MsgNotReady           = "Bot is initializing. Try again in a moment."
	MsgChannelUnset       = "Server configuration error: Admin channel ID is missing."
	MsgChannelUnavailable = "Target Discord channel not found or inaccessible."
	MsgSendFailed         = "Failed to communicate with Discord API."

	applicationEmbedTitle = "🚨 NEW WEB APPLICATION RECEIVED"
	applicationEmbedColor = 0x00ff00
	phoneNotProvided      = "*(Not Provided)*"
)

// Notifier posts web applications into the admin channel.
type Notifier struct {
	session   Session
	channelID string
	ready     atomic.Bool
	now       func() time.Time
	logger    *logging.Logger
}

func NewNotifier(session Session, channelID string, logger *logging.Logger) *Notifier {
	if logger == nil {
		logger = logging.Default()
	}
	return &Notifier{
		session:   session,
		channelID: channelID,
		now:       time.Now,
		logger:    logger,
	}
}

func (n *Notifier) SetReady(ready bool) {
	n.ready.Store(ready)
}

func (n *Notifier) Ready() bool {
	return n.ready.Load()
}

func (n *Notifier) PostApplication(ctx context.Context, item application.Application) error {
	if !n.ready.Load() {
		n.logger.ErrorContext(ctx, "client not ready, application not posted")
		return usecase.NewRelayError(http.StatusServiceUnavailable, MsgNotReady, nil)
	}
	if n.channelID == "" {
		n.logger.ErrorContext(ctx, "ADMIN_CHANNEL_ID is not configured")
		return usecase.NewRelayError(http.StatusServiceUnavailable, MsgChannelUnset, nil)
	}

	channel, err := n.session.Channel(n.channelID)
	if err != nil {
		n.logger.ErrorContext(ctx, "admin channel lookup failed", "channel_id", n.channelID, "error", err)
		return usecase.NewRelayError(http.StatusServiceUnavailable, MsgChannelUnavailable,
			crerr.Wrapf(err, "fetch channel %s", n.channelID))
	}
	if channel == nil || !isTextChannel(channel.Type) {
		n.logger.ErrorContext(ctx, "admin channel is not a text channel", "channel_id", n.channelID)
		return usecase.NewRelayError(http.StatusServiceUnavailable, MsgChannelUnavailable,
			crerr.Newf("channel %s is not a text channel", n.channelID))
	}

	_, err = n.session.ChannelMessageSendComplex(n.channelID, &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{applicationEmbed(item, n.now())},
	})
	if err != nil {
		n.logger.ErrorContext(ctx, "send application to discord failed", "channel_id", n.channelID, "error", err)
		return usecase.NewRelayError(http.StatusServiceUnavailable, MsgSendFailed,
			crerr.Wrapf(err, "send to channel %s", n.channelID))
	}

	n.logger.InfoContext(ctx, "application posted", "applicant", item.Name)
	return nil
}

func applicationEmbed(item application.Application, at time.Time) *discordgo.MessageEmbed {
	phone := item.Phone
	if phone == "" {
		phone = phoneNotProvided
	}

	return &discordgo.MessageEmbed{
		Title: applicationEmbedTitle,
		Color: applicationEmbedColor,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Full Name", Value: item.Name, Inline: true},
			{Name: "Discord Username", Value: "`" + item.Discord + "`", Inline: true},
			{Name: "Email Address", Value: item.Email},
			{Name: "Phone Number", Value: phone},
		},
		Timestamp: at.UTC().Format(time.RFC3339),
	}
}

func isTextChannel(t discordgo.ChannelType) bool {
	switch t {
	case discordgo.ChannelTypeGuildText,
		discordgo.ChannelTypeGuildNews,
		discordgo.ChannelTypeDM,
		discordgo.ChannelTypeGroupDM,
		discordgo.ChannelTypeGuildVoice,
		discordgo.ChannelTypeGuildNewsThread,
		discordgo.ChannelTypeGuildPublicThread,
		discordgo.ChannelTypeGuildPrivateThread:
		return true
	default:
		return false
	}
}
