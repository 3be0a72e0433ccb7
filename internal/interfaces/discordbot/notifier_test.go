package discordbot

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/esports-club/internal/domain/application"
	"github.com/riskibarqy/esports-club/internal/platform/logging"
	"github.com/riskibarqy/esports-club/internal/usecase"
)

var sample = application.Application{Name: "Ana Rivera", Discord: "ana#0001", Email: "ana@example.edu"}

func requireRelayError(t *testing.T, err error, message string) {
	t.Helper()

	var relayErr *usecase.RelayError
	require.ErrorAs(t, err, &relayErr)
	assert.Equal(t, http.StatusServiceUnavailable, relayErr.StatusCode)
	assert.Equal(t, message, relayErr.Message)
	assert.ErrorIs(t, err, usecase.ErrDependencyUnavailable)
}

func TestNotifier_PostsEmbed(t *testing.T) {
	session := &fakeSession{}
	notifier := NewNotifier(session, "999", logging.NewNop())
	notifier.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	notifier.SetReady(true)

	require.NoError(t, notifier.PostApplication(context.Background(), sample))
	require.Len(t, session.sent, 1)
	require.Len(t, session.sent[0].Embeds, 1)

	embed := session.sent[0].Embeds[0]
	assert.Equal(t, "🚨 NEW WEB APPLICATION RECEIVED", embed.Title)
	assert.Equal(t, 0x00ff00, embed.Color)
	assert.Equal(t, "2026-03-01T12:00:00Z", embed.Timestamp)
	require.Len(t, embed.Fields, 4)
	assert.Equal(t, &discordgo.MessageEmbedField{Name: "Full Name", Value: "Ana Rivera", Inline: true}, embed.Fields[0])
	assert.Equal(t, "`ana#0001`", embed.Fields[1].Value)
	assert.True(t, embed.Fields[1].Inline)
	assert.Equal(t, "ana@example.edu", embed.Fields[2].Value)
	assert.Equal(t, "*(Not Provided)*", embed.Fields[3].Value)
}

func TestNotifier_Failures(t *testing.T) {
	t.Run("not ready", func(t *testing.T) {
		session := &fakeSession{}
		notifier := NewNotifier(session, "999", logging.NewNop())

		requireRelayError(t, notifier.PostApplication(context.Background(), sample), MsgNotReady)
		assert.Empty(t, session.sent)
	})

	t.Run("channel not configured", func(t *testing.T) {
		notifier := NewNotifier(&fakeSession{}, "", logging.NewNop())
		notifier.SetReady(true)

		requireRelayError(t, notifier.PostApplication(context.Background(), sample), MsgChannelUnset)
	})

	t.Run("channel lookup fails", func(t *testing.T) {
		session := &fakeSession{ChannelFunc: func(string) (*discordgo.Channel, error) {
			return nil, errors.New("HTTP 404 Not Found")
		}}
		notifier := NewNotifier(session, "999", logging.NewNop())
		notifier.SetReady(true)

		requireRelayError(t, notifier.PostApplication(context.Background(), sample), MsgChannelUnavailable)
	})

	t.Run("channel is not text", func(t *testing.T) {
		session := &fakeSession{ChannelFunc: func(id string) (*discordgo.Channel, error) {
			return &discordgo.Channel{ID: id, Type: discordgo.ChannelTypeGuildCategory}, nil
		}}
		notifier := NewNotifier(session, "999", logging.NewNop())
		notifier.SetReady(true)

		requireRelayError(t, notifier.PostApplication(context.Background(), sample), MsgChannelUnavailable)
		assert.Empty(t, session.sent)
	})

	t.Run("send fails", func(t *testing.T) {
		session := &fakeSession{SendComplexFunc: func(string, *discordgo.MessageSend) (*discordgo.Message, error) {
			return nil, errors.New("HTTP 403 Forbidden")
		}}
		notifier := NewNotifier(session, "999", logging.NewNop())
		notifier.SetReady(true)

		requireRelayError(t, notifier.PostApplication(context.Background(), sample), MsgSendFailed)
	})
}
