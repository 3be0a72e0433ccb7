package discordbot

import (
	"sync"

	"github.com/bwmarrin/discordgo"
)

// fakeSession records replies and lets each test stub the calls it cares about.
type fakeSession struct {
	mu       sync.Mutex
	replies  []*discordgo.InteractionResponse
	handlers []interface{}
	sent     []*discordgo.MessageSend

	ChannelFunc       func(channelID string) (*discordgo.Channel, error)
	SendComplexFunc   func(channelID string, data *discordgo.MessageSend) (*discordgo.Message, error)
	BulkOverwriteFunc func(appID, guildID string, cmds []*discordgo.ApplicationCommand) ([]*discordgo.ApplicationCommand, error)
	RespondFunc       func(resp *discordgo.InteractionResponse) error
	openCalls         int
	closeCalls        int
}

func (f *fakeSession) AddHandler(handler interface{}) func() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.handlers = append(f.handlers, handler)
	return func() {}
}

func (f *fakeSession) Open() error {
	f.openCalls++
	return nil
}

func (f *fakeSession) Close() error {
	f.closeCalls++
	return nil
}

func (f *fakeSession) InteractionRespond(_ *discordgo.Interaction, resp *discordgo.InteractionResponse, _ ...discordgo.RequestOption) error {
	f.mu.Lock()
	f.replies = append(f.replies, resp)
	f.mu.Unlock()
	if f.RespondFunc != nil {
		return f.RespondFunc(resp)
	}
	return nil
}

func (f *fakeSession) ApplicationCommandBulkOverwrite(appID string, guildID string, cmds []*discordgo.ApplicationCommand, _ ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error) {
	if f.BulkOverwriteFunc != nil {
		return f.BulkOverwriteFunc(appID, guildID, cmds)
	}
	return cmds, nil
}

func (f *fakeSession) Channel(channelID string, _ ...discordgo.RequestOption) (*discordgo.Channel, error) {
	if f.ChannelFunc != nil {
		return f.ChannelFunc(channelID)
	}
	return &discordgo.Channel{ID: channelID, Type: discordgo.ChannelTypeGuildText}, nil
}

func (f *fakeSession) ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.mu.Lock()
	f.sent = append(f.sent, data)
	f.mu.Unlock()
	if f.SendComplexFunc != nil {
		return f.SendComplexFunc(channelID, data)
	}
	return &discordgo.Message{ChannelID: channelID}, nil
}

func (f *fakeSession) lastReply() *discordgo.InteractionResponse {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.replies) == 0 {
		return nil
	}
	return f.replies[len(f.replies)-1]
}

func (f *fakeSession) replyCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.replies)
}
