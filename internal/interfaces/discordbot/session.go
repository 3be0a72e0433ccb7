package discordbot

import "github.com/bwmarrin/discordgo"

// Session is the slice of the Discord client the bot uses.
// *discordgo.Session satisfies it.
type Session interface {
	AddHandler(handler interface{}) func()
	Open() error
	Close() error
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	ApplicationCommandBulkOverwrite(appID string, guildID string, commands []*discordgo.ApplicationCommand, options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error)
	Channel(channelID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

var _ Session = (*discordgo.Session)(nil)
