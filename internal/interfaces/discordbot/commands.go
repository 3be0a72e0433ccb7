package discordbot

import (
	"github.com/bwmarrin/discordgo"

	"github.com/riskibarqy/esports-club/internal/domain/roster"
)

const (
	cmdPing         = "ping"
	cmdAddGame      = "add_game"
	cmdAddTeam      = "add_team"
	cmdRemoveGame   = "remove_game"
	cmdAddPlayer    = "add_player"
	cmdRemovePlayer = "remove_player"
	cmdListTeams    = "list_teams"
)

func roleChoices() []*discordgo.ApplicationCommandOptionChoice {
	roles := roster.Roles()
	out := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(roles))
	for _, r := range roles {
		out = append(out, &discordgo.ApplicationCommandOptionChoice{Name: r.Role, Value: r.Role})
	}
	return out
}

// CommandDefinitions is the guild command set registered on Ready.
func CommandDefinitions() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        cmdPing,
			Description: "Replies with Pong!",
		},
		{
			Name:        cmdAddGame,
			Description: "Registers a new game to the database (Admin only).",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionString, Name: "name", Description: "The name of the new game.", Required: true},
				{Type: discordgo.ApplicationCommandOptionInteger, Name: "player_count", Description: "The required player count for the game.", Required: true},
			},
		},
		{
			Name:        cmdAddTeam,
			Description: "Registers a new team for a specific game (Admin only).",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionString, Name: "game_name", Description: "The name of the game the team belongs to.", Required: true},
				{Type: discordgo.ApplicationCommandOptionString, Name: "team_name", Description: "The name of the new team.", Required: true},
			},
		},
		{
			Name:        cmdRemoveGame,
			Description: "Deletes a game and all related teams/players (Admin only).",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionString, Name: "name", Description: "The name of the game to remove.", Required: true},
			},
		},
		{
			Name:        cmdAddPlayer,
			Description: "Registers a player to a team (Admin only).",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionUser, Name: "user", Description: "The Discord user to add as a player.", Required: true},
				{Type: discordgo.ApplicationCommandOptionString, Name: "team_name", Description: "The name of the team the player is joining.", Required: true},
				{Type: discordgo.ApplicationCommandOptionString, Name: "role", Description: "The player's role (e.g., Captain, Support).", Required: true, Choices: roleChoices()},
			},
		},
		{
			Name:        cmdRemovePlayer,
			Description: "Removes a player from the database (Admin only).",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionUser, Name: "user", Description: "The Discord user to remove.", Required: true},
			},
		},
		{
			Name:        cmdListTeams,
			Description: "Displays all teams for a specific game.",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionString, Name: "game_name", Description: "The game to list teams for.", Required: true},
			},
		},
	}
}
