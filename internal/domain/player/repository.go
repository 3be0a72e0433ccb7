package player

import "context"

// Repository describes player persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, item Player) (Player, error)
	DeleteByDiscordID(ctx context.Context, discordID string) (bool, error)
	// ListByTeam is ordered by role.
	ListByTeam(ctx context.Context, teamID int64) ([]Player, error)
	// ListByGame returns players of every team in the game, ordered by role.
	ListByGame(ctx context.Context, gameID int64) ([]Player, error)
}
