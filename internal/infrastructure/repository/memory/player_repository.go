package memory

import (
	"context"

	"github.com/riskibarqy/esports-club/internal/domain/player"
)

type PlayerRepository struct {
	db *Database
}

func NewPlayerRepository(db *Database) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) Create(_ context.Context, item player.Player) (player.Player, error) {
	key, err := snowflake(item.DiscordID)
	if err != nil {
		return player.Player{}, err
	}

	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if item.TeamID != nil {
		if _, ok := r.db.teams[*item.TeamID]; !ok {
			return player.Player{}, errForeignKey("players_team_id_fkey", *item.TeamID)
		}
	}
	for _, existing := range r.db.players {
		if other, _ := snowflake(existing.DiscordID); other == key {
			return player.Player{}, duplicate("players_discord_id_key", item.DiscordID)
		}
	}

	item.ID = r.db.nextID()
	r.db.players[item.ID] = item
	return item, nil
}

func (r *PlayerRepository) DeleteByDiscordID(_ context.Context, discordID string) (bool, error) {
	key, err := snowflake(discordID)
	if err != nil {
		return false, err
	}

	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for id, existing := range r.db.players {
		if other, _ := snowflake(existing.DiscordID); other == key {
			delete(r.db.players, id)
			return true, nil
		}
	}
	return false, nil
}

func (r *PlayerRepository) ListByTeam(_ context.Context, teamID int64) ([]player.Player, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	return sortedValues(r.db.players,
		func(p player.Player) bool { return p.TeamID != nil && *p.TeamID == teamID },
		byRole,
	), nil
}

func (r *PlayerRepository) ListByGame(_ context.Context, gameID int64) ([]player.Player, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	return sortedValues(r.db.players,
		func(p player.Player) bool {
			if p.TeamID == nil {
				return false
			}
			t, ok := r.db.teams[*p.TeamID]
			return ok && t.GameID == gameID
		},
		byRole,
	), nil
}

func byRole(a, b player.Player) bool {
	if a.Role != b.Role {
		return a.Role < b.Role
	}
	return a.ID < b.ID
}
