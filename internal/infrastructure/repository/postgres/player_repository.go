package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/esports-club/internal/domain/player"
	qb "github.com/riskibarqy/esports-club/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func playerColumns(alias string) []string {
	return []string{
		alias + "player_id",
		alias + "discord_id::text AS discord_id",
		alias + "name",
		alias + "team_id",
		"COALESCE(" + alias + "role, '') AS role",
	}
}

func (r *PlayerRepository) Create(ctx context.Context, item player.Player) (player.Player, error) {
	query, args, err := qb.InsertInto("players").
		Columns("discord_id", "name", "team_id", "role").
		Values(item.DiscordID, item.Name, int64PtrToNull(item.TeamID), item.Role).
		Suffix("RETURNING player_id").
		ToSQL()
	if err != nil {
		return player.Player{}, fmt.Errorf("build insert player query: %w", err)
	}

	if err := r.db.GetContext(ctx, &item.ID, query, args...); err != nil {
		return player.Player{}, writeError("insert player", err)
	}
	return item, nil
}

func (r *PlayerRepository) DeleteByDiscordID(ctx context.Context, discordID string) (bool, error) {
	query, args, err := qb.DeleteFrom("players").
		Where(qb.Eq("discord_id", discordID)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete player query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete player: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete player rows affected: %w", err)
	}
	return affected > 0, nil
}

func (r *PlayerRepository) ListByTeam(ctx context.Context, teamID int64) ([]player.Player, error) {
	query, args, err := qb.Select(playerColumns("")...).From("players").
		Where(qb.Eq("team_id", teamID)).
		OrderBy("role").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players by team query: %w", err)
	}
	return r.selectPlayers(ctx, "team", query, args)
}

func (r *PlayerRepository) ListByGame(ctx context.Context, gameID int64) ([]player.Player, error) {
	query, args, err := qb.Select(playerColumns("p.")...).From("players p").
		Join("teams t", "p.team_id = t.team_id").
		Where(qb.Eq("t.game_id", gameID)).
		OrderBy("p.role").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players by game query: %w", err)
	}
	return r.selectPlayers(ctx, "game", query, args)
}

func (r *PlayerRepository) selectPlayers(ctx context.Context, by, query string, args []any) ([]player.Player, error) {
	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players by %s: %w", by, err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, player.Player{
			ID:        row.ID,
			DiscordID: row.DiscordID,
			Name:      row.Name,
			TeamID:    nullInt64Ptr(row.TeamID),
			Role:      row.Role,
		})
	}
	return out, nil
}
