package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/esports-club/internal/domain/game"
	qb "github.com/riskibarqy/esports-club/internal/platform/querybuilder"
)

type GameRepository struct {
	db *sqlx.DB
}

var gameSelectColumns = []string{"game_id", "name", "player_count"}

func NewGameRepository(db *sqlx.DB) *GameRepository {
	return &GameRepository{db: db}
}

func (r *GameRepository) Create(ctx context.Context, item game.Game) (game.Game, error) {
	query, args, err := qb.InsertInto("games").
		Columns("name", "player_count").
		Values(item.Name, item.PlayerCount).
		Suffix("RETURNING game_id").
		ToSQL()
	if err != nil {
		return game.Game{}, fmt.Errorf("build insert game query: %w", err)
	}

	if err := r.db.GetContext(ctx, &item.ID, query, args...); err != nil {
		return game.Game{}, writeError("insert game", err)
	}
	return item, nil
}

func (r *GameRepository) GetByName(ctx context.Context, name string) (game.Game, bool, error) {
	return r.getOne(ctx, "name", qb.Eq("name", name))
}

func (r *GameRepository) GetByLowerName(ctx context.Context, lowerName string) (game.Game, bool, error) {
	return r.getOne(ctx, "lower name", qb.Expr("LOWER(name) = ?", lowerName))
}

func (r *GameRepository) getOne(ctx context.Context, by string, cond qb.Condition) (game.Game, bool, error) {
	query, args, err := qb.Select(gameSelectColumns...).From("games").
		Where(cond).
		OrderBy("game_id").
		Limit(1).
		ToSQL()
	if err != nil {
		return game.Game{}, false, fmt.Errorf("build select game by %s query: %w", by, err)
	}

	var row gameTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return game.Game{}, false, nil
		}
		return game.Game{}, false, fmt.Errorf("select game by %s: %w", by, err)
	}
	return gameFromRow(row), true, nil
}

func (r *GameRepository) List(ctx context.Context) ([]game.Game, error) {
	query, args, err := qb.Select(gameSelectColumns...).From("games").
		OrderBy("name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select games query: %w", err)
	}

	var rows []gameTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select games: %w", err)
	}

	out := make([]game.Game, 0, len(rows))
	for _, row := range rows {
		out = append(out, gameFromRow(row))
	}
	return out, nil
}

func (r *GameRepository) DeleteByName(ctx context.Context, name string) (bool, error) {
	query, args, err := qb.DeleteFrom("games").
		Where(qb.Eq("name", name)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete game query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete game: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete game rows affected: %w", err)
	}
	return affected > 0, nil
}

func gameFromRow(row gameTableModel) game.Game {
	return game.Game{ID: row.ID, Name: row.Name, PlayerCount: row.PlayerCount}
}
