package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/esports-club/internal/domain/team"
	qb "github.com/riskibarqy/esports-club/internal/platform/querybuilder"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) Create(ctx context.Context, item team.Team) (team.Team, error) {
	query, args, err := qb.InsertInto("teams").
		Columns("game_id", "team_name").
		Values(item.GameID, item.Name).
		Suffix("RETURNING team_id").
		ToSQL()
	if err != nil {
		return team.Team{}, fmt.Errorf("build insert team query: %w", err)
	}

	if err := r.db.GetContext(ctx, &item.ID, query, args...); err != nil {
		return team.Team{}, writeError("insert team", err)
	}
	return item, nil
}

// GetByName matches team_name exactly; when several games share the name the
// oldest team wins.
func (r *TeamRepository) GetByName(ctx context.Context, name string) (team.Team, bool, error) {
	query, args, err := qb.Select("team_id", "game_id", "team_name").From("teams").
		Where(qb.Eq("team_name", name)).
		OrderBy("team_id").
		Limit(1).
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build select team by name query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("select team by name: %w", err)
	}
	return teamFromRow(row), true, nil
}

func (r *TeamRepository) ListByGameNameLike(ctx context.Context, fragment string) ([]team.Team, error) {
	query, args, err := qb.Select("t.team_id", "t.game_id", "t.team_name").From("teams t").
		Join("games g", "t.game_id = g.game_id").
		Where(qb.Contains("g.name", fragment)).
		OrderBy("t.team_name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select teams by game query: %w", err)
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select teams by game: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, teamFromRow(row))
	}
	return out, nil
}

func teamFromRow(row teamTableModel) team.Team {
	return team.Team{ID: row.ID, GameID: row.GameID, Name: row.Name}
}
