package memory

import (
	"context"
	"strconv"
	"strings"

	"github.com/riskibarqy/esports-club/internal/domain/team"
)

type TeamRepository struct {
	db *Database
}

func NewTeamRepository(db *Database) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) Create(_ context.Context, item team.Team) (team.Team, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.games[item.GameID]; !ok {
		return team.Team{}, errForeignKey("teams_game_id_fkey", item.GameID)
	}
	for _, existing := range r.db.teams {
		if existing.GameID == item.GameID && existing.Name == item.Name {
			return team.Team{}, duplicate("teams_game_id_team_name_key", item.Name)
		}
	}

	item.ID = r.db.nextID()
	r.db.teams[item.ID] = item
	return item, nil
}

// GetByName returns the oldest team with that name when several games use it.
func (r *TeamRepository) GetByName(_ context.Context, name string) (team.Team, bool, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	matches := sortedValues(r.db.teams,
		func(t team.Team) bool { return t.Name == name },
		func(a, b team.Team) bool { return a.ID < b.ID },
	)
	if len(matches) == 0 {
		return team.Team{}, false, nil
	}
	return matches[0], true, nil
}

func (r *TeamRepository) ListByGameNameLike(_ context.Context, fragment string) ([]team.Team, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	fragment = strings.ToLower(fragment)
	return sortedValues(r.db.teams,
		func(t team.Team) bool {
			g, ok := r.db.games[t.GameID]
			return ok && strings.Contains(strings.ToLower(g.Name), fragment)
		},
		func(a, b team.Team) bool { return a.Name < b.Name },
	), nil
}

func errForeignKey(constraint string, id int64) error {
	return &foreignKeyError{constraint: constraint, id: strconv.FormatInt(id, 10)}
}

type foreignKeyError struct {
	constraint string
	id         string
}

func (e *foreignKeyError) Error() string {
	return "violates foreign key constraint " + e.constraint + ": " + e.id
}
