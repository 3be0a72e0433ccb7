package memory

import (
	"context"
	"strings"

	"github.com/riskibarqy/esports-club/internal/domain/game"
)

type GameRepository struct {
	db *Database
}

func NewGameRepository(db *Database) *GameRepository {
	return &GameRepository{db: db}
}

func (r *GameRepository) Create(_ context.Context, item game.Game) (game.Game, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, existing := range r.db.games {
		if existing.Name == item.Name {
			return game.Game{}, duplicate("games_name_key", item.Name)
		}
	}

	item.ID = r.db.nextID()
	r.db.games[item.ID] = item
	return item, nil
}

func (r *GameRepository) GetByName(_ context.Context, name string) (game.Game, bool, error) {
	return r.find(func(g game.Game) bool { return g.Name == name })
}

func (r *GameRepository) GetByLowerName(_ context.Context, lowerName string) (game.Game, bool, error) {
	return r.find(func(g game.Game) bool { return strings.ToLower(g.Name) == lowerName })
}

func (r *GameRepository) find(match func(game.Game) bool) (game.Game, bool, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	matches := sortedValues(r.db.games, match, byGameID)
	if len(matches) == 0 {
		return game.Game{}, false, nil
	}
	return matches[0], true, nil
}

func (r *GameRepository) List(_ context.Context) ([]game.Game, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	return sortedValues(r.db.games, nil, func(a, b game.Game) bool { return a.Name < b.Name }), nil
}

func (r *GameRepository) DeleteByName(_ context.Context, name string) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for id, item := range r.db.games {
		if item.Name == name {
			r.db.deleteGameLocked(id)
			return true, nil
		}
	}
	return false, nil
}

func byGameID(a, b game.Game) bool { return a.ID < b.ID }
