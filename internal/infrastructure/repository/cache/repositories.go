package cache

import (
	"context"
	"errors"
	"strconv"

	"github.com/riskibarqy/esports-club/internal/domain/game"
	"github.com/riskibarqy/esports-club/internal/domain/player"
	basecache "github.com/riskibarqy/esports-club/internal/platform/cache"
)

const (
	gameKeyPrefix   = "game:"
	playerKeyPrefix = "player:"
)

// GameRepository caches the roster page reads. Writes go straight through
// and drop every cached game entry.
type GameRepository struct {
	next  game.Repository
	cache *basecache.Store[any]
}

func NewGameRepository(next game.Repository, cache *basecache.Store[any]) *GameRepository {
	return &GameRepository{next: next, cache: cache}
}

// errGameMissing keeps misses out of the cache; slugs come from URLs.
var errGameMissing = errors.New("game missing")

// GetByLowerName caches hits only.
func (r *GameRepository) GetByLowerName(ctx context.Context, lowerName string) (game.Game, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, gameKeyPrefix+"lower:"+lowerName, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByLowerName(ctx, lowerName)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, errGameMissing
		}
		return item, nil
	})
	if errors.Is(err, errGameMissing) {
		return game.Game{}, false, nil
	}
	if err != nil {
		return game.Game{}, false, err
	}

	item, _ := v.(game.Game)
	return item, true, nil
}

func (r *GameRepository) List(ctx context.Context) ([]game.Game, error) {
	v, err := r.cache.GetOrLoad(ctx, gameKeyPrefix+"list", func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]game.Game(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]game.Game)
	return append([]game.Game(nil), items...), nil
}

// GetByName backs admin writes and is never cached.
func (r *GameRepository) GetByName(ctx context.Context, name string) (game.Game, bool, error) {
	return r.next.GetByName(ctx, name)
}

func (r *GameRepository) Create(ctx context.Context, item game.Game) (game.Game, error) {
	created, err := r.next.Create(ctx, item)
	if err == nil {
		r.cache.DeletePrefix(ctx, gameKeyPrefix)
	}
	return created, err
}

func (r *GameRepository) DeleteByName(ctx context.Context, name string) (bool, error) {
	deleted, err := r.next.DeleteByName(ctx, name)
	if err == nil && deleted {
		r.cache.DeletePrefix(ctx, gameKeyPrefix)
		r.cache.DeletePrefix(ctx, playerKeyPrefix)
	}
	return deleted, err
}

type PlayerRepository struct {
	next  player.Repository
	cache *basecache.Store[any]
}

func NewPlayerRepository(next player.Repository, cache *basecache.Store[any]) *PlayerRepository {
	return &PlayerRepository{next: next, cache: cache}
}

func (r *PlayerRepository) ListByGame(ctx context.Context, gameID int64) ([]player.Player, error) {
	key := playerKeyPrefix + "game:" + strconv.FormatInt(gameID, 10)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByGame(ctx, gameID)
		if err != nil {
			return nil, err
		}
		return append([]player.Player(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]player.Player)
	return append([]player.Player(nil), items...), nil
}

func (r *PlayerRepository) ListByTeam(ctx context.Context, teamID int64) ([]player.Player, error) {
	return r.next.ListByTeam(ctx, teamID)
}

func (r *PlayerRepository) Create(ctx context.Context, item player.Player) (player.Player, error) {
	created, err := r.next.Create(ctx, item)
	if err == nil {
		r.cache.DeletePrefix(ctx, playerKeyPrefix)
	}
	return created, err
}

func (r *PlayerRepository) DeleteByDiscordID(ctx context.Context, discordID string) (bool, error) {
	deleted, err := r.next.DeleteByDiscordID(ctx, discordID)
	if err == nil && deleted {
		r.cache.DeletePrefix(ctx, playerKeyPrefix)
	}
	return deleted, err
}
