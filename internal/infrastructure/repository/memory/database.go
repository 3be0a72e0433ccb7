package memory

import (
	"fmt"
	"sort"
	"strconv"
	"sync"

	"github.com/riskibarqy/esports-club/internal/domain/applicant"
	"github.com/riskibarqy/esports-club/internal/domain/game"
	"github.com/riskibarqy/esports-club/internal/domain/player"
	"github.com/riskibarqy/esports-club/internal/domain/team"
	"github.com/riskibarqy/esports-club/internal/usecase"
)

// Database is an in-process stand-in for the club schema. It enforces the
// same unique keys as the migrations, cascades game deletes to teams and
// clears team_id on players whose team is gone.
type Database struct {
	mu sync.RWMutex

	seq        int64
	games      map[int64]game.Game
	teams      map[int64]team.Team
	players    map[int64]player.Player
	admins     map[uint64]struct{}
	applicants map[int64]applicant.Applicant
}

func NewDatabase() *Database {
	return &Database{
		games:      make(map[int64]game.Game),
		teams:      make(map[int64]team.Team),
		players:    make(map[int64]player.Player),
		admins:     make(map[uint64]struct{}),
		applicants: make(map[int64]applicant.Applicant),
	}
}

// AddAdmin grants administrator rights. Admins are managed outside the bot.
func (db *Database) AddAdmin(discordID string) error {
	key, err := snowflake(discordID)
	if err != nil {
		return err
	}

	db.mu.Lock()
	db.admins[key] = struct{}{}
	db.mu.Unlock()
	return nil
}

func (db *Database) nextID() int64 {
	db.seq++
	return db.seq
}

func (db *Database) deleteGameLocked(gameID int64) {
	delete(db.games, gameID)
	for teamID, t := range db.teams {
		if t.GameID != gameID {
			continue
		}
		delete(db.teams, teamID)
		for playerID, p := range db.players {
			if p.TeamID != nil && *p.TeamID == teamID {
				p.TeamID = nil
				db.players[playerID] = p
			}
		}
	}
}

func sortedValues[V any](items map[int64]V, keep func(V) bool, less func(a, b V) bool) []V {
	out := make([]V, 0, len(items))
	for _, item := range items {
		if keep == nil || keep(item) {
			out = append(out, item)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// snowflake mirrors the BIGINT column: "007" and "7" are the same id.
func snowflake(discordID string) (uint64, error) {
	v, err := strconv.ParseUint(discordID, 10, 63)
	if err != nil {
		return 0, fmt.Errorf("%w: discord id %q", usecase.ErrInvalidInput, discordID)
	}
	return v, nil
}

func duplicate(constraint, value string) error {
	return fmt.Errorf("%w: %s=%s", usecase.ErrDuplicateKey, constraint, value)
}
