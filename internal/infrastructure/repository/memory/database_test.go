package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/esports-club/internal/domain/game"
	"github.com/riskibarqy/esports-club/internal/domain/player"
	"github.com/riskibarqy/esports-club/internal/domain/team"
	"github.com/riskibarqy/esports-club/internal/usecase"
)

func TestDatabase_DeleteGameCascadesTeamsAndDetachesPlayers(t *testing.T) {
	ctx := context.Background()
	db := NewDatabase()
	games, teams, players := NewGameRepository(db), NewTeamRepository(db), NewPlayerRepository(db)

	g, err := games.Create(ctx, game.Game{Name: "Valorant", PlayerCount: 5})
	require.NoError(t, err)
	tm, err := teams.Create(ctx, team.Team{GameID: g.ID, Name: "Lions Gold"})
	require.NoError(t, err)
	_, err = players.Create(ctx, player.Player{DiscordID: "42", Name: "casey", TeamID: &tm.ID, Role: "Duelist"})
	require.NoError(t, err)

	deleted, err := games.DeleteByName(ctx, "Valorant")
	require.NoError(t, err)
	assert.True(t, deleted)

	_, exists, err := teams.GetByName(ctx, "Lions Gold")
	require.NoError(t, err)
	assert.False(t, exists)

	list, err := players.ListByTeam(ctx, tm.ID)
	require.NoError(t, err)
	assert.Empty(t, list)

	removed, err := players.DeleteByDiscordID(ctx, "42")
	require.NoError(t, err)
	assert.True(t, removed, "player row survives its team")

	deleted, err = games.DeleteByName(ctx, "Valorant")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestDatabase_UniqueKeys(t *testing.T) {
	ctx := context.Background()
	db := NewDatabase()
	games, teams, players := NewGameRepository(db), NewTeamRepository(db), NewPlayerRepository(db)

	g, err := games.Create(ctx, game.Game{Name: "CS2", PlayerCount: 5})
	require.NoError(t, err)
	_, err = games.Create(ctx, game.Game{Name: "CS2", PlayerCount: 5})
	assert.ErrorIs(t, err, usecase.ErrDuplicateKey)

	other, err := games.Create(ctx, game.Game{Name: "Valorant", PlayerCount: 5})
	require.NoError(t, err)
	_, err = teams.Create(ctx, team.Team{GameID: g.ID, Name: "Varsity"})
	require.NoError(t, err)
	_, err = teams.Create(ctx, team.Team{GameID: other.ID, Name: "Varsity"})
	require.NoError(t, err, "team names are unique per game only")
	_, err = teams.Create(ctx, team.Team{GameID: g.ID, Name: "Varsity"})
	assert.ErrorIs(t, err, usecase.ErrDuplicateKey)

	_, err = players.Create(ctx, player.Player{DiscordID: "7", Name: "a", Role: "Flex"})
	require.NoError(t, err)
	_, err = players.Create(ctx, player.Player{DiscordID: "007", Name: "b", Role: "Flex"})
	assert.ErrorIs(t, err, usecase.ErrDuplicateKey)
}

func TestTeamRepository_ListByGameNameLike(t *testing.T) {
	ctx := context.Background()
	db := NewDatabase()
	require.NoError(t, SeedRoster(ctx, db))
	teams := NewTeamRepository(db)

	got, err := teams.ListByGameNameLike(ctx, "LEAGUE")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Lions Red", got[0].Name)
	assert.Equal(t, "Lions White", got[1].Name)

	none, err := teams.ListByGameNameLike(ctx, "chess")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestPlayerRepository_ListByGameOrdersByRole(t *testing.T) {
	ctx := context.Background()
	db := NewDatabase()
	require.NoError(t, SeedRoster(ctx, db))

	g, exists, err := NewGameRepository(db).GetByLowerName(ctx, "rocket league")
	require.NoError(t, err)
	require.True(t, exists)

	got, err := NewPlayerRepository(db).ListByGame(ctx, g.ID)
	require.NoError(t, err)
	roles := make([]string, 0, len(got))
	for _, p := range got {
		roles = append(roles, p.Role)
	}
	assert.Equal(t, []string{"Goalkeeper", "Midfielder", "Striker"}, roles)
}

func TestAdminRepository_Exists(t *testing.T) {
	ctx := context.Background()
	db := NewDatabase()
	require.NoError(t, db.AddAdmin("1275537620935512074"))
	admins := NewAdminRepository(db)

	ok, err := admins.Exists(ctx, "1275537620935512074")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = admins.Exists(ctx, "1")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = admins.Exists(ctx, "not-a-number")
	assert.ErrorIs(t, err, usecase.ErrInvalidInput)
}
