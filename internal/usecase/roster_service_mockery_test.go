package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/esports-club/internal/domain/game"
	"github.com/riskibarqy/esports-club/internal/domain/roster"
	gamemock "github.com/riskibarqy/esports-club/internal/mocks/domain/game"
)

func TestRosterService_GetTeamData_UnknownSlugUsingMockery(t *testing.T) {
	t.Parallel()

	gameRepo := gamemock.NewRepository(t)
	gameRepo.On("GetByLowerName", mock.Anything, "chess club").Return(game.Game{}, false, nil).Once()

	service := NewRosterService(gameRepo, nil)

	_, err := service.GetTeamData(context.Background(), "Chess-Club")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRosterService_GetTeamData_StoreErrorUsingMockery(t *testing.T) {
	t.Parallel()

	errDB := errors.New("pool exhausted")
	gameRepo := gamemock.NewRepository(t)
	gameRepo.On("GetByLowerName", mock.Anything, "valorant").Return(game.Game{}, false, errDB).Once()

	service := NewRosterService(gameRepo, nil)

	_, err := service.GetTeamData(context.Background(), "valorant")
	assert.ErrorIs(t, err, errDB)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestRosterService_ListGameSlugsUsingMockery(t *testing.T) {
	t.Parallel()

	gameRepo := gamemock.NewRepository(t)
	gameRepo.On("List", mock.Anything).Return([]game.Game{
		{ID: 1, Name: "League of Legends", PlayerCount: 5},
		{ID: 2, Name: "CS2", PlayerCount: 5},
	}, nil).Once()

	service := NewRosterService(gameRepo, nil)

	got, err := service.ListGameSlugs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []roster.GameSlug{
		{Game: "League of Legends", Slug: "league-of-legends"},
		{Game: "CS2", Slug: "cs2"},
	}, got)
}
