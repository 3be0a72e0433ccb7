package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/sourcegraph/conc/iter"

	"github.com/riskibarqy/esports-club/internal/domain/game"
	"github.com/riskibarqy/esports-club/internal/domain/player"
	"github.com/riskibarqy/esports-club/internal/domain/roster"
	"github.com/riskibarqy/esports-club/internal/domain/team"
)

const listTeamsFanOut = 4

// TeamRoster is one team with its players ordered by role.
type TeamRoster struct {
	Team    team.Team
	Players []player.Player
}

// ClubService performs the administrative writes and the team listing behind
// the chat commands. Each call is a single unit of work against the store.
type ClubService struct {
	gameRepo   game.Repository
	teamRepo   team.Repository
	playerRepo player.Repository
}

func NewClubService(gameRepo game.Repository, teamRepo team.Repository, playerRepo player.Repository) *ClubService {
	return &ClubService{
		gameRepo:   gameRepo,
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
	}
}

func (s *ClubService) AddGame(ctx context.Context, name string, playerCount int) (game.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ClubService.AddGame")
	defer span.End()

	item := game.Game{Name: strings.TrimSpace(name), PlayerCount: playerCount}
	if err := item.Validate(); err != nil {
		return game.Game{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.gameRepo.Create(ctx, item)
	if err != nil {
		return game.Game{}, fmt.Errorf("create game %q: %w", item.Name, err)
	}
	return created, nil
}

func (s *ClubService) AddTeam(ctx context.Context, gameName, teamName string) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ClubService.AddTeam")
	defer span.End()

	gameName = strings.TrimSpace(gameName)
	teamName = strings.TrimSpace(teamName)
	if gameName == "" || teamName == "" {
		return team.Team{}, fmt.Errorf("%w: game name and team name are required", ErrInvalidInput)
	}

	g, exists, err := s.gameRepo.GetByName(ctx, gameName)
	if err != nil {
		return team.Team{}, fmt.Errorf("get game %q: %w", gameName, err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: game=%s", ErrNotFound, gameName)
	}

	item := team.Team{GameID: g.ID, Name: teamName}
	if err := item.Validate(); err != nil {
		return team.Team{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.teamRepo.Create(ctx, item)
	if err != nil {
		return team.Team{}, fmt.Errorf("create team %q: %w", teamName, err)
	}
	return created, nil
}

// RemoveGame deletes the game; the store cascades to its teams, and their
// players lose their team.
func (s *ClubService) RemoveGame(ctx context.Context, name string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.ClubService.RemoveGame")
	defer span.End()

	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: game name is required", ErrInvalidInput)
	}

	deleted, err := s.gameRepo.DeleteByName(ctx, name)
	if err != nil {
		return fmt.Errorf("delete game %q: %w", name, err)
	}
	if !deleted {
		return fmt.Errorf("%w: game=%s", ErrNotFound, name)
	}
	return nil
}

func (s *ClubService) AddPlayer(ctx context.Context, discordID, name, teamName, role string) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ClubService.AddPlayer")
	defer span.End()

	teamName = strings.TrimSpace(teamName)
	if teamName == "" {
		return player.Player{}, fmt.Errorf("%w: team name is required", ErrInvalidInput)
	}
	if !roster.IsKnownRole(role) {
		return player.Player{}, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, role)
	}

	item := player.Player{DiscordID: strings.TrimSpace(discordID), Name: strings.TrimSpace(name), Role: role}
	if err := item.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	t, exists, err := s.teamRepo.GetByName(ctx, teamName)
	if err != nil {
		return player.Player{}, fmt.Errorf("get team %q: %w", teamName, err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamName)
	}
	item.TeamID = &t.ID

	created, err := s.playerRepo.Create(ctx, item)
	if err != nil {
		return player.Player{}, fmt.Errorf("create player %s: %w", item.DiscordID, err)
	}
	return created, nil
}

func (s *ClubService) RemovePlayer(ctx context.Context, discordID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.ClubService.RemovePlayer")
	defer span.End()

	if err := player.ValidateDiscordID(discordID); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	deleted, err := s.playerRepo.DeleteByDiscordID(ctx, discordID)
	if err != nil {
		return fmt.Errorf("delete player %s: %w", discordID, err)
	}
	if !deleted {
		return fmt.Errorf("%w: player=%s", ErrNotFound, discordID)
	}
	return nil
}

// ListTeams returns the teams of every game whose name contains fragment,
// ordered by team name. An empty result is not an error.
func (s *ClubService) ListTeams(ctx context.Context, fragment string) ([]TeamRoster, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ClubService.ListTeams")
	defer span.End()

	teams, err := s.teamRepo.ListByGameNameLike(ctx, strings.TrimSpace(fragment))
	if err != nil {
		return nil, fmt.Errorf("list teams for %q: %w", fragment, err)
	}
	if len(teams) == 0 {
		return nil, nil
	}

	mapper := iter.Mapper[team.Team, TeamRoster]{MaxGoroutines: listTeamsFanOut}
	out, err := mapper.MapErr(teams, func(t *team.Team) (TeamRoster, error) {
		players, err := s.playerRepo.ListByTeam(ctx, t.ID)
		if err != nil {
			return TeamRoster{}, fmt.Errorf("list players for team %d: %w", t.ID, err)
		}
		return TeamRoster{Team: *t, Players: players}, nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
