package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/esports-club/internal/domain/game"
	"github.com/riskibarqy/esports-club/internal/domain/player"
	"github.com/riskibarqy/esports-club/internal/domain/roster"
)

// RosterService builds the public team page data for a game.
type RosterService struct {
	gameRepo   game.Repository
	playerRepo player.Repository
}

func NewRosterService(gameRepo game.Repository, playerRepo player.Repository) *RosterService {
	return &RosterService{gameRepo: gameRepo, playerRepo: playerRepo}
}

func (s *RosterService) GetTeamData(ctx context.Context, slug string) (roster.TeamData, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.GetTeamData")
	defer span.End()

	if strings.TrimSpace(slug) == "" {
		return roster.TeamData{}, fmt.Errorf("%w: slug is required", ErrInvalidInput)
	}

	g, exists, err := s.gameRepo.GetByLowerName(ctx, roster.NameFromSlug(slug))
	if err != nil {
		return roster.TeamData{}, fmt.Errorf("get game by slug %q: %w", slug, err)
	}
	if !exists {
		return roster.TeamData{}, fmt.Errorf("%w: game slug=%s", ErrNotFound, slug)
	}

	players, err := s.playerRepo.ListByGame(ctx, g.ID)
	if err != nil {
		return roster.TeamData{}, fmt.Errorf("list players for game %d: %w", g.ID, err)
	}

	out := roster.TeamData{
		Game:        g.Name,
		Logo:        roster.TeamLogo,
		Description: roster.Description(g.Name, g.PlayerCount),
		Players:     make([]roster.Player, 0, len(players)),
		Slug:        slug,
	}
	for _, p := range players {
		out.Players = append(out.Players, roster.Player{
			Name:  p.Name,
			Role:  p.Role,
			Image: roster.ImageForRole(p.Role),
		})
	}
	return out, nil
}

func (s *RosterService) ListGameSlugs(ctx context.Context) ([]roster.GameSlug, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.ListGameSlugs")
	defer span.End()

	games, err := s.gameRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}

	out := make([]roster.GameSlug, 0, len(games))
	for _, g := range games {
		out = append(out, roster.GameSlug{Game: g.Name, Slug: roster.SlugForGame(g.Name)})
	}
	return out, nil
}
