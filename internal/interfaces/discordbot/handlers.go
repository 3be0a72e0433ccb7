package discordbot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/valyala/bytebufferpool"

	"github.com/riskibarqy/esports-club/internal/platform/logging"
	"github.com/riskibarqy/esports-club/internal/usecase"
)

const (
	msgUnknownDBError       = "❌ An unknown database error occurred."
	msgUnknownDeletionError = "❌ An unknown database error occurred during deletion."
	msgListTeamsFailed      = "❌ An error occurred while fetching teams."
)

// Handlers implements the slash commands on top of the club service.
type Handlers struct {
	club   *usecase.ClubService
	logger *logging.Logger
}

func NewHandlers(club *usecase.ClubService, logger *logging.Logger) *Handlers {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handlers{club: club, logger: logger}
}

func (h *Handlers) Ping(context.Context, commandInput) reply {
	return reply{content: "Pong!"}
}

func (h *Handlers) AddGame(ctx context.Context, in commandInput) reply {
	name := in.str("name")
	playerCount := in.int("player_count")

	_, err := h.club.AddGame(ctx, name, int(playerCount))
	switch {
	case err == nil:
		return private("✅ Game **%s** (Players: %d) has been added.", name, playerCount)
	case errors.Is(err, usecase.ErrInvalidInput):
		return validationReply(err)
	case errors.Is(err, usecase.ErrDuplicateKey):
		return private("❌ Error: The game **%s** already exists.", name)
	default:
		h.logger.ErrorContext(ctx, "add_game failed", "game", name, "error", err)
		return reply{content: msgUnknownDBError, ephemeral: true}
	}
}

func (h *Handlers) AddTeam(ctx context.Context, in commandInput) reply {
	gameName := in.str("game_name")
	teamName := in.str("team_name")

	_, err := h.club.AddTeam(ctx, gameName, teamName)
	switch {
	case err == nil:
		return private("✅ Team **%s** added to game **%s**.", teamName, gameName)
	case errors.Is(err, usecase.ErrInvalidInput):
		return validationReply(err)
	case errors.Is(err, usecase.ErrNotFound):
		return private("❌ Error: Game **%s** not found.", gameName)
	case errors.Is(err, usecase.ErrDuplicateKey):
		return private("❌ Error: Team **%s** already exists for game **%s**.", teamName, gameName)
	default:
		h.logger.ErrorContext(ctx, "add_team failed", "game", gameName, "team", teamName, "error", err)
		return reply{content: msgUnknownDBError, ephemeral: true}
	}
}

func (h *Handlers) RemoveGame(ctx context.Context, in commandInput) reply {
	name := in.str("name")

	err := h.club.RemoveGame(ctx, name)
	switch {
	case err == nil:
		return private("✅ Game **%s** and all associated teams/players have been permanently removed.", name)
	case errors.Is(err, usecase.ErrInvalidInput):
		return validationReply(err)
	case errors.Is(err, usecase.ErrNotFound):
		return private("❌ Error: Game **%s** not found.", name)
	default:
		h.logger.ErrorContext(ctx, "remove_game failed", "game", name, "error", err)
		return reply{content: msgUnknownDeletionError, ephemeral: true}
	}
}

func (h *Handlers) AddPlayer(ctx context.Context, in commandInput) reply {
	user, ok := in.user("user")
	if !ok {
		return reply{content: "❌ Error: a Discord user is required.", ephemeral: true}
	}
	teamName := in.str("team_name")
	role := in.str("role")

	_, err := h.club.AddPlayer(ctx, user.ID, user.Username, teamName, role)
	switch {
	case err == nil:
		return private("✅ Player **%s** has been added to **%s** as **%s**.", user.Username, teamName, role)
	case errors.Is(err, usecase.ErrInvalidInput):
		return validationReply(err)
	case errors.Is(err, usecase.ErrNotFound):
		return private("❌ Error: Team **%s** not found.", teamName)
	case errors.Is(err, usecase.ErrDuplicateKey):
		return private("❌ Error: The user **%s** is already registered as a player.", user.Username)
	default:
		h.logger.ErrorContext(ctx, "add_player failed", "user_id", user.ID, "team", teamName, "error", err)
		return reply{content: msgUnknownDBError, ephemeral: true}
	}
}

func (h *Handlers) RemovePlayer(ctx context.Context, in commandInput) reply {
	user, ok := in.user("user")
	if !ok {
		return reply{content: "❌ Error: a Discord user is required.", ephemeral: true}
	}

	err := h.club.RemovePlayer(ctx, user.ID)
	switch {
	case err == nil:
		return private("✅ Player **%s** has been removed from the database.", user.Username)
	case errors.Is(err, usecase.ErrInvalidInput):
		return validationReply(err)
	case errors.Is(err, usecase.ErrNotFound):
		return private("❌ Error: Player **%s** not found in database.", user.Username)
	default:
		h.logger.ErrorContext(ctx, "remove_player failed", "user_id", user.ID, "error", err)
		return reply{content: msgUnknownDeletionError, ephemeral: true}
	}
}

// ListTeams is public: its reply is visible to the whole channel.
func (h *Handlers) ListTeams(ctx context.Context, in commandInput) reply {
	fragment := in.str("game_name")

	rosters, err := h.club.ListTeams(ctx, fragment)
	if err != nil {
		h.logger.ErrorContext(ctx, "list_teams failed", "game", fragment, "error", err)
		return reply{content: msgListTeamsFailed, ephemeral: true}
	}
	if len(rosters) == 0 {
		return reply{content: fmt.Sprintf("ℹ️ No teams found for game matching **%s**, or the game name is incorrect.", fragment)}
	}

	return reply{content: formatTeamsList(fragment, rosters)}
}

func formatTeamsList(fragment string, rosters []usecase.TeamRoster) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = fmt.Fprintf(buf, "## 🏆 Teams List\nGame: **%s**\n------------------------\n", fragment)
	for i, r := range rosters {
		if i > 0 {
			_, _ = buf.WriteString("\n\n")
		}
		_, _ = fmt.Fprintf(buf, "**%s** ", r.Team.Name)
		if len(r.Players) == 0 {
			_, _ = fmt.Fprintf(buf, "(%d players)", len(r.Players))
			continue
		}
		for _, p := range r.Players {
			_, _ = fmt.Fprintf(buf, "\n • %s (%s)", p.Name, p.Role)
		}
	}

	return buf.String()
}

func private(format string, args ...any) reply {
	return reply{content: fmt.Sprintf(format, args...), ephemeral: true}
}

func validationReply(err error) reply {
	detail := strings.TrimPrefix(err.Error(), usecase.ErrInvalidInput.Error()+": ")
	return reply{content: "❌ Error: " + detail, ephemeral: true}
}
