package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/esports-club/internal/domain/admin"
	"github.com/riskibarqy/esports-club/internal/domain/player"
	"github.com/riskibarqy/esports-club/internal/platform/logging"
)

// AuthorizationService gates administrative commands on the admins table.
type AuthorizationService struct {
	adminRepo admin.Repository
	logger    *logging.Logger
}

func NewAuthorizationService(adminRepo admin.Repository, logger *logging.Logger) *AuthorizationService {
	if logger == nil {
		logger = logging.Default()
	}
	return &AuthorizationService{adminRepo: adminRepo, logger: logger}
}

// IsAdmin looks the id up on every call. It fails closed: a malformed id or a
// store error is treated as "not an admin".
func (s *AuthorizationService) IsAdmin(ctx context.Context, discordID string) bool {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthorizationService.IsAdmin")
	defer span.End()

	if err := player.ValidateDiscordID(discordID); err != nil {
		s.logger.WarnContext(ctx, "admin check rejected malformed id", "discord_id", discordID, "error", err)
		return false
	}

	ok, err := s.adminRepo.Exists(ctx, discordID)
	if err != nil {
		s.logger.ErrorContext(ctx, "admin check failed", "discord_id", discordID, "error", err)
		return false
	}
	return ok
}

// RequireAdmin is IsAdmin as an error: non-admins get ErrUnauthorized.
func (s *AuthorizationService) RequireAdmin(ctx context.Context, discordID string) error {
	if !s.IsAdmin(ctx, discordID) {
		return fmt.Errorf("%w: discord_id=%s", ErrUnauthorized, discordID)
	}
	return nil
}
