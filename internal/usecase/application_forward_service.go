package usecase

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/riskibarqy/esports-club/internal/domain/application"
	"github.com/riskibarqy/esports-club/internal/platform/id"
	"github.com/riskibarqy/esports-club/internal/platform/logging"
)

const (
	MessageForwarded         = "Application forwarded and confirmed by bot."
	MessageBotUnreachable    = "Failed to connect to the dedicated bot server."
	defaultBotFailureMessage = "Could not post to Discord."
)

// ApplicationForwardService is the web side of the relay: it hands
// submissions to the bot process and translates the bot's answer.
type ApplicationForwardService struct {
	forwarder application.Forwarder
	keys      id.Generator
	logger    *logging.Logger
}

func NewApplicationForwardService(forwarder application.Forwarder, keys id.Generator, logger *logging.Logger) *ApplicationForwardService {
	if keys == nil {
		keys = id.NewUUIDGenerator()
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &ApplicationForwardService{forwarder: forwarder, keys: keys, logger: logger}
}

// Forward returns nil once the bot confirmed the post. Every other outcome
// is a *RelayError carrying the status and message for the submitter, except
// validation failures which wrap ErrInvalidInput.
func (s *ApplicationForwardService) Forward(ctx context.Context, item application.Application, idempotencyKey string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.ApplicationForwardService.Forward")
	defer span.End()

	if err := validateApplication(item); err != nil {
		return err
	}

	idempotencyKey = strings.TrimSpace(idempotencyKey)
	if idempotencyKey == "" {
		idempotencyKey = s.keys.NewID()
	}

	result, err := s.forwarder.Forward(ctx, item, idempotencyKey)
	if err != nil {
		s.logger.ErrorContext(ctx, "bot webhook unreachable", "idempotency_key", idempotencyKey, "error", err)
		return NewRelayError(http.StatusBadGateway, MessageBotUnreachable, err)
	}

	if result.StatusCode < 200 || result.StatusCode > 299 {
		message := strings.TrimSpace(result.Message)
		if message == "" {
			message = defaultBotFailureMessage
		}
		s.logger.WarnContext(ctx, "bot rejected application",
			"idempotency_key", idempotencyKey,
			"status", result.StatusCode,
			"bot_message", message,
		)
		return NewRelayError(result.StatusCode, "Bot server error: "+message, fmt.Errorf("bot webhook status %d", result.StatusCode))
	}

	return nil
}
