package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/esports-club/internal/domain/application"
	"github.com/riskibarqy/esports-club/internal/platform/logging"
)

// ReceiptStore remembers successful relays by idempotency key.
// *cache.Store[time.Time] satisfies it.
type ReceiptStore interface {
	GetOrLoad(ctx context.Context, key string, loader func(context.Context) (time.Time, error)) (time.Time, error)
}

// ApplicationService relays web applications into the admin chat channel.
type ApplicationService struct {
	notifier application.Notifier
	receipts ReceiptStore
	logger   *logging.Logger
}

func NewApplicationService(notifier application.Notifier, receipts ReceiptStore, logger *logging.Logger) *ApplicationService {
	if logger == nil {
		logger = logging.Default()
	}
	return &ApplicationService{notifier: notifier, receipts: receipts, logger: logger}
}

// Submit posts item once per idempotency key. A repeated key within the
// receipt TTL succeeds without posting; failed posts are not remembered.
func (s *ApplicationService) Submit(ctx context.Context, item application.Application, idempotencyKey string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.ApplicationService.Submit")
	defer span.End()

	if err := validateApplication(item); err != nil {
		return err
	}

	idempotencyKey = strings.TrimSpace(idempotencyKey)
	if idempotencyKey == "" || s.receipts == nil {
		return s.post(ctx, item)
	}

	posted := false
	receivedAt, err := s.receipts.GetOrLoad(ctx, "application:"+idempotencyKey, func(ctx context.Context) (time.Time, error) {
		if err := s.post(ctx, item); err != nil {
			return time.Time{}, err
		}
		posted = true
		return time.Now().UTC(), nil
	})
	if err != nil {
		return err
	}
	if !posted {
		s.logger.InfoContext(ctx, "duplicate application suppressed",
			"idempotency_key", idempotencyKey,
			"first_received_at", receivedAt,
		)
	}
	return nil
}

func (s *ApplicationService) post(ctx context.Context, item application.Application) error {
	if err := s.notifier.PostApplication(ctx, item); err != nil {
		return fmt.Errorf("post application: %w", err)
	}
	return nil
}

func validateApplication(item application.Application) error {
	if strings.TrimSpace(item.Name) == "" || strings.TrimSpace(item.Discord) == "" || strings.TrimSpace(item.Email) == "" {
		return fmt.Errorf("%w: name, discord and email are required", ErrInvalidInput)
	}
	return nil
}
