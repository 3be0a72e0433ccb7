package httpapi

import (
	"context"
	"fmt"
	"io"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/esports-club/internal/platform/logging"
	"github.com/riskibarqy/esports-club/internal/usecase"
)

const idempotencyKeyHeader = "Idempotency-Key"

// Handler serves both HTTP processes; each router registers only the routes
// whose services were supplied.
type Handler struct {
	applicationService *usecase.ApplicationService
	forwardService     *usecase.ApplicationForwardService
	applicantService   *usecase.ApplicantService
	rosterService      *usecase.RosterService
	logger             *logging.Logger
	validator          *validator.Validate
}

func NewHandler(
	applicationService *usecase.ApplicationService,
	forwardService *usecase.ApplicationForwardService,
	applicantService *usecase.ApplicantService,
	rosterService *usecase.RosterService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		applicationService: applicationService,
		forwardService:     forwardService,
		applicantService:   applicantService,
		rosterService:      rosterService,
		logger:             logger,
		validator:          validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func decodeJSON(r io.Reader, out any) error {
	if err := sonic.ConfigDefault.NewDecoder(r).Decode(out); err != nil {
		return fmt.Errorf("%w: decode body: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}
