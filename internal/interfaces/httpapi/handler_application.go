package httpapi

import (
	"errors"
	"net/http"

	"github.com/riskibarqy/esports-club/internal/usecase"
)

const (
	msgInvalidJSON         = "Invalid JSON body."
	msgMissingFormData     = "Missing required form data."
	msgApplicationPosted   = "Application submitted and posted."
	msgRelayInternalFailed = "Failed to communicate with Discord API."
)

// ReceiveApplication is the bot-side webhook: it posts the application into
// the admin channel.
func (h *Handler) ReceiveApplication(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ReceiveApplication")
	defer span.End()

	var req applicationRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		h.logger.WarnContext(ctx, "invalid application body", "error", err)
		writeRelay(ctx, w, http.StatusBadRequest, false, msgInvalidJSON)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeRelay(ctx, w, http.StatusBadRequest, false, msgMissingFormData)
		return
	}

	err := h.applicationService.Submit(ctx, req.toDomain(), r.Header.Get(idempotencyKeyHeader))
	if err == nil {
		writeRelay(ctx, w, http.StatusOK, true, msgApplicationPosted)
		return
	}

	var relayErr *usecase.RelayError
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		writeRelay(ctx, w, http.StatusBadRequest, false, msgMissingFormData)
	case errors.As(err, &relayErr):
		h.logger.ErrorContext(ctx, "application relay failed", "status", relayErr.StatusCode, "error", err)
		writeRelay(ctx, w, relayErr.StatusCode, false, relayErr.Message)
	default:
		h.logger.ErrorContext(ctx, "application relay failed", "error", err)
		writeRelay(ctx, w, http.StatusServiceUnavailable, false, msgRelayInternalFailed)
	}
}

// ForwardApplication is the web-side route: it hands the form to the bot
// process and reports the bot's verdict.
func (h *Handler) ForwardApplication(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ForwardApplication")
	defer span.End()

	var req applicationRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		h.logger.WarnContext(ctx, "invalid application body", "error", err)
		writeRelay(ctx, w, http.StatusBadRequest, false, msgInvalidJSON)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeRelay(ctx, w, http.StatusBadRequest, false, msgMissingFormData)
		return
	}

	err := h.forwardService.Forward(ctx, req.toDomain(), r.Header.Get(idempotencyKeyHeader))
	if err == nil {
		writeRelay(ctx, w, http.StatusOK, true, usecase.MessageForwarded)
		return
	}

	var relayErr *usecase.RelayError
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		writeRelay(ctx, w, http.StatusBadRequest, false, msgMissingFormData)
	case errors.As(err, &relayErr):
		writeRelay(ctx, w, relayErr.StatusCode, false, relayErr.Message)
	default:
		h.logger.ErrorContext(ctx, "forward application failed", "error", err)
		writeRelay(ctx, w, http.StatusBadGateway, false, usecase.MessageBotUnreachable)
	}
}
