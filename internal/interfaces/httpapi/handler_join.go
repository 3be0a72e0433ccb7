package httpapi

import (
	"errors"
	"net/http"

	"github.com/riskibarqy/esports-club/internal/usecase"
)

const (
	msgMissingJoinFields = "Missing required form fields."
	msgDuplicateEmail    = "An application with this email already exists."
	msgInsertFailed      = "Database insert failed."
	msgJoinSaved         = "Application saved successfully."
	msgInternal          = "Internal Server Error."
)

func (h *Handler) Join(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Join")
	defer span.End()

	var req joinRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		h.logger.WarnContext(ctx, "invalid join body", "error", err)
		writeRelay(ctx, w, http.StatusInternalServerError, false, msgInternal)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeRelay(ctx, w, http.StatusBadRequest, false, msgMissingJoinFields)
		return
	}

	created, err := h.applicantService.Register(ctx, usecase.JoinRequest{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Discord:   req.Discord,
		Phone:     req.Phone,
		Email:     req.Email,
		Over18:    req.Over18,
	})
	switch {
	case err == nil:
		h.logger.InfoContext(ctx, "applicant saved", "application_id", created.ID)
		writeJSON(ctx, w, http.StatusOK, relayResponse{
			Success: true,
			Message: msgJoinSaved,
			Data:    joinResponseData{ID: created.ID},
		})
	case errors.Is(err, usecase.ErrInvalidInput):
		writeRelay(ctx, w, http.StatusBadRequest, false, msgMissingJoinFields)
	case errors.Is(err, usecase.ErrDuplicateKey):
		writeRelay(ctx, w, http.StatusConflict, false, msgDuplicateEmail)
	default:
		h.logger.ErrorContext(ctx, "applicant insert failed", "error", err)
		writeRelay(ctx, w, http.StatusInternalServerError, false, msgInsertFailed)
	}
}
