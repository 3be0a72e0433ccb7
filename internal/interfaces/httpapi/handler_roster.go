package httpapi

import (
	"net/http"
)

func (h *Handler) ListGames(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListGames")
	defer span.End()

	slugs, err := h.rosterService.ListGameSlugs(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list games failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]gameSlugDTO, 0, len(slugs))
	for _, s := range slugs {
		items = append(items, gameSlugDTO{Game: s.Game, Slug: s.Slug})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeam")
	defer span.End()

	slug := r.PathValue("slug")
	data, err := h.rosterService.GetTeamData(ctx, slug)
	if err != nil {
		h.logger.WarnContext(ctx, "get team data failed", "slug", slug, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamDataToDTO(data))
}
