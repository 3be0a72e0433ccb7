package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerWebhookRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /webhook/application", handler.ReceiveApplication)
}

func registerFormRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /api/application", handler.ForwardApplication)
	mux.HandleFunc("POST /api/join", handler.Join)
}

func registerRosterRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/games", handler.ListGames)
	mux.HandleFunc("GET /v1/teams/{slug}", handler.GetTeam)
}
