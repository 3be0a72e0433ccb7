package httpapi

import (
	"net/http"

	"github.com/riskibarqy/esports-club/internal/platform/logging"
)

// NewBotRouter serves the bot process: the application webhook and health.
func NewBotRouter(handler *Handler, logger *logging.Logger) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler)
	registerWebhookRoutes(mux, handler)

	return RequestTracing("esports-club-bot-http", RequestLogging(logger, recoverPanic(logger, LimitBody(maxRequestBodyBytes, mux))))
}

// NewWebRouter serves the web process: form routes and roster reads.
func NewWebRouter(handler *Handler, logger *logging.Logger, corsAllowedOrigins []string) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler)
	registerFormRoutes(mux, handler)
	registerRosterRoutes(mux, handler)

	return RequestTracing("esports-club-web-http", RequestLogging(logger, CORS(corsAllowedOrigins, recoverPanic(logger, LimitBody(maxRequestBodyBytes, mux)))))
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.recoverPanic")
		defer span.End()

		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(ctx, "panic recovered", "panic", rec)
				writeInternalError(ctx, w)
			}
		}()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
