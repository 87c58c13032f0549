package http

import (
	"log/slog"
	"net/http"

	"eventsapi/internal/delivery/http/controllers"
	"eventsapi/internal/delivery/http/middleware"

	_ "eventsapi/docs"

	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(eventController *controllers.EventController, healthController *controllers.HealthController) *http.ServeMux {
	mux := http.NewServeMux()

	// API Routes
	mux.HandleFunc("GET /api/events", eventController.ListEvents)
	mux.HandleFunc("POST /api/events", eventController.CreateEvent)
	mux.HandleFunc("GET /api/events/{id}", eventController.GetEvent)
	mux.HandleFunc("PUT /api/events/{id}", eventController.UpdateEvent)

	mux.HandleFunc("GET /health", healthController.Health)

	// Swagger UI. /docs/ is the target of the profile links.
	mux.Handle("/swagger/", httpSwagger.WrapHandler)
	mux.Handle("/docs/", httpSwagger.WrapHandler)

	return mux
}

// NewHandler wraps the router with the middleware chain, outermost first:
// request id, panic recovery, access log, CORS.
func NewHandler(logger *slog.Logger, corsOrigins []string, mux http.Handler) http.Handler {
	h := middleware.CORS(corsOrigins, mux)
	h = middleware.LoggingMiddleware(logger, h)
	h = middleware.Recover(logger, h)
	return middleware.RequestID(h)
}
