package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/calmvio/backend/internal/config"
	chatHandler "github.com/calmvio/backend/internal/handler/chat"
	moodHandler "github.com/calmvio/backend/internal/handler/mood"
	resourceHandler "github.com/calmvio/backend/internal/handler/resource"
	resourceModel "github.com/calmvio/backend/internal/model/resource"
	"github.com/calmvio/backend/internal/service/conversation"
	moodService "github.com/calmvio/backend/internal/service/mood"
	"github.com/calmvio/backend/pkg/utils"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(cfg config.HTTPConfig, gateway *conversation.Service, moods *moodService.Service, catalog resourceModel.Store) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.Route("/api", func(api chi.Router) {
		// The health check stays outside the rate limit so probes never
		// burn the per-IP budget.
		api.Get("/health", handleHealth)

		api.Group(func(limited chi.Router) {
			limited.Use(httprate.Limit(
				cfg.RateLimitRequests,
				cfg.RateLimitWindow,
				httprate.WithKeyFuncs(httprate.KeyByIP),
			))

			chatHandler.New(gateway).RegisterRoutes(limited)
			moodHandler.New(moods).RegisterRoutes(limited)
			resourceHandler.New(catalog).RegisterRoutes(limited)
		})
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		utils.RespondError(w, http.StatusNotFound, "Route not found")
	})

	return r
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"service":   "Calmvio API",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
