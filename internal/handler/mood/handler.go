package mood

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	moodService "github.com/calmvio/backend/internal/service/mood"
	"github.com/calmvio/backend/pkg/utils"
)

// Handler exposes the mood-tracking endpoints.
type Handler struct {
	moods *moodService.Service
}

// New creates the mood handler.
func New(moods *moodService.Service) *Handler {
	return &Handler{moods: moods}
}

// RegisterRoutes mounts the mood routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/mood", func(r chi.Router) {
		r.Post("/", h.handleLogMood)
		r.Get("/{sessionID}", h.handleListMoods)
		r.Get("/{sessionID}/summary", h.handleSummary)
	})
}

type logMoodRequest struct {
	SessionID string   `json:"sessionId"`
	Score     int      `json:"score"`
	Note      string   `json:"note"`
	Tags      []string `json:"tags"`
}

func (h *Handler) handleLogMood(w http.ResponseWriter, r *http.Request) {
	var payload logMoodRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "score must be a number between 1 and 5.")
		return
	}

	entry, err := h.moods.Log(r.Context(), payload.SessionID, payload.Score, payload.Note, payload.Tags)
	if err != nil {
		switch {
		case errors.Is(err, moodService.ErrSessionRequired):
			utils.RespondError(w, http.StatusBadRequest, "sessionId is required.")
		case errors.Is(err, moodService.ErrInvalidScore):
			utils.RespondError(w, http.StatusBadRequest, "score must be a number between 1 and 5.")
		default:
			utils.RespondError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	utils.RespondJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"mood":    entry,
	})
}

func (h *Handler) handleListMoods(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}

	moods, total := h.moods.List(r.Context(), sessionID, limit)
	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"sessionId": sessionID,
		"moods":     moods,
		"total":     total,
	})
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	summary := h.moods.Summarize(r.Context(), sessionID)
	if summary == nil {
		utils.RespondJSON(w, http.StatusOK, map[string]any{
			"summary": nil,
			"message": "No mood entries found for this session.",
		})
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{"summary": summary})
}
