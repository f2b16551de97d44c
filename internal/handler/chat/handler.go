package chat

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	chatService "github.com/calmvio/backend/internal/service/chat"
	"github.com/calmvio/backend/internal/service/conversation"
	"github.com/calmvio/backend/pkg/utils"
)

// Handler exposes the conversation endpoints.
type Handler struct {
	gateway *conversation.Service
}

// New creates the chat handler.
func New(gateway *conversation.Service) *Handler {
	return &Handler{gateway: gateway}
}

// RegisterRoutes mounts the chat routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/chat", func(r chi.Router) {
		r.Post("/", h.handleSendMessage)
		r.Get("/{sessionID}/history", h.handleHistory)
		r.Delete("/{sessionID}", h.handleDeleteSession)
	})
}

type sendMessageRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"sessionId"`
}

type sendMessageResponse struct {
	SessionID string `json:"sessionId"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Crisis    any    `json:"crisis,omitempty"`
}

func (h *Handler) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	var payload sendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Message is required and must be a non-empty string.")
		return
	}

	result, err := h.gateway.HandleTurn(r.Context(), payload.SessionID, payload.Message)
	if err != nil {
		switch {
		case errors.Is(err, conversation.ErrEmptyMessage):
			utils.RespondError(w, http.StatusBadRequest, "Message is required and must be a non-empty string.")
		case errors.Is(err, conversation.ErrUpstream):
			// Detail stays in the logs; the client gets a generic message.
			log.Printf("[chat] turn failed: %v", err)
			utils.RespondError(w, http.StatusInternalServerError, "Failed to get a response from the AI. Please try again.")
		default:
			log.Printf("[chat] unexpected turn error: %v", err)
			utils.RespondError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	resp := sendMessageResponse{
		SessionID: result.SessionID,
		Message:   result.Reply,
		Timestamp: result.Timestamp.Format(time.RFC3339),
	}
	if result.Crisis != nil {
		resp.Crisis = result.Crisis
	}
	utils.RespondJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	session, err := h.gateway.History(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, chatService.ErrSessionNotFound) {
			utils.RespondError(w, http.StatusNotFound, "Session not found.")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"sessionId":       sessionID,
		"messages":        session.Messages,
		"crisisTriggered": session.CrisisTriggered,
	})
}

func (h *Handler) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	if !h.gateway.DeleteSession(r.Context(), sessionID) {
		utils.RespondError(w, http.StatusNotFound, "Session not found.")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Session cleared.",
	})
}
