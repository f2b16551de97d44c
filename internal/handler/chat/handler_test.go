package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	model "github.com/calmvio/backend/internal/model/chat"
	chatservice "github.com/calmvio/backend/internal/service/chat"
	"github.com/calmvio/backend/internal/service/conversation"
)

type stubCompleter struct {
	reply string
	err   error
}

func (s *stubCompleter) Complete(_ context.Context, _ []model.Message, _ string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func setupRouter(stub *stubCompleter) (*chi.Mux, *conversation.Service) {
	gateway := conversation.NewService(chatservice.NewService(), stub)
	handler := New(gateway)

	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r, gateway
}

func postChat(t *testing.T, r http.Handler, body map[string]any) *httptest.ResponseRecorder {
	t.Helper()
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestSendMessage(t *testing.T) {
	r, _ := setupRouter(&stubCompleter{reply: "hi, I'm here"})

	resp := postChat(t, r, map[string]any{"message": "hello"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var body struct {
		SessionID string `json:"sessionId"`
		Message   string `json:"message"`
		Timestamp string `json:"timestamp"`
		Crisis    any    `json:"crisis"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal err: %v", err)
	}
	if body.SessionID == "" || body.Message != "hi, I'm here" || body.Timestamp == "" {
		t.Fatalf("unexpected body: %+v", body)
	}
	if body.Crisis != nil {
		t.Fatal("did not expect crisis payload")
	}
}

func TestSendMessageEmpty(t *testing.T) {
	r, _ := setupRouter(&stubCompleter{reply: "unused"})

	for _, message := range []any{"", "   ", 42} {
		resp := postChat(t, r, map[string]any{"message": message})
		if resp.Code != http.StatusBadRequest {
			t.Fatalf("message %v: expected 400, got %d", message, resp.Code)
		}
	}
}

func TestSendMessageCrisisPayload(t *testing.T) {
	r, _ := setupRouter(&stubCompleter{reply: "I'm so glad you told me"})

	resp := postChat(t, r, map[string]any{"message": "I want to kill myself"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var body struct {
		Crisis *struct {
			Message   string `json:"message"`
			Resources []any  `json:"resources"`
			FollowUp  string `json:"followUp"`
		} `json:"crisis"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal err: %v", err)
	}
	if body.Crisis == nil || len(body.Crisis.Resources) == 0 {
		t.Fatalf("expected crisis payload with resources, got %+v", body.Crisis)
	}
}

func TestSendMessageUpstreamFailure(t *testing.T) {
	r, _ := setupRouter(&stubCompleter{err: fmt.Errorf("model unavailable")})

	resp := postChat(t, r, map[string]any{"message": "hello"})
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal err: %v", err)
	}
	if body["error"] == "model unavailable" {
		t.Fatal("upstream detail must not leak to the client")
	}
}

func TestHistoryRoundTrip(t *testing.T) {
	r, _ := setupRouter(&stubCompleter{reply: "reply one"})

	resp := postChat(t, r, map[string]any{"message": "turn one"})
	var sent struct {
		SessionID string `json:"sessionId"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &sent); err != nil {
		t.Fatalf("unmarshal err: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/chat/"+sent.SessionID+"/history", nil)
	historyResp := httptest.NewRecorder()
	r.ServeHTTP(historyResp, req)

	if historyResp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", historyResp.Code)
	}

	var body struct {
		SessionID       string          `json:"sessionId"`
		Messages        []model.Message `json:"messages"`
		CrisisTriggered bool            `json:"crisisTriggered"`
	}
	if err := json.Unmarshal(historyResp.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal err: %v", err)
	}
	if len(body.Messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(body.Messages))
	}
	if body.Messages[0].Role != model.RoleUser || body.Messages[1].Role != model.RoleAssistant {
		t.Fatalf("unexpected message order: %+v", body.Messages)
	}
}

func TestHistoryUnknownSession(t *testing.T) {
	r, _ := setupRouter(&stubCompleter{reply: "unused"})

	req := httptest.NewRequest(http.MethodGet, "/chat/missing/history", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestDeleteSession(t *testing.T) {
	r, _ := setupRouter(&stubCompleter{reply: "reply"})

	resp := postChat(t, r, map[string]any{"message": "hello"})
	var sent struct {
		SessionID string `json:"sessionId"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &sent); err != nil {
		t.Fatalf("unmarshal err: %v", err)
	}

	req := httptest.NewRequest(http.MethodDelete, "/chat/"+sent.SessionID, nil)
	deleteResp := httptest.NewRecorder()
	r.ServeHTTP(deleteResp, req)
	if deleteResp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", deleteResp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/chat/"+sent.SessionID+"/history", nil)
	historyResp := httptest.NewRecorder()
	r.ServeHTTP(historyResp, req)
	if historyResp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", historyResp.Code)
	}
}

func TestDeleteUnknownSession(t *testing.T) {
	r, _ := setupRouter(&stubCompleter{reply: "unused"})

	req := httptest.NewRequest(http.MethodDelete, "/chat/missing", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}
