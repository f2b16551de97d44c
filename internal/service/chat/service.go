package chat

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/calmvio/backend/internal/model/chat"
)

var ErrSessionNotFound = errors.New("session not found")

// Service encapsulates conversation state management. All mutation goes
// through it; transcripts are append-only and never reordered.
type Service struct {
	mu       sync.RWMutex
	sessions map[string]*chat.Session
}

// NewService bootstraps the in-memory session store.
func NewService() *Service {
	return &Service{
		sessions: make(map[string]*chat.Session),
	}
}

// GetOrCreate resolves an existing session or provisions an empty one when
// the id is blank or unknown. A client-supplied id is kept; a fresh uuid is
// generated only when none was given. Resolution and creation share one lock
// so concurrent requests for a brand-new id cannot race.
func (s *Service) GetOrCreate(_ context.Context, sessionID string) chat.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sessionID != "" {
		if existing, ok := s.sessions[sessionID]; ok {
			return snapshot(existing)
		}
	}

	id := sessionID
	if id == "" {
		id = uuid.NewString()
	}

	session := &chat.Session{
		ID:        id,
		Messages:  make([]chat.Message, 0, 16),
		CreatedAt: time.Now().UTC(),
	}
	s.sessions[id] = session
	return snapshot(session)
}

// AppendTurn records one completed turn: the user message followed by the
// assistant reply, in that order. Nothing is written for unknown sessions.
func (s *Service) AppendTurn(_ context.Context, sessionID, userText, assistantText string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return ErrSessionNotFound
	}

	session.Messages = append(session.Messages,
		chat.Message{Role: chat.RoleUser, Content: userText},
		chat.Message{Role: chat.RoleAssistant, Content: assistantText},
	)
	return nil
}

// MarkCrisis flags the session. The flag is monotonic: once set it stays set
// until the session is deleted.
func (s *Service) MarkCrisis(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return ErrSessionNotFound
	}
	session.CrisisTriggered = true
	return nil
}

// History returns a copy of the session transcript and crisis flag.
func (s *Service) History(_ context.Context, sessionID string) (chat.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return chat.Session{}, ErrSessionNotFound
	}
	return snapshot(session), nil
}

// Delete removes the session entirely. It reports false when the id is
// unknown.
func (s *Service) Delete(_ context.Context, sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sessionID]; !ok {
		return false
	}
	delete(s.sessions, sessionID)
	return true
}

// snapshot copies the session so callers never observe later mutation.
func snapshot(session *chat.Session) chat.Session {
	copied := *session
	copied.Messages = make([]chat.Message, len(session.Messages))
	copy(copied.Messages, session.Messages)
	return copied
}
