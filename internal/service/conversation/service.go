package conversation

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/calmvio/backend/internal/analysis/crisis"
	model "github.com/calmvio/backend/internal/model/chat"
	chat "github.com/calmvio/backend/internal/service/chat"
)

var (
	ErrEmptyMessage = errors.New("message is required and must be a non-empty string")
	ErrUpstream     = errors.New("model service failure")
)

// Completer is the external language-model collaborator. It receives the
// pre-turn history and the new user message as separate arguments.
type Completer interface {
	Complete(ctx context.Context, history []model.Message, userText string) (string, error)
}

// Result is the outcome of one successful turn.
type Result struct {
	SessionID string
	Reply     string
	Timestamp time.Time
	Crisis    *crisis.SupportBundle
}

// Service orchestrates a single chat turn: crisis scan, model call, session
// commit. A turn either fully commits (user message plus reply appended) or
// fully fails with nothing written.
type Service struct {
	sessions *chat.Service
	ai       Completer
	now      func() time.Time

	// One mutex per session id, held across the blocking model call so
	// concurrent turns for the same session queue instead of racing.
	// Turns for different sessions proceed in parallel.
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewService wires the gateway. ai may be nil when no model backend is
// configured; turns then fail upstream.
func NewService(sessions *chat.Service, ai Completer) *Service {
	return &Service{
		sessions: sessions,
		ai:       ai,
		now:      time.Now,
		locks:    make(map[string]*sync.Mutex),
	}
}

// HandleTurn runs one conversation turn for the given (possibly empty)
// session id. The crisis scan only annotates the response and flags the
// session; it never stops the model call.
func (s *Service) HandleTurn(ctx context.Context, sessionID, message string) (Result, error) {
	text := strings.TrimSpace(message)
	if text == "" {
		return Result{}, ErrEmptyMessage
	}

	session := s.sessions.GetOrCreate(ctx, sessionID)

	lock := s.sessionLock(session.ID)
	lock.Lock()
	defer lock.Unlock()

	// Re-read under the turn lock: another turn may have committed between
	// resolution and acquisition.
	current, err := s.sessions.History(ctx, session.ID)
	if err != nil {
		return Result{}, err
	}

	verdict := crisis.Scan(text)
	if verdict.Detected {
		if err := s.sessions.MarkCrisis(ctx, session.ID); err != nil {
			return Result{}, err
		}
	}

	if s.ai == nil {
		return Result{}, fmt.Errorf("%w: model backend not configured", ErrUpstream)
	}

	reply, err := s.ai.Complete(ctx, current.Messages, text)
	if err != nil {
		log.Printf("[conversation] model call failed for session=%s: %v", session.ID, err)
		return Result{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	if err := s.sessions.AppendTurn(ctx, session.ID, text, reply); err != nil {
		return Result{}, err
	}

	result := Result{
		SessionID: session.ID,
		Reply:     reply,
		Timestamp: s.now().UTC(),
	}
	if verdict.Detected {
		result.Crisis = verdict.Response
	}
	return result, nil
}

// History returns the session transcript and crisis flag.
func (s *Service) History(ctx context.Context, sessionID string) (model.Session, error) {
	return s.sessions.History(ctx, sessionID)
}

// DeleteSession removes the session. It waits for an in-flight turn on the
// same id to finish first.
func (s *Service) DeleteSession(ctx context.Context, sessionID string) bool {
	lock := s.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	ok := s.sessions.Delete(ctx, sessionID)

	s.mu.Lock()
	delete(s.locks, sessionID)
	s.mu.Unlock()

	return ok
}

func (s *Service) sessionLock(sessionID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[sessionID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[sessionID] = lock
	}
	return lock
}
