package mood

import (
	"context"
	"errors"
	"math"
	"sync"
	"time"

	"github.com/calmvio/backend/internal/model/mood"
)

var (
	ErrSessionRequired = errors.New("sessionId is required")
	ErrInvalidScore    = errors.New("score must be a number between 1 and 5")
)

// DefaultListLimit caps a history listing when the caller gives no limit.
const DefaultListLimit = 30

// Trend window and threshold are fixed design constants: the last three
// scores are compared against the three before them.
const (
	trendWindow    = 3
	trendThreshold = 0.4
)

// Service keeps per-session mood history in memory and derives summaries on
// read.
type Service struct {
	mu      sync.RWMutex
	entries map[string][]mood.Entry
	now     func() time.Time
}

// NewService bootstraps the in-memory mood store.
func NewService() *Service {
	return &Service{
		entries: make(map[string][]mood.Entry),
		now:     time.Now,
	}
}

// Log validates and stores one mood check-in. The note is truncated to the
// model limit and unknown tags are dropped silently.
func (s *Service) Log(_ context.Context, sessionID string, score int, note string, tags []string) (mood.Entry, error) {
	if sessionID == "" {
		return mood.Entry{}, ErrSessionRequired
	}
	if !mood.ValidScore(score) {
		return mood.Entry{}, ErrInvalidScore
	}

	if runes := []rune(note); len(runes) > mood.NoteLimit {
		note = string(runes[:mood.NoteLimit])
	}

	label, emoji := mood.LabelFor(score)
	entry := mood.Entry{
		SessionID: sessionID,
		Score:     score,
		Label:     label,
		Emoji:     emoji,
		Note:      note,
		Tags:      mood.SanitizeTags(tags),
		CreatedAt: s.now().UTC(),
	}

	s.mu.Lock()
	s.entries[sessionID] = append(s.entries[sessionID], entry)
	s.mu.Unlock()

	return entry, nil
}

// List returns the most recent limit entries in chronological order, plus the
// total number stored for the session.
func (s *Service) List(_ context.Context, sessionID string, limit int) ([]mood.Entry, int) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	history := s.entries[sessionID]
	start := 0
	if len(history) > limit {
		start = len(history) - limit
	}

	recent := make([]mood.Entry, len(history)-start)
	copy(recent, history[start:])
	return recent, len(history)
}

// Summarize aggregates the session's full history. It returns nil when no
// entries exist.
func (s *Service) Summarize(_ context.Context, sessionID string) *mood.Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history := s.entries[sessionID]
	if len(history) == 0 {
		return nil
	}

	var sum int
	scores := make([]int, len(history))
	for i, entry := range history {
		scores[i] = entry.Score
		sum += entry.Score
	}
	average := math.Round(float64(sum)/float64(len(history))*10) / 10

	return &mood.Summary{
		AverageScore: average,
		TotalEntries: len(history),
		RecentMood:   history[len(history)-1],
		Trend:        classifyTrend(scores),
	}
}

// classifyTrend compares the mean of the last three scores against the mean
// of the three before them. Fewer than six entries is always stable.
func classifyTrend(scores []int) string {
	if len(scores) < trendWindow*2 {
		return mood.TrendStable
	}

	recent := windowMean(scores[len(scores)-trendWindow:])
	previous := windowMean(scores[len(scores)-trendWindow*2 : len(scores)-trendWindow])

	switch {
	case recent > previous+trendThreshold:
		return mood.TrendImproving
	case recent < previous-trendThreshold:
		return mood.TrendDeclining
	default:
		return mood.TrendStable
	}
}

func windowMean(scores []int) float64 {
	var sum int
	for _, score := range scores {
		sum += score
	}
	return float64(sum) / float64(len(scores))
}
