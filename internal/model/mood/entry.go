package mood

import "time"

// NoteLimit caps the stored note length, counted in runes.
const NoteLimit = 500

// Entry is a single self-reported mood check-in. Entries are immutable once
// stored and append-only per session.
type Entry struct {
	SessionID string    `json:"sessionId"`
	Score     int       `json:"score"`
	Label     string    `json:"label"`
	Emoji     string    `json:"emoji"`
	Note      string    `json:"note"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"createdAt"`
}

type scale struct {
	label string
	emoji string
}

var scales = map[int]scale{
	1: {"Very Low", "😞"},
	2: {"Low", "😔"},
	3: {"Okay", "😐"},
	4: {"Good", "🙂"},
	5: {"Great", "😁"},
}

// ValidScore reports whether score sits on the 1-5 mood scale.
func ValidScore(score int) bool {
	_, ok := scales[score]
	return ok
}

// LabelFor maps a valid score to its display label and emoji.
func LabelFor(score int) (label, emoji string) {
	s := scales[score]
	return s.label, s.emoji
}

var validTags = map[string]struct{}{
	"anxious":     {},
	"sad":         {},
	"angry":       {},
	"stressed":    {},
	"tired":       {},
	"calm":        {},
	"happy":       {},
	"grateful":    {},
	"hopeful":     {},
	"overwhelmed": {},
}

// SanitizeTags drops tags outside the fixed whitelist, keeping the caller's
// order and duplicates. Unknown tags are never an error.
func SanitizeTags(tags []string) []string {
	kept := make([]string, 0, len(tags))
	for _, tag := range tags {
		if _, ok := validTags[tag]; ok {
			kept = append(kept, tag)
		}
	}
	return kept
}
