package chat

import "time"

// Session captures a transient anonymous conversation. It is created lazily
// on the first message for an unseen id and lives only in memory.
type Session struct {
	ID              string    `json:"id"`
	Messages        []Message `json:"messages"`
	CrisisTriggered bool      `json:"crisisTriggered"`
	CreatedAt       time.Time `json:"createdAt"`
}
