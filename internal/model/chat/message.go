package chat

// Roles carried by transcript entries. Every successful turn appends exactly
// one of each, user first.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single entry in a session transcript.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
