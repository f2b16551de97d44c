package crisis

import "strings"

// Verdict is the outcome of scanning a single message. Response is set iff
// Detected is true.
type Verdict struct {
	Detected bool           `json:"detected"`
	Response *SupportBundle `json:"response,omitempty"`
}

// SupportBundle is the canned safety payload attached to a response when a
// message trips the scan.
type SupportBundle struct {
	Message   string    `json:"message"`
	Resources []Hotline `json:"resources"`
	FollowUp  string    `json:"followUp"`
}

// Hotline points at a human crisis service.
type Hotline struct {
	Name      string `json:"name"`
	Contact   string `json:"contact"`
	Available string `json:"available"`
}

// Phrases that mark a message as a crisis signal. Matching is plain
// case-insensitive substring containment with no negation handling, so the
// scan over-triggers rather than under-triggers.
var crisisPhrases = []string{
	// Suicidal ideation
	"kill myself", "end my life", "want to die", "suicidal", "suicide",
	"take my own life", "not worth living", "better off dead", "no reason to live",
	// Self-harm
	"hurt myself", "cutting myself", "self harm", "self-harm", "harming myself",
	// Immediate danger
	"going to kill", "planning to end", "goodbye forever", "final goodbye",
}

var supportBundle = SupportBundle{
	Message: "🆘 It sounds like you may be going through something very serious. Please know you are not alone.",
	Resources: []Hotline{
		{Name: "988 Suicide & Crisis Lifeline", Contact: "Call or text 988", Available: "24/7"},
		{Name: "Crisis Text Line", Contact: "Text HOME to 741741", Available: "24/7"},
		{Name: "International Association for Suicide Prevention", Contact: "https://www.iasp.info/resources/Crisis_Centres/", Available: "24/7"},
	},
	FollowUp: "A real human is available right now to help you. Please reach out to one of the resources above. I'm also here to listen.",
}

// Scan checks text against the crisis phrase list. It is a pure function:
// the session flag and response payload are the caller's concern, and a hit
// never blocks the conversation from continuing.
func Scan(text string) Verdict {
	normalized := strings.ToLower(text)
	if strings.TrimSpace(normalized) == "" {
		return Verdict{}
	}

	for _, phrase := range crisisPhrases {
		if strings.Contains(normalized, phrase) {
			bundle := supportBundle
			return Verdict{Detected: true, Response: &bundle}
		}
	}
	return Verdict{}
}
