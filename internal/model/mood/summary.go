package mood

// Trend classifications derived from recent vs. prior rolling means.
const (
	TrendImproving = "improving"
	TrendDeclining = "declining"
	TrendStable    = "stable"
)

// Summary aggregates a session's mood history on read.
type Summary struct {
	AverageScore float64 `json:"averageScore"`
	TotalEntries int     `json:"totalEntries"`
	RecentMood   Entry   `json:"recentMood"`
	Trend        string  `json:"trend"`
}
