package models

// Dashboard is the summary payload of GET /analytics/dashboard: bot
// counts against the plan limit plus the latest execution logs.
type Dashboard struct {
	TotalBots    int        `json:"total_bots"`
	ActiveBots   int        `json:"active_bots"`
	InactiveBots int        `json:"inactive_bots"`
	MaxBots      int        `json:"max_bots"`
	Plan         string     `json:"plan"`
	RecentLogs   []LogEntry `json:"recent_logs"`
}
