package types

import "encoding/json"

// ------------------------------
// Report Payloads
// ------------------------------
//
// Reports are generated server-side and their shape drifts between backend
// versions. The structs below cover the fields the backend documents; the
// untouched body stays available through Result.Raw.

// StandupSummary is the one-line-per-section standup text.
type StandupSummary struct {
	Yesterday string `json:"yesterday"`
	Today     string `json:"today"`
	Blockers  string `json:"blockers"`
}

// StandupItem is a ticket mentioned by the standup report.
type StandupItem struct {
	Key       string   `json:"key"`
	Title     string   `json:"title"`
	Assignee  *string  `json:"assignee"`
	WaitingOn []string `json:"waiting_on,omitempty"`
}

// StandupDetails lists the tickets behind the summary.
type StandupDetails struct {
	TodayItems []StandupItem `json:"today_items"`
	Blockers   []StandupItem `json:"blockers"`
}

// StandupReport is returned by the daily-standup endpoint.
type StandupReport struct {
	Summary StandupSummary  `json:"summary"`
	Details *StandupDetails `json:"details,omitempty"`
}

// WeeklyReport is returned by the weekly-client endpoint.
type WeeklyReport struct {
	Overview   string          `json:"overview"`
	Progress   string          `json:"progress"`
	Stats      json.RawMessage `json:"stats,omitempty"`
	Milestones []string        `json:"milestones"`
	Risks      []string        `json:"risks"`
	Tickets    json.RawMessage `json:"tickets,omitempty"`
}

// ToneRewrite is one rewritten summary.
type ToneRewrite struct {
	Tone             Tone   `json:"tone"`
	Style            string `json:"style,omitempty"`
	RewrittenSummary string `json:"rewritten_summary"`
}

// RewriteResult is returned by the rewrite endpoint: a single rewrite, or
// AllTones keyed by tone when the request asked for ToneAll.
type RewriteResult struct {
	ToneRewrite
	AllTones map[Tone]ToneRewrite `json:"all_tones,omitempty"`
}

// Risk is a single detected delivery risk.
type Risk struct {
	Type        string `json:"type"`
	Severity    string `json:"severity"`
	Description string `json:"description"`
	Ticket      string `json:"ticket,omitempty"`
	Assignee    string `json:"assignee,omitempty"`
}

// RiskSummary counts risks.
type RiskSummary struct {
	Total  int            `json:"total"`
	ByType map[string]int `json:"by_type"`
}

// RiskReport is returned by the risk-analysis endpoint.
type RiskReport struct {
	Summary RiskSummary `json:"summary"`
	Risks   []Risk      `json:"risks"`
}

// Activity is an entry of the dashboard's recent activity feed.
type Activity struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Author string `json:"author,omitempty"`
	Status string `json:"status,omitempty"`
	Date   string `json:"date,omitempty"`
}

// TopRisk is a dashboard risk highlight.
type TopRisk struct {
	Key      string `json:"key"`
	Title    string `json:"title"`
	Type     string `json:"type"`
	Severity string `json:"severity"`
	Detail   string `json:"detail,omitempty"`
	Assignee string `json:"assignee,omitempty"`
}

// DashboardStats is returned by the dashboard endpoint.
type DashboardStats struct {
	TotalTickets    int        `json:"total_tickets"`
	Done            int        `json:"done"`
	InProgress      int        `json:"in_progress"`
	Blocked         int        `json:"blocked"`
	Todo            int        `json:"todo"`
	TotalPRs        int        `json:"total_prs"`
	OpenPRs         int        `json:"open_prs"`
	MergedPRs       int        `json:"merged_prs"`
	TotalMembers    int        `json:"total_members"`
	OverdueTickets  int        `json:"overdue_tickets"`
	ProgressPercent int        `json:"progress_percent"`
	Health          string     `json:"health"`
	RecentActivity  []Activity `json:"recent_activity"`
	TopRisks        []TopRisk  `json:"top_risks"`
}
