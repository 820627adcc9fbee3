package types

import (
	"encoding/json"
	"time"
)

// ------------------------------
// Workboard Entities
// ------------------------------

// TicketStatus is the workflow state of a ticket.
type TicketStatus string

const (
	StatusTodo       TicketStatus = "TODO"
	StatusInProgress TicketStatus = "IN_PROGRESS"
	StatusInReview   TicketStatus = "IN_REVIEW"
	StatusDone       TicketStatus = "DONE"
	StatusBlocked    TicketStatus = "BLOCKED"
)

// TicketStatuses lists the statuses the backend accepts, in board order.
var TicketStatuses = []TicketStatus{StatusTodo, StatusInProgress, StatusInReview, StatusDone, StatusBlocked}

// Valid reports whether s is one of the known statuses.
func (s TicketStatus) Valid() bool {
	for _, known := range TicketStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Member represents a team member
type Member struct {
	ID        int        `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Role      string     `json:"role,omitempty"`
	Team      *int       `json:"team,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// PullRequest represents a pull request tracked by the workboard.
// Author is kept raw: the backend serialises it as a member id, some
// deployments expand it into a member object.
type PullRequest struct {
	ID        int             `json:"id"`
	Title     string          `json:"title"`
	Repo      string          `json:"repo"`
	Status    string          `json:"status"`
	URL       string          `json:"url,omitempty"`
	Author    json.RawMessage `json:"author,omitempty"`
	CreatedAt *time.Time      `json:"created_at,omitempty"`
}

// AuthorID returns the author's member id when Author is a bare id.
func (pr PullRequest) AuthorID() (int, bool) {
	var id int
	if len(pr.Author) == 0 || json.Unmarshal(pr.Author, &id) != nil {
		if m, ok := pr.AuthorMember(); ok {
			return m.ID, true
		}
		return 0, false
	}
	return id, true
}

// AuthorMember returns the author when Author is an expanded member object.
func (pr PullRequest) AuthorMember() (*Member, bool) {
	if len(pr.Author) == 0 || pr.Author[0] != '{' {
		return nil, false
	}
	var m Member
	if err := json.Unmarshal(pr.Author, &m); err != nil {
		return nil, false
	}
	return &m, true
}

// Ticket represents a work item
type Ticket struct {
	ID          int           `json:"id"`
	Key         string        `json:"key"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Status      TicketStatus  `json:"status"`
	Priority    string        `json:"priority,omitempty"`
	DueDate     string        `json:"due_date,omitempty"`
	Assignee    *Member       `json:"assignee,omitempty"`
	WaitingOn   []string      `json:"waiting_on,omitempty"`
	PRs         []PullRequest `json:"prs,omitempty"`
	CreatedAt   *time.Time    `json:"created_at,omitempty"`
	UpdatedAt   *time.Time    `json:"updated_at,omitempty"`
}

// Team groups members
type Team struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}

// Dependency records that Ticket cannot finish before DependsOn.
type Dependency struct {
	ID        int    `json:"id"`
	Ticket    int    `json:"ticket"`
	DependsOn int    `json:"depends_on"`
	Note      string `json:"note,omitempty"`
}

// Blocker is a ticket waiting on other tickets, as listed by the aggregate endpoint.
type Blocker struct {
	Key    string `json:"key"`
	Title  string `json:"title"`
	Reason string `json:"reason"`
}

// Aggregate is the project-wide view returned by the aggregate endpoint.
type Aggregate struct {
	Tickets  []Ticket      `json:"tickets"`
	PRs      []PullRequest `json:"prs"`
	Blockers []Blocker     `json:"blockers"`
}
