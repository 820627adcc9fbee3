package types

import "encoding/json"

// ------------------------------
// Request Types
// ------------------------------

// TicketFilter narrows ListTickets. Empty fields are not sent.
type TicketFilter struct {
	Assignee string
	Status   TicketStatus
}

// CreateTicketRequest holds parameters for a new ticket. The backend assigns
// the key and validates the title.
type CreateTicketRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Assignee    *int   `json:"assignee,omitempty"`
}

// PatchTicketRequest is a partial ticket update; nil fields are left alone.
// Unassign clears the assignee and takes precedence over Assignee.
type PatchTicketRequest struct {
	Title       *string       `json:"title,omitempty"`
	Description *string       `json:"description,omitempty"`
	Status      *TicketStatus `json:"status,omitempty"`
	Assignee    *int          `json:"assignee,omitempty"`
	PRID        *int          `json:"pr_id,omitempty"`
	Unassign    bool          `json:"-"`
}

// MarshalJSON encodes the patch. The backend treats an empty-string assignee
// as "clear" and a null one as "unchanged".
func (r PatchTicketRequest) MarshalJSON() ([]byte, error) {
	type plain PatchTicketRequest
	if !r.Unassign {
		return json.Marshal(plain(r))
	}
	return json.Marshal(struct {
		plain
		Assignee string `json:"assignee"`
	}{plain: plain(r), Assignee: ""})
}

// CreateMemberRequest holds parameters for a new member
type CreateMemberRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Team  *int   `json:"team,omitempty"`
}

// CreatePRRequest holds parameters for a new pull request. Author is a member
// id; TicketID optionally links the PR to a ticket.
type CreatePRRequest struct {
	Title    string `json:"title"`
	Repo     string `json:"repo"`
	Author   *int   `json:"author,omitempty"`
	Status   string `json:"status,omitempty"`
	URL      string `json:"url,omitempty"`
	TicketID *int   `json:"ticket_id,omitempty"`
}

// CreateTeamRequest holds parameters for a new team
type CreateTeamRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// CreateDependencyRequest links two tickets.
type CreateDependencyRequest struct {
	Ticket    int    `json:"ticket"`
	DependsOn int    `json:"depends_on"`
	Note      string `json:"note,omitempty"`
}

// Tone names a rewrite style.
type Tone string

const (
	ToneClient    Tone = "client"
	ToneTechnical Tone = "technical"
	ToneExecutive Tone = "executive"
	ToneAll       Tone = "all"
)

// RewriteRequest is the body of the rewrite endpoint.
type RewriteRequest struct {
	Tone Tone   `json:"tone"`
	Text string `json:"text"`
}
