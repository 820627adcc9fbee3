package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/aidelivery/delivery-manager/client/internal/types"
)

// TicketsPath builds the tickets collection path, adding only the filters
// that are set.
func TicketsPath(f types.TicketFilter) string {
	qs := url.Values{}
	if f.Assignee != "" {
		qs.Set("assignee_id", f.Assignee)
	}
	if f.Status != "" {
		qs.Set("status", string(f.Status))
	}
	if len(qs) == 0 {
		return "tickets"
	}
	return "tickets?" + qs.Encode()
}

func ticketPath(id int) string { return fmt.Sprintf("tickets/%d", id) }

// ListTickets returns tickets matching the filter, newest first.
func ListTickets(ctx context.Context, e *Endpoint, f types.TicketFilter) (*types.Result[[]types.Ticket], error) {
	return getAs[[]types.Ticket](ctx, e, TicketsPath(f))
}

// GetTicket returns a single ticket.
func GetTicket(ctx context.Context, e *Endpoint, id int) (*types.Result[types.Ticket], error) {
	if err := types.ValidateID(id, "ticket id"); err != nil {
		return nil, err
	}
	return getAs[types.Ticket](ctx, e, ticketPath(id))
}

// CreateTicket creates a ticket. Validation failures come back as a
// RequestFailedError with FieldErrors set.
func CreateTicket(ctx context.Context, e *Endpoint, req types.CreateTicketRequest) (*types.Result[types.Ticket], error) {
	return postAs[types.Ticket](ctx, e, "tickets", req)
}

// PatchTicket applies a partial update.
func PatchTicket(ctx context.Context, e *Endpoint, id int, req types.PatchTicketRequest) (*types.Result[types.Ticket], error) {
	if err := types.ValidateID(id, "ticket id"); err != nil {
		return nil, err
	}
	return patchAs[types.Ticket](ctx, e, ticketPath(id), req)
}

// DeleteTicket removes a ticket. Deletion is irreversible.
func DeleteTicket(ctx context.Context, e *Endpoint, id int) error {
	if err := types.ValidateID(id, "ticket id"); err != nil {
		return err
	}
	return e.Delete(ctx, ticketPath(id))
}

// ListMembers returns all members.
func ListMembers(ctx context.Context, e *Endpoint) (*types.Result[[]types.Member], error) {
	return getAs[[]types.Member](ctx, e, "members")
}

// CreateMember registers a member.
func CreateMember(ctx context.Context, e *Endpoint, req types.CreateMemberRequest) (*types.Result[types.Member], error) {
	return postAs[types.Member](ctx, e, "members", req)
}

// ListPRs returns all pull requests.
func ListPRs(ctx context.Context, e *Endpoint) (*types.Result[[]types.PullRequest], error) {
	return getAs[[]types.PullRequest](ctx, e, "prs")
}

// CreatePR records a pull request, optionally linking it to a ticket.
func CreatePR(ctx context.Context, e *Endpoint, req types.CreatePRRequest) (*types.Result[types.PullRequest], error) {
	return postAs[types.PullRequest](ctx, e, "prs", req)
}

// ListTeams returns all teams.
func ListTeams(ctx context.Context, e *Endpoint) (*types.Result[[]types.Team], error) {
	return getAs[[]types.Team](ctx, e, "teams")
}

// CreateTeam creates a team.
func CreateTeam(ctx context.Context, e *Endpoint, req types.CreateTeamRequest) (*types.Result[types.Team], error) {
	return postAs[types.Team](ctx, e, "teams", req)
}

// CreateDependency records that one ticket waits on another.
func CreateDependency(ctx context.Context, e *Endpoint, req types.CreateDependencyRequest) (*types.Result[types.Dependency], error) {
	return postAs[types.Dependency](ctx, e, "dependencies", req)
}

// Aggregate reads the project aggregate (tickets, PRs, blockers).
func Aggregate(ctx context.Context, e *Endpoint) (*types.Result[types.Aggregate], error) {
	return getAs[types.Aggregate](ctx, e, "aggregate")
}
