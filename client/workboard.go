package client

import (
	"context"

	"github.com/aidelivery/delivery-manager/client/internal/api"
	"golang.org/x/sync/errgroup"
)

// WorkboardClient manages tickets, members, pull requests, teams and
// dependencies. The backend validates every write.
type WorkboardClient struct {
	*base
}

// NewWorkboardClient constructs a WorkboardClient rooted at baseURL
// (DefaultWorkboardBaseURL when empty).
func NewWorkboardClient(baseURL string, opts ...Option) (*WorkboardClient, error) {
	b, err := newBase(namespaceWorkboard, baseURL, DefaultWorkboardBaseURL, opts)
	if err != nil {
		return nil, err
	}
	return &WorkboardClient{base: b}, nil
}

// --------------------------------------------------------------------
// Tickets
// --------------------------------------------------------------------

// ListTickets lists tickets. Only the filter fields that are set are sent.
func (c *WorkboardClient) ListTickets(ctx context.Context, f TicketFilter) (*Result[[]Ticket], error) {
	return api.ListTickets(ctx, c.ep, f)
}

// GetTicket fetches one ticket.
func (c *WorkboardClient) GetTicket(ctx context.Context, id int) (*Result[Ticket], error) {
	return api.GetTicket(ctx, c.ep, id)
}

// CreateTicket creates a ticket; the backend assigns its key. Validation
// failures are reported through FieldErrors(err).
func (c *WorkboardClient) CreateTicket(ctx context.Context, req CreateTicketRequest) (*Result[Ticket], error) {
	return api.CreateTicket(ctx, c.ep, req)
}

// PatchTicket updates the fields set in req.
func (c *WorkboardClient) PatchTicket(ctx context.Context, id int, req PatchTicketRequest) (*Result[Ticket], error) {
	return api.PatchTicket(ctx, c.ep, id, req)
}

// DeleteTicket deletes a ticket. A nil error means the ticket is gone; any
// failure reports "Delete failed" with the server answer on the error.
func (c *WorkboardClient) DeleteTicket(ctx context.Context, id int) error {
	return api.DeleteTicket(ctx, c.ep, id)
}

// --------------------------------------------------------------------
// Members, pull requests, teams
// --------------------------------------------------------------------

// ListMembers lists all members.
func (c *WorkboardClient) ListMembers(ctx context.Context) (*Result[[]Member], error) {
	return api.ListMembers(ctx, c.ep)
}

// CreateMember adds a member.
func (c *WorkboardClient) CreateMember(ctx context.Context, req CreateMemberRequest) (*Result[Member], error) {
	return api.CreateMember(ctx, c.ep, req)
}

// ListPRs lists all pull requests.
func (c *WorkboardClient) ListPRs(ctx context.Context) (*Result[[]PullRequest], error) {
	return api.ListPRs(ctx, c.ep)
}

// CreatePR records a pull request authored by a member.
func (c *WorkboardClient) CreatePR(ctx context.Context, req CreatePRRequest) (*Result[PullRequest], error) {
	return api.CreatePR(ctx, c.ep, req)
}

// ListTeams lists all teams.
func (c *WorkboardClient) ListTeams(ctx context.Context) (*Result[[]Team], error) {
	return api.ListTeams(ctx, c.ep)
}

// CreateTeam creates a team.
func (c *WorkboardClient) CreateTeam(ctx context.Context, req CreateTeamRequest) (*Result[Team], error) {
	return api.CreateTeam(ctx, c.ep, req)
}

// CreateDependency records that req.Ticket waits on req.DependsOn.
func (c *WorkboardClient) CreateDependency(ctx context.Context, req CreateDependencyRequest) (*Result[Dependency], error) {
	return api.CreateDependency(ctx, c.ep, req)
}

// Aggregate returns tickets, PRs and dependency blockers in one response.
func (c *WorkboardClient) Aggregate(ctx context.Context) (*Result[Aggregate], error) {
	return api.Aggregate(ctx, c.ep)
}

// Snapshot holds the listings fetched together by WorkboardClient.Snapshot.
type Snapshot struct {
	Tickets *Result[[]Ticket]
	Members *Result[[]Member]
	PRs     *Result[[]PullRequest]
}

// Snapshot lists tickets, members and pull requests concurrently. Responses
// may arrive in any order; Snapshot returns once all three have, or on the
// first failure.
func (c *WorkboardClient) Snapshot(ctx context.Context) (*Snapshot, error) {
	var out Snapshot
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		out.Tickets, err = c.ListTickets(gctx, TicketFilter{})
		return err
	})
	g.Go(func() (err error) {
		out.Members, err = c.ListMembers(gctx)
		return err
	})
	g.Go(func() (err error) {
		out.PRs, err = c.ListPRs(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}
