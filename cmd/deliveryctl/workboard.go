package main

import (
	"context"
	"fmt"

	"github.com/aidelivery/delivery-manager/client"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func (a *app) newTicketsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tickets",
		Short: "List, inspect and edit tickets",
	}
	cmd.AddCommand(a.newTicketsListCmd())
	cmd.AddCommand(a.newTicketsGetCmd())
	cmd.AddCommand(a.newTicketsCreateCmd())
	cmd.AddCommand(a.newTicketsUpdateCmd())
	cmd.AddCommand(a.newTicketsDeleteCmd())
	return cmd
}

func (a *app) newTicketsListCmd() *cobra.Command {
	var filter client.TicketFilter
	var status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tickets, optionally filtered by assignee and status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.workboard()
			if err != nil {
				return err
			}
			filter.Status = client.TicketStatus(status)
			return run(cmd, "list-tickets", func(ctx context.Context) (*client.Result[[]client.Ticket], error) {
				return c.ListTickets(ctx, filter)
			})
		},
	}

	cmd.Flags().StringVar(&filter.Assignee, "assignee", "", "Assignee member id")
	cmd.Flags().StringVar(&status, "status", "", "Ticket status (TODO, IN_PROGRESS, IN_REVIEW, DONE, BLOCKED)")

	return cmd
}

func (a *app) newTicketsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one ticket",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "ticket id")
			if err != nil {
				return err
			}
			c, err := a.workboard()
			if err != nil {
				return err
			}
			return run(cmd, "get-ticket", func(ctx context.Context) (*client.Result[client.Ticket], error) {
				return c.GetTicket(ctx, id)
			})
		},
	}
}

func (a *app) newTicketsCreateCmd() *cobra.Command {
	var req client.CreateTicketRequest
	var assignee int

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a ticket",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("assignee") {
				req.Assignee = client.Ptr(assignee)
			}
			c, err := a.workboard()
			if err != nil {
				return err
			}
			return run(cmd, "create-ticket", func(ctx context.Context) (*client.Result[client.Ticket], error) {
				return c.CreateTicket(ctx, req)
			})
		},
	}

	cmd.Flags().StringVar(&req.Title, "title", "", "Ticket title (required)")
	cmd.Flags().StringVar(&req.Description, "description", "", "Ticket description")
	cmd.Flags().IntVar(&assignee, "assignee", 0, "Assignee member id")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func (a *app) newTicketsUpdateCmd() *cobra.Command {
	var title, description, status string
	var assignee, prID int
	var unassign bool

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change a ticket's fields; only flags given are sent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "ticket id")
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			var req client.PatchTicketRequest
			if flags.Changed("title") {
				req.Title = client.Ptr(title)
			}
			if flags.Changed("description") {
				req.Description = client.Ptr(description)
			}
			if flags.Changed("status") {
				s := client.TicketStatus(status)
				if !s.Valid() {
					log.Warn().Str("status", status).Msg("unknown ticket status; sending anyway")
				}
				req.Status = &s
			}
			if flags.Changed("assignee") {
				req.Assignee = client.Ptr(assignee)
			}
			if flags.Changed("pr") {
				req.PRID = client.Ptr(prID)
			}
			req.Unassign = unassign
			if req == (client.PatchTicketRequest{}) {
				return errNoChanges
			}

			c, err := a.workboard()
			if err != nil {
				return err
			}
			return run(cmd, "patch-ticket", func(ctx context.Context) (*client.Result[client.Ticket], error) {
				return c.PatchTicket(ctx, id, req)
			})
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&description, "description", "", "New description")
	cmd.Flags().StringVar(&status, "status", "", "New status")
	cmd.Flags().IntVar(&assignee, "assignee", 0, "New assignee member id")
	cmd.Flags().BoolVar(&unassign, "unassign", false, "Clear the assignee")
	cmd.Flags().IntVar(&prID, "pr", 0, "Link a pull request by id")
	cmd.MarkFlagsMutuallyExclusive("assignee", "unassign")

	return cmd
}

func (a *app) newTicketsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a ticket",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "ticket id")
			if err != nil {
				return err
			}
			c, err := a.workboard()
			if err != nil {
				return err
			}
			if err := c.DeleteTicket(cmd.Context(), id); err != nil {
				return reportFailure(cmd, err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Ticket %d deleted\n", id)
			return err
		},
	}
}

func (a *app) newMembersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "members",
		Short: "List and create team members",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List members",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.workboard()
			if err != nil {
				return err
			}
			return run(cmd, "list-members", c.ListMembers)
		},
	})

	var req client.CreateMemberRequest
	var team int
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a member",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("team") {
				req.Team = client.Ptr(team)
			}
			c, err := a.workboard()
			if err != nil {
				return err
			}
			return run(cmd, "create-member", func(ctx context.Context) (*client.Result[client.Member], error) {
				return c.CreateMember(ctx, req)
			})
		},
	}
	create.Flags().StringVar(&req.Name, "name", "", "Full name (required)")
	create.Flags().StringVar(&req.Email, "email", "", "Email address (required)")
	create.Flags().StringVar(&req.Role, "role", "", "Role, e.g. Engineer")
	create.Flags().IntVar(&team, "team", 0, "Team id")
	_ = create.MarkFlagRequired("name")
	_ = create.MarkFlagRequired("email")
	cmd.AddCommand(create)

	return cmd
}

func (a *app) newPRsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prs",
		Short: "List and create pull requests",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List pull requests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.workboard()
			if err != nil {
				return err
			}
			return run(cmd, "list-prs", c.ListPRs)
		},
	})

	var req client.CreatePRRequest
	var author, ticket int
	create := &cobra.Command{
		Use:   "create",
		Short: "Register a pull request",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("author") {
				req.Author = client.Ptr(author)
			}
			if cmd.Flags().Changed("ticket") {
				req.TicketID = client.Ptr(ticket)
			}
			c, err := a.workboard()
			if err != nil {
				return err
			}
			return run(cmd, "create-pr", func(ctx context.Context) (*client.Result[client.PullRequest], error) {
				return c.CreatePR(ctx, req)
			})
		},
	}
	create.Flags().StringVar(&req.Title, "title", "", "PR title (required)")
	create.Flags().StringVar(&req.Repo, "repo", "", "Repository (required)")
	create.Flags().IntVar(&author, "author", 0, "Author member id")
	create.Flags().StringVar(&req.Status, "status", "", "PR status, e.g. OPEN")
	create.Flags().StringVar(&req.URL, "url", "", "PR URL")
	create.Flags().IntVar(&ticket, "ticket", 0, "Ticket id to link")
	_ = create.MarkFlagRequired("title")
	_ = create.MarkFlagRequired("repo")
	cmd.AddCommand(create)

	return cmd
}

func (a *app) newTeamsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "teams",
		Short: "List and create teams",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List teams",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.workboard()
			if err != nil {
				return err
			}
			return run(cmd, "list-teams", c.ListTeams)
		},
	})

	var req client.CreateTeamRequest
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a team",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.workboard()
			if err != nil {
				return err
			}
			return run(cmd, "create-team", func(ctx context.Context) (*client.Result[client.Team], error) {
				return c.CreateTeam(ctx, req)
			})
		},
	}
	create.Flags().StringVar(&req.Name, "name", "", "Team name (required)")
	create.Flags().StringVar(&req.Description, "description", "", "Team description")
	_ = create.MarkFlagRequired("name")
	cmd.AddCommand(create)

	return cmd
}

func (a *app) newDependenciesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dependencies",
		Short: "Record ticket dependencies",
	}

	var req client.CreateDependencyRequest
	create := &cobra.Command{
		Use:   "create",
		Short: "Mark a ticket as depending on another",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.workboard()
			if err != nil {
				return err
			}
			return run(cmd, "create-dependency", func(ctx context.Context) (*client.Result[client.Dependency], error) {
				return c.CreateDependency(ctx, req)
			})
		},
	}
	create.Flags().IntVar(&req.Ticket, "ticket", 0, "Blocked ticket id (required)")
	create.Flags().IntVar(&req.DependsOn, "depends-on", 0, "Ticket id it depends on (required)")
	create.Flags().StringVar(&req.Note, "note", "", "Free-form note")
	_ = create.MarkFlagRequired("ticket")
	_ = create.MarkFlagRequired("depends-on")
	cmd.AddCommand(create)

	return cmd
}

func (a *app) newAggregateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "aggregate",
		Short: "Show the workboard aggregate (per-status counts and blockers)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.workboard()
			if err != nil {
				return err
			}
			return run(cmd, "aggregate", c.Aggregate)
		},
	}
}

func (a *app) newSnapshotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "snapshot",
		Short: "Fetch tickets, members and pull requests in one go",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.workboard()
			if err != nil {
				return err
			}
			snap, err := c.Snapshot(cmd.Context())
			if err != nil {
				return reportFailure(cmd, err)
			}
			return printCombined(cmd.OutOrStdout(), map[string]texter{
				"tickets": snap.Tickets,
				"members": snap.Members,
				"prs":     snap.PRs,
			})
		},
	}
}
