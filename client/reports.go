package client

import (
	"context"

	"github.com/aidelivery/delivery-manager/client/internal/api"
	"golang.org/x/sync/errgroup"
)

// ReportsClient calls the AI report endpoints. Report content is generated
// by the backend; the client only transports it.
type ReportsClient struct {
	*base
}

// NewReportsClient constructs a ReportsClient rooted at baseURL
// (DefaultReportsBaseURL when empty).
func NewReportsClient(baseURL string, opts ...Option) (*ReportsClient, error) {
	b, err := newBase(namespaceReports, baseURL, DefaultReportsBaseURL, opts)
	if err != nil {
		return nil, err
	}
	return &ReportsClient{base: b}, nil
}

// DailyStandup returns yesterday/today/blockers for the team.
func (c *ReportsClient) DailyStandup(ctx context.Context) (*Result[StandupReport], error) {
	return api.DailyStandup(ctx, c.ep)
}

// WeeklyClient returns the weekly client report.
func (c *ReportsClient) WeeklyClient(ctx context.Context) (*Result[WeeklyReport], error) {
	return api.WeeklyClient(ctx, c.ep)
}

// RewriteSummary rewrites text in tone. With ToneAll the result carries
// AllTones keyed by tone instead of a single rewrite.
func (c *ReportsClient) RewriteSummary(ctx context.Context, tone Tone, text string) (*Result[RewriteResult], error) {
	return api.RewriteSummary(ctx, c.ep, tone, text)
}

// RiskAnalysis returns the risks the backend detected.
func (c *ReportsClient) RiskAnalysis(ctx context.Context) (*Result[RiskReport], error) {
	return api.RiskAnalysis(ctx, c.ep)
}

// DashboardStats returns the dashboard aggregate counts and highlights.
func (c *ReportsClient) DashboardStats(ctx context.Context) (*Result[DashboardStats], error) {
	return api.DashboardStats(ctx, c.ep)
}

// AllReports bundles the reports produced by GenerateAll.
type AllReports struct {
	Daily  *Result[StandupReport]
	Weekly *Result[WeeklyReport]
	Risks  *Result[RiskReport]
}

// GenerateAll requests the standup, weekly and risk reports concurrently.
// The first failure cancels the remaining requests and is returned.
func (c *ReportsClient) GenerateAll(ctx context.Context) (*AllReports, error) {
	var out AllReports
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		out.Daily, err = c.DailyStandup(gctx)
		return err
	})
	g.Go(func() (err error) {
		out.Weekly, err = c.WeeklyClient(gctx)
		return err
	})
	g.Go(func() (err error) {
		out.Risks, err = c.RiskAnalysis(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}
