package api

import (
	"context"

	"github.com/aidelivery/delivery-manager/client/internal/types"
)

// Report endpoints are POSTs with an empty body, except the dashboard read.

// DailyStandup requests the standup summary for the current day.
func DailyStandup(ctx context.Context, e *Endpoint) (*types.Result[types.StandupReport], error) {
	return postAs[types.StandupReport](ctx, e, "daily-standup", nil)
}

// WeeklyClient requests the weekly client-facing report.
func WeeklyClient(ctx context.Context, e *Endpoint) (*types.Result[types.WeeklyReport], error) {
	return postAs[types.WeeklyReport](ctx, e, "weekly-client", nil)
}

// RewriteSummary asks the backend to rewrite text in the given tone. An empty
// tone means ToneClient; unknown tones are passed through for the server to judge.
func RewriteSummary(ctx context.Context, e *Endpoint, tone types.Tone, text string) (*types.Result[types.RewriteResult], error) {
	if tone == "" {
		tone = types.ToneClient
	}
	return postAs[types.RewriteResult](ctx, e, "rewrite", types.RewriteRequest{Tone: tone, Text: text})
}

// RiskAnalysis requests the risk list.
func RiskAnalysis(ctx context.Context, e *Endpoint) (*types.Result[types.RiskReport], error) {
	return postAs[types.RiskReport](ctx, e, "risk-analysis", nil)
}

// DashboardStats reads the dashboard aggregate.
func DashboardStats(ctx context.Context, e *Endpoint) (*types.Result[types.DashboardStats], error) {
	return getAs[types.DashboardStats](ctx, e, "dashboard")
}
