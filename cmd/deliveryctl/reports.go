package main

import (
	"context"

	"github.com/aidelivery/delivery-manager/client"
	"github.com/spf13/cobra"
)

func (a *app) newStandupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "standup",
		Short: "Generate the daily standup report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.reports()
			if err != nil {
				return err
			}
			return run(cmd, "daily-standup", c.DailyStandup)
		},
	}
}

func (a *app) newWeeklyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "weekly",
		Short: "Generate the weekly client report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.reports()
			if err != nil {
				return err
			}
			return run(cmd, "weekly-client", c.WeeklyClient)
		},
	}
}

func (a *app) newRewriteCmd() *cobra.Command {
	var tone, text string

	cmd := &cobra.Command{
		Use:   "rewrite",
		Short: "Rewrite a summary in a given tone (client, technical, executive, all)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.reports()
			if err != nil {
				return err
			}
			return run(cmd, "rewrite", func(ctx context.Context) (*client.Result[client.RewriteResult], error) {
				return c.RewriteSummary(ctx, client.Tone(tone), text)
			})
		},
	}

	cmd.Flags().StringVar(&tone, "tone", string(client.ToneClient), "Target tone")
	cmd.Flags().StringVar(&text, "text", "", "Summary text to rewrite (required)")
	_ = cmd.MarkFlagRequired("text")

	return cmd
}

func (a *app) newRisksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "risks",
		Short: "Run risk analysis",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.reports()
			if err != nil {
				return err
			}
			return run(cmd, "risk-analysis", c.RiskAnalysis)
		},
	}
}

func (a *app) newDashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show dashboard statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.reports()
			if err != nil {
				return err
			}
			return run(cmd, "dashboard", c.DashboardStats)
		},
	}
}

func (a *app) newGenerateAllCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate-all",
		Short: "Generate the standup, weekly and risk reports concurrently",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.reports()
			if err != nil {
				return err
			}
			all, err := c.GenerateAll(cmd.Context())
			if err != nil {
				return reportFailure(cmd, err)
			}
			return printCombined(cmd.OutOrStdout(), map[string]texter{
				"daily_standup": all.Daily,
				"weekly_client": all.Weekly,
				"risk_analysis": all.Risks,
			})
		},
	}
}
