package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/aidelivery/delivery-manager/client"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		if !alreadyReported(err) {
			log.Error().Err(err).Msg("command failed")
		}
		os.Exit(1)
	}
}

// app holds the resolved settings for one invocation.
type app struct {
	cfg          client.Config
	reportsURL   string
	workboardURL string
	debug        bool
	timeout      time.Duration
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:           "deliveryctl",
		Short:         "Command-line access to the delivery-manager reports and workboard APIs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.reportsURL, "reports-url", "", "Reports API base URL (default $DELIVERY_REPORTS_API_BASE)")
	rootCmd.PersistentFlags().StringVar(&a.workboardURL, "workboard-url", "", "Workboard API base URL (default $DELIVERY_WORKBOARD_API_BASE)")
	rootCmd.PersistentFlags().BoolVarP(&a.debug, "debug", "d", false, "Log requests and responses")
	rootCmd.PersistentFlags().DurationVar(&a.timeout, "timeout", 0, "Per-request HTTP timeout; 0 waits for the server")

	// Reports
	rootCmd.AddCommand(a.newStandupCmd())
	rootCmd.AddCommand(a.newWeeklyCmd())
	rootCmd.AddCommand(a.newRewriteCmd())
	rootCmd.AddCommand(a.newRisksCmd())
	rootCmd.AddCommand(a.newDashboardCmd())
	rootCmd.AddCommand(a.newGenerateAllCmd())

	// Workboard
	rootCmd.AddCommand(a.newTicketsCmd())
	rootCmd.AddCommand(a.newMembersCmd())
	rootCmd.AddCommand(a.newPRsCmd())
	rootCmd.AddCommand(a.newTeamsCmd())
	rootCmd.AddCommand(a.newDependenciesCmd())
	rootCmd.AddCommand(a.newAggregateCmd())
	rootCmd.AddCommand(a.newSnapshotCmd())

	return rootCmd
}

// init merges DELIVERY_* settings with flags; explicit flags win.
func (a *app) init(cmd *cobra.Command) error {
	cfg, err := client.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	flags := cmd.Flags()
	if flags.Changed("reports-url") {
		cfg.ReportsBaseURL = a.reportsURL
	}
	if flags.Changed("workboard-url") {
		cfg.WorkboardBaseURL = a.workboardURL
	}
	if flags.Changed("timeout") {
		cfg.HTTPTimeout = a.timeout
	}
	if a.debug {
		cfg.Debug = true
	}
	a.cfg = cfg

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        cmd.ErrOrStderr(),
		TimeFormat: "2006-01-02 15:04:05",
		NoColor:    true,
	})
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	if cfg.Debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Debug().
		Str("reports_url", cfg.ReportsBaseURL).
		Str("workboard_url", cfg.WorkboardBaseURL).
		Dur("timeout", cfg.HTTPTimeout).
		Msg("configured")
	return nil
}

func (a *app) reports() (*client.ReportsClient, error) {
	return client.NewReportsClientFromConfig(a.cfg)
}

func (a *app) workboard() (*client.WorkboardClient, error) {
	return client.NewWorkboardClientFromConfig(a.cfg)
}

// texter is satisfied by every *client.Result.
type texter interface {
	Text() string
	TextFallback() bool
}

func isText(r texter) bool { return r.TextFallback() || r.Text() == "" }

// bodyValue returns r's body as embeddable JSON, or as a string when the
// body is not JSON.
func bodyValue(r texter) any {
	if isText(r) {
		return r.Text()
	}
	return json.RawMessage(r.Text())
}

// printResult writes the body pretty-printed, or verbatim when it is not JSON.
func printResult(w io.Writer, r texter) error {
	var buf bytes.Buffer
	if isText(r) || json.Indent(&buf, []byte(r.Text()), "", "  ") != nil {
		_, err := fmt.Fprintln(w, r.Text())
		return err
	}
	buf.WriteByte('\n')
	_, err := buf.WriteTo(w)
	return err
}

// printCombined writes several results as one JSON object keyed by name.
func printCombined(w io.Writer, parts map[string]texter) error {
	out := make(map[string]any, len(parts))
	for k, r := range parts {
		out[k] = bodyValue(r)
	}
	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

// reportedError marks an error whose message reportFailure already printed.
type reportedError struct{ err error }

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

func alreadyReported(err error) bool {
	var re *reportedError
	return errors.As(err, &re)
}

// reportFailure prints the server's message and any field errors to stderr
// and returns err marked as reported so main does not log it again.
func reportFailure(cmd *cobra.Command, err error) error {
	w := cmd.ErrOrStderr()
	_, _ = fmt.Fprintln(w, "Error:", err.Error())
	fields := client.FieldErrors(err)
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		for _, msg := range fields[name] {
			_, _ = fmt.Fprintf(w, "  %s: %s\n", name, msg)
		}
	}
	if rf, ok := client.AsRequestFailed(err); ok {
		log.Debug().Str("method", rf.Method).Str("url", rf.URL).Int("status", rf.StatusCode).Msg("request failed")
	}
	return &reportedError{err: err}
}

// run executes op and prints its result, timing the call at debug level.
func run[T any](cmd *cobra.Command, name string, op func(ctx context.Context) (*client.Result[T], error)) error {
	start := time.Now()
	res, err := op(cmd.Context())
	elapsed := time.Since(start)
	if err != nil {
		log.Debug().Err(err).Str("op", name).Dur("elapsed", elapsed).Msg("operation failed")
		return reportFailure(cmd, err)
	}
	log.Debug().Str("op", name).Bool("json", res.JSON).Bool("typed", res.Parsed).Dur("elapsed", elapsed).Msg("operation completed")
	return printResult(cmd.OutOrStdout(), res)
}

func parseID(arg, name string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", name, arg)
	}
	return id, nil
}

var errNoChanges = errors.New("nothing to update: pass at least one field flag")
