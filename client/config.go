package client

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds environment-driven client settings. Programs opt into it
// explicitly with LoadConfig; the clients never read the environment
// themselves.
//
// Environment variables use the DELIVERY_ prefix, e.g.
// DELIVERY_REPORTS_API_BASE=http://backend:8000/api/reports.
type Config struct {
	ReportsBaseURL   string        `envconfig:"REPORTS_API_BASE"   default:"http://127.0.0.1:8000/api/reports"`
	WorkboardBaseURL string        `envconfig:"WORKBOARD_API_BASE" default:"http://127.0.0.1:8000/api/workboard"`
	HTTPTimeout      time.Duration `envconfig:"HTTP_TIMEOUT"       default:"0s"`
	RetryAttempts    int           `envconfig:"RETRY_ATTEMPTS"     default:"0"`
	Debug            bool          `envconfig:"DEBUG"              default:"false"`
	LogLevel         string        `envconfig:"LOG_LEVEL"          default:"info"`
}

// EnvPrefix is the prefix LoadConfig reads variables under.
const EnvPrefix = "DELIVERY"

// LoadConfig populates Config from DELIVERY_* environment variables.
func LoadConfig() (Config, error) {
	var c Config
	return c, envconfig.Process(EnvPrefix, &c)
}

// Options converts the config into client options. Zero values leave the
// client defaults in place.
func (c Config) Options() []Option {
	var opts []Option
	if c.HTTPTimeout > 0 {
		opts = append(opts, WithHTTPTimeout(c.HTTPTimeout))
	}
	if c.RetryAttempts > 1 {
		opts = append(opts, WithRetry(c.RetryAttempts))
	}
	if c.Debug {
		opts = append(opts, WithDebugLogging(true))
	}
	return opts
}

// NewReportsClientFromConfig builds a ReportsClient from c; extra options are
// applied after the config-derived ones.
func NewReportsClientFromConfig(c Config, extra ...Option) (*ReportsClient, error) {
	return NewReportsClient(c.ReportsBaseURL, append(c.Options(), extra...)...)
}

// NewWorkboardClientFromConfig builds a WorkboardClient from c.
func NewWorkboardClientFromConfig(c Config, extra ...Option) (*WorkboardClient, error) {
	return NewWorkboardClient(c.WorkboardBaseURL, append(c.Options(), extra...)...)
}
