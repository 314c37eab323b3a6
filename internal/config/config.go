package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/couchcryptid/yawcli/internal/domain"
)

// Version is overridden at build time with -ldflags "-X ...config.Version=...".
var Version = "0.3.0"

// Config holds all settings for one run, populated from command-line flags.
// No environment variables or files are read.
type Config struct {
	Celsius bool
	Hours   int
	Color   bool

	Timeout     time.Duration
	LogLevel    string
	LogFormat   string
	MetricsFile string

	ShowVersion bool
}

// Display returns the rendering options for the report.
func (c *Config) Display() domain.DisplayOptions {
	return domain.DisplayOptions{
		Celsius: c.Celsius,
		Hours:   c.Hours,
		Color:   c.Color,
	}
}

// flagValues holds raw flag text that needs validation beyond what pflag does.
type flagValues struct {
	hours string
}

func newFlagSet(cfg *Config, raw *flagValues) *pflag.FlagSet {
	fs := pflag.NewFlagSet("yawcli", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false

	fs.BoolVarP(&cfg.Celsius, "celsius", "c", false, "Converts temperature to celsius.")
	fs.StringVar(&raw.hours, "hours", "1", "How many hours to show in hourly forecast, max 24.")
	fs.BoolVar(&cfg.Color, "color", false, "Prints out the forecast in color.")
	fs.DurationVar(&cfg.Timeout, "timeout", 10*time.Second, "Per-request HTTP timeout.")
	fs.StringVar(&cfg.LogLevel, "log-level", "warn", "Log level: debug, info, warn, error.")
	fs.StringVar(&cfg.LogFormat, "log-format", "text", "Log format: text or json.")
	fs.StringVar(&cfg.MetricsFile, "metrics-file", "", "Write run metrics in Prometheus text format to this file.")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "Print version and exit.")

	return fs
}

// Parse reads configuration from command-line arguments (without the program
// name). It returns pflag.ErrHelp unwrapped when -h/--help is given; every
// other failure wraps domain.ErrArgument.
func Parse(args []string) (*Config, error) {
	cfg := &Config{}
	raw := &flagValues{}
	fs := newFlagSet(cfg, raw)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrArgument, err)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: unexpected argument %q", domain.ErrArgument, fs.Arg(0))
	}

	hours, err := parseHours(raw.hours)
	if err != nil {
		return nil, err
	}
	cfg.Hours = hours

	if cfg.Timeout <= 0 {
		return nil, fmt.Errorf("%w: --timeout must be positive", domain.ErrArgument)
	}

	switch strings.ToLower(cfg.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("%w: --log-level %q is not one of debug, info, warn, error", domain.ErrArgument, cfg.LogLevel)
	}

	switch strings.ToLower(cfg.LogFormat) {
	case "text", "json":
	default:
		return nil, fmt.Errorf("%w: --log-format %q is not one of text, json", domain.ErrArgument, cfg.LogFormat)
	}

	return cfg, nil
}

// parseHours accepts any non-negative decimal integer. Values beyond the int
// range saturate; clamping to 24 happens at render time.
func parseHours(s string) (int, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return math.MaxInt, nil
		}
		return 0, fmt.Errorf("%w: --hours %q must be a non-negative integer", domain.ErrArgument, s)
	}
	if n > math.MaxInt {
		return math.MaxInt, nil
	}
	return int(n), nil
}

// Usage returns the help text.
func Usage() string {
	fs := newFlagSet(&Config{}, &flagValues{})
	var b strings.Builder
	b.WriteString("yawcli " + Version + "\n")
	b.WriteString("Uses your IP to get the local forecast, only works in USA.\n\n")
	b.WriteString("Usage:\n  yawcli [flags]\n\nFlags:\n")
	b.WriteString(fs.FlagUsages())
	return b.String()
}
