package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/yawcli/internal/domain"
	"github.com/couchcryptid/yawcli/internal/observability"
	"github.com/couchcryptid/yawcli/internal/terminal"
)

// ReportWriter renders a location and its forecast periods to w, returning
// how many period lines were written.
type ReportWriter interface {
	Write(w io.Writer, loc domain.Location, periods []domain.ForecastPeriod, opts domain.DisplayOptions) (int, error)
}

// Runner sequences location lookup, forecast lookup and report rendering.
type Runner struct {
	locations   domain.LocationResolver
	forecasts   domain.ForecastResolver
	report      ReportWriter
	out         io.Writer
	logger      *slog.Logger
	metrics     *observability.Metrics
	clock       clockwork.Clock
	enableColor func()
}

// Option customizes a Runner.
type Option func(*Runner)

// WithClock swaps the time source used for stage timings.
func WithClock(c clockwork.Clock) Option {
	return func(r *Runner) { r.clock = c }
}

// WithColorSetup replaces the terminal preparation run before colored output.
func WithColorSetup(fn func()) Option {
	return func(r *Runner) { r.enableColor = fn }
}

// New creates a Runner that writes the report to out.
func New(l domain.LocationResolver, f domain.ForecastResolver, rw ReportWriter, out io.Writer, logger *slog.Logger, metrics *observability.Metrics, opts ...Option) *Runner {
	r := &Runner{
		locations:   l,
		forecasts:   f,
		report:      rw,
		out:         out,
		logger:      logger,
		metrics:     metrics,
		clock:       clockwork.NewRealClock(),
		enableColor: terminal.EnableColor,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run performs one full resolution and renders the report. The first stage
// error aborts the run and is returned with the stage name prefixed.
func (r *Runner) Run(ctx context.Context, opts domain.DisplayOptions) error {
	start := r.clock.Now()
	err := r.run(ctx, opts)
	elapsed := r.clock.Since(start)

	r.metrics.LastRunDuration.Set(elapsed.Seconds())
	if err != nil {
		r.metrics.LastRunSuccess.Set(0)
		return err
	}
	r.metrics.LastRunSuccess.Set(1)
	r.logger.Info("run complete", "duration", elapsed)
	return nil
}

func (r *Runner) run(ctx context.Context, opts domain.DisplayOptions) error {
	stageStart := r.clock.Now()
	loc, err := r.locations.Resolve(ctx)
	if err != nil {
		return fmt.Errorf("resolve location: %w", err)
	}
	r.logger.Debug("location stage done", "duration", r.clock.Since(stageStart))

	// Missing coordinates are not fatal here; NWS rejects the point and that
	// failure is what gets reported.
	if loc.Latitude == "" || loc.Longitude == "" {
		r.logger.Warn("location page returned no coordinates, page layout may have changed",
			"lat", loc.Latitude, "lon", loc.Longitude)
	}

	stageStart = r.clock.Now()
	periods, err := r.forecasts.HourlyForecast(ctx, loc.Latitude, loc.Longitude)
	if err != nil {
		return fmt.Errorf("fetch forecast: %w", err)
	}
	r.logger.Debug("forecast stage done", "duration", r.clock.Since(stageStart), "periods", len(periods))

	if opts.Color {
		r.enableColor()
	}

	written, err := r.report.Write(r.out, loc, periods, opts)
	r.metrics.PeriodsRendered.Add(float64(written))
	if err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}
