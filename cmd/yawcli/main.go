// Command yawcli prints the hourly NWS forecast for the caller's location,
// found from their public IP address. Only locations covered by the US
// National Weather Service are supported.
//
// Usage:
//
//	yawcli [-c|--celsius] [--hours N] [--color]
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/couchcryptid/yawcli/internal/adapter/iplocation"
	"github.com/couchcryptid/yawcli/internal/adapter/nws"
	"github.com/couchcryptid/yawcli/internal/config"
	"github.com/couchcryptid/yawcli/internal/observability"
	"github.com/couchcryptid/yawcli/internal/pipeline"
	"github.com/couchcryptid/yawcli/internal/report"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Parse(args)
	if errors.Is(err, pflag.ErrHelp) {
		fmt.Fprint(stdout, config.Usage())
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	if cfg.ShowVersion {
		fmt.Fprintln(stdout, "yawcli", config.Version)
		return 0
	}

	logger := observability.NewLogger(cfg, stderr)
	metrics := observability.NewMetrics()

	locations := iplocation.NewClient(cfg.Timeout, metrics, logger)
	forecasts := nws.NewClient(nws.UserAgent(config.Version), cfg.Timeout, metrics, logger)
	runner := pipeline.New(locations, forecasts, report.Formatter{}, stdout, logger, metrics)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runErr := runner.Run(ctx, cfg.Display())

	if cfg.MetricsFile != "" {
		if err := metrics.WriteTextfile(cfg.MetricsFile); err != nil {
			logger.Warn("metrics not written", "path", cfg.MetricsFile, "error", err)
		}
	}

	if runErr != nil {
		fmt.Fprintln(stderr, runErr)
		return 1
	}
	return 0
}
