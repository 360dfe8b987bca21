// cmd/batmon/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tamzrod/sci-battery-monitor/internal/config"
	"github.com/tamzrod/sci-battery-monitor/internal/logging"
	"github.com/tamzrod/sci-battery-monitor/internal/metrics"
	"github.com/tamzrod/sci-battery-monitor/internal/poller"
	"github.com/tamzrod/sci-battery-monitor/internal/report"
	"github.com/tamzrod/sci-battery-monitor/internal/writer"
)

const (
	exitOK    = 0
	exitFatal = 1
	exitUsage = 2
)

const banner = `+==========================================+
|  Roomba SCI Battery Monitoring           |
+==========================================+

`

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fmt.Fprint(stdout, banner)

	fs := flag.NewFlagSet("batmon", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("c", "", "path to an optional YAML configuration file")
	fs.Usage = func() {
		fmt.Fprintln(stderr, config.Usage)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: config load failed: %v\n", err)
		return exitFatal
	}

	if err := config.ApplyArgs(cfg, fs.Args()); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n%s\n", err, config.Usage)
		return exitUsage
	}

	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(stderr, "Error: config validation failed: %v\n", err)
		return exitFatal
	}
	config.Normalize(cfg)

	log, err := logging.New(cfg.Logging)
	if err != nil {
		fmt.Fprintf(stderr, "Error: logger init failed: %v\n", err)
		return exitFatal
	}
	defer func() { _ = log.Sync() }()

	log = log.With(zap.String("run_id", uuid.NewString()))

	if err := monitor(ctx, cfg, log, stdout); err != nil {
		log.Error("fatal", zap.Error(err))
		return exitFatal
	}
	return exitOK
}

// monitor wires the sinks, opens the port and runs the poll loop until ctx is done.
func monitor(ctx context.Context, cfg *config.Config, log *zap.Logger, stdout io.Writer) error {
	sinks := report.Multi{
		report.NewConsole(stdout),
		report.NewLog(log.Named("poll")),
	}

	// ---- metrics (optional) ----
	if cfg.Metrics.Listen != "" {
		reg := metrics.NewRegistry()
		sinks = append(sinks, metrics.NewPollMetrics(reg))
		metrics.Serve(ctx, cfg.Metrics.Listen, cfg.Metrics.Path, reg, log.Named("metrics"))
	}

	// ---- mirror (optional) ----
	if cfg.Mirror.Enabled() {
		cli, closeMirror, err := writer.BuildEndpointClient(cfg.Mirror)
		if err != nil {
			return fmt.Errorf("mirror client failed: %w", err)
		}
		defer closeMirror()

		mirror := writer.NewMirror(writer.BuildPlan(cfg.Mirror), cli, log.Named("mirror"))
		mirror.Start()
		sinks = append(sinks, mirror)

		log.Info("mirroring samples",
			zap.String("endpoint", cfg.Mirror.Endpoint),
			zap.String("protocol", cfg.Mirror.Protocol),
		)
	}

	// ---- poller ----
	p, closePort, err := poller.Build(cfg)
	if err != nil {
		return fmt.Errorf("port %s can't be opened: %w", cfg.Serial.Port, err)
	}
	defer closePort()

	log.Info("port opened",
		zap.String("port", cfg.Serial.Port),
		zap.String("driver", cfg.Serial.Driver),
		zap.Int("baud_rate", cfg.Serial.BaudRate),
		zap.Int("data_bits", cfg.Serial.DataBits),
		zap.Int("stop_bits", cfg.Serial.StopBits),
		zap.String("parity", cfg.Serial.Parity),
		zap.Int("interval_ms", cfg.Poll.IntervalMs),
	)

	if err := p.Start(ctx); err != nil {
		if stopped(err) {
			return nil
		}
		return err
	}

	err = p.Run(ctx, sinks)
	if stopped(err) {
		log.Info("stopped")
		return nil
	}
	return err
}

func stopped(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
