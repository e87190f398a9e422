// Package app implements the application layer for weave: it plays the host
// build pipeline's role of driving the instrumentation session over the
// build unit's compiled classes.
package app

import (
	"context"
	"errors"
	"time"

	"go.trai.ch/weave/internal/adapters/report" //nolint:depguard // Wired in app layer
	"go.trai.ch/weave/internal/core/domain"
	"go.trai.ch/weave/internal/core/ports"
	"go.trai.ch/weave/internal/engine/session"
	"go.trai.ch/weave/internal/metrics"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	service      *session.Service
	telemetry    ports.Telemetry
	tracer       ports.Tracer
	logger       ports.Logger
	reporter     *report.Writer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	service *session.Service,
	telemetry ports.Telemetry,
	tracer ports.Tracer,
	logger ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		service:      service,
		telemetry:    telemetry,
		tracer:       tracer,
		logger:       logger,
		reporter:     report.NewWriter(),
	}
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	// ReportPath overrides the configured report location when non-empty.
	ReportPath string
	// Parallelism overrides the configured worker count when positive.
	Parallelism int
}

// Run executes one instrumentation pass: initialize the session, process
// every class in the local output directories, write the report and tear the
// session down.
func (a *App) Run(ctx context.Context, configPath string, opts RunOptions) error {
	cfg, err := a.configLoader.Load(configPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}
	if opts.ReportPath != "" {
		cfg.ReportPath = opts.ReportPath
	}
	if opts.Parallelism > 0 {
		cfg.Parallelism = opts.Parallelism
	}
	if len(cfg.LocalOutputDirs) == 0 {
		return domain.ErrNoLocalOutput
	}
	if cfg.MetricsAddr != "" {
		metrics.Expose(cfg.MetricsAddr)
	}

	ctx, span := a.tracer.Start(ctx, "weave.run")
	defer span.End()

	if err := a.service.Initialize(ctx, cfg); err != nil {
		span.RecordError(err)
		return err
	}

	started := time.Now()
	outcome, runErr := a.process(ctx, cfg)

	closeErr := a.service.Close()
	_ = a.telemetry.Close()

	if cfg.ReportPath != "" && outcome != nil {
		outcome.Started = started
		outcome.Duration = time.Since(started).Round(time.Millisecond).String()
		if err := a.reporter.Write(cfg.ReportPath, outcome); err != nil {
			runErr = errors.Join(runErr, err)
		}
	}

	if runErr != nil {
		span.RecordError(runErr)
		return errors.Join(domain.ErrInstrumentationFailed, runErr, closeErr)
	}
	return closeErr
}
