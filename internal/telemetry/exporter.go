package telemetry

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/alexanderramin/focusflow/internal/domain"
)

const serviceVersion = "1.0.0"

// Exporter pushes session metrics to an OTEL collector.
type Exporter struct {
	provider      *sdkmetric.MeterProvider
	sessionsTotal metric.Int64Counter
	minutesTotal  metric.Int64Counter
	durationHist  metric.Int64Histogram
}

// NewExporter dials the collector over gRPC and registers the instruments.
func NewExporter(ctx context.Context, cfg Config) (*Exporter, error) {
	if !cfg.Enabled || cfg.Endpoint == "" {
		return nil, fmt.Errorf("OTEL exporter is disabled or endpoint not configured")
	}

	opts := []otlpmetricgrpc.Option{
		otlpmetricgrpc.WithEndpoint(cfg.Endpoint),
	}
	if cfg.Insecure {
		opts = append(opts, otlpmetricgrpc.WithDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())))
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}

	exp, err := otlpmetricgrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating OTLP exporter: %w", err)
	}

	name := cfg.ServiceName
	if name == "" {
		name = "focusflow"
	}
	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(name),
			semconv.ServiceVersion(serviceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(provider)

	e, err := newExporter(provider)
	if err != nil {
		_ = provider.Shutdown(ctx)
		return nil, err
	}
	return e, nil
}

// newExporter registers the instruments on provider.
func newExporter(provider *sdkmetric.MeterProvider) (*Exporter, error) {
	meter := provider.Meter("focusflow")

	sessionsTotal, err := meter.Int64Counter(
		"focusflow_sessions_total",
		metric.WithDescription("Total number of recorded focus sessions"),
		metric.WithUnit("{session}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating sessions counter: %w", err)
	}

	minutesTotal, err := meter.Int64Counter(
		"focusflow_focus_minutes_total",
		metric.WithDescription("Total focused minutes"),
		metric.WithUnit("min"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating minutes counter: %w", err)
	}

	durationHist, err := meter.Int64Histogram(
		"focusflow_session_duration_minutes",
		metric.WithDescription("Focus session duration in minutes"),
		metric.WithUnit("min"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating duration histogram: %w", err)
	}

	return &Exporter{
		provider:      provider,
		sessionsTotal: sessionsTotal,
		minutesTotal:  minutesTotal,
		durationHist:  durationHist,
	}, nil
}

// RecordSession adds one session to the counters. Tags are joined into a
// single attribute to bound cardinality per session.
func (e *Exporter) RecordSession(ctx context.Context, s domain.FocusSession) error {
	opt := metric.WithAttributes(
		attribute.Bool("completed", s.Completed),
		attribute.String("tags", strings.Join(s.Tags, ",")),
	)

	e.sessionsTotal.Add(ctx, 1, opt)
	e.minutesTotal.Add(ctx, int64(s.Duration), opt)
	e.durationHist.Record(ctx, int64(s.Duration), opt)
	return nil
}

// Close flushes pending metrics and shuts the provider down.
func (e *Exporter) Close(ctx context.Context) error {
	return e.provider.Shutdown(ctx)
}
