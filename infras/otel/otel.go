// Package otel wraps the OpenTelemetry tracer so that services open spans through a
// small Scope interface.
package otel

import (
	"context"
	"fmt"
	"time"

	"tavola/config"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"google.golang.org/grpc/credentials/insecure"
)

const flushTimeout = 5 * time.Second

type Otel interface {
	NewScope(ctx context.Context, scopeName, spanName string) (context.Context, Scope)
}

type tracing struct {
	provider trace.TracerProvider
}

func (t *tracing) NewScope(ctx context.Context, scopeName, spanName string) (context.Context, Scope) {
	ctx, span := t.provider.Tracer(scopeName).Start(ctx, spanName)

	return ctx, NewScope(span)
}

// New exports spans over OTLP/gRPC. Without an endpoint spans are dropped. The returned
// cleanup flushes pending spans.
func New(cfg *config.Config) (Otel, func(), error) {
	endpoint := cfg.External.Otel.Endpoint
	if endpoint == "" {
		log.Info().Msg("tracing disabled, no collector endpoint")

		return &tracing{provider: noop.NewTracerProvider()}, func() {}, nil
	}

	exporter, err := otlptracegrpc.New(context.Background(),
		otlptracegrpc.WithEndpoint(endpoint),
		otlptracegrpc.WithTLSCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create trace exporter: %w", err)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(cfg.App.Name),
			semconv.DeploymentEnvironmentKey.String(cfg.Server.Env),
		)),
	)

	otel.SetTracerProvider(provider)

	shutdown := func() {
		ctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
		defer cancel()

		if err := provider.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("failed to flush traces")
		}
	}

	log.Info().Str("endpoint", endpoint).Msg("tracing enabled")

	return &tracing{provider: provider}, shutdown, nil
}
