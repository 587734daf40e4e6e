//go:build unit

package telemetry_test

import (
	"context"
	"testing"

	"vet-scheduler/internal/pkg/config"
	"vet-scheduler/internal/pkg/telemetry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func TestSetupDisabled(t *testing.T) {
	shutdown, err := telemetry.Setup(context.Background(), config.TelemetryConfig{Enabled: false, ServiceName: "vet-scheduler"})
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))

	fields := otel.GetTextMapPropagator().Fields()
	assert.Contains(t, fields, "traceparent")
	assert.Contains(t, fields, "baggage")
}

func TestTracer(t *testing.T) {
	_, span := telemetry.Tracer().Start(context.Background(), "noop")
	defer span.End()
	assert.NotNil(t, span)
}
