package bootstrap

import (
	"context"
	"log/slog"

	"bakery-orders/internal/handler/middleware"
	"bakery-orders/internal/infra/observability"
	"bakery-orders/internal/pkg/config"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
)

var TelemetryModule = fx.Module("telemetry",
	fx.Provide(
		NewTracerProvider,
		middleware.NewMetrics,
	),
)

func NewTracerProvider(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (trace.TracerProvider, error) {
	provider, shutdown, err := observability.InitTracing(context.Background(), cfg.Telemetry, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return shutdown(ctx)
		},
	})
	return provider, nil
}
