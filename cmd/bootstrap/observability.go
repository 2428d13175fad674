package bootstrap

import (
	"context"
	"log/slog"

	"trainer-booking/internal/infra/metrics"
	"trainer-booking/internal/infra/tracing"
	"trainer-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var ObservabilityModule = fx.Module("observability",
	fx.Invoke(
		metrics.Register,
		StartTracing,
	),
)

func StartTracing(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) error {
	shutdown, err := tracing.InitTracer(context.Background(), cfg.Tracing)
	if err != nil {
		return err
	}
	if cfg.Tracing.Enabled {
		logger.Info("tracing enabled", "endpoint", cfg.Tracing.Endpoint, "service", cfg.Tracing.ServiceName)
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return shutdown(ctx)
		},
	})
	return nil
}
