package bootstrap

import (
	"context"
	"log/slog"

	"bakery-orders/internal/infra/notify"
	"bakery-orders/internal/pkg/config"
	"bakery-orders/internal/usecase/shared"

	"go.uber.org/fx"
)

var NotifierModule = fx.Module("notifier",
	fx.Provide(
		NewChangeNotifier,
	),
)

// NewChangeNotifier returns nil when REDIS_URL is unset; the store then runs standalone.
func NewChangeNotifier(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (shared.ChangeNotifier, error) {
	if cfg.Redis.URL == "" {
		logger.Info("Redis not configured, change notifications disabled")
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Persistence.Timeout)
	defer cancel()

	notifier, err := notify.Connect(ctx, cfg.Redis.URL, cfg.Redis.ChannelPrefix, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return notifier.Close()
		},
	})
	return notifier, nil
}
