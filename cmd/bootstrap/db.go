package bootstrap

import (
	"context"
	"log/slog"

	"bakery-orders/internal/infra/db"
	"bakery-orders/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

// NewDB returns a nil pool for the memory driver.
func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	if cfg.Persistence.Driver != config.DriverPostgres {
		logger.Info("Postgres disabled", slog.String("driver", cfg.Persistence.Driver))
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Persistence.Timeout)
	defer cancel()

	pool, cleanup, err := db.Connect(ctx, cfg.DB, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}
