package components

import (
	"context"
	"log/slog"

	"bakery-orders/internal/handler/middleware"
	"bakery-orders/internal/infra/memstore"
	"bakery-orders/internal/infra/repository"
	"bakery-orders/internal/infra/uow"
	"bakery-orders/internal/pkg/clock"
	"bakery-orders/internal/pkg/config"
	"bakery-orders/internal/usecase/commands"
	"bakery-orders/internal/usecase/orderstore"
	"bakery-orders/internal/usecase/queries"
	"bakery-orders/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	repositoryModule,
	storeModule,
)

var baseOption = fx.Provide(
	NewClock,
	NewDBTX,
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(
			repository.NewQueries,
			fx.As(new(repository.OrderQueries)),
		),
		fx.Annotate(
			NewTxRunner,
			fx.As(new(repository.TxRunner)),
		),
		repository.NewOrderRepository,
		NewDocumentStore,
	),
)

var storeModule = fx.Module("persistence/store",
	fx.Provide(
		NewOrderStore,
		func(s *orderstore.Store) commands.OrderStore { return s },
		func(s *orderstore.Store) queries.OrderSnapshotSource { return s },
		func(s *orderstore.Store) middleware.RevisionSource { return s },
	),
)

func NewClock(cfg config.Config) clock.Clock {
	return clock.NewRealClockIn(cfg.Server.Location())
}

func NewDBTX(pool *pgxpool.Pool) repository.DBTX {
	if pool == nil {
		return nil
	}
	return pool
}

func NewTxRunner(pool *pgxpool.Pool, logger *slog.Logger) *uow.PostgresUoW {
	if pool == nil {
		return nil
	}
	return uow.NewPostgresUoW(pool, logger)
}

// NewDocumentStore picks the order collection backend from PERSISTENCE_DRIVER.
// The Postgres repository is built either way but only touches the pool when selected.
func NewDocumentStore(cfg config.Config, clk clock.Clock, logger *slog.Logger, pg *repository.OrderRepository) shared.OrderDocumentStore {
	if cfg.Persistence.Driver == config.DriverMemory {
		return memstore.NewOrderStore(clk, logger)
	}
	return pg
}

// NewOrderStore loads the mirror on start and follows remote changes while running.
func NewOrderStore(lc fx.Lifecycle, cfg config.Config, docs shared.OrderDocumentStore, notifier shared.ChangeNotifier, clk clock.Clock, logger *slog.Logger) *orderstore.Store {
	store := orderstore.New(docs, clk, logger,
		orderstore.WithTimeout(cfg.Persistence.Timeout),
		orderstore.WithNotifier(notifier),
	)

	watchCtx, stopWatch := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := store.Load(ctx); err != nil {
				logger.Error("Initial order load failed, starting with an empty list", slog.Any("error", err))
			}
			if notifier != nil {
				go func() {
					if err := store.Watch(watchCtx); err != nil && watchCtx.Err() == nil {
						logger.Error("Order change watch stopped", slog.Any("error", err))
					}
				}()
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			stopWatch()
			return nil
		},
	})
	return store
}
