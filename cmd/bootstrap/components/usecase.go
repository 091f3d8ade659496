package components

import (
	"log/slog"

	"bakery-orders/internal/infra/observability"
	"bakery-orders/internal/pkg/clock"
	"bakery-orders/internal/pkg/config"
	"bakery-orders/internal/usecase"
	"bakery-orders/internal/usecase/commands"
	"bakery-orders/internal/usecase/queries"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	NewCredentialVerifier,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		NewOrderCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewOrderQueries,
		NewSummaryQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewCredentialVerifier(cfg config.Config) (usecase.CredentialVerifier, error) {
	return usecase.NewFixedCredentialVerifier(cfg.Auth.OwnerUsername, cfg.Auth.OwnerPasswordHash)
}

func NewOrderCommands(store commands.OrderStore, clk clock.Clock, cfg config.Config, logger *slog.Logger, provider trace.TracerProvider) commands.OrderCommands {
	return observability.TraceOrderCommands(
		commands.NewOrderCommands(store, clk, cfg.Features.AllowReset, logger),
		provider,
	)
}

func NewSummaryQueries(source queries.OrderSnapshotSource, clk clock.Clock, provider trace.TracerProvider) queries.SummaryQueries {
	return observability.TraceSummaryQueries(queries.NewSummaryQueries(source, clk), provider)
}
