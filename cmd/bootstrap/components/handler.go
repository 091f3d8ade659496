package components

import (
	"bakery-orders/internal/handler"
	"bakery-orders/internal/handler/api"
	"bakery-orders/internal/handler/middleware"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewOrderHandler,
		api.NewSummaryHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
		NewMiddlewares,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(auth *api.AuthHandler, order *api.OrderHandler, summary *api.SummaryHandler) handler.Handlers {
	return handler.Handlers{Auth: auth, Order: order, Summary: summary}
}

func NewMiddlewares(
	auth *middleware.AuthMiddleware,
	logger *middleware.Logger,
	metrics *middleware.Metrics,
	revision middleware.RevisionSource,
	tracer trace.TracerProvider,
) handler.Middlewares {
	return handler.Middlewares{
		Auth:     auth,
		Logger:   logger,
		Metrics:  metrics,
		Revision: revision,
		Tracer:   tracer,
	}
}
