package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/trace"

	"bakery-orders/internal/handler/api"
	"bakery-orders/internal/handler/middleware"
	"bakery-orders/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups everything the router mounts.
type Handlers struct {
	Auth    *api.AuthHandler
	Order   *api.OrderHandler
	Summary *api.SummaryHandler
}

type Middlewares struct {
	Auth     *middleware.AuthMiddleware
	Logger   *middleware.Logger
	Metrics  *middleware.Metrics
	Revision middleware.RevisionSource
	Tracer   trace.TracerProvider
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, mw Middlewares) {
	setupMiddleware(engine, cfg, mw)
	setupRoutes(engine, h, mw)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, mw Middlewares) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery(mw.Logger.GetSlogLogger()))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	if mw.Tracer != nil {
		engine.Use(otelgin.Middleware(cfg.Telemetry.ServiceName, otelgin.WithTracerProvider(mw.Tracer)))
	}
	if mw.Metrics != nil {
		engine.Use(mw.Metrics.Middleware())
	}
	engine.Use(mw.Logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, mw Middlewares) {
	engine.GET("/health", healthCheck)
	if mw.Metrics != nil {
		engine.GET("/metrics", gin.WrapH(mw.Metrics.Handler()))
	}

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
			})

			authRequired := auth.Group("")
			authRequired.Use(mw.Auth.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		manage := []gin.HandlerFunc{mw.Auth.RequireOrderManager()}

		orders := apiGroup.Group("/orders")
		orders.Use(mw.Auth.RequireAuth(), middleware.Revision(mw.Revision))
		{
			addRoutes(orders, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Order.List},
				{Method: http.MethodPost, Path: "", Handler: h.Order.Create, Mw: manage},
				{Method: http.MethodDelete, Path: "", Handler: h.Order.Reset, Mw: manage},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Order.Refresh},
				{Method: http.MethodPost, Path: "/seed", Handler: h.Order.Seed, Mw: manage},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Order.Get},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Order.Update, Mw: manage},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Order.Delete, Mw: manage},
			})
		}

		summaries := apiGroup.Group("/summaries")
		summaries.Use(mw.Auth.RequireAuth(), middleware.Revision(mw.Revision))
		{
			addRoutes(summaries, []route{
				{Method: http.MethodGet, Path: "/daily", Handler: h.Summary.Daily},
				{Method: http.MethodGet, Path: "/period", Handler: h.Summary.Period},
				{Method: http.MethodGet, Path: "/monthly", Handler: h.Summary.Monthly},
				{Method: http.MethodGet, Path: "/recent", Handler: h.Summary.Recent},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
