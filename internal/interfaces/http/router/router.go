// Package router assembles the gin engine every storefront service runs.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/storefront/backend/internal/infrastructure/logger"
	"github.com/storefront/backend/internal/interfaces/http/dto"
	"github.com/storefront/backend/internal/interfaces/http/middleware"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// DefaultMaxBodyBytes caps request bodies when EngineConfig leaves it unset
const DefaultMaxBodyBytes int64 = 1 << 20

// RouteRegistrar defines the interface for registering routes
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// Router manages HTTP route registration
type Router struct {
	engine     *gin.Engine
	basePath   string
	registrars []RouteRegistrar
}

// RouterOption is a functional option for Router configuration
type RouterOption func(*Router)

// WithBasePath mounts every route under prefix, e.g. "/api"
func WithBasePath(prefix string) RouterOption {
	return func(r *Router) {
		r.basePath = prefix
	}
}

// NewRouter creates a new Router instance. Routes are mounted at the root.
func NewRouter(engine *gin.Engine, opts ...RouterOption) *Router {
	r := &Router{
		engine:     engine,
		registrars: make([]RouteRegistrar, 0),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Register adds a RouteRegistrar to be registered later
func (r *Router) Register(registrar RouteRegistrar) *Router {
	r.registrars = append(r.registrars, registrar)
	return r
}

// Setup registers all routes with the engine
func (r *Router) Setup() {
	group := r.engine.Group(r.basePath)
	for _, registrar := range r.registrars {
		registrar.RegisterRoutes(group)
	}
}

// EngineConfig configures the middleware chain of NewEngine
type EngineConfig struct {
	ServiceName    string
	Logger         *zap.Logger
	Meter          metric.Meter
	TracingEnabled bool
	MaxBodyBytes   int64
}

// NewEngine creates a gin engine with the shared middleware chain:
// request ID, panic recovery, tracing, request logging, metrics and body limit.
// Unknown routes and panics answer with the standard error body.
func NewEngine(cfg EngineConfig) *gin.Engine {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	maxBody := cfg.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = DefaultMaxBodyBytes
	}

	engine := gin.New()
	engine.HandleMethodNotAllowed = true

	engine.Use(
		middleware.RequestID(),
		logger.Recovery(log, func(c *gin.Context) {
			writeError(c, http.StatusInternalServerError, dto.MessageUnexpected)
		}),
		middleware.Tracing(middleware.TracingConfig{
			ServiceName: cfg.ServiceName,
			Enabled:     cfg.TracingEnabled,
		}),
		middleware.SpanAttributes(),
		logger.GinMiddleware(log),
		middleware.HTTPMetrics(cfg.Meter),
		middleware.BodyLimit(maxBody),
	)

	engine.NoRoute(func(c *gin.Context) {
		writeError(c, http.StatusNotFound, "No handler for "+c.Request.Method+" "+c.Request.URL.Path)
	})
	engine.NoMethod(func(c *gin.Context) {
		writeError(c, http.StatusMethodNotAllowed, "Method "+c.Request.Method+" not allowed")
	})

	return engine
}

func writeError(c *gin.Context, status int, message string) {
	c.JSON(status, dto.NewHTTPErrorInfo(status, c.Request.URL.Path, message))
}
