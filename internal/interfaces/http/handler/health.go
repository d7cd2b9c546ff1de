package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/storefront/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// healthCheckTimeout bounds a single dependency check
const healthCheckTimeout = 2 * time.Second

// Pinger is a dependency whose reachability decides liveness
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// HealthHandler serves /health
type HealthHandler struct {
	service string
	pingers []Pinger
}

// NewHealthHandler creates a HealthHandler. Without pingers the process
// reports UP as long as it serves requests.
func NewHealthHandler(service string, pingers ...Pinger) *HealthHandler {
	return &HealthHandler{service: service, pingers: pingers}
}

// RegisterRoutes implements router.RouteRegistrar
func (h *HealthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.Health)
}

// Health reports UP, or DOWN with 503 when a dependency is unreachable
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	for _, p := range h.pingers {
		if err := p.Ping(ctx); err != nil {
			logger.GetGinLogger(c).Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, HealthResponse{Status: "DOWN", Service: h.service})
			return
		}
	}
	c.JSON(http.StatusOK, HealthResponse{Status: "UP", Service: h.service})
}
