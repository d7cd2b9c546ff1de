package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/storefront/backend/internal/interfaces/http/dto"
	"github.com/storefront/backend/internal/interfaces/http/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type pingRoutes struct{}

func (pingRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	rg.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})
	rg.GET("/request-id", func(c *gin.Context) {
		c.String(http.StatusOK, middleware.GetRequestID(c))
	})
}

func TestNewRouter(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	assert.NotNil(t, r)
	assert.Empty(t, r.basePath)
	assert.Empty(t, r.registrars)
}

func TestRouterSetup(t *testing.T) {
	t.Run("root", func(t *testing.T) {
		engine := gin.New()
		NewRouter(engine).Register(pingRoutes{}).Setup()

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "pong", w.Body.String())
	})

	t.Run("base path", func(t *testing.T) {
		engine := gin.New()
		NewRouter(engine, WithBasePath("/api")).Register(pingRoutes{}).Setup()

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/ping", nil))
		assert.Equal(t, http.StatusOK, w.Code)

		w = httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func newTestEngine(t *testing.T) (*gin.Engine, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	engine := NewEngine(EngineConfig{ServiceName: "test-service", Logger: zap.New(core)})
	NewRouter(engine).Register(pingRoutes{}).Setup()
	return engine, logs
}

func TestNewEngine_RequestLogging(t *testing.T) {
	engine, logs := newTestEngine(t)

	req := httptest.NewRequest(http.MethodGet, "/request-id", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-1")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, "req-1", w.Body.String())
	assert.Equal(t, "req-1", w.Header().Get(middleware.RequestIDHeader))

	entries := logs.FilterMessage("HTTP Request").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "req-1", entries[0].ContextMap()["request_id"])
	assert.Equal(t, int64(http.StatusOK), entries[0].ContextMap()["status"])
}

func TestNewEngine_Panic(t *testing.T) {
	engine, logs := newTestEngine(t)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	var info dto.HTTPErrorInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	assert.Equal(t, dto.MessageUnexpected, info.Message)
	assert.Equal(t, "/panic", info.Path)
	assert.Equal(t, 1, logs.FilterMessage("Panic recovered").Len())
}

func TestNewEngine_NoRoute(t *testing.T) {
	engine, _ := newTestEngine(t)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))

	require.Equal(t, http.StatusNotFound, w.Code)
	var info dto.HTTPErrorInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	assert.Equal(t, "/missing", info.Path)
	assert.Equal(t, "Not Found", info.Error)
}

func TestNewEngine_MethodNotAllowed(t *testing.T) {
	engine, _ := newTestEngine(t)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/ping", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
