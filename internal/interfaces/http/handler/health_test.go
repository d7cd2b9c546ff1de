package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthHandler(t *testing.T) {
	t.Run("up without dependencies", func(t *testing.T) {
		engine := newTestEngine(NewHealthHandler("product-composite-service"))

		w := performRequest(engine, http.MethodGet, "/health", "")

		require.Equal(t, http.StatusOK, w.Code)
		var resp HealthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, HealthResponse{Status: "UP", Service: "product-composite-service"}, resp)
	})

	t.Run("up when database answers", func(t *testing.T) {
		called := false
		engine := newTestEngine(NewHealthHandler("product-service", pingerFunc(func(ctx context.Context) error {
			called = true
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)
			return nil
		})))

		w := performRequest(engine, http.MethodGet, "/health", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, called)
	})

	t.Run("down when database fails", func(t *testing.T) {
		engine := newTestEngine(NewHealthHandler("review-service", pingerFunc(func(context.Context) error {
			return errors.New("connection reset")
		})))

		w := performRequest(engine, http.MethodGet, "/health", "")

		require.Equal(t, http.StatusServiceUnavailable, w.Code)
		var resp HealthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "DOWN", resp.Status)
	})
}
