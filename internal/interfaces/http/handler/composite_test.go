package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/infrastructure/backend"
	"github.com/storefront/backend/internal/interfaces/http/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCompositeHandler_Get(t *testing.T) {
	t.Run("aggregate", func(t *testing.T) {
		svc := new(MockCompositeService)
		engine := newTestEngine(NewCompositeHandler(svc))
		aggregate := catalog.NewProductAggregate(
			&catalog.Product{ProductID: 1, Name: "name", Weight: 1, ServiceAddress: "pro"},
			[]catalog.Recommendation{{ProductID: 1, RecommendationID: 1, Rating: 3, ServiceAddress: "rec"}},
			nil,
			"cmp",
		)
		svc.On("GetProduct", mock.Anything, 1).Return(aggregate, nil)

		w := performRequest(engine, http.MethodGet, "/product-composite/1", "")

		require.Equal(t, http.StatusOK, w.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, float64(1), body["productId"])
		assert.Len(t, body["recommendations"], 1)
		assert.Equal(t, []any{}, body["reviews"])
		addresses := body["serviceAddresses"].(map[string]any)
		assert.Equal(t, "cmp", addresses["cmp"])
		assert.Equal(t, "pro", addresses["pro"])
		assert.Equal(t, "rec", addresses["rec"])
		assert.Equal(t, "", addresses["rev"])
	})

	t.Run("not found", func(t *testing.T) {
		svc := new(MockCompositeService)
		engine := newTestEngine(NewCompositeHandler(svc))
		svc.On("GetProduct", mock.Anything, 13).
			Return(nil, shared.NewNotFoundError("No product found for productId: 13"))

		w := performRequest(engine, http.MethodGet, "/product-composite/13", "")

		assertErrorResponse(t, w, http.StatusNotFound, "/product-composite/13", "No product found for productId: 13")
	})

	t.Run("downstream failure keeps status", func(t *testing.T) {
		svc := new(MockCompositeService)
		engine := newTestEngine(NewCompositeHandler(svc))
		svc.On("GetProduct", mock.Anything, 2).
			Return(nil, &backend.HTTPError{StatusCode: http.StatusServiceUnavailable, Message: "maintenance"})

		w := performRequest(engine, http.MethodGet, "/product-composite/2", "")

		assertErrorResponse(t, w, http.StatusServiceUnavailable, "/product-composite/2", "maintenance")
	})

	t.Run("unreachable product service", func(t *testing.T) {
		svc := new(MockCompositeService)
		engine := newTestEngine(NewCompositeHandler(svc))
		svc.On("GetProduct", mock.Anything, 3).Return(nil, errors.New("dial tcp: connection refused"))

		w := performRequest(engine, http.MethodGet, "/product-composite/3", "")

		assertErrorResponse(t, w, http.StatusInternalServerError, "/product-composite/3", dto.MessageUnexpected)
	})
}

func TestCompositeHandler_Create(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc := new(MockCompositeService)
		engine := newTestEngine(NewCompositeHandler(svc))
		svc.On("CreateProduct", mock.Anything, mock.MatchedBy(func(a catalog.ProductAggregate) bool {
			return a.ProductID == 1 && len(a.Recommendations) == 1 && len(a.Reviews) == 1 &&
				a.Reviews[0].Subject == "s"
		})).Return(nil)

		w := performRequest(engine, http.MethodPost, "/product-composite", `{
			"productId": 1, "name": "name", "weight": 1,
			"recommendations": [{"recommendationId": 1, "author": "a", "rate": 1, "content": "c"}],
			"reviews": [{"reviewId": 1, "author": "a", "subject": "s", "content": "c"}]
		}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Body.String())
		svc.AssertExpectations(t)
	})

	t.Run("unbounded fields reach the service", func(t *testing.T) {
		svc := new(MockCompositeService)
		engine := newTestEngine(NewCompositeHandler(svc))
		content := strings.Repeat("c", 2001)
		svc.On("CreateProduct", mock.Anything, mock.MatchedBy(func(a catalog.ProductAggregate) bool {
			return a.Weight == -1 && len(a.Reviews) == 1 && a.Reviews[0].Content == content
		})).Return(nil)

		w := performRequest(engine, http.MethodPost, "/product-composite",
			`{"productId":1,"weight":-1,"reviews":[{"reviewId":1,"content":"`+content+`"}]}`)

		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("duplicate from backend", func(t *testing.T) {
		svc := new(MockCompositeService)
		engine := newTestEngine(NewCompositeHandler(svc))
		svc.On("CreateProduct", mock.Anything, mock.Anything).
			Return(shared.NewInvalidInputError("Duplicate key, Product Id: 1"))

		w := performRequest(engine, http.MethodPost, "/product-composite", `{"productId":1}`)

		assertErrorResponse(t, w, http.StatusUnprocessableEntity, "/product-composite", "Duplicate key, Product Id: 1")
	})
}

func TestCompositeHandler_Delete(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		svc := new(MockCompositeService)
		engine := newTestEngine(NewCompositeHandler(svc))
		svc.On("DeleteProduct", mock.Anything, 1).Return(nil)

		w := performRequest(engine, http.MethodDelete, "/product-composite/1", "")

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("joined failure", func(t *testing.T) {
		svc := new(MockCompositeService)
		engine := newTestEngine(NewCompositeHandler(svc))
		svc.On("DeleteProduct", mock.Anything, 1).
			Return(errors.Join(errors.New("review down"), errors.New("recommendation down")))

		w := performRequest(engine, http.MethodDelete, "/product-composite/1", "")

		assertErrorResponse(t, w, http.StatusInternalServerError, "/product-composite/1", dto.MessageUnexpected)
	})
}
