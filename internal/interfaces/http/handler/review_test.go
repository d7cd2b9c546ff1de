package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReviewHandler_List(t *testing.T) {
	svc := new(MockReviewService)
	engine := newTestEngine(NewReviewHandler(svc))
	svc.On("GetReviews", mock.Anything, 1).Return([]catalog.Review{
		{ProductID: 1, ReviewID: 1, Author: "a", Subject: "s", Content: "c", ServiceAddress: "rev/10.0.0.3:7003"},
	}, nil)

	w := performRequest(engine, http.MethodGet, "/review?productId=1", "")

	require.Equal(t, http.StatusOK, w.Code)
	var reviews []catalog.Review
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reviews))
	require.Len(t, reviews, 1)
	assert.Equal(t, "rev/10.0.0.3:7003", reviews[0].ServiceAddress)
}

func TestReviewHandler_Create(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc := new(MockReviewService)
		engine := newTestEngine(NewReviewHandler(svc))
		input := catalog.Review{ProductID: 1, ReviewID: 2, Author: "a", Subject: "s", Content: "c"}
		svc.On("CreateReview", mock.Anything, input).Return(&input, nil)

		w := performRequest(engine, http.MethodPost, "/review",
			`{"productId":1,"reviewId":2,"author":"a","subject":"s","content":"c"}`)

		require.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("invalid review id", func(t *testing.T) {
		svc := new(MockReviewService)
		engine := newTestEngine(NewReviewHandler(svc))
		svc.On("CreateReview", mock.Anything, mock.Anything).
			Return(nil, shared.NewInvalidInputError("Invalid reviewId: 0"))

		w := performRequest(engine, http.MethodPost, "/review", `{"productId":1,"reviewId":0}`)

		assertErrorResponse(t, w, http.StatusUnprocessableEntity, "/review", "Invalid reviewId: 0")
	})
}

func TestReviewHandler_Delete(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		svc := new(MockReviewService)
		engine := newTestEngine(NewReviewHandler(svc))
		svc.On("DeleteReviews", mock.Anything, 1).Return(nil)

		w := performRequest(engine, http.MethodDelete, "/review?productId=1", "")

		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("invalid productId", func(t *testing.T) {
		svc := new(MockReviewService)
		engine := newTestEngine(NewReviewHandler(svc))
		svc.On("DeleteReviews", mock.Anything, -1).
			Return(shared.NewInvalidInputError("Invalid productId: -1"))

		w := performRequest(engine, http.MethodDelete, "/review?productId=-1", "")

		assertErrorResponse(t, w, http.StatusUnprocessableEntity, "/review", "Invalid productId: -1")
	})
}
