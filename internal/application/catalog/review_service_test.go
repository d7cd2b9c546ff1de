package catalog

import (
	"context"
	"testing"

	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestReviewService() (*ReviewService, *MockReviewRepository) {
	repo := new(MockReviewRepository)
	return NewReviewService(repo, staticAddress(testAddress), zap.NewNop()), repo
}

func TestReviewService_GetReviews(t *testing.T) {
	ctx := context.Background()

	t.Run("stamps every element", func(t *testing.T) {
		svc, repo := newTestReviewService()
		repo.On("FindByProductID", mock.Anything, 1).Return([]catalog.Review{
			{ProductID: 1, ReviewID: 1, Subject: "s1"},
			{ProductID: 1, ReviewID: 2, Subject: "s2"},
			{ProductID: 1, ReviewID: 3, Subject: "s3"},
		}, nil)

		reviews, err := svc.GetReviews(ctx, 1)
		require.NoError(t, err)
		require.Len(t, reviews, 3)
		for i, r := range reviews {
			assert.Equal(t, i+1, r.ReviewID)
			assert.Equal(t, testAddress, r.ServiceAddress)
		}
	})

	t.Run("empty", func(t *testing.T) {
		svc, repo := newTestReviewService()
		repo.On("FindByProductID", mock.Anything, 213).Return([]catalog.Review{}, nil)

		reviews, err := svc.GetReviews(ctx, 213)
		require.NoError(t, err)
		assert.NotNil(t, reviews)
		assert.Empty(t, reviews)
	})

	t.Run("invalid id", func(t *testing.T) {
		svc, _ := newTestReviewService()

		_, err := svc.GetReviews(ctx, -1)
		assert.EqualError(t, err, "Invalid productId: -1")
	})
}

func TestReviewService_CreateReview(t *testing.T) {
	ctx := context.Background()

	t.Run("duplicate key names both ids", func(t *testing.T) {
		svc, repo := newTestReviewService()
		repo.On("Create", mock.Anything, mock.Anything).Return(shared.ErrDuplicateKey)

		_, err := svc.CreateReview(ctx, catalog.Review{ProductID: 1, ReviewID: 1})
		assert.True(t, shared.IsInvalidInput(err))
		assert.EqualError(t, err, "Duplicate key, Product Id: 1, Review Id: 1")
	})

	t.Run("invalid review id", func(t *testing.T) {
		svc, repo := newTestReviewService()

		_, err := svc.CreateReview(ctx, catalog.Review{ProductID: 1, ReviewID: -3})
		assert.EqualError(t, err, "Invalid reviewId: -3")
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("created", func(t *testing.T) {
		svc, repo := newTestReviewService()
		repo.On("Create", mock.Anything, mock.Anything).Return(nil)

		review, err := svc.CreateReview(ctx, catalog.Review{ProductID: 1, ReviewID: 1, Author: "a", Subject: "s", Content: "c"})
		require.NoError(t, err)
		assert.Equal(t, "s", review.Subject)
	})
}

func TestReviewService_DeleteReviews(t *testing.T) {
	svc, repo := newTestReviewService()
	repo.On("DeleteByProductID", mock.Anything, 1).Return(nil)

	require.NoError(t, svc.DeleteReviews(context.Background(), 1))
	repo.AssertExpectations(t)
}
