package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProductAggregate(t *testing.T) {
	product := &Product{ProductID: 1, Name: "name", Weight: 12, ServiceAddress: "pro/10.0.0.1:7001"}

	t.Run("keeps backend order and addresses", func(t *testing.T) {
		recs := []Recommendation{
			{ProductID: 1, RecommendationID: 3, Author: "a3", Rating: 3, Content: "c3", ServiceAddress: "rec-1"},
			{ProductID: 1, RecommendationID: 1, Author: "a1", Rating: 1, Content: "c1", ServiceAddress: "rec-1"},
		}
		reviews := []Review{
			{ProductID: 1, ReviewID: 2, Author: "r2", Subject: "s2", Content: "c2", ServiceAddress: "rev-1"},
		}

		agg := NewProductAggregate(product, recs, reviews, "cmp-1")

		assert.Equal(t, 1, agg.ProductID)
		assert.Equal(t, "name", agg.Name)
		assert.Equal(t, 12, agg.Weight)
		require.Len(t, agg.Recommendations, 2)
		assert.Equal(t, 3, agg.Recommendations[0].RecommendationID)
		assert.Equal(t, 3, agg.Recommendations[0].Rate)
		assert.Equal(t, 1, agg.Recommendations[1].RecommendationID)
		require.Len(t, agg.Reviews, 1)
		assert.Equal(t, "s2", agg.Reviews[0].Subject)

		require.NotNil(t, agg.ServiceAddresses)
		assert.Equal(t, "cmp-1", agg.ServiceAddresses.Composite)
		assert.Equal(t, "pro/10.0.0.1:7001", agg.ServiceAddresses.Product)
		assert.Equal(t, "rec-1", agg.ServiceAddresses.Recommendation)
		assert.Equal(t, "rev-1", agg.ServiceAddresses.Review)
	})

	t.Run("nil sequences become empty", func(t *testing.T) {
		agg := NewProductAggregate(product, nil, nil, "cmp-1")

		assert.NotNil(t, agg.Recommendations)
		assert.Empty(t, agg.Recommendations)
		assert.NotNil(t, agg.Reviews)
		assert.Empty(t, agg.Reviews)
		assert.Empty(t, agg.ServiceAddresses.Recommendation)
		assert.Empty(t, agg.ServiceAddresses.Review)
	})
}

func TestProductAggregate_Expand(t *testing.T) {
	agg := &ProductAggregate{
		ProductID: 5,
		Name:      "n",
		Weight:    1,
		Recommendations: []RecommendationSummary{
			{RecommendationID: 1, Author: "a", Rate: 4, Content: "c"},
		},
		Reviews: []ReviewSummary{
			{ReviewID: 1, Author: "a", Subject: "s", Content: "c"},
			{ReviewID: 2, Author: "b", Subject: "t", Content: "d"},
		},
	}

	assert.Equal(t, &Product{ProductID: 5, Name: "n", Weight: 1}, agg.Product())

	recs := agg.RecommendationList()
	require.Len(t, recs, 1)
	assert.Equal(t, Recommendation{ProductID: 5, RecommendationID: 1, Author: "a", Rating: 4, Content: "c"}, recs[0])

	reviews := agg.ReviewList()
	require.Len(t, reviews, 2)
	assert.Equal(t, 5, reviews[1].ProductID)
	assert.Equal(t, 2, reviews[1].ReviewID)
}
