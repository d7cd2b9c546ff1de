package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// Backend names used in logs and metrics
const (
	NameProduct        = "product"
	NameRecommendation = "recommendation"
	NameReview         = "review"
)

// noContent is decoded from responses whose body is ignored
type noContent struct{}

func byProduct(productID int) url.Values {
	return url.Values{"productId": []string{strconv.Itoa(productID)}}
}

// ProductClient calls the product service. All calls are strict.
type ProductClient struct {
	c *Client
}

// NewProductClient creates a client for the product service
func NewProductClient(endpoint config.ServiceEndpoint, log *zap.Logger, opts ...Option) *ProductClient {
	return &ProductClient{c: NewClient(NameProduct, endpoint, log, opts...)}
}

// GetProduct fetches GET /product/{id}
func (p *ProductClient) GetProduct(ctx context.Context, productID int) (*catalog.Product, error) {
	product, err := call[catalog.Product](ctx, p.c, PolicyStrict, request{
		operation: "get",
		method:    http.MethodGet,
		path:      "/product/" + strconv.Itoa(productID),
	})
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// CreateProduct posts the product to POST /product
func (p *ProductClient) CreateProduct(ctx context.Context, product catalog.Product) (*catalog.Product, error) {
	created, err := call[catalog.Product](ctx, p.c, PolicyStrict, request{
		operation: "create",
		method:    http.MethodPost,
		path:      "/product",
		body:      product,
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// DeleteProduct calls DELETE /product/{id}
func (p *ProductClient) DeleteProduct(ctx context.Context, productID int) error {
	_, err := call[noContent](ctx, p.c, PolicyStrict, request{
		operation: "delete",
		method:    http.MethodDelete,
		path:      "/product/" + strconv.Itoa(productID),
	})
	return err
}

// RecommendationClient calls the recommendation service.
// Reads degrade to an empty list; writes are strict.
type RecommendationClient struct {
	c *Client
}

// NewRecommendationClient creates a client for the recommendation service
func NewRecommendationClient(endpoint config.ServiceEndpoint, log *zap.Logger, opts ...Option) *RecommendationClient {
	return &RecommendationClient{c: NewClient(NameRecommendation, endpoint, log, opts...)}
}

// GetRecommendations fetches GET /recommendation?productId={id}; it never fails
func (r *RecommendationClient) GetRecommendations(ctx context.Context, productID int) []catalog.Recommendation {
	recs, _ := call[[]catalog.Recommendation](ctx, r.c, PolicyDegrade, request{
		operation: "list",
		method:    http.MethodGet,
		path:      "/recommendation",
		query:     byProduct(productID),
	})
	if recs == nil {
		recs = []catalog.Recommendation{}
	}
	return recs
}

// CreateRecommendation posts to POST /recommendation
func (r *RecommendationClient) CreateRecommendation(ctx context.Context, rec catalog.Recommendation) (*catalog.Recommendation, error) {
	created, err := call[catalog.Recommendation](ctx, r.c, PolicyStrict, request{
		operation: "create",
		method:    http.MethodPost,
		path:      "/recommendation",
		body:      rec,
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// DeleteRecommendations calls DELETE /recommendation?productId={id}
func (r *RecommendationClient) DeleteRecommendations(ctx context.Context, productID int) error {
	_, err := call[noContent](ctx, r.c, PolicyStrict, request{
		operation: "delete",
		method:    http.MethodDelete,
		path:      "/recommendation",
		query:     byProduct(productID),
	})
	return err
}

// ReviewClient calls the review service.
// Reads degrade to an empty list; writes are strict.
type ReviewClient struct {
	c *Client
}

// NewReviewClient creates a client for the review service
func NewReviewClient(endpoint config.ServiceEndpoint, log *zap.Logger, opts ...Option) *ReviewClient {
	return &ReviewClient{c: NewClient(NameReview, endpoint, log, opts...)}
}

// GetReviews fetches GET /review?productId={id}; it never fails
func (r *ReviewClient) GetReviews(ctx context.Context, productID int) []catalog.Review {
	reviews, _ := call[[]catalog.Review](ctx, r.c, PolicyDegrade, request{
		operation: "list",
		method:    http.MethodGet,
		path:      "/review",
		query:     byProduct(productID),
	})
	if reviews == nil {
		reviews = []catalog.Review{}
	}
	return reviews
}

// CreateReview posts to POST /review
func (r *ReviewClient) CreateReview(ctx context.Context, review catalog.Review) (*catalog.Review, error) {
	created, err := call[catalog.Review](ctx, r.c, PolicyStrict, request{
		operation: "create",
		method:    http.MethodPost,
		path:      "/review",
		body:      review,
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// DeleteReviews calls DELETE /review?productId={id}
func (r *ReviewClient) DeleteReviews(ctx context.Context, productID int) error {
	_, err := call[noContent](ctx, r.c, PolicyStrict, request{
		operation: "delete",
		method:    http.MethodDelete,
		path:      "/review",
		query:     byProduct(productID),
	})
	return err
}
