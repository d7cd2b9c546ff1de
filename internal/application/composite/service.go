// Package composite aggregates the product, recommendation and review
// services behind a single product view.
package composite

import (
	"context"
	"errors"

	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/infrastructure/logger"
	"github.com/storefront/backend/internal/infrastructure/telemetry"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ServiceName is the span prefix of composite operations
const ServiceName = "product-composite"

// ProductBackend is the product service as seen by the composite
type ProductBackend interface {
	GetProduct(ctx context.Context, productID int) (*catalog.Product, error)
	CreateProduct(ctx context.Context, product catalog.Product) (*catalog.Product, error)
	DeleteProduct(ctx context.Context, productID int) error
}

// RecommendationBackend is the recommendation service as seen by the composite.
// Reads never fail; an unavailable backend yields an empty list.
type RecommendationBackend interface {
	GetRecommendations(ctx context.Context, productID int) []catalog.Recommendation
	CreateRecommendation(ctx context.Context, recommendation catalog.Recommendation) (*catalog.Recommendation, error)
	DeleteRecommendations(ctx context.Context, productID int) error
}

// ReviewBackend is the review service as seen by the composite.
// Reads never fail; an unavailable backend yields an empty list.
type ReviewBackend interface {
	GetReviews(ctx context.Context, productID int) []catalog.Review
	CreateReview(ctx context.Context, review catalog.Review) (*catalog.Review, error)
	DeleteReviews(ctx context.Context, productID int) error
}

// AddressProvider returns the "host/ip:port" identity of this instance
type AddressProvider interface {
	Address() string
}

// Service orchestrates the three backends
type Service struct {
	products        ProductBackend
	recommendations RecommendationBackend
	reviews         ReviewBackend
	address         AddressProvider
	logger          *zap.Logger
}

// NewService creates a new composite Service
func NewService(
	products ProductBackend,
	recommendations RecommendationBackend,
	reviews ReviewBackend,
	address AddressProvider,
	logger *zap.Logger,
) *Service {
	return &Service{
		products:        products,
		recommendations: recommendations,
		reviews:         reviews,
		address:         address,
		logger:          logger,
	}
}

// GetProduct reads the product and, only once it exists, its recommendations
// and reviews in parallel. Product errors are returned as received.
func (s *Service) GetProduct(ctx context.Context, productID int) (_ *catalog.ProductAggregate, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, ServiceName, "get",
		telemetry.WithAttribute(telemetry.SpanAttrProductID, productID))
	defer func() { endSpan(span, err) }()

	if err := catalog.ValidateProductID(productID); err != nil {
		return nil, err
	}

	product, err := s.products.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	var (
		recommendations []catalog.Recommendation
		reviews         []catalog.Review
	)
	var g errgroup.Group
	g.Go(func() error {
		recommendations = s.recommendations.GetRecommendations(ctx, productID)
		return nil
	})
	g.Go(func() error {
		reviews = s.reviews.GetReviews(ctx, productID)
		return nil
	})
	_ = g.Wait()

	aggregate := catalog.NewProductAggregate(product, recommendations, reviews, s.address.Address())
	logger.L(ctx, s.logger).Debug("product aggregate assembled",
		zap.Int("product_id", productID),
		zap.Int("recommendations", len(aggregate.Recommendations)),
		zap.Int("reviews", len(aggregate.Reviews)),
	)
	return aggregate, nil
}

// CreateProduct creates the product, then each recommendation and review in
// order. The first failure stops the sequence; parts already created stay.
func (s *Service) CreateProduct(ctx context.Context, aggregate catalog.ProductAggregate) (err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, ServiceName, "create",
		telemetry.WithAttribute(telemetry.SpanAttrProductID, aggregate.ProductID))
	defer func() { endSpan(span, err) }()

	if err := catalog.ValidateProductID(aggregate.ProductID); err != nil {
		return err
	}

	log := logger.L(ctx, s.logger).With(zap.Int("product_id", aggregate.ProductID))
	created := 0
	defer func() {
		if err != nil && created > 0 {
			log.Warn("composite create stopped part way, created parts are kept",
				zap.Int("created", created), zap.Error(err))
		}
	}()

	if _, err := s.products.CreateProduct(ctx, *aggregate.Product()); err != nil {
		return err
	}
	created++

	for _, rec := range aggregate.RecommendationList() {
		if _, err := s.recommendations.CreateRecommendation(ctx, rec); err != nil {
			return err
		}
		created++
	}

	for _, review := range aggregate.ReviewList() {
		if _, err := s.reviews.CreateReview(ctx, review); err != nil {
			return err
		}
		created++
	}

	log.Debug("product aggregate created", zap.Int("created", created))
	return nil
}

// DeleteProduct deletes the product, its recommendations and its reviews.
// All three deletes are attempted; their errors are joined.
func (s *Service) DeleteProduct(ctx context.Context, productID int) (err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, ServiceName, "delete",
		telemetry.WithAttribute(telemetry.SpanAttrProductID, productID))
	defer func() { endSpan(span, err) }()

	if err := catalog.ValidateProductID(productID); err != nil {
		return err
	}

	err = errors.Join(
		s.products.DeleteProduct(ctx, productID),
		s.recommendations.DeleteRecommendations(ctx, productID),
		s.reviews.DeleteReviews(ctx, productID),
	)
	if err != nil {
		logger.L(ctx, s.logger).Warn("composite delete failed", zap.Int("product_id", productID), zap.Error(err))
		return err
	}

	logger.L(ctx, s.logger).Debug("product aggregate deleted", zap.Int("product_id", productID))
	return nil
}

func endSpan(span trace.Span, err error) {
	telemetry.RecordError(span, err)
	span.End()
}
