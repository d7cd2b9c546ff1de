package catalog

import (
	"context"
	"fmt"

	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/infrastructure/logger"
	"github.com/storefront/backend/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

// ReviewServiceName is the span prefix of review operations
const ReviewServiceName = "review"

// ReviewService handles review operations
type ReviewService struct {
	repo    catalog.ReviewRepository
	address AddressProvider
	logger  *zap.Logger
}

// NewReviewService creates a new ReviewService
func NewReviewService(repo catalog.ReviewRepository, address AddressProvider, logger *zap.Logger) *ReviewService {
	return &ReviewService{
		repo:    repo,
		address: address,
		logger:  logger,
	}
}

// GetReviews returns the reviews of a product in id order
func (s *ReviewService) GetReviews(ctx context.Context, productID int) (_ []catalog.Review, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, ReviewServiceName, "list",
		telemetry.WithAttribute(telemetry.SpanAttrProductID, productID))
	defer func() { endSpan(span, err) }()

	if err := catalog.ValidateProductID(productID); err != nil {
		return nil, err
	}

	reviews, err := s.repo.FindByProductID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if reviews == nil {
		reviews = []catalog.Review{}
	}

	address := s.address.Address()
	for i := range reviews {
		reviews[i].ServiceAddress = address
	}

	telemetry.SetAttributes(span, telemetry.SpanAttrResultCount, len(reviews))
	logger.L(ctx, s.logger).Debug("reviews found",
		zap.Int("product_id", productID),
		zap.Int("count", len(reviews)),
	)
	return reviews, nil
}

// CreateReview stores a new review
func (s *ReviewService) CreateReview(ctx context.Context, review catalog.Review) (_ *catalog.Review, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, ReviewServiceName, "create",
		telemetry.WithAttribute(telemetry.SpanAttrProductID, review.ProductID),
		telemetry.WithAttribute(telemetry.SpanAttrReviewID, review.ReviewID))
	defer func() { endSpan(span, err) }()

	if err := review.Validate(); err != nil {
		return nil, err
	}

	review.ServiceAddress = ""
	if err := s.repo.Create(ctx, &review); err != nil {
		return nil, duplicateKeyError(err, fmt.Sprintf("%s, Review Id: %d",
			productKey(review.ProductID), review.ReviewID))
	}

	logger.L(ctx, s.logger).Debug("review created",
		zap.Int("product_id", review.ProductID),
		zap.Int("review_id", review.ReviewID),
	)
	return &review, nil
}

// DeleteReviews removes every review of a product
func (s *ReviewService) DeleteReviews(ctx context.Context, productID int) (err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, ReviewServiceName, "delete",
		telemetry.WithAttribute(telemetry.SpanAttrProductID, productID))
	defer func() { endSpan(span, err) }()

	if err := catalog.ValidateProductID(productID); err != nil {
		return err
	}

	logger.L(ctx, s.logger).Debug("delete reviews", zap.Int("product_id", productID))
	return s.repo.DeleteByProductID(ctx, productID)
}
