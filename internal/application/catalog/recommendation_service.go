package catalog

import (
	"context"
	"fmt"

	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/infrastructure/logger"
	"github.com/storefront/backend/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

// RecommendationServiceName is the span prefix of recommendation operations
const RecommendationServiceName = "recommendation"

// RecommendationService handles recommendation operations
type RecommendationService struct {
	repo    catalog.RecommendationRepository
	address AddressProvider
	logger  *zap.Logger
}

// NewRecommendationService creates a new RecommendationService
func NewRecommendationService(repo catalog.RecommendationRepository, address AddressProvider, logger *zap.Logger) *RecommendationService {
	return &RecommendationService{
		repo:    repo,
		address: address,
		logger:  logger,
	}
}

// GetRecommendations returns the recommendations of a product in id order.
// A product without recommendations yields an empty slice.
func (s *RecommendationService) GetRecommendations(ctx context.Context, productID int) (_ []catalog.Recommendation, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, RecommendationServiceName, "list",
		telemetry.WithAttribute(telemetry.SpanAttrProductID, productID))
	defer func() { endSpan(span, err) }()

	if err := catalog.ValidateProductID(productID); err != nil {
		return nil, err
	}

	recommendations, err := s.repo.FindByProductID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if recommendations == nil {
		recommendations = []catalog.Recommendation{}
	}

	address := s.address.Address()
	for i := range recommendations {
		recommendations[i].ServiceAddress = address
	}

	telemetry.SetAttributes(span, telemetry.SpanAttrResultCount, len(recommendations))
	logger.L(ctx, s.logger).Debug("recommendations found",
		zap.Int("product_id", productID),
		zap.Int("count", len(recommendations)),
	)
	return recommendations, nil
}

// CreateRecommendation stores a new recommendation
func (s *RecommendationService) CreateRecommendation(ctx context.Context, recommendation catalog.Recommendation) (_ *catalog.Recommendation, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, RecommendationServiceName, "create",
		telemetry.WithAttribute(telemetry.SpanAttrProductID, recommendation.ProductID),
		telemetry.WithAttribute(telemetry.SpanAttrRecommendationID, recommendation.RecommendationID))
	defer func() { endSpan(span, err) }()

	if err := recommendation.Validate(); err != nil {
		return nil, err
	}

	recommendation.ServiceAddress = ""
	if err := s.repo.Create(ctx, &recommendation); err != nil {
		return nil, duplicateKeyError(err, fmt.Sprintf("%s, Recommendation Id: %d",
			productKey(recommendation.ProductID), recommendation.RecommendationID))
	}

	logger.L(ctx, s.logger).Debug("recommendation created",
		zap.Int("product_id", recommendation.ProductID),
		zap.Int("recommendation_id", recommendation.RecommendationID),
	)
	return &recommendation, nil
}

// DeleteRecommendations removes every recommendation of a product
func (s *RecommendationService) DeleteRecommendations(ctx context.Context, productID int) (err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, RecommendationServiceName, "delete",
		telemetry.WithAttribute(telemetry.SpanAttrProductID, productID))
	defer func() { endSpan(span, err) }()

	if err := catalog.ValidateProductID(productID); err != nil {
		return err
	}

	logger.L(ctx, s.logger).Debug("delete recommendations", zap.Int("product_id", productID))
	return s.repo.DeleteByProductID(ctx, productID)
}
