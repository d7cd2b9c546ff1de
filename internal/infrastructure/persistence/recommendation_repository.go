package persistence

import (
	"context"

	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormRecommendationRepository implements catalog.RecommendationRepository using GORM
type GormRecommendationRepository struct {
	db *gorm.DB
}

// NewGormRecommendationRepository creates a new GormRecommendationRepository
func NewGormRecommendationRepository(db *gorm.DB) *GormRecommendationRepository {
	return &GormRecommendationRepository{db: db}
}

// FindByProductID returns the recommendations of a product ordered by recommendation id
func (r *GormRecommendationRepository) FindByProductID(ctx context.Context, productID int) ([]catalog.Recommendation, error) {
	var rows []models.RecommendationModel
	if err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("recommendation_id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	result := make([]catalog.Recommendation, 0, len(rows))
	for i := range rows {
		result = append(result, *rows[i].ToDomain())
	}
	return result, nil
}

// Create inserts a new recommendation
func (r *GormRecommendationRepository) Create(ctx context.Context, recommendation *catalog.Recommendation) error {
	return translateWriteError(r.db.WithContext(ctx).Create(models.RecommendationModelFromDomain(recommendation)).Error)
}

// Update writes author, rating and content guarded by the recommendation's version
func (r *GormRecommendationRepository) Update(ctx context.Context, recommendation *catalog.Recommendation) error {
	err := updateWithVersion(r.db.WithContext(ctx), &models.RecommendationModel{}, recommendation.Version,
		map[string]any{
			"author":  recommendation.Author,
			"rating":  recommendation.Rating,
			"content": recommendation.Content,
		},
		"product_id = ? AND recommendation_id = ?", recommendation.ProductID, recommendation.RecommendationID)
	if err != nil {
		return err
	}
	recommendation.Version++
	return nil
}

// DeleteByProductID deletes every recommendation of a product
func (r *GormRecommendationRepository) DeleteByProductID(ctx context.Context, productID int) error {
	return r.db.WithContext(ctx).Where("product_id = ?", productID).Delete(&models.RecommendationModel{}).Error
}

var _ catalog.RecommendationRepository = (*GormRecommendationRepository)(nil)
