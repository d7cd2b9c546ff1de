package persistence

import (
	"context"

	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormReviewRepository implements catalog.ReviewRepository using GORM
type GormReviewRepository struct {
	db *gorm.DB
}

// NewGormReviewRepository creates a new GormReviewRepository
func NewGormReviewRepository(db *gorm.DB) *GormReviewRepository {
	return &GormReviewRepository{db: db}
}

// FindByProductID returns the reviews of a product ordered by review id
func (r *GormReviewRepository) FindByProductID(ctx context.Context, productID int) ([]catalog.Review, error) {
	var rows []models.ReviewModel
	if err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("review_id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	result := make([]catalog.Review, 0, len(rows))
	for i := range rows {
		result = append(result, *rows[i].ToDomain())
	}
	return result, nil
}

// Create inserts a new review
func (r *GormReviewRepository) Create(ctx context.Context, review *catalog.Review) error {
	return translateWriteError(r.db.WithContext(ctx).Create(models.ReviewModelFromDomain(review)).Error)
}

// Update writes author, subject and content guarded by the review's version
func (r *GormReviewRepository) Update(ctx context.Context, review *catalog.Review) error {
	err := updateWithVersion(r.db.WithContext(ctx), &models.ReviewModel{}, review.Version,
		map[string]any{
			"author":  review.Author,
			"subject": review.Subject,
			"content": review.Content,
		},
		"product_id = ? AND review_id = ?", review.ProductID, review.ReviewID)
	if err != nil {
		return err
	}
	review.Version++
	return nil
}

// DeleteByProductID deletes every review of a product
func (r *GormReviewRepository) DeleteByProductID(ctx context.Context, productID int) error {
	return r.db.WithContext(ctx).Where("product_id = ?", productID).Delete(&models.ReviewModel{}).Error
}

var _ catalog.ReviewRepository = (*GormReviewRepository)(nil)
