package models

import "github.com/storefront/backend/internal/domain/catalog"

// ProductModel is the persistence model for catalog.Product
type ProductModel struct {
	BaseModel
	ProductID int    `gorm:"not null;uniqueIndex:idx_products_product_id"`
	Name      string `gorm:"type:text;not null"`
	Weight    int    `gorm:"not null"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts the model to a domain Product. serviceAddress is left empty.
func (m *ProductModel) ToDomain() *catalog.Product {
	return &catalog.Product{
		ProductID: m.ProductID,
		Name:      m.Name,
		Weight:    m.Weight,
		Version:   m.Version,
	}
}

// ProductModelFromDomain builds a new row from p
func ProductModelFromDomain(p *catalog.Product) *ProductModel {
	return &ProductModel{
		ProductID: p.ProductID,
		Name:      p.Name,
		Weight:    p.Weight,
	}
}

// RecommendationModel is the persistence model for catalog.Recommendation
type RecommendationModel struct {
	BaseModel
	ProductID        int    `gorm:"not null;uniqueIndex:idx_recommendations_product_recommendation,priority:1"`
	RecommendationID int    `gorm:"not null;uniqueIndex:idx_recommendations_product_recommendation,priority:2"`
	Author           string `gorm:"type:text;not null"`
	Rating           int    `gorm:"not null"`
	Content          string `gorm:"type:text;not null"`
}

// TableName returns the table name for GORM
func (RecommendationModel) TableName() string {
	return "recommendations"
}

// ToDomain converts the model to a domain Recommendation
func (m *RecommendationModel) ToDomain() *catalog.Recommendation {
	return &catalog.Recommendation{
		ProductID:        m.ProductID,
		RecommendationID: m.RecommendationID,
		Author:           m.Author,
		Rating:           m.Rating,
		Content:          m.Content,
		Version:          m.Version,
	}
}

// RecommendationModelFromDomain builds a new row from r
func RecommendationModelFromDomain(r *catalog.Recommendation) *RecommendationModel {
	return &RecommendationModel{
		ProductID:        r.ProductID,
		RecommendationID: r.RecommendationID,
		Author:           r.Author,
		Rating:           r.Rating,
		Content:          r.Content,
	}
}

// ReviewModel is the persistence model for catalog.Review
type ReviewModel struct {
	BaseModel
	ProductID int    `gorm:"not null;uniqueIndex:idx_reviews_product_review,priority:1"`
	ReviewID  int    `gorm:"not null;uniqueIndex:idx_reviews_product_review,priority:2"`
	Author    string `gorm:"type:text;not null"`
	Subject   string `gorm:"type:text;not null"`
	Content   string `gorm:"type:text;not null"`
}

// TableName returns the table name for GORM
func (ReviewModel) TableName() string {
	return "reviews"
}

// ToDomain converts the model to a domain Review
func (m *ReviewModel) ToDomain() *catalog.Review {
	return &catalog.Review{
		ProductID: m.ProductID,
		ReviewID:  m.ReviewID,
		Author:    m.Author,
		Subject:   m.Subject,
		Content:   m.Content,
		Version:   m.Version,
	}
}

// ReviewModelFromDomain builds a new row from r
func ReviewModelFromDomain(r *catalog.Review) *ReviewModel {
	return &ReviewModel{
		ProductID: r.ProductID,
		ReviewID:  r.ReviewID,
		Author:    r.Author,
		Subject:   r.Subject,
		Content:   r.Content,
	}
}
