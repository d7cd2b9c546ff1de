package catalog

import "github.com/storefront/backend/internal/domain/shared"

// Recommendation belongs to a product; (ProductID, RecommendationID) is unique.
type Recommendation struct {
	ProductID        int    `json:"productId"`
	RecommendationID int    `json:"recommendationId"`
	Author           string `json:"author"`
	Rating           int    `json:"rating"`
	Content          string `json:"content"`
	ServiceAddress   string `json:"serviceAddress,omitempty"`
	Version          int    `json:"-"`
}

// Validate checks the id fields of the composite key
func (r *Recommendation) Validate() error {
	if err := ValidateProductID(r.ProductID); err != nil {
		return err
	}
	if r.RecommendationID < 1 {
		return shared.NewInvalidInputError("Invalid recommendationId: %d", r.RecommendationID)
	}
	return nil
}
