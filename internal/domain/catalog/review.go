package catalog

import "github.com/storefront/backend/internal/domain/shared"

// Review belongs to a product; (ProductID, ReviewID) is unique.
type Review struct {
	ProductID      int    `json:"productId"`
	ReviewID       int    `json:"reviewId"`
	Author         string `json:"author"`
	Subject        string `json:"subject"`
	Content        string `json:"content"`
	ServiceAddress string `json:"serviceAddress,omitempty"`
	Version        int    `json:"-"`
}

// Validate checks the id fields of the composite key
func (r *Review) Validate() error {
	if err := ValidateProductID(r.ProductID); err != nil {
		return err
	}
	if r.ReviewID < 1 {
		return shared.NewInvalidInputError("Invalid reviewId: %d", r.ReviewID)
	}
	return nil
}
