package catalog

import "github.com/storefront/backend/internal/domain/shared"

// Product is the core entity owned by the product service.
// ServiceAddress is stamped on reads and never persisted. Version is set by
// the repository and never leaves the service.
type Product struct {
	ProductID      int    `json:"productId"`
	Name           string `json:"name"`
	Weight         int    `json:"weight"`
	ServiceAddress string `json:"serviceAddress,omitempty"`
	Version        int    `json:"-"`
}

// Validate checks the fields the product service is responsible for
func (p *Product) Validate() error {
	return ValidateProductID(p.ProductID)
}

// ValidateProductID rejects product ids below 1
func ValidateProductID(productID int) error {
	if productID < 1 {
		return shared.NewInvalidInputError("Invalid productId: %d", productID)
	}
	return nil
}
