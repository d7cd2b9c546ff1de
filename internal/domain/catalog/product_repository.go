package catalog

import "context"

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	// FindByProductID returns shared.ErrNotFound when no product exists
	FindByProductID(ctx context.Context, productID int) (*Product, error)

	// Create stores a new product, returning shared.ErrDuplicateKey when the
	// product id is taken
	Create(ctx context.Context, product *Product) error

	// Update stores name and weight if product.Version is still the stored
	// version, then advances product.Version. Returns shared.ErrOptimisticLock
	// on a stale version and shared.ErrNotFound when the product is gone.
	Update(ctx context.Context, product *Product) error

	// DeleteByProductID removes the product if present; absence is not an error
	DeleteByProductID(ctx context.Context, productID int) error
}

// RecommendationRepository defines the interface for recommendation persistence
type RecommendationRepository interface {
	// FindByProductID returns the recommendations of a product ordered by
	// recommendation id; an empty slice when there are none
	FindByProductID(ctx context.Context, productID int) ([]Recommendation, error)

	// Create stores a new recommendation, returning shared.ErrDuplicateKey on a
	// (productId, recommendationId) conflict
	Create(ctx context.Context, recommendation *Recommendation) error

	// Update follows the ProductRepository.Update version contract
	Update(ctx context.Context, recommendation *Recommendation) error

	// DeleteByProductID removes all recommendations of a product
	DeleteByProductID(ctx context.Context, productID int) error
}

// ReviewRepository defines the interface for review persistence
type ReviewRepository interface {
	// FindByProductID returns the reviews of a product ordered by review id;
	// an empty slice when there are none
	FindByProductID(ctx context.Context, productID int) ([]Review, error)

	// Create stores a new review, returning shared.ErrDuplicateKey on a
	// (productId, reviewId) conflict
	Create(ctx context.Context, review *Review) error

	// Update follows the ProductRepository.Update version contract
	Update(ctx context.Context, review *Review) error

	// DeleteByProductID removes all reviews of a product
	DeleteByProductID(ctx context.Context, productID int) error
}
