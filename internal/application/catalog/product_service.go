package catalog

import (
	"context"
	"errors"

	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/infrastructure/logger"
	"github.com/storefront/backend/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

// ProductServiceName is the span prefix of product operations
const ProductServiceName = "product"

// ProductService handles product operations
type ProductService struct {
	repo    catalog.ProductRepository
	address AddressProvider
	logger  *zap.Logger
}

// NewProductService creates a new ProductService
func NewProductService(repo catalog.ProductRepository, address AddressProvider, logger *zap.Logger) *ProductService {
	return &ProductService{
		repo:    repo,
		address: address,
		logger:  logger,
	}
}

// GetProduct returns the product stamped with this instance's address
func (s *ProductService) GetProduct(ctx context.Context, productID int) (_ *catalog.Product, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, ProductServiceName, "get",
		telemetry.WithAttribute(telemetry.SpanAttrProductID, productID))
	defer func() { endSpan(span, err) }()

	logger.L(ctx, s.logger).Debug("get product", zap.Int("product_id", productID))

	if err := catalog.ValidateProductID(productID); err != nil {
		return nil, err
	}

	product, err := s.repo.FindByProductID(ctx, productID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewNotFoundError("No product found for productId: %d", productID)
		}
		return nil, err
	}

	product.ServiceAddress = s.address.Address()
	return product, nil
}

// CreateProduct stores a new product and returns it without a service address
func (s *ProductService) CreateProduct(ctx context.Context, product catalog.Product) (_ *catalog.Product, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, ProductServiceName, "create",
		telemetry.WithAttribute(telemetry.SpanAttrProductID, product.ProductID))
	defer func() { endSpan(span, err) }()

	if err := product.Validate(); err != nil {
		return nil, err
	}

	product.ServiceAddress = ""
	if err := s.repo.Create(ctx, &product); err != nil {
		return nil, duplicateKeyError(err, productKey(product.ProductID))
	}

	logger.L(ctx, s.logger).Debug("product created", zap.Int("product_id", product.ProductID))
	return &product, nil
}

// DeleteProduct removes the product; deleting a missing product succeeds
func (s *ProductService) DeleteProduct(ctx context.Context, productID int) (err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, ProductServiceName, "delete",
		telemetry.WithAttribute(telemetry.SpanAttrProductID, productID))
	defer func() { endSpan(span, err) }()

	if err := catalog.ValidateProductID(productID); err != nil {
		return err
	}

	logger.L(ctx, s.logger).Debug("delete product", zap.Int("product_id", productID))
	return s.repo.DeleteByProductID(ctx, productID)
}
