package persistence

import (
	"context"
	"errors"

	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormProductRepository implements catalog.ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// FindByProductID finds a product by its business key
func (r *GormProductRepository) FindByProductID(ctx context.Context, productID int) (*catalog.Product, error) {
	var model models.ProductModel
	if err := r.db.WithContext(ctx).Where("product_id = ?", productID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Create inserts a new product
func (r *GormProductRepository) Create(ctx context.Context, product *catalog.Product) error {
	return translateWriteError(r.db.WithContext(ctx).Create(models.ProductModelFromDomain(product)).Error)
}

// Update writes name and weight guarded by the product's version
func (r *GormProductRepository) Update(ctx context.Context, product *catalog.Product) error {
	err := updateWithVersion(r.db.WithContext(ctx), &models.ProductModel{}, product.Version,
		map[string]any{"name": product.Name, "weight": product.Weight},
		"product_id = ?", product.ProductID)
	if err != nil {
		return err
	}
	product.Version++
	return nil
}

// DeleteByProductID deletes the product with the given business key, if any
func (r *GormProductRepository) DeleteByProductID(ctx context.Context, productID int) error {
	return r.db.WithContext(ctx).Where("product_id = ?", productID).Delete(&models.ProductModel{}).Error
}

// translateWriteError maps uniqueness violations to shared.ErrDuplicateKey
func translateWriteError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return shared.ErrDuplicateKey
	}
	return err
}

// updateWithVersion applies values to the row matched by query whose version
// equals version, incrementing the version in the same statement.
func updateWithVersion(db *gorm.DB, model any, version int, values map[string]any, query string, args ...any) error {
	values["version"] = gorm.Expr("version + 1")
	result := db.Model(model).Where(query, args...).Where("version = ?", version).Updates(values)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := db.Model(model).Where(query, args...).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return shared.ErrNotFound
	}
	return shared.ErrOptimisticLock
}

var _ catalog.ProductRepository = (*GormProductRepository)(nil)
