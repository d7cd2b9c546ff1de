package catalog

import (
	"context"

	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/stretchr/testify/mock"
)

const testAddress = "product-host/10.0.0.7:7001"

type staticAddress string

func (a staticAddress) Address() string { return string(a) }

// MockProductRepository is a mock implementation of catalog.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByProductID(ctx context.Context, productID int) (*catalog.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) DeleteByProductID(ctx context.Context, productID int) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

// MockRecommendationRepository is a mock implementation of catalog.RecommendationRepository
type MockRecommendationRepository struct {
	mock.Mock
}

func (m *MockRecommendationRepository) FindByProductID(ctx context.Context, productID int) ([]catalog.Recommendation, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Recommendation), args.Error(1)
}

func (m *MockRecommendationRepository) Create(ctx context.Context, recommendation *catalog.Recommendation) error {
	args := m.Called(ctx, recommendation)
	return args.Error(0)
}

func (m *MockRecommendationRepository) Update(ctx context.Context, recommendation *catalog.Recommendation) error {
	args := m.Called(ctx, recommendation)
	return args.Error(0)
}

func (m *MockRecommendationRepository) DeleteByProductID(ctx context.Context, productID int) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

// MockReviewRepository is a mock implementation of catalog.ReviewRepository
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) FindByProductID(ctx context.Context, productID int) ([]catalog.Review, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Review), args.Error(1)
}

func (m *MockReviewRepository) Create(ctx context.Context, review *catalog.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) Update(ctx context.Context, review *catalog.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) DeleteByProductID(ctx context.Context, productID int) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}
