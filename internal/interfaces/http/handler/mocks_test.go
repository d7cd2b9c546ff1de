package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/interfaces/http/dto"
	"github.com/storefront/backend/internal/interfaces/http/middleware"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()
}

type routeRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

func newTestEngine(handlers ...routeRegistrar) *gin.Engine {
	engine := gin.New()
	for _, h := range handlers {
		h.RegisterRoutes(&engine.RouterGroup)
	}
	return engine
}

func performRequest(engine *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeErrorInfo(t *testing.T, w *httptest.ResponseRecorder) dto.HTTPErrorInfo {
	t.Helper()
	var info dto.HTTPErrorInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	return info
}

func assertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, status int, path, message string) {
	t.Helper()
	require.Equal(t, status, w.Code)
	info := decodeErrorInfo(t, w)
	require.Equal(t, status, info.HTTPStatus)
	require.Equal(t, http.StatusText(status), info.Error)
	require.Equal(t, path, info.Path)
	require.Equal(t, message, info.Message)
	require.NotEmpty(t, info.Timestamp)
}

// MockProductService implements ProductService for testing
type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) GetProduct(ctx context.Context, productID int) (*catalog.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductService) CreateProduct(ctx context.Context, product catalog.Product) (*catalog.Product, error) {
	args := m.Called(ctx, product)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductService) DeleteProduct(ctx context.Context, productID int) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

// MockRecommendationService implements RecommendationService for testing
type MockRecommendationService struct {
	mock.Mock
}

func (m *MockRecommendationService) GetRecommendations(ctx context.Context, productID int) ([]catalog.Recommendation, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Recommendation), args.Error(1)
}

func (m *MockRecommendationService) CreateRecommendation(ctx context.Context, recommendation catalog.Recommendation) (*catalog.Recommendation, error) {
	args := m.Called(ctx, recommendation)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Recommendation), args.Error(1)
}

func (m *MockRecommendationService) DeleteRecommendations(ctx context.Context, productID int) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

// MockReviewService implements ReviewService for testing
type MockReviewService struct {
	mock.Mock
}

func (m *MockReviewService) GetReviews(ctx context.Context, productID int) ([]catalog.Review, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Review), args.Error(1)
}

func (m *MockReviewService) CreateReview(ctx context.Context, review catalog.Review) (*catalog.Review, error) {
	args := m.Called(ctx, review)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Review), args.Error(1)
}

func (m *MockReviewService) DeleteReviews(ctx context.Context, productID int) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

// MockCompositeService implements CompositeService for testing
type MockCompositeService struct {
	mock.Mock
}

func (m *MockCompositeService) GetProduct(ctx context.Context, productID int) (*catalog.ProductAggregate, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.ProductAggregate), args.Error(1)
}

func (m *MockCompositeService) CreateProduct(ctx context.Context, aggregate catalog.ProductAggregate) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCompositeService) DeleteProduct(ctx context.Context, productID int) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }
