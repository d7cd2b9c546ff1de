package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/storefront/backend/internal/domain/catalog"
)

// RecommendationService is the recommendation use case behind RecommendationHandler
type RecommendationService interface {
	GetRecommendations(ctx context.Context, productID int) ([]catalog.Recommendation, error)
	CreateRecommendation(ctx context.Context, recommendation catalog.Recommendation) (*catalog.Recommendation, error)
	DeleteRecommendations(ctx context.Context, productID int) error
}

// RecommendationHandler serves /recommendation
type RecommendationHandler struct {
	BaseHandler
	recommendationService RecommendationService
}

// NewRecommendationHandler creates a new RecommendationHandler
func NewRecommendationHandler(recommendationService RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{recommendationService: recommendationService}
}

// RegisterRoutes implements router.RouteRegistrar
func (h *RecommendationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/recommendation", h.List)
	rg.POST("/recommendation", h.Create)
	rg.DELETE("/recommendation", h.Delete)
}

// List returns the recommendations of ?productId, possibly none
func (h *RecommendationHandler) List(c *gin.Context) {
	productID, err := h.queryProductID(c)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	recommendations, err := h.recommendationService.GetRecommendations(c.Request.Context(), productID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.OK(c, recommendations)
}

// Create stores a recommendation and echoes it back
func (h *RecommendationHandler) Create(c *gin.Context) {
	var req catalog.Recommendation
	if err := h.bindJSON(c, &req); err != nil {
		h.HandleError(c, err)
		return
	}

	recommendation, err := h.recommendationService.CreateRecommendation(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.OK(c, recommendation)
}

// Delete removes every recommendation of ?productId
func (h *RecommendationHandler) Delete(c *gin.Context) {
	productID, err := h.queryProductID(c)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	if err := h.recommendationService.DeleteRecommendations(c.Request.Context(), productID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Empty(c)
}
