package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/storefront/backend/internal/domain/catalog"
)

// ReviewService is the review use case behind ReviewHandler
type ReviewService interface {
	GetReviews(ctx context.Context, productID int) ([]catalog.Review, error)
	CreateReview(ctx context.Context, review catalog.Review) (*catalog.Review, error)
	DeleteReviews(ctx context.Context, productID int) error
}

// ReviewHandler serves /review
type ReviewHandler struct {
	BaseHandler
	reviewService ReviewService
}

// NewReviewHandler creates a new ReviewHandler
func NewReviewHandler(reviewService ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// RegisterRoutes implements router.RouteRegistrar
func (h *ReviewHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/review", h.List)
	rg.POST("/review", h.Create)
	rg.DELETE("/review", h.Delete)
}

// List returns the reviews of ?productId, possibly none
func (h *ReviewHandler) List(c *gin.Context) {
	productID, err := h.queryProductID(c)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	reviews, err := h.reviewService.GetReviews(c.Request.Context(), productID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.OK(c, reviews)
}

// Create stores a review and echoes it back
func (h *ReviewHandler) Create(c *gin.Context) {
	var req catalog.Review
	if err := h.bindJSON(c, &req); err != nil {
		h.HandleError(c, err)
		return
	}

	review, err := h.reviewService.CreateReview(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.OK(c, review)
}

// Delete removes every review of ?productId
func (h *ReviewHandler) Delete(c *gin.Context) {
	productID, err := h.queryProductID(c)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	if err := h.reviewService.DeleteReviews(c.Request.Context(), productID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Empty(c)
}
