package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/storefront/backend/internal/domain/catalog"
)

// CompositeService is the aggregate use case behind CompositeHandler
type CompositeService interface {
	GetProduct(ctx context.Context, productID int) (*catalog.ProductAggregate, error)
	CreateProduct(ctx context.Context, aggregate catalog.ProductAggregate) error
	DeleteProduct(ctx context.Context, productID int) error
}

// CompositeHandler serves /product-composite
type CompositeHandler struct {
	BaseHandler
	compositeService CompositeService
}

// NewCompositeHandler creates a new CompositeHandler
func NewCompositeHandler(compositeService CompositeService) *CompositeHandler {
	return &CompositeHandler{compositeService: compositeService}
}

// RegisterRoutes implements router.RouteRegistrar
func (h *CompositeHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/product-composite/:productId", h.Get)
	rg.POST("/product-composite", h.Create)
	rg.DELETE("/product-composite/:productId", h.Delete)
}

// Get returns the aggregate of one product
func (h *CompositeHandler) Get(c *gin.Context) {
	productID, err := h.pathProductID(c)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	aggregate, err := h.compositeService.GetProduct(c.Request.Context(), productID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.OK(c, aggregate)
}

// Create fans an aggregate out to the core services
func (h *CompositeHandler) Create(c *gin.Context) {
	var req catalog.ProductAggregate
	if err := h.bindJSON(c, &req); err != nil {
		h.HandleError(c, err)
		return
	}

	if err := h.compositeService.CreateProduct(c.Request.Context(), req); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Empty(c)
}

// Delete removes a product with its recommendations and reviews
func (h *CompositeHandler) Delete(c *gin.Context) {
	productID, err := h.pathProductID(c)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	if err := h.compositeService.DeleteProduct(c.Request.Context(), productID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Empty(c)
}
