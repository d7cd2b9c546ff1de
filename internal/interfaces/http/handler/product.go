package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/storefront/backend/internal/domain/catalog"
)

// ProductService is the product use case behind ProductHandler
type ProductService interface {
	GetProduct(ctx context.Context, productID int) (*catalog.Product, error)
	CreateProduct(ctx context.Context, product catalog.Product) (*catalog.Product, error)
	DeleteProduct(ctx context.Context, productID int) error
}

// ProductHandler serves /product
type ProductHandler struct {
	BaseHandler
	productService ProductService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// RegisterRoutes implements router.RouteRegistrar
func (h *ProductHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/product/:productId", h.Get)
	rg.POST("/product", h.Create)
	rg.DELETE("/product/:productId", h.Delete)
}

// Get returns one product
func (h *ProductHandler) Get(c *gin.Context) {
	productID, err := h.pathProductID(c)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	product, err := h.productService.GetProduct(c.Request.Context(), productID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.OK(c, product)
}

// Create stores a product and echoes it back
func (h *ProductHandler) Create(c *gin.Context) {
	var req catalog.Product
	if err := h.bindJSON(c, &req); err != nil {
		h.HandleError(c, err)
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.OK(c, product)
}

// Delete removes a product. Deleting a missing product succeeds.
func (h *ProductHandler) Delete(c *gin.Context) {
	productID, err := h.pathProductID(c)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	if err := h.productService.DeleteProduct(c.Request.Context(), productID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Empty(c)
}
