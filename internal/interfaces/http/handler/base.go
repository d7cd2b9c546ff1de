// Package handler contains the gin handlers of the storefront services.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/infrastructure/backend"
	"github.com/storefront/backend/internal/infrastructure/logger"
	"github.com/storefront/backend/internal/interfaces/http/dto"
	"github.com/storefront/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// productIDParam names the product id in paths and query strings
const productIDParam = "productId"

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// OK sends a 200 response with data as JSON
func (h *BaseHandler) OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Empty sends a 200 response without a body
func (h *BaseHandler) Empty(c *gin.Context) {
	c.Status(http.StatusOK)
}

// Error sends an error body with the given status
func (h *BaseHandler) Error(c *gin.Context, status int, message string) {
	c.JSON(status, dto.NewHTTPErrorInfo(status, c.Request.URL.Path, message))
}

// HandleError translates err into an error response. Domain errors map by
// kind, errors from a downstream service keep its status, anything else is
// logged and reported as 500.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		h.Error(c, dto.GetHTTPStatus(domainErr.Code), domainErr.Message)
		return
	}

	var httpErr *backend.HTTPError
	if errors.As(err, &httpErr) {
		message := httpErr.Message
		if message == "" {
			message = http.StatusText(httpErr.StatusCode)
		}
		h.Error(c, httpErr.StatusCode, message)
		return
	}

	logger.GetGinLogger(c).Error("Unhandled error", zap.Error(err))
	_ = c.Error(err)
	h.Error(c, http.StatusInternalServerError, dto.MessageUnexpected)
}

// bindJSON decodes the request body into obj. Malformed or invalid bodies
// become InvalidInput errors.
func (h *BaseHandler) bindJSON(c *gin.Context, obj any) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		return shared.NewInvalidInputError("%s", middleware.BindingErrorMessage(err))
	}
	return nil
}

// pathProductID reads the productId path parameter
func (h *BaseHandler) pathProductID(c *gin.Context) (int, error) {
	return parseProductID(c.Param(productIDParam))
}

// queryProductID reads the productId query parameter
func (h *BaseHandler) queryProductID(c *gin.Context) (int, error) {
	raw, ok := c.GetQuery(productIDParam)
	if !ok {
		return 0, shared.NewInvalidInputError("Required parameter productId is missing")
	}
	return parseProductID(raw)
}

func parseProductID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, shared.NewInvalidInputError("Invalid productId: %s", raw)
	}
	return id, nil
}
