package handler

import (
	"github.com/bazaar/console/internal/application/storefront"
	"github.com/bazaar/console/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// StorefrontHandler handles the public browse endpoints
type StorefrontHandler struct {
	BaseHandler
	service *storefront.CatalogService
}

// NewStorefrontHandler creates a new StorefrontHandler
func NewStorefrontHandler(service *storefront.CatalogService) *StorefrontHandler {
	return &StorefrontHandler{service: service}
}

// ListProducts handles GET /storefront/products
func (h *StorefrontHandler) ListProducts(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid list parameters: "+err.Error())
		return
	}

	products, meta, err := h.service.BrowseProducts(c.Request.Context(), req.Options())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, products, meta)
}

// GetProduct handles GET /storefront/products/:id
func (h *StorefrontHandler) GetProduct(c *gin.Context) {
	productID, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	product, err := h.service.BrowseProduct(c.Request.Context(), productID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// ListCategories handles GET /storefront/categories
func (h *StorefrontHandler) ListCategories(c *gin.Context) {
	categories, err := h.service.ListCategories(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, categories)
}
