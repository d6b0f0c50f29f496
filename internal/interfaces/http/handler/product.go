package handler

import (
	"github.com/bazaar/console/internal/application/merchant"
	"github.com/bazaar/console/internal/infrastructure/api"
	"github.com/bazaar/console/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// ProductHandler handles the merchant catalog endpoints
type ProductHandler struct {
	BaseHandler
	service *merchant.ProductService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(service *merchant.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// List handles GET /merchant/products
func (h *ProductHandler) List(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid list parameters: "+err.Error())
		return
	}
	sess, _ := getSession(c)

	products, meta, err := h.service.ListProducts(c.Request.Context(), sess, req.Options())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, products, meta)
}

// Get handles GET /merchant/products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	productID, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}
	sess, _ := getSession(c)

	product, err := h.service.GetProduct(c.Request.Context(), sess, productID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// Create handles POST /merchant/products
func (h *ProductHandler) Create(c *gin.Context) {
	var body api.CreateProductBody
	if err := c.ShouldBindJSON(&body); err != nil {
		h.BadRequest(c, "Invalid product payload: "+err.Error())
		return
	}
	sess, _ := getSession(c)

	product, err := h.service.CreateProduct(c.Request.Context(), sess, body)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, product)
}

// Update handles PATCH /merchant/products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	productID, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	var req merchant.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid update payload: "+err.Error())
		return
	}
	sess, _ := getSession(c)

	product, err := h.service.UpdateProduct(c.Request.Context(), sess, productID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// SubmitForReview handles POST /merchant/products/:id/submit
func (h *ProductHandler) SubmitForReview(c *gin.Context) {
	productID, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}
	sess, _ := getSession(c)

	product, err := h.service.SubmitForReview(c.Request.Context(), sess, productID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// ListVariants handles GET /merchant/products/:id/variants
func (h *ProductHandler) ListVariants(c *gin.Context) {
	productID, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}
	sess, _ := getSession(c)

	variants, err := h.service.ListVariants(c.Request.Context(), sess, productID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, variants)
}

// CreateVariant handles POST /merchant/products/:id/variants
func (h *ProductHandler) CreateVariant(c *gin.Context) {
	productID, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	var body api.CreateVariantBody
	if err := c.ShouldBindJSON(&body); err != nil {
		h.BadRequest(c, "Invalid variant payload: "+err.Error())
		return
	}
	sess, _ := getSession(c)

	variant, err := h.service.CreateVariant(c.Request.Context(), sess, productID, body)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, variant)
}

// UpdateVariant handles PATCH /merchant/variants/:id
func (h *ProductHandler) UpdateVariant(c *gin.Context) {
	variantID, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid variant ID")
		return
	}

	var req merchant.UpdateVariantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid update payload: "+err.Error())
		return
	}
	sess, _ := getSession(c)

	variant, err := h.service.UpdateVariant(c.Request.Context(), sess, variantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, variant)
}

// AdjustStock handles POST /merchant/variants/:id/stock-adjustments
func (h *ProductHandler) AdjustStock(c *gin.Context) {
	variantID, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid variant ID")
		return
	}

	var body api.StockAdjustmentBody
	if err := c.ShouldBindJSON(&body); err != nil {
		h.BadRequest(c, "Invalid stock adjustment: "+err.Error())
		return
	}
	sess, _ := getSession(c)

	variant, err := h.service.AdjustStock(c.Request.Context(), sess, variantID, body)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, variant)
}
