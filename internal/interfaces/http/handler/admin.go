package handler

import (
	"github.com/bazaar/console/internal/application/admin"
	"github.com/bazaar/console/internal/infrastructure/api"
	"github.com/bazaar/console/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// AdminHandler handles the moderation console endpoints
type AdminHandler struct {
	BaseHandler
	moderation *admin.ModerationService
	coupons    *admin.CouponService
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(moderation *admin.ModerationService, coupons *admin.CouponService) *AdminHandler {
	return &AdminHandler{moderation: moderation, coupons: coupons}
}

// ListPendingProducts handles GET /admin/products/pending
func (h *AdminHandler) ListPendingProducts(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid list parameters: "+err.Error())
		return
	}
	sess, _ := getSession(c)

	products, meta, err := h.moderation.ListPendingProducts(c.Request.Context(), sess, req.Options())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, products, meta)
}

// ApproveProduct handles POST /admin/products/:id/approve
func (h *AdminHandler) ApproveProduct(c *gin.Context) {
	productID, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}
	sess, _ := getSession(c)

	product, err := h.moderation.ApproveProduct(c.Request.Context(), sess, productID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// RejectProduct handles POST /admin/products/:id/reject
func (h *AdminHandler) RejectProduct(c *gin.Context) {
	productID, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	var req admin.VerdictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid verdict payload: "+err.Error())
		return
	}
	sess, _ := getSession(c)

	product, err := h.moderation.RejectProduct(c.Request.Context(), sess, productID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// ListChangeRequests handles GET /admin/change-requests
func (h *AdminHandler) ListChangeRequests(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid list parameters: "+err.Error())
		return
	}
	sess, _ := getSession(c)

	requests, meta, err := h.moderation.ListChangeRequests(c.Request.Context(), sess, req.Options())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, requests, meta)
}

// ApproveChangeRequest handles POST /admin/change-requests/:id/approve
func (h *AdminHandler) ApproveChangeRequest(c *gin.Context) {
	requestID, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid request ID")
		return
	}

	// the note is optional on approval, so an empty body is fine
	var req admin.VerdictRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.BadRequest(c, "Invalid verdict payload: "+err.Error())
			return
		}
	}
	sess, _ := getSession(c)

	request, err := h.moderation.ApproveChangeRequest(c.Request.Context(), sess, requestID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, request)
}

// RejectChangeRequest handles POST /admin/change-requests/:id/reject
func (h *AdminHandler) RejectChangeRequest(c *gin.Context) {
	requestID, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid request ID")
		return
	}

	var req admin.VerdictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid verdict payload: "+err.Error())
		return
	}
	sess, _ := getSession(c)

	request, err := h.moderation.RejectChangeRequest(c.Request.Context(), sess, requestID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, request)
}

// ListCategoryRequests handles GET /admin/category-requests
func (h *AdminHandler) ListCategoryRequests(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid list parameters: "+err.Error())
		return
	}
	sess, _ := getSession(c)

	requests, meta, err := h.moderation.ListCategoryRequests(c.Request.Context(), sess, req.Options())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, requests, meta)
}

// ApproveCategoryRequest handles POST /admin/category-requests/:id/approve
func (h *AdminHandler) ApproveCategoryRequest(c *gin.Context) {
	requestID, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid request ID")
		return
	}
	sess, _ := getSession(c)

	request, err := h.moderation.ApproveCategoryRequest(c.Request.Context(), sess, requestID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, request)
}

// RejectCategoryRequest handles POST /admin/category-requests/:id/reject
func (h *AdminHandler) RejectCategoryRequest(c *gin.Context) {
	requestID, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid request ID")
		return
	}

	var req admin.VerdictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid verdict payload: "+err.Error())
		return
	}
	sess, _ := getSession(c)

	request, err := h.moderation.RejectCategoryRequest(c.Request.Context(), sess, requestID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, request)
}

// ListCoupons handles GET /admin/coupons
func (h *AdminHandler) ListCoupons(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid list parameters: "+err.Error())
		return
	}
	sess, _ := getSession(c)

	coupons, meta, err := h.coupons.ListCoupons(c.Request.Context(), sess, req.Options())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, coupons, meta)
}

// CreateCoupon handles POST /admin/coupons
func (h *AdminHandler) CreateCoupon(c *gin.Context) {
	var body api.CouponBody
	if err := c.ShouldBindJSON(&body); err != nil {
		h.BadRequest(c, "Invalid coupon payload: "+err.Error())
		return
	}
	sess, _ := getSession(c)

	coupon, err := h.coupons.CreateCoupon(c.Request.Context(), sess, body)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, coupon)
}

// UpdateCoupon handles PUT /admin/coupons/:id
func (h *AdminHandler) UpdateCoupon(c *gin.Context) {
	couponID, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid coupon ID")
		return
	}

	var body api.CouponBody
	if err := c.ShouldBindJSON(&body); err != nil {
		h.BadRequest(c, "Invalid coupon payload: "+err.Error())
		return
	}
	sess, _ := getSession(c)

	coupon, err := h.coupons.UpdateCoupon(c.Request.Context(), sess, couponID, body)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, coupon)
}

// DeleteCoupon handles DELETE /admin/coupons/:id
func (h *AdminHandler) DeleteCoupon(c *gin.Context) {
	couponID, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid coupon ID")
		return
	}
	sess, _ := getSession(c)

	if err := h.coupons.DeleteCoupon(c.Request.Context(), sess, couponID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
