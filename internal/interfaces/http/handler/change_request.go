package handler

import (
	"github.com/bazaar/console/internal/application/merchant"
	"github.com/bazaar/console/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// ChangeRequestHandler handles the locked-field change request endpoints
type ChangeRequestHandler struct {
	BaseHandler
	service *merchant.ChangeRequestService
}

// NewChangeRequestHandler creates a new ChangeRequestHandler
func NewChangeRequestHandler(service *merchant.ChangeRequestService) *ChangeRequestHandler {
	return &ChangeRequestHandler{service: service}
}

// SubmitProductChange handles POST /merchant/products/:id/change-requests
func (h *ChangeRequestHandler) SubmitProductChange(c *gin.Context) {
	productID, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	var req merchant.SubmitProductChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid change request payload: "+err.Error())
		return
	}
	sess, _ := getSession(c)

	created, err := h.service.SubmitProductChange(c.Request.Context(), sess, productID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, created)
}

// SubmitVariantChange handles POST /merchant/variants/:id/change-requests
func (h *ChangeRequestHandler) SubmitVariantChange(c *gin.Context) {
	variantID, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid variant ID")
		return
	}

	var req merchant.SubmitVariantChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid change request payload: "+err.Error())
		return
	}
	sess, _ := getSession(c)

	created, err := h.service.SubmitVariantChange(c.Request.Context(), sess, variantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, created)
}

// List handles GET /merchant/change-requests
func (h *ChangeRequestHandler) List(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid list parameters: "+err.Error())
		return
	}
	sess, _ := getSession(c)

	requests, meta, err := h.service.ListChangeRequests(c.Request.Context(), sess, req.Options())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, requests, meta)
}

// SuggestCategory handles POST /merchant/category-requests
func (h *ChangeRequestHandler) SuggestCategory(c *gin.Context) {
	var req merchant.SuggestCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid category request payload: "+err.Error())
		return
	}
	sess, _ := getSession(c)

	created, err := h.service.SuggestCategory(c.Request.Context(), sess, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, created)
}

// ListCategoryRequests handles GET /merchant/category-requests
func (h *ChangeRequestHandler) ListCategoryRequests(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid list parameters: "+err.Error())
		return
	}
	sess, _ := getSession(c)

	requests, meta, err := h.service.ListCategoryRequests(c.Request.Context(), sess, req.Options())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, requests, meta)
}
