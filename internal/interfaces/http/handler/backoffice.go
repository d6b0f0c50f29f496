package handler

import (
	"github.com/bazaar/console/internal/application/merchant"
	"github.com/bazaar/console/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// BackofficeHandler handles the merchant's orders, wallet and reviews
type BackofficeHandler struct {
	BaseHandler
	orders  *merchant.OrderService
	wallet  *merchant.WalletService
	reviews *merchant.ReviewService
}

// NewBackofficeHandler creates a new BackofficeHandler
func NewBackofficeHandler(orders *merchant.OrderService, wallet *merchant.WalletService, reviews *merchant.ReviewService) *BackofficeHandler {
	return &BackofficeHandler{orders: orders, wallet: wallet, reviews: reviews}
}

// ListOrders handles GET /merchant/orders
func (h *BackofficeHandler) ListOrders(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid list parameters: "+err.Error())
		return
	}
	sess, _ := getSession(c)

	orders, meta, err := h.orders.ListOrders(c.Request.Context(), sess, req.Options())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, orders, meta)
}

// GetOrder handles GET /merchant/orders/:id
func (h *BackofficeHandler) GetOrder(c *gin.Context) {
	orderID, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid order ID")
		return
	}
	sess, _ := getSession(c)

	order, err := h.orders.GetOrder(c.Request.Context(), sess, orderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}

// ShipOrder handles POST /merchant/orders/:id/ship
func (h *BackofficeHandler) ShipOrder(c *gin.Context) {
	orderID, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	var req merchant.ShipOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid shipping payload: "+err.Error())
		return
	}
	sess, _ := getSession(c)

	order, err := h.orders.ShipOrder(c.Request.Context(), sess, orderID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}

// GetWallet handles GET /merchant/wallet
func (h *BackofficeHandler) GetWallet(c *gin.Context) {
	sess, _ := getSession(c)

	wallet, err := h.wallet.GetWallet(c.Request.Context(), sess)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, wallet)
}

// ListPayouts handles GET /merchant/wallet/payouts
func (h *BackofficeHandler) ListPayouts(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid list parameters: "+err.Error())
		return
	}
	sess, _ := getSession(c)

	payouts, meta, err := h.wallet.ListPayouts(c.Request.Context(), sess, req.Options())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, payouts, meta)
}

// RequestPayout handles POST /merchant/wallet/payouts
func (h *BackofficeHandler) RequestPayout(c *gin.Context) {
	var req merchant.PayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid payout payload: "+err.Error())
		return
	}
	sess, _ := getSession(c)

	payout, err := h.wallet.RequestPayout(c.Request.Context(), sess, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, payout)
}

// ListReviews handles GET /merchant/reviews
func (h *BackofficeHandler) ListReviews(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid list parameters: "+err.Error())
		return
	}
	sess, _ := getSession(c)

	reviews, meta, err := h.reviews.ListReviews(c.Request.Context(), sess, req.Options())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, reviews, meta)
}

// ReplyReview handles POST /merchant/reviews/:id/reply
func (h *BackofficeHandler) ReplyReview(c *gin.Context) {
	reviewID, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid review ID")
		return
	}

	var req merchant.ReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid reply payload: "+err.Error())
		return
	}
	sess, _ := getSession(c)

	review, err := h.reviews.ReplyReview(c.Request.Context(), sess, reviewID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, review)
}
