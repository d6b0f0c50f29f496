package api

import (
	"context"
	"net/http"
	"time"

	"github.com/bazaar/console/internal/domain/catalog"
	"github.com/bazaar/console/internal/domain/moderation"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReviewNoteBody carries the admin's note attached to a moderation verdict
type ReviewNoteBody struct {
	Note string `json:"note,omitempty"`
}

// Coupon is a platform-wide discount code managed by admins
type Coupon struct {
	ID            uuid.UUID       `json:"id"`
	Code          string          `json:"code"`
	DiscountType  string          `json:"discount_type"` // percentage or fixed
	DiscountValue decimal.Decimal `json:"discount_value"`
	MinSpend      decimal.Decimal `json:"min_spend"`
	UsageLimit    int64           `json:"usage_limit"`
	UsedCount     int64           `json:"used_count"`
	Active        bool            `json:"active"`
	ExpiresAt     *time.Time      `json:"expires_at,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// CouponBody is the payload for creating or updating a coupon
type CouponBody struct {
	Code          string          `json:"code"`
	DiscountType  string          `json:"discount_type"`
	DiscountValue decimal.Decimal `json:"discount_value"`
	MinSpend      decimal.Decimal `json:"min_spend"`
	UsageLimit    int64           `json:"usage_limit"`
	Active        bool            `json:"active"`
	ExpiresAt     *time.Time      `json:"expires_at,omitempty"`
}

// AdminListPendingProducts returns products awaiting first-publication review
func (c *Client) AdminListPendingProducts(ctx context.Context, token string, opts ListOptions) ([]catalog.Product, *PageMeta, error) {
	var products []catalog.Product
	meta, err := c.do(ctx, token, http.MethodGet, "/admin/products/pending", opts.values(), nil, &products)
	if err != nil {
		return nil, nil, err
	}
	return products, meta, nil
}

// AdminApproveProduct publishes a pending product
func (c *Client) AdminApproveProduct(ctx context.Context, token string, productID uuid.UUID) (*catalog.Product, error) {
	var product catalog.Product
	if _, err := c.do(ctx, token, http.MethodPost, "/admin/products/"+productID.String()+"/approve", nil, nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// AdminRejectProduct sends a pending product back to its merchant
func (c *Client) AdminRejectProduct(ctx context.Context, token string, productID uuid.UUID, body ReviewNoteBody) (*catalog.Product, error) {
	var product catalog.Product
	if _, err := c.do(ctx, token, http.MethodPost, "/admin/products/"+productID.String()+"/reject", nil, body, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// AdminListChangeRequests returns change requests across all merchants
func (c *Client) AdminListChangeRequests(ctx context.Context, token string, opts ListOptions) ([]moderation.ChangeRequest, *PageMeta, error) {
	var requests []moderation.ChangeRequest
	meta, err := c.do(ctx, token, http.MethodGet, "/admin/change-requests", opts.values(), nil, &requests)
	if err != nil {
		return nil, nil, err
	}
	return requests, meta, nil
}

// AdminApproveChangeRequest approves a change request; the marketplace
// applies the stored patch to the live entity as part of this call
func (c *Client) AdminApproveChangeRequest(ctx context.Context, token string, requestID uuid.UUID, body ReviewNoteBody) (*moderation.ChangeRequest, error) {
	var request moderation.ChangeRequest
	if _, err := c.do(ctx, token, http.MethodPost, "/admin/change-requests/"+requestID.String()+"/approve", nil, body, &request); err != nil {
		return nil, err
	}
	return &request, nil
}

// AdminRejectChangeRequest rejects a change request with an explanatory note
func (c *Client) AdminRejectChangeRequest(ctx context.Context, token string, requestID uuid.UUID, body ReviewNoteBody) (*moderation.ChangeRequest, error) {
	var request moderation.ChangeRequest
	if _, err := c.do(ctx, token, http.MethodPost, "/admin/change-requests/"+requestID.String()+"/reject", nil, body, &request); err != nil {
		return nil, err
	}
	return &request, nil
}

// AdminListCategoryRequests returns taxonomy suggestions across all merchants
func (c *Client) AdminListCategoryRequests(ctx context.Context, token string, opts ListOptions) ([]moderation.CategoryRequest, *PageMeta, error) {
	var requests []moderation.CategoryRequest
	meta, err := c.do(ctx, token, http.MethodGet, "/admin/category-requests", opts.values(), nil, &requests)
	if err != nil {
		return nil, nil, err
	}
	return requests, meta, nil
}

// AdminApproveCategoryRequest approves a taxonomy suggestion, creating the
// category platform-wide
func (c *Client) AdminApproveCategoryRequest(ctx context.Context, token string, requestID uuid.UUID) (*moderation.CategoryRequest, error) {
	var request moderation.CategoryRequest
	if _, err := c.do(ctx, token, http.MethodPost, "/admin/category-requests/"+requestID.String()+"/approve", nil, nil, &request); err != nil {
		return nil, err
	}
	return &request, nil
}

// AdminRejectCategoryRequest declines a taxonomy suggestion
func (c *Client) AdminRejectCategoryRequest(ctx context.Context, token string, requestID uuid.UUID, body ReviewNoteBody) (*moderation.CategoryRequest, error) {
	var request moderation.CategoryRequest
	if _, err := c.do(ctx, token, http.MethodPost, "/admin/category-requests/"+requestID.String()+"/reject", nil, body, &request); err != nil {
		return nil, err
	}
	return &request, nil
}

// AdminListCoupons returns all coupons
func (c *Client) AdminListCoupons(ctx context.Context, token string, opts ListOptions) ([]Coupon, *PageMeta, error) {
	var coupons []Coupon
	meta, err := c.do(ctx, token, http.MethodGet, "/admin/coupons", opts.values(), nil, &coupons)
	if err != nil {
		return nil, nil, err
	}
	return coupons, meta, nil
}

// AdminCreateCoupon creates a platform-wide coupon
func (c *Client) AdminCreateCoupon(ctx context.Context, token string, body CouponBody) (*Coupon, error) {
	var coupon Coupon
	if _, err := c.do(ctx, token, http.MethodPost, "/admin/coupons", nil, body, &coupon); err != nil {
		return nil, err
	}
	return &coupon, nil
}

// AdminUpdateCoupon updates an existing coupon
func (c *Client) AdminUpdateCoupon(ctx context.Context, token string, couponID uuid.UUID, body CouponBody) (*Coupon, error) {
	var coupon Coupon
	if _, err := c.do(ctx, token, http.MethodPut, "/admin/coupons/"+couponID.String(), nil, body, &coupon); err != nil {
		return nil, err
	}
	return &coupon, nil
}

// AdminDeleteCoupon removes a coupon
func (c *Client) AdminDeleteCoupon(ctx context.Context, token string, couponID uuid.UUID) error {
	_, err := c.do(ctx, token, http.MethodDelete, "/admin/coupons/"+couponID.String(), nil, nil, nil)
	return err
}
