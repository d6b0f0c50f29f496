package api

import (
	"context"
	"net/http"

	"github.com/bazaar/console/internal/domain/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateProductBody is the payload for creating a draft product
type CreateProductBody struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	CategoryIDs []string        `json:"category_ids"`
	Price       decimal.Decimal `json:"price"`
}

// UpdateProductBody is a partial update; nil fields are left untouched.
// The gateway only ever places unlocked fields here.
type UpdateProductBody struct {
	Title       *string          `json:"title,omitempty"`
	Description *string          `json:"description,omitempty"`
	CategoryIDs []string         `json:"category_ids,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
}

// CreateVariantBody is the payload for adding a variant to a product
type CreateVariantBody struct {
	SKU   string          `json:"sku"`
	Price decimal.Decimal `json:"price"`
	Stock int64           `json:"stock"`
}

// UpdateVariantBody is a partial variant update
type UpdateVariantBody struct {
	SKU   *string          `json:"sku,omitempty"`
	Price *decimal.Decimal `json:"price,omitempty"`
	Stock *int64           `json:"stock,omitempty"`
}

// StockAdjustmentBody adjusts a variant's available stock by a signed delta
type StockAdjustmentBody struct {
	Delta int64  `json:"delta"`
	Note  string `json:"note,omitempty"`
}

// ListProducts returns the merchant's own products
func (c *Client) ListProducts(ctx context.Context, token string, opts ListOptions) ([]catalog.Product, *PageMeta, error) {
	var products []catalog.Product
	meta, err := c.do(ctx, token, http.MethodGet, "/merchants/products", opts.values(), nil, &products)
	if err != nil {
		return nil, nil, err
	}
	return products, meta, nil
}

// GetProduct returns one of the merchant's products
func (c *Client) GetProduct(ctx context.Context, token string, productID uuid.UUID) (*catalog.Product, error) {
	var product catalog.Product
	if _, err := c.do(ctx, token, http.MethodGet, "/merchants/products/"+productID.String(), nil, nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// CreateProduct creates a new draft product
func (c *Client) CreateProduct(ctx context.Context, token string, body CreateProductBody) (*catalog.Product, error) {
	var product catalog.Product
	if _, err := c.do(ctx, token, http.MethodPost, "/merchants/products", nil, body, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateProduct applies a direct (unlocked-field) update
func (c *Client) UpdateProduct(ctx context.Context, token string, productID uuid.UUID, body UpdateProductBody) (*catalog.Product, error) {
	var product catalog.Product
	if _, err := c.do(ctx, token, http.MethodPatch, "/merchants/products/"+productID.String(), nil, body, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// SubmitProductForReview moves a draft or rejected product into the
// moderation queue
func (c *Client) SubmitProductForReview(ctx context.Context, token string, productID uuid.UUID) (*catalog.Product, error) {
	var product catalog.Product
	if _, err := c.do(ctx, token, http.MethodPost, "/merchants/products/"+productID.String()+"/submit", nil, nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// ListVariants returns the variants of a product
func (c *Client) ListVariants(ctx context.Context, token string, productID uuid.UUID) ([]catalog.Variant, error) {
	var variants []catalog.Variant
	if _, err := c.do(ctx, token, http.MethodGet, "/merchants/products/"+productID.String()+"/variants", nil, nil, &variants); err != nil {
		return nil, err
	}
	return variants, nil
}

// GetVariant returns a single variant
func (c *Client) GetVariant(ctx context.Context, token string, variantID uuid.UUID) (*catalog.Variant, error) {
	var variant catalog.Variant
	if _, err := c.do(ctx, token, http.MethodGet, "/merchants/variants/"+variantID.String(), nil, nil, &variant); err != nil {
		return nil, err
	}
	return &variant, nil
}

// CreateVariant adds a variant to a product
func (c *Client) CreateVariant(ctx context.Context, token string, productID uuid.UUID, body CreateVariantBody) (*catalog.Variant, error) {
	var variant catalog.Variant
	if _, err := c.do(ctx, token, http.MethodPost, "/merchants/products/"+productID.String()+"/variants", nil, body, &variant); err != nil {
		return nil, err
	}
	return &variant, nil
}

// UpdateVariant applies a direct (unlocked-field) variant update
func (c *Client) UpdateVariant(ctx context.Context, token string, variantID uuid.UUID, body UpdateVariantBody) (*catalog.Variant, error) {
	var variant catalog.Variant
	if _, err := c.do(ctx, token, http.MethodPatch, "/merchants/variants/"+variantID.String(), nil, body, &variant); err != nil {
		return nil, err
	}
	return &variant, nil
}

// AdjustVariantStock changes available stock by a signed delta
func (c *Client) AdjustVariantStock(ctx context.Context, token string, variantID uuid.UUID, body StockAdjustmentBody) (*catalog.Variant, error) {
	var variant catalog.Variant
	if _, err := c.do(ctx, token, http.MethodPost, "/merchants/variants/"+variantID.String()+"/stock-adjustments", nil, body, &variant); err != nil {
		return nil, err
	}
	return &variant, nil
}
