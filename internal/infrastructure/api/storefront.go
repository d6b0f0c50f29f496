package api

import (
	"context"
	"net/http"

	"github.com/bazaar/console/internal/domain/catalog"
	"github.com/google/uuid"
)

// Category is a node of the public taxonomy tree
type Category struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Slug     string     `json:"slug"`
	ParentID string     `json:"parent_id,omitempty"`
	Children []Category `json:"children,omitempty"`
}

// BrowseProducts returns approved products visible to shoppers. No token is
// sent; the storefront surface is public.
func (c *Client) BrowseProducts(ctx context.Context, opts ListOptions) ([]catalog.Product, *PageMeta, error) {
	var products []catalog.Product
	meta, err := c.do(ctx, "", http.MethodGet, "/storefront/products", opts.values(), nil, &products)
	if err != nil {
		return nil, nil, err
	}
	return products, meta, nil
}

// BrowseProduct returns a single approved product with its variants
func (c *Client) BrowseProduct(ctx context.Context, productID uuid.UUID) (*catalog.Product, error) {
	var product catalog.Product
	if _, err := c.do(ctx, "", http.MethodGet, "/storefront/products/"+productID.String(), nil, nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// ListCategories returns the public category tree
func (c *Client) ListCategories(ctx context.Context) ([]Category, error) {
	var categories []Category
	if _, err := c.do(ctx, "", http.MethodGet, "/storefront/categories", nil, nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}
