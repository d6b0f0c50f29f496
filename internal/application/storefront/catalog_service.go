// Package storefront serves the public, unauthenticated shop surface. Only
// approved listings are visible; the marketplace enforces that, the console
// just passes the pages through.
package storefront

import (
	"context"

	"github.com/bazaar/console/internal/domain/catalog"
	"github.com/bazaar/console/internal/domain/shared"
	"github.com/bazaar/console/internal/infrastructure/api"
	"github.com/google/uuid"
)

const (
	defaultPageSize = 24
	maxPageSize     = 100
)

// StorefrontAPI is the slice of the marketplace client used by shoppers
type StorefrontAPI interface {
	BrowseProducts(ctx context.Context, opts api.ListOptions) ([]catalog.Product, *api.PageMeta, error)
	BrowseProduct(ctx context.Context, productID uuid.UUID) (*catalog.Product, error)
	ListCategories(ctx context.Context) ([]api.Category, error)
}

// CatalogService is the public browse surface
type CatalogService struct {
	api StorefrontAPI
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(storefrontAPI StorefrontAPI) *CatalogService {
	return &CatalogService{api: storefrontAPI}
}

// BrowseProducts lists approved products with clamped pagination
func (s *CatalogService) BrowseProducts(ctx context.Context, opts api.ListOptions) ([]catalog.Product, *api.PageMeta, error) {
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.PageSize < 1 {
		opts.PageSize = defaultPageSize
	}
	if opts.PageSize > maxPageSize {
		opts.PageSize = maxPageSize
	}

	return s.api.BrowseProducts(ctx, opts)
}

// BrowseProduct returns one approved product with its variants
func (s *CatalogService) BrowseProduct(ctx context.Context, productID uuid.UUID) (*catalog.Product, error) {
	product, err := s.api.BrowseProduct(ctx, productID)
	if err != nil {
		if api.IsNotFound(err) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return product, nil
}

// ListCategories returns the public category tree
func (s *CatalogService) ListCategories(ctx context.Context) ([]api.Category, error) {
	return s.api.ListCategories(ctx)
}
