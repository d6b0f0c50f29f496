package merchant

import (
	"context"
	"testing"

	"github.com/bazaar/console/internal/domain/catalog"
	"github.com/bazaar/console/internal/domain/shared"
	"github.com/bazaar/console/internal/infrastructure/api"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeCatalogAPI serves a fixed product/variant and records update calls
type fakeCatalogAPI struct {
	product *catalog.Product
	variant *catalog.Variant

	updateProductCalls int
	updateVariantCalls int
	lastProductBody    *api.UpdateProductBody
}

func (f *fakeCatalogAPI) ListProducts(_ context.Context, _ string, _ api.ListOptions) ([]catalog.Product, *api.PageMeta, error) {
	return []catalog.Product{*f.product}, &api.PageMeta{Total: 1, Page: 1, PageSize: 20, TotalPages: 1}, nil
}

func (f *fakeCatalogAPI) GetProduct(_ context.Context, _ string, _ uuid.UUID) (*catalog.Product, error) {
	return f.product, nil
}

func (f *fakeCatalogAPI) CreateProduct(_ context.Context, _ string, body api.CreateProductBody) (*catalog.Product, error) {
	return &catalog.Product{ID: uuid.New(), Title: body.Title, Status: catalog.EntityStatusDraft}, nil
}

func (f *fakeCatalogAPI) UpdateProduct(_ context.Context, _ string, _ uuid.UUID, body api.UpdateProductBody) (*catalog.Product, error) {
	f.updateProductCalls++
	f.lastProductBody = &body
	updated := *f.product
	if body.Title != nil {
		updated.Title = *body.Title
	}
	if body.Description != nil {
		updated.Description = *body.Description
	}
	return &updated, nil
}

func (f *fakeCatalogAPI) SubmitProductForReview(_ context.Context, _ string, _ uuid.UUID) (*catalog.Product, error) {
	submitted := *f.product
	submitted.Status = catalog.EntityStatusPending
	return &submitted, nil
}

func (f *fakeCatalogAPI) ListVariants(_ context.Context, _ string, _ uuid.UUID) ([]catalog.Variant, error) {
	return []catalog.Variant{*f.variant}, nil
}

func (f *fakeCatalogAPI) GetVariant(_ context.Context, _ string, _ uuid.UUID) (*catalog.Variant, error) {
	return f.variant, nil
}

func (f *fakeCatalogAPI) CreateVariant(_ context.Context, _ string, _ uuid.UUID, body api.CreateVariantBody) (*catalog.Variant, error) {
	return &catalog.Variant{ID: uuid.New(), SKU: body.SKU, Status: catalog.EntityStatusDraft}, nil
}

func (f *fakeCatalogAPI) UpdateVariant(_ context.Context, _ string, _ uuid.UUID, body api.UpdateVariantBody) (*catalog.Variant, error) {
	f.updateVariantCalls++
	updated := *f.variant
	if body.SKU != nil {
		updated.SKU = *body.SKU
	}
	return &updated, nil
}

func (f *fakeCatalogAPI) AdjustVariantStock(_ context.Context, _ string, _ uuid.UUID, body api.StockAdjustmentBody) (*catalog.Variant, error) {
	updated := *f.variant
	updated.Stock += body.Delta
	return &updated, nil
}

func newFakeCatalog(status catalog.EntityStatus) *fakeCatalogAPI {
	return &fakeCatalogAPI{
		product: &catalog.Product{
			ID:          uuid.New(),
			Title:       "Walnut Standing Desk",
			Description: "Solid walnut",
			CategoryIDs: []string{"cat-furniture"},
			Price:       decimal.NewFromInt(499),
			Status:      status,
		},
		variant: &catalog.Variant{
			ID:     uuid.New(),
			SKU:    "DESK-WAL-120",
			Stock:  10,
			Status: status,
		},
	}
}

func strPtr(s string) *string { return &s }

func TestUpdateProductLockGuard(t *testing.T) {
	t.Run("locked title is refused without a write", func(t *testing.T) {
		fake := newFakeCatalog(catalog.EntityStatusApproved)
		service := NewProductService(fake, zap.NewNop())

		_, err := service.UpdateProduct(context.Background(), testSession(), fake.product.ID, UpdateProductRequest{
			Title: strPtr("New Title"),
		})
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "FIELD_LOCKED", domainErr.Code)
		assert.Equal(t, 0, fake.updateProductCalls)
	})

	t.Run("price stays editable while locked", func(t *testing.T) {
		fake := newFakeCatalog(catalog.EntityStatusApproved)
		service := NewProductService(fake, zap.NewNop())

		price := decimal.NewFromInt(529)
		_, err := service.UpdateProduct(context.Background(), testSession(), fake.product.ID, UpdateProductRequest{
			Price: &price,
		})
		require.NoError(t, err)
		assert.Equal(t, 1, fake.updateProductCalls)
		assert.Nil(t, fake.lastProductBody.Title)
		require.NotNil(t, fake.lastProductBody.Price)
		assert.True(t, fake.lastProductBody.Price.Equal(price))
	})

	t.Run("draft products accept core edits directly", func(t *testing.T) {
		fake := newFakeCatalog(catalog.EntityStatusDraft)
		service := NewProductService(fake, zap.NewNop())

		dto, err := service.UpdateProduct(context.Background(), testSession(), fake.product.ID, UpdateProductRequest{
			Title:       strPtr("Renamed Desk"),
			CategoryIDs: []string{"cat-office"},
		})
		require.NoError(t, err)
		assert.Equal(t, "Renamed Desk", dto.Title)
		assert.Equal(t, 1, fake.updateProductCalls)
	})

	t.Run("rejected products accept core edits directly", func(t *testing.T) {
		fake := newFakeCatalog(catalog.EntityStatusRejected)
		service := NewProductService(fake, zap.NewNop())

		_, err := service.UpdateProduct(context.Background(), testSession(), fake.product.ID, UpdateProductRequest{
			Description: strPtr("Reworked description"),
		})
		assert.NoError(t, err)
	})

	t.Run("pending products lock core fields", func(t *testing.T) {
		fake := newFakeCatalog(catalog.EntityStatusPending)
		service := NewProductService(fake, zap.NewNop())

		_, err := service.UpdateProduct(context.Background(), testSession(), fake.product.ID, UpdateProductRequest{
			CategoryIDs: []string{"cat-office"},
		})
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "FIELD_LOCKED", domainErr.Code)
	})
}

func TestUpdateVariantLockGuard(t *testing.T) {
	t.Run("locked sku is refused", func(t *testing.T) {
		fake := newFakeCatalog(catalog.EntityStatusApproved)
		service := NewProductService(fake, zap.NewNop())

		_, err := service.UpdateVariant(context.Background(), testSession(), fake.variant.ID, UpdateVariantRequest{
			SKU: strPtr("DESK-WAL-140"),
		})
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "FIELD_LOCKED", domainErr.Code)
		assert.Equal(t, 0, fake.updateVariantCalls)
	})

	t.Run("stock stays editable while locked", func(t *testing.T) {
		fake := newFakeCatalog(catalog.EntityStatusApproved)
		service := NewProductService(fake, zap.NewNop())

		stock := int64(25)
		_, err := service.UpdateVariant(context.Background(), testSession(), fake.variant.ID, UpdateVariantRequest{
			Stock: &stock,
		})
		assert.NoError(t, err)
		assert.Equal(t, 1, fake.updateVariantCalls)
	})
}

func TestProductDTOFieldLocks(t *testing.T) {
	t.Run("approved product exposes locked core fields", func(t *testing.T) {
		fake := newFakeCatalog(catalog.EntityStatusApproved)
		service := NewProductService(fake, zap.NewNop())

		dto, err := service.GetProduct(context.Background(), testSession(), fake.product.ID)
		require.NoError(t, err)
		assert.Equal(t, map[string]bool{
			"title":        true,
			"description":  true,
			"category_ids": true,
		}, dto.FieldLocks)
	})

	t.Run("draft product exposes unlocked core fields", func(t *testing.T) {
		fake := newFakeCatalog(catalog.EntityStatusDraft)
		service := NewProductService(fake, zap.NewNop())

		dto, err := service.GetProduct(context.Background(), testSession(), fake.product.ID)
		require.NoError(t, err)
		assert.Equal(t, map[string]bool{
			"title":        false,
			"description":  false,
			"category_ids": false,
		}, dto.FieldLocks)
	})
}

func TestAdjustStock(t *testing.T) {
	fake := newFakeCatalog(catalog.EntityStatusApproved)
	service := NewProductService(fake, zap.NewNop())

	dto, err := service.AdjustStock(context.Background(), testSession(), fake.variant.ID, api.StockAdjustmentBody{Delta: -3})
	require.NoError(t, err)
	assert.Equal(t, int64(7), dto.Stock)
}
