package merchant

import (
	"context"

	"github.com/bazaar/console/internal/domain/catalog"
	"github.com/bazaar/console/internal/domain/shared"
	"github.com/bazaar/console/internal/infrastructure/api"
	"github.com/bazaar/console/internal/infrastructure/session"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CatalogAPI is the slice of the marketplace client used for direct catalog
// management
type CatalogAPI interface {
	ListProducts(ctx context.Context, token string, opts api.ListOptions) ([]catalog.Product, *api.PageMeta, error)
	GetProduct(ctx context.Context, token string, productID uuid.UUID) (*catalog.Product, error)
	CreateProduct(ctx context.Context, token string, body api.CreateProductBody) (*catalog.Product, error)
	UpdateProduct(ctx context.Context, token string, productID uuid.UUID, body api.UpdateProductBody) (*catalog.Product, error)
	SubmitProductForReview(ctx context.Context, token string, productID uuid.UUID) (*catalog.Product, error)
	ListVariants(ctx context.Context, token string, productID uuid.UUID) ([]catalog.Variant, error)
	GetVariant(ctx context.Context, token string, variantID uuid.UUID) (*catalog.Variant, error)
	CreateVariant(ctx context.Context, token string, productID uuid.UUID, body api.CreateVariantBody) (*catalog.Variant, error)
	UpdateVariant(ctx context.Context, token string, variantID uuid.UUID, body api.UpdateVariantBody) (*catalog.Variant, error)
	AdjustVariantStock(ctx context.Context, token string, variantID uuid.UUID, body api.StockAdjustmentBody) (*catalog.Variant, error)
}

// ProductDTO is a product with the lock state of each review-protected field,
// so edit forms disable exactly the inputs the guard would refuse.
type ProductDTO struct {
	catalog.Product
	FieldLocks map[string]bool `json:"field_locks"`
}

// VariantDTO is a variant with its field lock states
type VariantDTO struct {
	catalog.Variant
	FieldLocks map[string]bool `json:"field_locks"`
}

// ProductService manages the merchant's own catalog
type ProductService struct {
	api    CatalogAPI
	logger *zap.Logger
}

// NewProductService creates a new ProductService
func NewProductService(catalogAPI CatalogAPI, logger *zap.Logger) *ProductService {
	return &ProductService{api: catalogAPI, logger: logger}
}

// ListProducts returns the merchant's products with lock states
func (s *ProductService) ListProducts(ctx context.Context, sess *session.Session, opts api.ListOptions) ([]ProductDTO, *api.PageMeta, error) {
	products, meta, err := s.api.ListProducts(ctx, sess.AccessToken, opts)
	if err != nil {
		return nil, nil, asReadError(err)
	}

	dtos := make([]ProductDTO, 0, len(products))
	for _, product := range products {
		dtos = append(dtos, toProductDTO(product))
	}
	return dtos, meta, nil
}

// GetProduct returns one product with lock states
func (s *ProductService) GetProduct(ctx context.Context, sess *session.Session, productID uuid.UUID) (*ProductDTO, error) {
	product, err := s.api.GetProduct(ctx, sess.AccessToken, productID)
	if err != nil {
		return nil, asReadError(err)
	}
	dto := toProductDTO(*product)
	return &dto, nil
}

// CreateProduct creates a new draft product
func (s *ProductService) CreateProduct(ctx context.Context, sess *session.Session, body api.CreateProductBody) (*ProductDTO, error) {
	product, err := s.api.CreateProduct(ctx, sess.AccessToken, body)
	if err != nil {
		return nil, asSubmissionError(err)
	}

	s.logger.Info("product created",
		zap.String("product_id", product.ID.String()),
		zap.String("account_id", sess.AccountID.String()),
	)
	dto := toProductDTO(*product)
	return &dto, nil
}

// UpdateProduct applies a direct edit. Any touched field that is currently
// locked fails the whole edit before the write reaches the marketplace; the
// change request flow is the only path for locked fields.
func (s *ProductService) UpdateProduct(ctx context.Context, sess *session.Session, productID uuid.UUID, req UpdateProductRequest) (*ProductDTO, error) {
	product, err := s.api.GetProduct(ctx, sess.AccessToken, productID)
	if err != nil {
		return nil, asReadError(err)
	}

	if req.Title != nil {
		if err := guardField(product.Status, catalog.EntityTypeProduct, catalog.FieldTitle); err != nil {
			return nil, err
		}
	}
	if req.Description != nil {
		if err := guardField(product.Status, catalog.EntityTypeProduct, catalog.FieldDescription); err != nil {
			return nil, err
		}
	}
	if req.CategoryIDs != nil {
		if err := guardField(product.Status, catalog.EntityTypeProduct, catalog.FieldCategoryIDs); err != nil {
			return nil, err
		}
	}

	updated, err := s.api.UpdateProduct(ctx, sess.AccessToken, productID, api.UpdateProductBody{
		Title:       req.Title,
		Description: req.Description,
		CategoryIDs: req.CategoryIDs,
		Price:       req.Price,
	})
	if err != nil {
		return nil, asSubmissionError(err)
	}
	dto := toProductDTO(*updated)
	return &dto, nil
}

// SubmitForReview moves a draft or rejected product into the moderation queue
func (s *ProductService) SubmitForReview(ctx context.Context, sess *session.Session, productID uuid.UUID) (*ProductDTO, error) {
	product, err := s.api.SubmitProductForReview(ctx, sess.AccessToken, productID)
	if err != nil {
		return nil, asSubmissionError(err)
	}

	s.logger.Info("product submitted for review", zap.String("product_id", product.ID.String()))
	dto := toProductDTO(*product)
	return &dto, nil
}

// ListVariants returns a product's variants with lock states
func (s *ProductService) ListVariants(ctx context.Context, sess *session.Session, productID uuid.UUID) ([]VariantDTO, error) {
	variants, err := s.api.ListVariants(ctx, sess.AccessToken, productID)
	if err != nil {
		return nil, asReadError(err)
	}

	dtos := make([]VariantDTO, 0, len(variants))
	for _, variant := range variants {
		dtos = append(dtos, toVariantDTO(variant))
	}
	return dtos, nil
}

// CreateVariant adds a variant to a product
func (s *ProductService) CreateVariant(ctx context.Context, sess *session.Session, productID uuid.UUID, body api.CreateVariantBody) (*VariantDTO, error) {
	variant, err := s.api.CreateVariant(ctx, sess.AccessToken, productID, body)
	if err != nil {
		return nil, asSubmissionError(err)
	}
	dto := toVariantDTO(*variant)
	return &dto, nil
}

// UpdateVariant applies a direct variant edit with the same lock guard as
// products; only the SKU is review-protected.
func (s *ProductService) UpdateVariant(ctx context.Context, sess *session.Session, variantID uuid.UUID, req UpdateVariantRequest) (*VariantDTO, error) {
	variant, err := s.api.GetVariant(ctx, sess.AccessToken, variantID)
	if err != nil {
		return nil, asReadError(err)
	}

	if req.SKU != nil {
		if err := guardField(variant.Status, catalog.EntityTypeVariant, catalog.FieldSKU); err != nil {
			return nil, err
		}
	}

	updated, err := s.api.UpdateVariant(ctx, sess.AccessToken, variantID, api.UpdateVariantBody{
		SKU:   req.SKU,
		Price: req.Price,
		Stock: req.Stock,
	})
	if err != nil {
		return nil, asSubmissionError(err)
	}
	dto := toVariantDTO(*updated)
	return &dto, nil
}

// AdjustStock changes a variant's available stock by a signed delta. Stock is
// never review-protected.
func (s *ProductService) AdjustStock(ctx context.Context, sess *session.Session, variantID uuid.UUID, body api.StockAdjustmentBody) (*VariantDTO, error) {
	variant, err := s.api.AdjustVariantStock(ctx, sess.AccessToken, variantID, body)
	if err != nil {
		return nil, asSubmissionError(err)
	}
	dto := toVariantDTO(*variant)
	return &dto, nil
}

// guardField refuses a direct edit to a locked field
func guardField(status catalog.EntityStatus, entityType catalog.EntityType, field string) error {
	if catalog.IsLocked(status, entityType, field) {
		return shared.NewDomainError("FIELD_LOCKED", "The field \""+field+"\" requires an approved change request while the listing is under review or published")
	}
	return nil
}

func toProductDTO(product catalog.Product) ProductDTO {
	return ProductDTO{
		Product:    product,
		FieldLocks: catalog.FieldLocks(product.Status, catalog.EntityTypeProduct),
	}
}

func toVariantDTO(variant catalog.Variant) VariantDTO {
	return VariantDTO{
		Variant:    variant,
		FieldLocks: catalog.FieldLocks(variant.Status, catalog.EntityTypeVariant),
	}
}
