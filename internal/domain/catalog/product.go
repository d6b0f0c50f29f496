package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is the merchant-facing read model of a catalog product as served
// by the marketplace API. The console never mutates it locally; every write
// goes back through the API.
type Product struct {
	ID          uuid.UUID       `json:"id"`
	MerchantID  uuid.UUID       `json:"merchant_id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	CategoryIDs []string        `json:"category_ids"`
	Price       decimal.Decimal `json:"price"`
	Status      EntityStatus    `json:"status"`
	Variants    []Variant       `json:"variants,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Variant is the read model of a purchasable variation of a product
type Variant struct {
	ID        uuid.UUID       `json:"id"`
	ProductID uuid.UUID       `json:"product_id"`
	SKU       string          `json:"sku"`
	Price     decimal.Decimal `json:"price"`
	Stock     int64           `json:"stock"`
	Status    EntityStatus    `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ProductFields is the review-protected slice of a product. It seeds edit
// forms and is what the diff builder compares.
type ProductFields struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	CategoryIDs []string `json:"category_ids"`
}

// VariantFields is the review-protected slice of a variant
type VariantFields struct {
	SKU string `json:"sku"`
}

// Fields extracts the review-protected fields by value. The category list is
// copied so edits to the returned struct cannot reach the product.
func (p *Product) Fields() ProductFields {
	return ProductFields{
		Title:       p.Title,
		Description: p.Description,
		CategoryIDs: append([]string(nil), p.CategoryIDs...),
	}
}

// Fields extracts the review-protected fields of a variant
func (v *Variant) Fields() VariantFields {
	return VariantFields{SKU: v.SKU}
}
