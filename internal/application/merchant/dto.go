package merchant

import (
	"time"

	"github.com/shopspring/decimal"
)

// SubmitProductChangeRequest carries the full edit-form state for a product
// whose core fields are locked. The diff against current values is computed
// server-side here, never in the browser.
type SubmitProductChangeRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	CategoryIDs []string `json:"category_ids"`
	Reason      string   `json:"reason"`
}

// SubmitVariantChangeRequest carries the proposed variant fields
type SubmitVariantChangeRequest struct {
	SKU    string `json:"sku" binding:"required"`
	Reason string `json:"reason"`
}

// ChangeRequestDTO is a change request enriched with its presentation, ready
// for the request history view
type ChangeRequestDTO struct {
	ID               string         `json:"id"`
	EntityType       string         `json:"entity_type"`
	EntityID         string         `json:"entity_id"`
	RequestedChanges map[string]any `json:"requested_changes"`
	Reason           string         `json:"reason"`
	Status           string         `json:"status"`
	StatusLabel      string         `json:"status_label"`
	StatusCategory   string         `json:"status_category"`
	AdminNote        string         `json:"admin_note,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
}

// SuggestCategoryRequest carries a new-taxonomy proposal
type SuggestCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Slug        string `json:"slug" binding:"required,slug"`
	Description string `json:"description"`
}

// CategoryRequestDTO is a taxonomy suggestion with its presentation
type CategoryRequestDTO struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Slug           string    `json:"slug"`
	Description    string    `json:"description"`
	Status         string    `json:"status"`
	StatusLabel    string    `json:"status_label"`
	StatusCategory string    `json:"status_category"`
	AdminNote      string    `json:"admin_note,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// UpdateProductRequest is a direct edit. Nil fields are untouched; non-nil
// fields must currently be unlocked or the whole edit is refused.
type UpdateProductRequest struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	CategoryIDs []string         `json:"category_ids"`
	Price       *decimal.Decimal `json:"price"`
}

// UpdateVariantRequest is a direct variant edit
type UpdateVariantRequest struct {
	SKU   *string          `json:"sku"`
	Price *decimal.Decimal `json:"price"`
	Stock *int64           `json:"stock"`
}
