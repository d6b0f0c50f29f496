package catalog

import (
	"sort"

	"github.com/bazaar/console/internal/domain/shared"
)

// ErrNoChangesDetected is returned when a proposed edit matches the current
// published values field for field. A change request must never be created
// from an empty diff.
var ErrNoChangesDetected = shared.NewDomainError("NO_CHANGES_DETECTED", "No changes detected")

// ProductChange is the minimal patch for a product's review-protected fields.
// A nil field means "unchanged". CategoryIDs is a pointer so that clearing
// every category (a change to the empty set) stays distinct from not touching
// the field at all.
type ProductChange struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	CategoryIDs *[]string `json:"category_ids,omitempty"`
}

// IsEmpty returns true if no field differs
func (c ProductChange) IsEmpty() bool {
	return c.Title == nil && c.Description == nil && c.CategoryIDs == nil
}

// Patch renders the change as the field-to-value mapping the marketplace API
// expects in requested_changes. A cleared category list appears as an empty
// list, never as an absent key.
func (c ProductChange) Patch() map[string]any {
	patch := make(map[string]any)
	if c.Title != nil {
		patch[FieldTitle] = *c.Title
	}
	if c.Description != nil {
		patch[FieldDescription] = *c.Description
	}
	if c.CategoryIDs != nil {
		ids := make([]string, len(*c.CategoryIDs))
		copy(ids, *c.CategoryIDs)
		patch[FieldCategoryIDs] = ids
	}
	return patch
}

// VariantChange is the minimal patch for a variant's review-protected fields
type VariantChange struct {
	SKU *string `json:"sku,omitempty"`
}

// IsEmpty returns true if no field differs
func (c VariantChange) IsEmpty() bool {
	return c.SKU == nil
}

// Patch renders the change as a field-to-value mapping
func (c VariantChange) Patch() map[string]any {
	patch := make(map[string]any)
	if c.SKU != nil {
		patch[FieldSKU] = *c.SKU
	}
	return patch
}

// BuildProductDiff compares the current published fields against the proposed
// ones and keeps only what differs. Category IDs are compared as unordered
// sets: selection order carries no meaning, so [a,b] equals [b,a]. All values
// are copied, never aliased, so later edits to the form state cannot alter a
// diff that was already built.
func BuildProductDiff(current, proposed ProductFields) (ProductChange, error) {
	var change ProductChange

	if proposed.Title != current.Title {
		title := proposed.Title
		change.Title = &title
	}
	if proposed.Description != current.Description {
		description := proposed.Description
		change.Description = &description
	}
	if !sameCategorySet(current.CategoryIDs, proposed.CategoryIDs) {
		ids := make([]string, len(proposed.CategoryIDs))
		copy(ids, proposed.CategoryIDs)
		change.CategoryIDs = &ids
	}

	if change.IsEmpty() {
		return ProductChange{}, ErrNoChangesDetected
	}
	return change, nil
}

// BuildVariantDiff compares the current variant fields against the proposed
// ones. Only the SKU requires review for variants.
func BuildVariantDiff(current, proposed VariantFields) (VariantChange, error) {
	var change VariantChange

	if proposed.SKU != current.SKU {
		sku := proposed.SKU
		change.SKU = &sku
	}

	if change.IsEmpty() {
		return VariantChange{}, ErrNoChangesDetected
	}
	return change, nil
}

// sameCategorySet compares two ID lists ignoring order. Both sides are sorted
// into scratch copies before the element-wise check.
func sameCategorySet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	as := append([]string(nil), a...)
	bs := append([]string(nil), b...)
	sort.Strings(as)
	sort.Strings(bs)
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}
