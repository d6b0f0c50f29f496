package catalog

// EntityType identifies which kind of catalog record a change targets
type EntityType string

const (
	EntityTypeProduct EntityType = "PRODUCT"
	EntityTypeVariant EntityType = "VARIANT"
)

// EntityStatus represents the moderation lifecycle state of a product or variant
type EntityStatus string

const (
	EntityStatusDraft    EntityStatus = "DRAFT"
	EntityStatusPending  EntityStatus = "PENDING"
	EntityStatusApproved EntityStatus = "APPROVED"
	EntityStatusRejected EntityStatus = "REJECTED"
)

// Field names shared between the lock policy and the diff builder
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldCategoryIDs = "category_ids"
	FieldSKU         = "sku"
)

// coreFields is the single definition of which fields require admin review
// once an entity has left DRAFT/REJECTED. The diff builder and the edit guard
// in the merchant service both read from here; the field list must not be
// re-declared anywhere else.
var coreFields = map[EntityType][]string{
	EntityTypeProduct: {FieldTitle, FieldDescription, FieldCategoryIDs},
	EntityTypeVariant: {FieldSKU},
}

// CoreFields returns the review-protected field names for an entity type.
// The returned slice is a copy.
func CoreFields(entityType EntityType) []string {
	fields := coreFields[entityType]
	out := make([]string, len(fields))
	copy(out, fields)
	return out
}

// IsCoreField returns true if the field requires admin review to change
// once the entity is under or past review
func IsCoreField(entityType EntityType, field string) bool {
	for _, f := range coreFields[entityType] {
		if f == field {
			return true
		}
	}
	return false
}

// RequiresReview returns true if direct edits to core fields are blocked
// in the given status
func RequiresReview(status EntityStatus) bool {
	return status == EntityStatusApproved || status == EntityStatusPending
}

// IsLocked returns true if the field may only be changed through a change
// request while the entity is in the given status
func IsLocked(status EntityStatus, entityType EntityType, field string) bool {
	if !RequiresReview(status) {
		return false
	}
	return IsCoreField(entityType, field)
}

// FieldLocks returns the lock state of every core field for form rendering,
// so the edit form and the diff builder cannot disagree on what is editable
func FieldLocks(status EntityStatus, entityType EntityType) map[string]bool {
	locks := make(map[string]bool)
	for _, f := range coreFields[entityType] {
		locks[f] = IsLocked(status, entityType, f)
	}
	return locks
}
