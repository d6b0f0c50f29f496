package moderation

import (
	"strings"
	"time"

	"github.com/bazaar/console/internal/domain/catalog"
	"github.com/bazaar/console/internal/domain/shared"
	"github.com/google/uuid"
)

// RequestStatus is the review lifecycle of a merchant-submitted request.
// It starts at PENDING and is moved exactly once to a terminal state by the
// admin review process; this code only ever reads it back.
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "PENDING"
	RequestStatusApproved RequestStatus = "APPROVED"
	RequestStatusRejected RequestStatus = "REJECTED"
)

// ErrMissingReason is returned when a request is submitted without a
// justification
var ErrMissingReason = shared.NewDomainError("MISSING_REASON", "A reason for the change is required")

// ChangeRequest is a persisted proposal to patch review-protected fields on a
// product or variant. requested_changes holds only fields whose proposed
// value differs from the current one at submission time, and is applied
// verbatim by the backend upon approval.
type ChangeRequest struct {
	ID               uuid.UUID           `json:"id"`
	EntityType       catalog.EntityType  `json:"entity_type"`
	EntityID         uuid.UUID           `json:"entity_id"`
	RequestedChanges map[string]any      `json:"requested_changes"`
	Reason           string              `json:"reason"`
	Status           RequestStatus       `json:"status"`
	AdminNote        string              `json:"admin_note,omitempty"`
	CreatedAt        time.Time           `json:"created_at"`
}

// NewChangeRequest assembles an unsubmitted request, enforcing the two local
// preconditions: a non-blank reason and a non-empty patch. Neither check ever
// involves the network.
func NewChangeRequest(entityType catalog.EntityType, entityID uuid.UUID, patch map[string]any, reason string) (*ChangeRequest, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, ErrMissingReason
	}
	if len(patch) == 0 {
		return nil, catalog.ErrNoChangesDetected
	}

	return &ChangeRequest{
		EntityType:       entityType,
		EntityID:         entityID,
		RequestedChanges: patch,
		Reason:           reason,
		Status:           RequestStatusPending,
	}, nil
}

// CategoryRequest proposes a new taxonomy entry. It shares the review
// lifecycle of a ChangeRequest but is a creation proposal, so there is no
// diff step.
type CategoryRequest struct {
	ID          uuid.UUID     `json:"id"`
	Name        string        `json:"name"`
	Slug        string        `json:"slug"`
	Description string        `json:"description"`
	Status      RequestStatus `json:"status"`
	AdminNote   string        `json:"admin_note,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
}

// NewCategoryRequest assembles a taxonomy suggestion
func NewCategoryRequest(name, slug, description string) (*CategoryRequest, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Category name cannot be empty")
	}
	slug = strings.TrimSpace(strings.ToLower(slug))
	if slug == "" {
		return nil, shared.NewDomainError("INVALID_SLUG", "Category slug cannot be empty")
	}

	return &CategoryRequest{
		Name:        name,
		Slug:        slug,
		Description: strings.TrimSpace(description),
		Status:      RequestStatusPending,
	}, nil
}
