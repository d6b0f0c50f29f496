package api

import (
	"context"
	"net/http"

	"github.com/bazaar/console/internal/domain/catalog"
	"github.com/bazaar/console/internal/domain/moderation"
	"github.com/google/uuid"
)

// ChangeRequestBody is the wire form of a change-request submission. The
// backend treats requested_changes as an opaque patch applied verbatim upon
// approval; keeping it minimal is this client's job.
type ChangeRequestBody struct {
	EntityType       catalog.EntityType `json:"entity_type"`
	EntityID         uuid.UUID          `json:"entity_id"`
	RequestedChanges map[string]any     `json:"requested_changes"`
	Reason           string             `json:"reason"`
}

// CategoryRequestBody is the wire form of a taxonomy suggestion
type CategoryRequestBody struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
}

// CreateChangeRequest submits a field-change proposal for admin review
func (c *Client) CreateChangeRequest(ctx context.Context, token string, body ChangeRequestBody) (*moderation.ChangeRequest, error) {
	var created moderation.ChangeRequest
	if _, err := c.do(ctx, token, http.MethodPost, "/merchants/change-requests", nil, body, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// ListChangeRequests returns the caller's own change requests
func (c *Client) ListChangeRequests(ctx context.Context, token string, opts ListOptions) ([]moderation.ChangeRequest, *PageMeta, error) {
	var requests []moderation.ChangeRequest
	meta, err := c.do(ctx, token, http.MethodGet, "/merchants/change-requests", opts.values(), nil, &requests)
	if err != nil {
		return nil, nil, err
	}
	return requests, meta, nil
}

// CreateCategoryRequest submits a new-taxonomy suggestion for admin review
func (c *Client) CreateCategoryRequest(ctx context.Context, token string, body CategoryRequestBody) (*moderation.CategoryRequest, error) {
	var created moderation.CategoryRequest
	if _, err := c.do(ctx, token, http.MethodPost, "/merchants/category-requests", nil, body, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// ListCategoryRequests returns the caller's own category suggestions
func (c *Client) ListCategoryRequests(ctx context.Context, token string, opts ListOptions) ([]moderation.CategoryRequest, *PageMeta, error) {
	var requests []moderation.CategoryRequest
	meta, err := c.do(ctx, token, http.MethodGet, "/merchants/category-requests", opts.values(), nil, &requests)
	if err != nil {
		return nil, nil, err
	}
	return requests, meta, nil
}
