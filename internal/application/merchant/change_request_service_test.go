package merchant

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/bazaar/console/internal/domain/catalog"
	"github.com/bazaar/console/internal/domain/moderation"
	"github.com/bazaar/console/internal/domain/shared"
	"github.com/bazaar/console/internal/infrastructure/api"
	"github.com/bazaar/console/internal/infrastructure/session"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeChangeRequestAPI records every call so tests can assert exactly which
// requests reached the marketplace.
type fakeChangeRequestAPI struct {
	product *catalog.Product
	variant *catalog.Variant

	createErr    error
	createdBody  *api.ChangeRequestBody
	createCalls  int
	listRequests []moderation.ChangeRequest
}

func (f *fakeChangeRequestAPI) GetProduct(_ context.Context, _ string, _ uuid.UUID) (*catalog.Product, error) {
	if f.product == nil {
		return nil, &api.Error{StatusCode: http.StatusNotFound, Code: "NOT_FOUND"}
	}
	return f.product, nil
}

func (f *fakeChangeRequestAPI) GetVariant(_ context.Context, _ string, _ uuid.UUID) (*catalog.Variant, error) {
	if f.variant == nil {
		return nil, &api.Error{StatusCode: http.StatusNotFound, Code: "NOT_FOUND"}
	}
	return f.variant, nil
}

func (f *fakeChangeRequestAPI) CreateChangeRequest(_ context.Context, _ string, body api.ChangeRequestBody) (*moderation.ChangeRequest, error) {
	f.createCalls++
	f.createdBody = &body
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &moderation.ChangeRequest{
		ID:               uuid.New(),
		EntityType:       body.EntityType,
		EntityID:         body.EntityID,
		RequestedChanges: body.RequestedChanges,
		Reason:           body.Reason,
		Status:           moderation.RequestStatusPending,
		CreatedAt:        time.Now(),
	}, nil
}

func (f *fakeChangeRequestAPI) ListChangeRequests(_ context.Context, _ string, _ api.ListOptions) ([]moderation.ChangeRequest, *api.PageMeta, error) {
	return f.listRequests, &api.PageMeta{Total: int64(len(f.listRequests)), Page: 1, PageSize: 20, TotalPages: 1}, nil
}

func (f *fakeChangeRequestAPI) CreateCategoryRequest(_ context.Context, _ string, body api.CategoryRequestBody) (*moderation.CategoryRequest, error) {
	return &moderation.CategoryRequest{
		ID:          uuid.New(),
		Name:        body.Name,
		Slug:        body.Slug,
		Description: body.Description,
		Status:      moderation.RequestStatusPending,
		CreatedAt:   time.Now(),
	}, nil
}

func (f *fakeChangeRequestAPI) ListCategoryRequests(_ context.Context, _ string, _ api.ListOptions) ([]moderation.CategoryRequest, *api.PageMeta, error) {
	return nil, nil, nil
}

func testSession() *session.Session {
	return &session.Session{
		ID:          uuid.New(),
		AccountID:   uuid.New(),
		Role:        "merchant",
		AccessToken: "access-token",
		ExpiresAt:   time.Now().Add(time.Hour),
	}
}

func approvedProduct() *catalog.Product {
	return &catalog.Product{
		ID:          uuid.New(),
		Title:       "Walnut Standing Desk",
		Description: "Solid walnut, dual motor",
		CategoryIDs: []string{"cat-furniture", "cat-office"},
		Status:      catalog.EntityStatusApproved,
	}
}

func TestSubmitProductChange(t *testing.T) {
	t.Run("submits only the changed fields", func(t *testing.T) {
		product := approvedProduct()
		fake := &fakeChangeRequestAPI{product: product}
		service := NewChangeRequestService(fake, zap.NewNop())

		dto, err := service.SubmitProductChange(context.Background(), testSession(), product.ID, SubmitProductChangeRequest{
			Title:       product.Title,
			Description: "Solid walnut, dual motor, cable tray included",
			CategoryIDs: []string{"cat-office", "cat-furniture"}, // reordered, not changed
			Reason:      "clarify what is in the box",
		})
		require.NoError(t, err)

		require.Equal(t, 1, fake.createCalls)
		require.NotNil(t, fake.createdBody)
		assert.Equal(t, catalog.EntityTypeProduct, fake.createdBody.EntityType)
		assert.Equal(t, map[string]any{
			"description": "Solid walnut, dual motor, cable tray included",
		}, fake.createdBody.RequestedChanges)

		assert.Equal(t, "PENDING", dto.Status)
		assert.Equal(t, "Pending Review", dto.StatusLabel)
		assert.Equal(t, moderation.VisualPending, dto.StatusCategory)
	})

	t.Run("clearing every category submits an explicit empty list", func(t *testing.T) {
		product := approvedProduct()
		fake := &fakeChangeRequestAPI{product: product}
		service := NewChangeRequestService(fake, zap.NewNop())

		_, err := service.SubmitProductChange(context.Background(), testSession(), product.ID, SubmitProductChangeRequest{
			Title:       product.Title,
			Description: product.Description,
			CategoryIDs: []string{},
			Reason:      "product no longer fits either category",
		})
		require.NoError(t, err)

		require.Equal(t, 1, fake.createCalls)
		require.NotNil(t, fake.createdBody)
		require.Contains(t, fake.createdBody.RequestedChanges, "category_ids")
		ids, ok := fake.createdBody.RequestedChanges["category_ids"].([]string)
		require.True(t, ok)
		assert.NotNil(t, ids)
		assert.Len(t, ids, 0)
	})

	t.Run("blank reason fails before any network call", func(t *testing.T) {
		fake := &fakeChangeRequestAPI{product: approvedProduct()}
		service := NewChangeRequestService(fake, zap.NewNop())

		_, err := service.SubmitProductChange(context.Background(), testSession(), uuid.New(), SubmitProductChangeRequest{
			Title:  "Changed Title",
			Reason: "   ",
		})
		assert.ErrorIs(t, err, moderation.ErrMissingReason)
		assert.Equal(t, 0, fake.createCalls)
	})

	t.Run("identical values yield no change request", func(t *testing.T) {
		product := approvedProduct()
		fake := &fakeChangeRequestAPI{product: product}
		service := NewChangeRequestService(fake, zap.NewNop())

		_, err := service.SubmitProductChange(context.Background(), testSession(), product.ID, SubmitProductChangeRequest{
			Title:       product.Title,
			Description: product.Description,
			CategoryIDs: product.CategoryIDs,
			Reason:      "no actual change",
		})
		assert.ErrorIs(t, err, catalog.ErrNoChangesDetected)
		assert.Equal(t, 0, fake.createCalls)
	})

	t.Run("upstream rejection keeps the server message", func(t *testing.T) {
		product := approvedProduct()
		fake := &fakeChangeRequestAPI{
			product:   product,
			createErr: &api.Error{StatusCode: http.StatusConflict, Code: "DUPLICATE_REQUEST", Message: "A pending request already exists for this product"},
		}
		service := NewChangeRequestService(fake, zap.NewNop())

		_, err := service.SubmitProductChange(context.Background(), testSession(), product.ID, SubmitProductChangeRequest{
			Title:  "New Title",
			Reason: "rename for SEO",
		})
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "SUBMISSION_FAILED", domainErr.Code)
		assert.Equal(t, "A pending request already exists for this product", domainErr.Message)
		assert.Equal(t, 1, fake.createCalls)
	})

	t.Run("transport failure maps to the generic submission error", func(t *testing.T) {
		product := approvedProduct()
		fake := &fakeChangeRequestAPI{
			product:   product,
			createErr: api.ErrUnavailable,
		}
		service := NewChangeRequestService(fake, zap.NewNop())

		_, err := service.SubmitProductChange(context.Background(), testSession(), product.ID, SubmitProductChangeRequest{
			Title:  "New Title",
			Reason: "rename for SEO",
		})
		assert.ErrorIs(t, err, shared.ErrSubmissionFailed)
	})

	t.Run("missing product maps to not found", func(t *testing.T) {
		service := NewChangeRequestService(&fakeChangeRequestAPI{}, zap.NewNop())

		_, err := service.SubmitProductChange(context.Background(), testSession(), uuid.New(), SubmitProductChangeRequest{
			Title:  "New Title",
			Reason: "rename",
		})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestSubmitVariantChange(t *testing.T) {
	variant := &catalog.Variant{
		ID:     uuid.New(),
		SKU:    "DESK-WAL-120",
		Status: catalog.EntityStatusApproved,
	}

	t.Run("submits the new SKU", func(t *testing.T) {
		fake := &fakeChangeRequestAPI{variant: variant}
		service := NewChangeRequestService(fake, zap.NewNop())

		dto, err := service.SubmitVariantChange(context.Background(), testSession(), variant.ID, SubmitVariantChangeRequest{
			SKU:    "DESK-WAL-140",
			Reason: "sku scheme migration",
		})
		require.NoError(t, err)
		assert.Equal(t, catalog.EntityTypeVariant, fake.createdBody.EntityType)
		assert.Equal(t, map[string]any{"sku": "DESK-WAL-140"}, fake.createdBody.RequestedChanges)
		assert.Equal(t, "Pending Review", dto.StatusLabel)
	})

	t.Run("unchanged SKU is refused locally", func(t *testing.T) {
		fake := &fakeChangeRequestAPI{variant: variant}
		service := NewChangeRequestService(fake, zap.NewNop())

		_, err := service.SubmitVariantChange(context.Background(), testSession(), variant.ID, SubmitVariantChangeRequest{
			SKU:    variant.SKU,
			Reason: "no change",
		})
		assert.ErrorIs(t, err, catalog.ErrNoChangesDetected)
		assert.Equal(t, 0, fake.createCalls)
	})
}

func TestListChangeRequests(t *testing.T) {
	fake := &fakeChangeRequestAPI{
		listRequests: []moderation.ChangeRequest{
			{ID: uuid.New(), EntityType: catalog.EntityTypeProduct, Status: moderation.RequestStatusApproved},
			{ID: uuid.New(), EntityType: catalog.EntityTypeProduct, Status: moderation.RequestStatusRejected, AdminNote: "duplicate listing"},
			{ID: uuid.New(), EntityType: catalog.EntityTypeVariant, Status: "ESCALATED"},
		},
	}
	service := NewChangeRequestService(fake, zap.NewNop())

	dtos, meta, err := service.ListChangeRequests(context.Background(), testSession(), api.ListOptions{})
	require.NoError(t, err)
	require.Len(t, dtos, 3)
	require.NotNil(t, meta)

	assert.Equal(t, "Approved", dtos[0].StatusLabel)
	assert.Equal(t, moderation.VisualApproved, dtos[0].StatusCategory)

	assert.Equal(t, "Rejected", dtos[1].StatusLabel)
	assert.Equal(t, "duplicate listing", dtos[1].AdminNote)

	// unknown lifecycle states stay visible as pending
	assert.Equal(t, "Pending Review", dtos[2].StatusLabel)
	assert.Equal(t, moderation.VisualPending, dtos[2].StatusCategory)
}

func TestSuggestCategory(t *testing.T) {
	t.Run("normalizes and submits", func(t *testing.T) {
		service := NewChangeRequestService(&fakeChangeRequestAPI{}, zap.NewNop())

		dto, err := service.SuggestCategory(context.Background(), testSession(), SuggestCategoryRequest{
			Name: "  Standing Desks ",
			Slug: "Standing-Desks",
		})
		require.NoError(t, err)
		assert.Equal(t, "Standing Desks", dto.Name)
		assert.Equal(t, "standing-desks", dto.Slug)
		assert.Equal(t, "Pending Review", dto.StatusLabel)
	})

	t.Run("blank name is refused", func(t *testing.T) {
		service := NewChangeRequestService(&fakeChangeRequestAPI{}, zap.NewNop())

		_, err := service.SuggestCategory(context.Background(), testSession(), SuggestCategoryRequest{
			Name: "  ",
			Slug: "x",
		})
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_NAME", domainErr.Code)
	})
}

func TestAsSubmissionError(t *testing.T) {
	t.Run("wraps api error message", func(t *testing.T) {
		err := asSubmissionError(&api.Error{StatusCode: 422, Code: "VALIDATION", Message: "reason too long"})
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "reason too long", domainErr.Message)
	})

	t.Run("generic fallback", func(t *testing.T) {
		err := asSubmissionError(errors.New("connection reset"))
		assert.ErrorIs(t, err, shared.ErrSubmissionFailed)
	})
}
