package admin

import (
	"context"
	"testing"
	"time"

	"github.com/bazaar/console/internal/domain/catalog"
	"github.com/bazaar/console/internal/domain/moderation"
	"github.com/bazaar/console/internal/infrastructure/api"
	"github.com/bazaar/console/internal/infrastructure/session"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeModerationAPI struct {
	rejectProductCalls int
	rejectRequestCalls int
	lastNote           string
}

func (f *fakeModerationAPI) AdminListPendingProducts(_ context.Context, _ string, _ api.ListOptions) ([]catalog.Product, *api.PageMeta, error) {
	return []catalog.Product{{ID: uuid.New(), Status: catalog.EntityStatusPending}}, &api.PageMeta{Total: 1}, nil
}

func (f *fakeModerationAPI) AdminApproveProduct(_ context.Context, _ string, productID uuid.UUID) (*catalog.Product, error) {
	return &catalog.Product{ID: productID, Status: catalog.EntityStatusApproved}, nil
}

func (f *fakeModerationAPI) AdminRejectProduct(_ context.Context, _ string, productID uuid.UUID, body api.ReviewNoteBody) (*catalog.Product, error) {
	f.rejectProductCalls++
	f.lastNote = body.Note
	return &catalog.Product{ID: productID, Status: catalog.EntityStatusRejected}, nil
}

func (f *fakeModerationAPI) AdminListChangeRequests(_ context.Context, _ string, _ api.ListOptions) ([]moderation.ChangeRequest, *api.PageMeta, error) {
	return nil, nil, nil
}

func (f *fakeModerationAPI) AdminApproveChangeRequest(_ context.Context, _ string, requestID uuid.UUID, _ api.ReviewNoteBody) (*moderation.ChangeRequest, error) {
	return &moderation.ChangeRequest{ID: requestID, Status: moderation.RequestStatusApproved}, nil
}

func (f *fakeModerationAPI) AdminRejectChangeRequest(_ context.Context, _ string, requestID uuid.UUID, body api.ReviewNoteBody) (*moderation.ChangeRequest, error) {
	f.rejectRequestCalls++
	f.lastNote = body.Note
	return &moderation.ChangeRequest{ID: requestID, Status: moderation.RequestStatusRejected, AdminNote: body.Note}, nil
}

func (f *fakeModerationAPI) AdminListCategoryRequests(_ context.Context, _ string, _ api.ListOptions) ([]moderation.CategoryRequest, *api.PageMeta, error) {
	return nil, nil, nil
}

func (f *fakeModerationAPI) AdminApproveCategoryRequest(_ context.Context, _ string, requestID uuid.UUID) (*moderation.CategoryRequest, error) {
	return &moderation.CategoryRequest{ID: requestID, Status: moderation.RequestStatusApproved}, nil
}

func (f *fakeModerationAPI) AdminRejectCategoryRequest(_ context.Context, _ string, requestID uuid.UUID, body api.ReviewNoteBody) (*moderation.CategoryRequest, error) {
	return &moderation.CategoryRequest{ID: requestID, Status: moderation.RequestStatusRejected, AdminNote: body.Note}, nil
}

func adminSession() *session.Session {
	return &session.Session{
		ID:          uuid.New(),
		AccountID:   uuid.New(),
		Role:        "admin",
		AccessToken: "admin-token",
		ExpiresAt:   time.Now().Add(time.Hour),
	}
}

func TestRejectProductRequiresNote(t *testing.T) {
	fake := &fakeModerationAPI{}
	service := NewModerationService(fake, zap.NewNop())

	t.Run("blank note is refused locally", func(t *testing.T) {
		_, err := service.RejectProduct(context.Background(), adminSession(), uuid.New(), VerdictRequest{Note: "  "})
		assert.ErrorIs(t, err, ErrMissingNote)
		assert.Equal(t, 0, fake.rejectProductCalls)
	})

	t.Run("note is trimmed and forwarded", func(t *testing.T) {
		product, err := service.RejectProduct(context.Background(), adminSession(), uuid.New(), VerdictRequest{Note: " images are watermarked "})
		require.NoError(t, err)
		assert.Equal(t, catalog.EntityStatusRejected, product.Status)
		assert.Equal(t, "images are watermarked", fake.lastNote)
	})
}

func TestRejectChangeRequestRequiresNote(t *testing.T) {
	fake := &fakeModerationAPI{}
	service := NewModerationService(fake, zap.NewNop())

	_, err := service.RejectChangeRequest(context.Background(), adminSession(), uuid.New(), VerdictRequest{})
	assert.ErrorIs(t, err, ErrMissingNote)
	assert.Equal(t, 0, fake.rejectRequestCalls)

	request, err := service.RejectChangeRequest(context.Background(), adminSession(), uuid.New(), VerdictRequest{Note: "title violates naming rules"})
	require.NoError(t, err)
	assert.Equal(t, moderation.RequestStatusRejected, request.Status)
	assert.Equal(t, "title violates naming rules", request.AdminNote)
}

func TestApproveChangeRequestNoteOptional(t *testing.T) {
	service := NewModerationService(&fakeModerationAPI{}, zap.NewNop())

	request, err := service.ApproveChangeRequest(context.Background(), adminSession(), uuid.New(), VerdictRequest{})
	require.NoError(t, err)
	assert.Equal(t, moderation.RequestStatusApproved, request.Status)
}

func TestApproveProduct(t *testing.T) {
	service := NewModerationService(&fakeModerationAPI{}, zap.NewNop())

	product, err := service.ApproveProduct(context.Background(), adminSession(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, catalog.EntityStatusApproved, product.Status)
}
