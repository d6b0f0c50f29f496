// Package admin implements the moderation console. Verdicts are executed by
// the marketplace API; this layer enforces the note requirements and shapes
// the review queues.
package admin

import (
	"context"
	"errors"
	"strings"

	"github.com/bazaar/console/internal/domain/catalog"
	"github.com/bazaar/console/internal/domain/moderation"
	"github.com/bazaar/console/internal/domain/shared"
	"github.com/bazaar/console/internal/infrastructure/api"
	"github.com/bazaar/console/internal/infrastructure/session"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ModerationAPI is the slice of the marketplace client used by admin review
type ModerationAPI interface {
	AdminListPendingProducts(ctx context.Context, token string, opts api.ListOptions) ([]catalog.Product, *api.PageMeta, error)
	AdminApproveProduct(ctx context.Context, token string, productID uuid.UUID) (*catalog.Product, error)
	AdminRejectProduct(ctx context.Context, token string, productID uuid.UUID, body api.ReviewNoteBody) (*catalog.Product, error)
	AdminListChangeRequests(ctx context.Context, token string, opts api.ListOptions) ([]moderation.ChangeRequest, *api.PageMeta, error)
	AdminApproveChangeRequest(ctx context.Context, token string, requestID uuid.UUID, body api.ReviewNoteBody) (*moderation.ChangeRequest, error)
	AdminRejectChangeRequest(ctx context.Context, token string, requestID uuid.UUID, body api.ReviewNoteBody) (*moderation.ChangeRequest, error)
	AdminListCategoryRequests(ctx context.Context, token string, opts api.ListOptions) ([]moderation.CategoryRequest, *api.PageMeta, error)
	AdminApproveCategoryRequest(ctx context.Context, token string, requestID uuid.UUID) (*moderation.CategoryRequest, error)
	AdminRejectCategoryRequest(ctx context.Context, token string, requestID uuid.UUID, body api.ReviewNoteBody) (*moderation.CategoryRequest, error)
}

// ErrMissingNote is returned when a rejection is attempted without an
// explanation for the merchant
var ErrMissingNote = shared.NewDomainError("MISSING_NOTE", "A note explaining the rejection is required")

// VerdictRequest carries the admin's note for a review verdict
type VerdictRequest struct {
	Note string `json:"note"`
}

// ModerationService handles the admin review queues
type ModerationService struct {
	api    ModerationAPI
	logger *zap.Logger
}

// NewModerationService creates a new ModerationService
func NewModerationService(modAPI ModerationAPI, logger *zap.Logger) *ModerationService {
	return &ModerationService{api: modAPI, logger: logger}
}

// ListPendingProducts returns products awaiting first-publication review
func (s *ModerationService) ListPendingProducts(ctx context.Context, sess *session.Session, opts api.ListOptions) ([]catalog.Product, *api.PageMeta, error) {
	products, meta, err := s.api.AdminListPendingProducts(ctx, sess.AccessToken, opts)
	if err != nil {
		return nil, nil, asAdminError(err)
	}
	return products, meta, nil
}

// ApproveProduct publishes a pending product
func (s *ModerationService) ApproveProduct(ctx context.Context, sess *session.Session, productID uuid.UUID) (*catalog.Product, error) {
	product, err := s.api.AdminApproveProduct(ctx, sess.AccessToken, productID)
	if err != nil {
		return nil, asAdminError(err)
	}

	s.logger.Info("product approved",
		zap.String("product_id", productID.String()),
		zap.String("admin_id", sess.AccountID.String()),
	)
	return product, nil
}

// RejectProduct sends a pending product back to its merchant. A note is
// mandatory so the merchant knows what to fix.
func (s *ModerationService) RejectProduct(ctx context.Context, sess *session.Session, productID uuid.UUID, req VerdictRequest) (*catalog.Product, error) {
	note := strings.TrimSpace(req.Note)
	if note == "" {
		return nil, ErrMissingNote
	}

	product, err := s.api.AdminRejectProduct(ctx, sess.AccessToken, productID, api.ReviewNoteBody{Note: note})
	if err != nil {
		return nil, asAdminError(err)
	}

	s.logger.Info("product rejected",
		zap.String("product_id", productID.String()),
		zap.String("admin_id", sess.AccountID.String()),
	)
	return product, nil
}

// ListChangeRequests returns change requests across all merchants
func (s *ModerationService) ListChangeRequests(ctx context.Context, sess *session.Session, opts api.ListOptions) ([]moderation.ChangeRequest, *api.PageMeta, error) {
	requests, meta, err := s.api.AdminListChangeRequests(ctx, sess.AccessToken, opts)
	if err != nil {
		return nil, nil, asAdminError(err)
	}
	return requests, meta, nil
}

// ApproveChangeRequest approves a request; the marketplace applies the stored
// patch to the live entity. The note is optional on approval.
func (s *ModerationService) ApproveChangeRequest(ctx context.Context, sess *session.Session, requestID uuid.UUID, req VerdictRequest) (*moderation.ChangeRequest, error) {
	request, err := s.api.AdminApproveChangeRequest(ctx, sess.AccessToken, requestID, api.ReviewNoteBody{Note: strings.TrimSpace(req.Note)})
	if err != nil {
		return nil, asAdminError(err)
	}

	s.logger.Info("change request approved",
		zap.String("request_id", requestID.String()),
		zap.String("admin_id", sess.AccountID.String()),
	)
	return request, nil
}

// RejectChangeRequest rejects a request with a mandatory note
func (s *ModerationService) RejectChangeRequest(ctx context.Context, sess *session.Session, requestID uuid.UUID, req VerdictRequest) (*moderation.ChangeRequest, error) {
	note := strings.TrimSpace(req.Note)
	if note == "" {
		return nil, ErrMissingNote
	}

	request, err := s.api.AdminRejectChangeRequest(ctx, sess.AccessToken, requestID, api.ReviewNoteBody{Note: note})
	if err != nil {
		return nil, asAdminError(err)
	}

	s.logger.Info("change request rejected",
		zap.String("request_id", requestID.String()),
		zap.String("admin_id", sess.AccountID.String()),
	)
	return request, nil
}

// ListCategoryRequests returns taxonomy suggestions across all merchants
func (s *ModerationService) ListCategoryRequests(ctx context.Context, sess *session.Session, opts api.ListOptions) ([]moderation.CategoryRequest, *api.PageMeta, error) {
	requests, meta, err := s.api.AdminListCategoryRequests(ctx, sess.AccessToken, opts)
	if err != nil {
		return nil, nil, asAdminError(err)
	}
	return requests, meta, nil
}

// ApproveCategoryRequest creates the suggested category platform-wide
func (s *ModerationService) ApproveCategoryRequest(ctx context.Context, sess *session.Session, requestID uuid.UUID) (*moderation.CategoryRequest, error) {
	request, err := s.api.AdminApproveCategoryRequest(ctx, sess.AccessToken, requestID)
	if err != nil {
		return nil, asAdminError(err)
	}
	return request, nil
}

// RejectCategoryRequest declines a taxonomy suggestion with a mandatory note
func (s *ModerationService) RejectCategoryRequest(ctx context.Context, sess *session.Session, requestID uuid.UUID, req VerdictRequest) (*moderation.CategoryRequest, error) {
	note := strings.TrimSpace(req.Note)
	if note == "" {
		return nil, ErrMissingNote
	}

	request, err := s.api.AdminRejectCategoryRequest(ctx, sess.AccessToken, requestID, api.ReviewNoteBody{Note: note})
	if err != nil {
		return nil, asAdminError(err)
	}
	return request, nil
}

// asAdminError maps upstream failures to domain errors
func asAdminError(err error) error {
	switch {
	case api.IsNotFound(err):
		return shared.ErrNotFound
	case api.IsUnauthorized(err):
		return shared.ErrSessionExpired
	}

	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return shared.NewDomainError("SUBMISSION_FAILED", apiErr.Message)
	}
	if errors.Is(err, api.ErrUnavailable) {
		return shared.ErrSubmissionFailed
	}
	return err
}
