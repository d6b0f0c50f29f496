// Package merchant implements the merchant back-office use cases. Every
// operation acts on behalf of a signed-in merchant session and is fulfilled
// by the marketplace API; the value this layer adds is the edit guard, the
// change diff, and the local validation that keeps bad submissions off the
// network.
package merchant

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

// ChangeRequestAPI is the slice of the marketplace client used by the change
// request flow
type ChangeRequestAPI interface {
	GetProduct(ctx context.Context, token string, productID uuid.UUID) (*catalog.Product, error)
	GetVariant(ctx context.Context, token string, variantID uuid.UUID) (*catalog.Variant, error)
	CreateChangeRequest(ctx context.Context, token string, body api.ChangeRequestBody) (*moderation.ChangeRequest, error)
	ListChangeRequests(ctx context.Context, token string, opts api.ListOptions) ([]moderation.ChangeRequest, *api.PageMeta, error)
	CreateCategoryRequest(ctx context.Context, token string, body api.CategoryRequestBody) (*moderation.CategoryRequest, error)
	ListCategoryRequests(ctx context.Context, token string, opts api.ListOptions) ([]moderation.CategoryRequest, *api.PageMeta, error)
}

// ChangeRequestService builds and submits change requests for locked fields
type ChangeRequestService struct {
	api    ChangeRequestAPI
	logger *zap.Logger
}

// NewChangeRequestService creates a new ChangeRequestService
func NewChangeRequestService(crAPI ChangeRequestAPI, logger *zap.Logger) *ChangeRequestService {
	return &ChangeRequestService{api: crAPI, logger: logger}
}

// SubmitProductChange diffs the proposed fields against the product's current
// values and submits a change request holding only the fields that differ.
// A blank reason or an empty diff fails here without touching the network
// beyond the initial read.
func (s *ChangeRequestService) SubmitProductChange(ctx context.Context, sess *session.Session, productID uuid.UUID, req SubmitProductChangeRequest) (*ChangeRequestDTO, error) {
	if strings.TrimSpace(req.Reason) == "" {
		return nil, moderation.ErrMissingReason
	}

	product, err := s.api.GetProduct(ctx, sess.AccessToken, productID)
	if err != nil {
		return nil, asReadError(err)
	}

	proposed := catalog.ProductFields{
		Title:       req.Title,
		Description: req.Description,
		CategoryIDs: req.CategoryIDs,
	}
	change, err := catalog.BuildProductDiff(product.Fields(), proposed)
	if err != nil {
		return nil, err
	}

	request, err := moderation.NewChangeRequest(catalog.EntityTypeProduct, productID, change.Patch(), req.Reason)
	if err != nil {
		return nil, err
	}

	return s.submit(ctx, sess, request)
}

// SubmitVariantChange is the variant counterpart of SubmitProductChange; only
// the SKU is review-protected on variants.
func (s *ChangeRequestService) SubmitVariantChange(ctx context.Context, sess *session.Session, variantID uuid.UUID, req SubmitVariantChangeRequest) (*ChangeRequestDTO, error) {
	if strings.TrimSpace(req.Reason) == "" {
		return nil, moderation.ErrMissingReason
	}

	variant, err := s.api.GetVariant(ctx, sess.AccessToken, variantID)
	if err != nil {
		return nil, asReadError(err)
	}

	change, err := catalog.BuildVariantDiff(variant.Fields(), catalog.VariantFields{SKU: req.SKU})
	if err != nil {
		return nil, err
	}

	request, err := moderation.NewChangeRequest(catalog.EntityTypeVariant, variantID, change.Patch(), req.Reason)
	if err != nil {
		return nil, err
	}

	return s.submit(ctx, sess, request)
}

// submit performs the single create call and maps the outcome. The request is
// sent exactly once; a failure is reported to the caller for an explicit
// retry, never retried silently.
func (s *ChangeRequestService) submit(ctx context.Context, sess *session.Session, request *moderation.ChangeRequest) (*ChangeRequestDTO, error) {
	created, err := s.api.CreateChangeRequest(ctx, sess.AccessToken, api.ChangeRequestBody{
		EntityType:       request.EntityType,
		EntityID:         request.EntityID,
		RequestedChanges: request.RequestedChanges,
		Reason:           request.Reason,
	})
	if err != nil {
		s.logger.Warn("change request submission failed",
			zap.String("entity_type", string(request.EntityType)),
			zap.String("entity_id", request.EntityID.String()),
			zap.Error(err),
		)
		return nil, asSubmissionError(err)
	}

	s.logger.Info("change request submitted",
		zap.String("request_id", created.ID.String()),
		zap.String("entity_type", string(created.EntityType)),
		zap.Int("changed_fields", len(created.RequestedChanges)),
	)

	dto := toChangeRequestDTO(*created)
	return &dto, nil
}

// ListChangeRequests returns the merchant's request history, each entry
// carrying its presentation so the view never interprets raw statuses.
func (s *ChangeRequestService) ListChangeRequests(ctx context.Context, sess *session.Session, opts api.ListOptions) ([]ChangeRequestDTO, *api.PageMeta, error) {
	requests, meta, err := s.api.ListChangeRequests(ctx, sess.AccessToken, opts)
	if err != nil {
		return nil, nil, asReadError(err)
	}

	dtos := make([]ChangeRequestDTO, 0, len(requests))
	for _, request := range requests {
		dtos = append(dtos, toChangeRequestDTO(request))
	}
	return dtos, meta, nil
}

// SuggestCategory submits a new-taxonomy proposal for admin review
func (s *ChangeRequestService) SuggestCategory(ctx context.Context, sess *session.Session, req SuggestCategoryRequest) (*CategoryRequestDTO, error) {
	proposal, err := moderation.NewCategoryRequest(req.Name, req.Slug, req.Description)
	if err != nil {
		return nil, err
	}

	created, err := s.api.CreateCategoryRequest(ctx, sess.AccessToken, api.CategoryRequestBody{
		Name:        proposal.Name,
		Slug:        proposal.Slug,
		Description: proposal.Description,
	})
	if err != nil {
		return nil, asSubmissionError(err)
	}

	dto := toCategoryRequestDTO(*created)
	return &dto, nil
}

// ListCategoryRequests returns the merchant's taxonomy suggestions
func (s *ChangeRequestService) ListCategoryRequests(ctx context.Context, sess *session.Session, opts api.ListOptions) ([]CategoryRequestDTO, *api.PageMeta, error) {
	requests, meta, err := s.api.ListCategoryRequests(ctx, sess.AccessToken, opts)
	if err != nil {
		return nil, nil, asReadError(err)
	}

	dtos := make([]CategoryRequestDTO, 0, len(requests))
	for _, request := range requests {
		dtos = append(dtos, toCategoryRequestDTO(request))
	}
	return dtos, meta, nil
}

func toChangeRequestDTO(request moderation.ChangeRequest) ChangeRequestDTO {
	presentation := moderation.Classify(request.Status)
	return ChangeRequestDTO{
		ID:               request.ID.String(),
		EntityType:       string(request.EntityType),
		EntityID:         request.EntityID.String(),
		RequestedChanges: request.RequestedChanges,
		Reason:           request.Reason,
		Status:           string(request.Status),
		StatusLabel:      presentation.Label,
		StatusCategory:   presentation.Category,
		AdminNote:        request.AdminNote,
		CreatedAt:        request.CreatedAt,
	}
}

func toCategoryRequestDTO(request moderation.CategoryRequest) CategoryRequestDTO {
	presentation := moderation.Classify(request.Status)
	return CategoryRequestDTO{
		ID:             request.ID.String(),
		Name:           request.Name,
		Slug:           request.Slug,
		Description:    request.Description,
		Status:         string(request.Status),
		StatusLabel:    presentation.Label,
		StatusCategory: presentation.Category,
		AdminNote:      request.AdminNote,
		CreatedAt:      request.CreatedAt,
	}
}

// asSubmissionError maps an upstream failure on a write to the retryable
// submission error shown to the merchant. A structured API rejection keeps
// its server message; anything else takes the generic wording.
func asSubmissionError(err error) error {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return shared.NewDomainError("SUBMISSION_FAILED", apiErr.Message)
	}
	return shared.ErrSubmissionFailed
}

// asReadError maps upstream read failures to domain errors
func asReadError(err error) error {
	switch {
	case api.IsNotFound(err):
		return shared.ErrNotFound
	case api.IsUnauthorized(err):
		return shared.ErrSessionExpired
	default:
		return err
	}
}
