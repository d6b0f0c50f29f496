package merchant

import (
	"context"
	"strings"

	"github.com/bazaar/console/internal/domain/shared"
	"github.com/bazaar/console/internal/infrastructure/api"
	"github.com/bazaar/console/internal/infrastructure/session"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReviewAPI is the slice of the marketplace client used for customer reviews
type ReviewAPI interface {
	ListReviews(ctx context.Context, token string, opts api.ListOptions) ([]api.Review, *api.PageMeta, error)
	ReplyReview(ctx context.Context, token string, reviewID uuid.UUID, body api.ReviewReplyBody) (*api.Review, error)
}

// ReplyRequest is the merchant's public reply to a customer review
type ReplyRequest struct {
	Reply string `json:"reply" binding:"required"`
}

// ReviewService handles customer reviews on the merchant's products
type ReviewService struct {
	api    ReviewAPI
	logger *zap.Logger
}

// NewReviewService creates a new ReviewService
func NewReviewService(reviewAPI ReviewAPI, logger *zap.Logger) *ReviewService {
	return &ReviewService{api: reviewAPI, logger: logger}
}

// ListReviews returns reviews left on the merchant's products
func (s *ReviewService) ListReviews(ctx context.Context, sess *session.Session, opts api.ListOptions) ([]api.Review, *api.PageMeta, error) {
	reviews, meta, err := s.api.ListReviews(ctx, sess.AccessToken, opts)
	if err != nil {
		return nil, nil, asReadError(err)
	}
	return reviews, meta, nil
}

// ReplyReview posts or replaces the public reply on a review
func (s *ReviewService) ReplyReview(ctx context.Context, sess *session.Session, reviewID uuid.UUID, req ReplyRequest) (*api.Review, error) {
	reply := strings.TrimSpace(req.Reply)
	if reply == "" {
		return nil, shared.NewDomainError("MISSING_REPLY", "Reply text cannot be empty")
	}

	review, err := s.api.ReplyReview(ctx, sess.AccessToken, reviewID, api.ReviewReplyBody{Reply: reply})
	if err != nil {
		return nil, asSubmissionError(err)
	}

	s.logger.Info("review reply posted", zap.String("review_id", reviewID.String()))
	return review, nil
}
