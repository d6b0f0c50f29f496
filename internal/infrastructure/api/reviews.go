package api

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Review is a customer review on one of the merchant's products
type Review struct {
	ID           uuid.UUID  `json:"id"`
	ProductID    uuid.UUID  `json:"product_id"`
	ProductTitle string     `json:"product_title"`
	Rating       int        `json:"rating"`
	Comment      string     `json:"comment"`
	Reply        string     `json:"reply,omitempty"`
	RepliedAt    *time.Time `json:"replied_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// ReviewReplyBody is the merchant's public reply to a review
type ReviewReplyBody struct {
	Reply string `json:"reply"`
}

// ListReviews returns reviews left on the merchant's products
func (c *Client) ListReviews(ctx context.Context, token string, opts ListOptions) ([]Review, *PageMeta, error) {
	var reviews []Review
	meta, err := c.do(ctx, token, http.MethodGet, "/merchants/reviews", opts.values(), nil, &reviews)
	if err != nil {
		return nil, nil, err
	}
	return reviews, meta, nil
}

// ReplyReview posts or replaces the merchant's reply on a review
func (c *Client) ReplyReview(ctx context.Context, token string, reviewID uuid.UUID, body ReviewReplyBody) (*Review, error) {
	var review Review
	if _, err := c.do(ctx, token, http.MethodPost, "/merchants/reviews/"+reviewID.String()+"/reply", nil, body, &review); err != nil {
		return nil, err
	}
	return &review, nil
}
