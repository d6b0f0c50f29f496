package admin

import (
	"context"
	"strings"

	"github.com/bazaar/console/internal/domain/shared"
	"github.com/bazaar/console/internal/infrastructure/api"
	"github.com/bazaar/console/internal/infrastructure/session"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CouponAPI is the slice of the marketplace client used for coupon management
type CouponAPI interface {
	AdminListCoupons(ctx context.Context, token string, opts api.ListOptions) ([]api.Coupon, *api.PageMeta, error)
	AdminCreateCoupon(ctx context.Context, token string, body api.CouponBody) (*api.Coupon, error)
	AdminUpdateCoupon(ctx context.Context, token string, couponID uuid.UUID, body api.CouponBody) (*api.Coupon, error)
	AdminDeleteCoupon(ctx context.Context, token string, couponID uuid.UUID) error
}

// CouponService manages platform-wide discount codes
type CouponService struct {
	api    CouponAPI
	logger *zap.Logger
}

// NewCouponService creates a new CouponService
func NewCouponService(couponAPI CouponAPI, logger *zap.Logger) *CouponService {
	return &CouponService{api: couponAPI, logger: logger}
}

// ListCoupons returns all coupons
func (s *CouponService) ListCoupons(ctx context.Context, sess *session.Session, opts api.ListOptions) ([]api.Coupon, *api.PageMeta, error) {
	coupons, meta, err := s.api.AdminListCoupons(ctx, sess.AccessToken, opts)
	if err != nil {
		return nil, nil, asAdminError(err)
	}
	return coupons, meta, nil
}

// CreateCoupon creates a coupon after normalizing its code
func (s *CouponService) CreateCoupon(ctx context.Context, sess *session.Session, body api.CouponBody) (*api.Coupon, error) {
	body.Code = strings.ToUpper(strings.TrimSpace(body.Code))
	if body.Code == "" {
		return nil, shared.NewDomainError("INVALID_CODE", "Coupon code cannot be empty")
	}
	if !body.DiscountValue.IsPositive() {
		return nil, shared.NewDomainError("INVALID_DISCOUNT", "Discount value must be positive")
	}

	coupon, err := s.api.AdminCreateCoupon(ctx, sess.AccessToken, body)
	if err != nil {
		return nil, asAdminError(err)
	}

	s.logger.Info("coupon created",
		zap.String("coupon_id", coupon.ID.String()),
		zap.String("code", coupon.Code),
	)
	return coupon, nil
}

// UpdateCoupon updates an existing coupon
func (s *CouponService) UpdateCoupon(ctx context.Context, sess *session.Session, couponID uuid.UUID, body api.CouponBody) (*api.Coupon, error) {
	body.Code = strings.ToUpper(strings.TrimSpace(body.Code))
	if body.Code == "" {
		return nil, shared.NewDomainError("INVALID_CODE", "Coupon code cannot be empty")
	}

	coupon, err := s.api.AdminUpdateCoupon(ctx, sess.AccessToken, couponID, body)
	if err != nil {
		return nil, asAdminError(err)
	}
	return coupon, nil
}

// DeleteCoupon removes a coupon
func (s *CouponService) DeleteCoupon(ctx context.Context, sess *session.Session, couponID uuid.UUID) error {
	if err := s.api.AdminDeleteCoupon(ctx, sess.AccessToken, couponID); err != nil {
		return asAdminError(err)
	}

	s.logger.Info("coupon deleted", zap.String("coupon_id", couponID.String()))
	return nil
}
