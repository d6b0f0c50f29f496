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

// OrderAPI is the slice of the marketplace client used for order fulfilment
type OrderAPI interface {
	ListOrders(ctx context.Context, token string, opts api.ListOptions) ([]api.Order, *api.PageMeta, error)
	GetOrder(ctx context.Context, token string, orderID uuid.UUID) (*api.Order, error)
	ShipOrder(ctx context.Context, token string, orderID uuid.UUID, body api.ShipOrderBody) (*api.Order, error)
}

// ShipOrderRequest carries the carrier details for marking an order shipped
type ShipOrderRequest struct {
	Carrier        string `json:"carrier" binding:"required"`
	TrackingNumber string `json:"tracking_number" binding:"required"`
}

// OrderService handles the merchant's order fulfilment view
type OrderService struct {
	api    OrderAPI
	logger *zap.Logger
}

// NewOrderService creates a new OrderService
func NewOrderService(orderAPI OrderAPI, logger *zap.Logger) *OrderService {
	return &OrderService{api: orderAPI, logger: logger}
}

// ListOrders returns orders containing the merchant's products
func (s *OrderService) ListOrders(ctx context.Context, sess *session.Session, opts api.ListOptions) ([]api.Order, *api.PageMeta, error) {
	orders, meta, err := s.api.ListOrders(ctx, sess.AccessToken, opts)
	if err != nil {
		return nil, nil, asReadError(err)
	}
	return orders, meta, nil
}

// GetOrder returns one order
func (s *OrderService) GetOrder(ctx context.Context, sess *session.Session, orderID uuid.UUID) (*api.Order, error) {
	order, err := s.api.GetOrder(ctx, sess.AccessToken, orderID)
	if err != nil {
		return nil, asReadError(err)
	}
	return order, nil
}

// ShipOrder marks an order shipped. Whether the order is in a shippable state
// is decided by the marketplace; the only local check is non-blank carrier
// details.
func (s *OrderService) ShipOrder(ctx context.Context, sess *session.Session, orderID uuid.UUID, req ShipOrderRequest) (*api.Order, error) {
	if strings.TrimSpace(req.Carrier) == "" || strings.TrimSpace(req.TrackingNumber) == "" {
		return nil, shared.NewDomainError("MISSING_SHIPPING_DETAILS", "Carrier and tracking number are required")
	}

	order, err := s.api.ShipOrder(ctx, sess.AccessToken, orderID, api.ShipOrderBody{
		Carrier:        strings.TrimSpace(req.Carrier),
		TrackingNumber: strings.TrimSpace(req.TrackingNumber),
	})
	if err != nil {
		return nil, asSubmissionError(err)
	}

	s.logger.Info("order marked shipped",
		zap.String("order_id", orderID.String()),
		zap.String("carrier", req.Carrier),
	)
	return order, nil
}
