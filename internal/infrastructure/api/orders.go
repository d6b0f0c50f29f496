package api

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderItem is one line of an order
type OrderItem struct {
	ID        uuid.UUID       `json:"id"`
	ProductID uuid.UUID       `json:"product_id"`
	VariantID uuid.UUID       `json:"variant_id"`
	Title     string          `json:"title"`
	SKU       string          `json:"sku"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// Order is a merchant-side view of a customer order
type Order struct {
	ID             uuid.UUID       `json:"id"`
	OrderNumber    string          `json:"order_number"`
	Status         string          `json:"status"`
	Items          []OrderItem     `json:"items"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	ShippingFee    decimal.Decimal `json:"shipping_fee"`
	Total          decimal.Decimal `json:"total"`
	CustomerName   string          `json:"customer_name"`
	ShippingAddr   string          `json:"shipping_address"`
	TrackingNumber string          `json:"tracking_number,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ShipOrderBody carries the shipping details for marking an order shipped
type ShipOrderBody struct {
	Carrier        string `json:"carrier"`
	TrackingNumber string `json:"tracking_number"`
}

// ListOrders returns orders containing the merchant's products
func (c *Client) ListOrders(ctx context.Context, token string, opts ListOptions) ([]Order, *PageMeta, error) {
	var orders []Order
	meta, err := c.do(ctx, token, http.MethodGet, "/merchants/orders", opts.values(), nil, &orders)
	if err != nil {
		return nil, nil, err
	}
	return orders, meta, nil
}

// GetOrder returns a single order
func (c *Client) GetOrder(ctx context.Context, token string, orderID uuid.UUID) (*Order, error) {
	var order Order
	if _, err := c.do(ctx, token, http.MethodGet, "/merchants/orders/"+orderID.String(), nil, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// ShipOrder marks an order as shipped with carrier details
func (c *Client) ShipOrder(ctx context.Context, token string, orderID uuid.UUID, body ShipOrderBody) (*Order, error) {
	var order Order
	if _, err := c.do(ctx, token, http.MethodPost, "/merchants/orders/"+orderID.String()+"/ship", nil, body, &order); err != nil {
		return nil, err
	}
	return &order, nil
}
