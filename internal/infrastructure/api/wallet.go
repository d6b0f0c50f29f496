package api

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Wallet is the merchant's settlement account
type Wallet struct {
	Balance        decimal.Decimal `json:"balance"`
	PendingBalance decimal.Decimal `json:"pending_balance"`
	Currency       string          `json:"currency"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// Payout is a withdrawal from the wallet to the merchant's bank account
type Payout struct {
	ID          uuid.UUID       `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Status      string          `json:"status"`
	Reference   string          `json:"reference,omitempty"`
	RequestedAt time.Time       `json:"requested_at"`
	SettledAt   *time.Time      `json:"settled_at,omitempty"`
}

// PayoutRequestBody asks the marketplace to pay out part of the balance
type PayoutRequestBody struct {
	Amount decimal.Decimal `json:"amount"`
}

// GetWallet returns the merchant's wallet balances
func (c *Client) GetWallet(ctx context.Context, token string) (*Wallet, error) {
	var wallet Wallet
	if _, err := c.do(ctx, token, http.MethodGet, "/merchants/wallet", nil, nil, &wallet); err != nil {
		return nil, err
	}
	return &wallet, nil
}

// ListPayouts returns the merchant's payout history
func (c *Client) ListPayouts(ctx context.Context, token string, opts ListOptions) ([]Payout, *PageMeta, error) {
	var payouts []Payout
	meta, err := c.do(ctx, token, http.MethodGet, "/merchants/wallet/payouts", opts.values(), nil, &payouts)
	if err != nil {
		return nil, nil, err
	}
	return payouts, meta, nil
}

// RequestPayout asks for a withdrawal from the available balance
func (c *Client) RequestPayout(ctx context.Context, token string, body PayoutRequestBody) (*Payout, error) {
	var payout Payout
	if _, err := c.do(ctx, token, http.MethodPost, "/merchants/wallet/payouts", nil, body, &payout); err != nil {
		return nil, err
	}
	return &payout, nil
}
