package merchant

import (
	"context"

	"github.com/bazaar/console/internal/domain/shared"
	"github.com/bazaar/console/internal/infrastructure/api"
	"github.com/bazaar/console/internal/infrastructure/session"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// WalletAPI is the slice of the marketplace client used for settlement
type WalletAPI interface {
	GetWallet(ctx context.Context, token string) (*api.Wallet, error)
	ListPayouts(ctx context.Context, token string, opts api.ListOptions) ([]api.Payout, *api.PageMeta, error)
	RequestPayout(ctx context.Context, token string, body api.PayoutRequestBody) (*api.Payout, error)
}

// PayoutRequest asks for a withdrawal from the available balance
type PayoutRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// WalletService exposes the merchant's settlement account
type WalletService struct {
	api    WalletAPI
	logger *zap.Logger
}

// NewWalletService creates a new WalletService
func NewWalletService(walletAPI WalletAPI, logger *zap.Logger) *WalletService {
	return &WalletService{api: walletAPI, logger: logger}
}

// GetWallet returns the wallet balances
func (s *WalletService) GetWallet(ctx context.Context, sess *session.Session) (*api.Wallet, error) {
	wallet, err := s.api.GetWallet(ctx, sess.AccessToken)
	if err != nil {
		return nil, asReadError(err)
	}
	return wallet, nil
}

// ListPayouts returns the payout history
func (s *WalletService) ListPayouts(ctx context.Context, sess *session.Session, opts api.ListOptions) ([]api.Payout, *api.PageMeta, error) {
	payouts, meta, err := s.api.ListPayouts(ctx, sess.AccessToken, opts)
	if err != nil {
		return nil, nil, asReadError(err)
	}
	return payouts, meta, nil
}

// RequestPayout asks for a withdrawal. Balance sufficiency is checked by the
// marketplace; only a non-positive amount is refused locally.
func (s *WalletService) RequestPayout(ctx context.Context, sess *session.Session, req PayoutRequest) (*api.Payout, error) {
	if !req.Amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Payout amount must be positive")
	}

	payout, err := s.api.RequestPayout(ctx, sess.AccessToken, api.PayoutRequestBody{Amount: req.Amount})
	if err != nil {
		return nil, asSubmissionError(err)
	}

	s.logger.Info("payout requested",
		zap.String("payout_id", payout.ID.String()),
		zap.String("amount", req.Amount.String()),
	)
	return payout, nil
}
