// Package identity signs console users in and out. Credentials are verified
// by the marketplace API; this layer only manages the resulting session.
package identity

import (
	"context"
	"time"

	"github.com/bazaar/console/internal/domain/shared"
	"github.com/bazaar/console/internal/infrastructure/api"
	"github.com/bazaar/console/internal/infrastructure/auth"
	"github.com/bazaar/console/internal/infrastructure/session"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AuthAPI is the slice of the marketplace client used for authentication
type AuthAPI interface {
	Login(ctx context.Context, creds api.Credentials) (*api.LoginResult, error)
	Refresh(ctx context.Context, refreshToken string) (*api.TokenPair, error)
	Logout(ctx context.Context, token string) error
}

// AuthService exchanges credentials for console sessions
type AuthService struct {
	api        AuthAPI
	sessions   session.Store
	tokens     *auth.SessionTokenService
	sessionTTL time.Duration
	logger     *zap.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(authAPI AuthAPI, sessions session.Store, tokens *auth.SessionTokenService, sessionTTL time.Duration, logger *zap.Logger) *AuthService {
	return &AuthService{
		api:        authAPI,
		sessions:   sessions,
		tokens:     tokens,
		sessionTTL: sessionTTL,
		logger:     logger,
	}
}

// Login verifies credentials against the marketplace, persists a session
// holding the marketplace tokens, and issues a signed session token.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	result, err := s.api.Login(ctx, api.Credentials{Email: req.Email, Password: req.Password})
	if err != nil {
		if api.IsUnauthorized(err) {
			return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Email or password is incorrect")
		}
		return nil, err
	}

	now := time.Now()
	sess := &session.Session{
		ID:           uuid.New(),
		AccountID:    result.Account.ID,
		Role:         result.Account.Role,
		AccessToken:  result.Tokens.AccessToken,
		RefreshToken: result.Tokens.RefreshToken,
		CreatedAt:    now,
		ExpiresAt:    now.Add(s.sessionTTL),
	}
	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, err
	}

	token, expiresAt, err := s.tokens.Generate(sess.ID.String(), sess.AccountID, sess.Role)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user signed in",
		zap.String("account_id", result.Account.ID.String()),
		zap.String("role", result.Account.Role),
	)

	return &LoginResponse{
		SessionToken: token,
		ExpiresAt:    expiresAt,
		Account: AccountDTO{
			ID:          result.Account.ID.String(),
			Email:       result.Account.Email,
			DisplayName: result.Account.DisplayName,
			Role:        result.Account.Role,
		},
	}, nil
}

// Refresh rotates the marketplace tokens held by the session and extends the
// session's lifetime. A refresh token the marketplace no longer accepts ends
// the session.
func (s *AuthService) Refresh(ctx context.Context, sess *session.Session) (*RefreshResponse, error) {
	pair, err := s.api.Refresh(ctx, sess.RefreshToken)
	if err != nil {
		if api.IsUnauthorized(err) {
			if delErr := s.sessions.Delete(ctx, sess.ID); delErr != nil {
				s.logger.Warn("failed to remove stale session", zap.Error(delErr))
			}
			return nil, shared.ErrSessionExpired
		}
		return nil, err
	}

	sess.AccessToken = pair.AccessToken
	if pair.RefreshToken != "" {
		sess.RefreshToken = pair.RefreshToken
	}
	sess.ExpiresAt = time.Now().Add(s.sessionTTL)
	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, err
	}

	token, expiresAt, err := s.tokens.Generate(sess.ID.String(), sess.AccountID, sess.Role)
	if err != nil {
		return nil, err
	}

	return &RefreshResponse{SessionToken: token, ExpiresAt: expiresAt}, nil
}

// Logout revokes the marketplace tokens and removes the session. A failed
// upstream revocation does not keep the session alive locally.
func (s *AuthService) Logout(ctx context.Context, sess *session.Session) error {
	if err := s.api.Logout(ctx, sess.AccessToken); err != nil {
		s.logger.Warn("upstream logout failed", zap.Error(err))
	}
	return s.sessions.Delete(ctx, sess.ID)
}
