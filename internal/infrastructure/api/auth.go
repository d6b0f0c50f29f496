package api

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// Credentials are the login inputs forwarded to the marketplace API
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenPair are the marketplace API tokens held for a signed-in account
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// Account describes the signed-in marketplace account
type Account struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	Role        string    `json:"role"` // merchant or admin
}

// LoginResult is the payload returned by a successful login
type LoginResult struct {
	Account Account   `json:"account"`
	Tokens  TokenPair `json:"tokens"`
}

// Login exchanges credentials for marketplace API tokens
func (c *Client) Login(ctx context.Context, creds Credentials) (*LoginResult, error) {
	var result LoginResult
	if _, err := c.do(ctx, "", http.MethodPost, "/auth/login", nil, creds, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Refresh exchanges a refresh token for a fresh token pair
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	body := map[string]string{"refresh_token": refreshToken}
	var tokens TokenPair
	if _, err := c.do(ctx, "", http.MethodPost, "/auth/refresh", nil, body, &tokens); err != nil {
		return nil, err
	}
	return &tokens, nil
}

// Logout invalidates the access token server-side
func (c *Client) Logout(ctx context.Context, token string) error {
	_, err := c.do(ctx, token, http.MethodPost, "/auth/logout", nil, nil, nil)
	return err
}
