// Package session keeps the server-side state of signed-in console users.
// A session record holds the marketplace API tokens; the browser only ever
// sees an opaque signed session token that references a record here.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound indicates the session does not exist or has expired
var ErrNotFound = errors.New("session not found")

// Session is the server-side record behind a signed-in console user
type Session struct {
	ID           uuid.UUID `json:"id"`
	AccountID    uuid.UUID `json:"account_id"`
	Role         string    `json:"role"`
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	CreatedAt    time.Time `json:"created_at"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// Expired reports whether the session passed its expiry
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// Store persists sessions for the lifetime of a sign-in
type Store interface {
	// Save stores or replaces a session until its ExpiresAt
	Save(ctx context.Context, sess *Session) error
	// Get returns the session or ErrNotFound if missing or expired
	Get(ctx context.Context, id uuid.UUID) (*Session, error)
	// Delete removes a session; deleting a missing session is not an error
	Delete(ctx context.Context, id uuid.UUID) error
	// Close releases the store's resources
	Close() error
}
