package identity

import "time"

// LoginRequest carries the sign-in form
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginResponse is returned after a successful sign-in. The session token is
// the only credential the browser holds; marketplace tokens stay server-side.
type LoginResponse struct {
	SessionToken string     `json:"session_token"`
	ExpiresAt    time.Time  `json:"expires_at"`
	Account      AccountDTO `json:"account"`
}

// RefreshResponse carries the replacement session token after a refresh
type RefreshResponse struct {
	SessionToken string    `json:"session_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// AccountDTO is the signed-in account as shown in the console header
type AccountDTO struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
}
