package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/bazaar/console/internal/infrastructure/auth"
	"github.com/bazaar/console/internal/infrastructure/session"
	"github.com/bazaar/console/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Context keys set by the session middleware
const (
	ContextKeySession = "console_session"
	ContextKeyClaims  = "console_claims"
)

// Roles known to the console
const (
	RoleMerchant = "merchant"
	RoleAdmin    = "admin"
)

// SessionAuth validates the signed session token and loads the server-side
// session behind it. The token may arrive as a Bearer header or as the
// session cookie; the header wins when both are present.
func SessionAuth(tokens *auth.SessionTokenService, store session.Store, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" && cookieName != "" {
			if cookie, err := c.Cookie(cookieName); err == nil {
				tokenString = cookie
			}
		}
		if tokenString == "" {
			abortUnauthorized(c, dto.ErrCodeUnauthorized, "Authentication required")
			return
		}

		claims, err := tokens.Validate(tokenString)
		if err != nil {
			if errors.Is(err, auth.ErrExpiredToken) {
				abortUnauthorized(c, dto.ErrCodeSessionExpired, "Session has expired, please sign in again")
				return
			}
			abortUnauthorized(c, dto.ErrCodeUnauthorized, "Invalid session token")
			return
		}

		sessionID, err := uuid.Parse(claims.SessionID)
		if err != nil {
			abortUnauthorized(c, dto.ErrCodeUnauthorized, "Invalid session token")
			return
		}

		sess, err := store.Get(c.Request.Context(), sessionID)
		if err != nil {
			// A valid token without a live session means the session was
			// revoked or the store restarted.
			abortUnauthorized(c, dto.ErrCodeSessionExpired, "Session has expired, please sign in again")
			return
		}

		c.Set(ContextKeySession, sess)
		c.Set(ContextKeyClaims, claims)
		c.Next()
	}
}

// RequireRole refuses requests whose session carries a different role.
// It must run after SessionAuth.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := GetSession(c)
		if sess == nil {
			abortUnauthorized(c, dto.ErrCodeUnauthorized, "Authentication required")
			return
		}
		if sess.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(dto.ErrCodeForbidden, "Access to this resource is forbidden"))
			return
		}
		c.Next()
	}
}

// GetSession returns the session loaded by SessionAuth, or nil
func GetSession(c *gin.Context) *session.Session {
	value, ok := c.Get(ContextKeySession)
	if !ok {
		return nil
	}
	sess, ok := value.(*session.Session)
	if !ok {
		return nil
	}
	return sess
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func abortUnauthorized(c *gin.Context, code, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(code, message))
}
