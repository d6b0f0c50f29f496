package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bazaar/console/internal/infrastructure/auth"
	"github.com/bazaar/console/internal/infrastructure/session"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newAuthTestRouter(t *testing.T, tokens *auth.SessionTokenService, store session.Store) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	engine := gin.New()
	protected := engine.Group("/", SessionAuth(tokens, store, "console_session"))
	protected.GET("/me", func(c *gin.Context) {
		sess := GetSession(c)
		require.NotNil(t, sess)
		c.JSON(http.StatusOK, gin.H{"account_id": sess.AccountID})
	})
	protected.GET("/admin", RequireRole(RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return engine
}

func seedSession(t *testing.T, store session.Store, role string) (*session.Session, string, *auth.SessionTokenService) {
	t.Helper()
	tokens := auth.NewSessionTokenService(testSecret, "console-test", time.Hour)

	sess := &session.Session{
		ID:          uuid.New(),
		AccountID:   uuid.New(),
		Role:        role,
		AccessToken: "upstream-access-token",
		CreatedAt:   time.Now(),
		ExpiresAt:   time.Now().Add(time.Hour),
	}
	require.NoError(t, store.Save(context.Background(), sess))

	token, _, err := tokens.Generate(sess.ID.String(), sess.AccountID, sess.Role)
	require.NoError(t, err)
	return sess, token, tokens
}

func TestSessionAuth(t *testing.T) {
	t.Run("valid bearer token loads the session", func(t *testing.T) {
		store := session.NewMemoryStore()
		defer store.Close()
		sess, token, tokens := seedSession(t, store, RoleMerchant)
		engine := newAuthTestRouter(t, tokens, store)

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		recorder := httptest.NewRecorder()
		engine.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), sess.AccountID.String())
	})

	t.Run("session cookie works when no header is sent", func(t *testing.T) {
		store := session.NewMemoryStore()
		defer store.Close()
		_, token, tokens := seedSession(t, store, RoleMerchant)
		engine := newAuthTestRouter(t, tokens, store)

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.AddCookie(&http.Cookie{Name: "console_session", Value: token})
		recorder := httptest.NewRecorder()
		engine.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("missing token returns 401", func(t *testing.T) {
		store := session.NewMemoryStore()
		defer store.Close()
		tokens := auth.NewSessionTokenService(testSecret, "console-test", time.Hour)
		engine := newAuthTestRouter(t, tokens, store)

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		recorder := httptest.NewRecorder()
		engine.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "UNAUTHORIZED")
	})

	t.Run("expired token returns session expired", func(t *testing.T) {
		store := session.NewMemoryStore()
		defer store.Close()
		expiredTokens := auth.NewSessionTokenService(testSecret, "console-test", -time.Minute)
		token, _, err := expiredTokens.Generate(uuid.New().String(), uuid.New(), RoleMerchant)
		require.NoError(t, err)
		engine := newAuthTestRouter(t, expiredTokens, store)

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		recorder := httptest.NewRecorder()
		engine.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "SESSION_EXPIRED")
	})

	t.Run("valid token with revoked session returns session expired", func(t *testing.T) {
		store := session.NewMemoryStore()
		defer store.Close()
		sess, token, tokens := seedSession(t, store, RoleMerchant)
		require.NoError(t, store.Delete(context.Background(), sess.ID))
		engine := newAuthTestRouter(t, tokens, store)

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		recorder := httptest.NewRecorder()
		engine.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "SESSION_EXPIRED")
	})

	t.Run("token signed with a different secret is rejected", func(t *testing.T) {
		store := session.NewMemoryStore()
		defer store.Close()
		_, _, tokens := seedSession(t, store, RoleMerchant)
		otherTokens := auth.NewSessionTokenService("another-secret-another-secret-xx", "console-test", time.Hour)
		forged, _, err := otherTokens.Generate(uuid.New().String(), uuid.New(), RoleAdmin)
		require.NoError(t, err)
		engine := newAuthTestRouter(t, tokens, store)

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+forged)
		recorder := httptest.NewRecorder()
		engine.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("merchant session cannot reach admin routes", func(t *testing.T) {
		store := session.NewMemoryStore()
		defer store.Close()
		_, token, tokens := seedSession(t, store, RoleMerchant)
		engine := newAuthTestRouter(t, tokens, store)

		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		recorder := httptest.NewRecorder()
		engine.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "FORBIDDEN")
	})

	t.Run("admin session passes role check", func(t *testing.T) {
		store := session.NewMemoryStore()
		defer store.Close()
		_, token, tokens := seedSession(t, store, RoleAdmin)
		engine := newAuthTestRouter(t, tokens, store)

		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		recorder := httptest.NewRecorder()
		engine.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}
