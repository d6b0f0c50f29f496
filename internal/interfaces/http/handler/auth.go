package handler

import (
	"github.com/bazaar/console/internal/application/identity"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles sign-in and sign-out
type AuthHandler struct {
	BaseHandler
	service *identity.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(service *identity.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req identity.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid login request: "+err.Error())
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Refresh handles POST /auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	sess, ok := getSession(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	resp, err := h.service.Refresh(c.Request.Context(), sess)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Logout handles POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	sess, ok := getSession(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	if err := h.service.Logout(c.Request.Context(), sess); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Me handles GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	sess, ok := getSession(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	h.Success(c, identity.AccountDTO{
		ID:   sess.AccountID.String(),
		Role: sess.Role,
	})
}
