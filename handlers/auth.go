package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/placementhub/placementhub/backend/go-services/internal/identity"
	"github.com/placementhub/placementhub/backend/go-services/internal/models"
	"github.com/placementhub/placementhub/backend/go-services/internal/sessions"
	"github.com/placementhub/placementhub/backend/go-services/internal/tokens"
	"github.com/placementhub/placementhub/backend/go-services/pkg/logger"
	"github.com/placementhub/placementhub/backend/go-services/pkg/metrics"
	"github.com/placementhub/placementhub/backend/go-services/pkg/middleware"
)

// LoginRequest is the sign-in form. The profile fields apply only when the
// email is unseen; a returning user keeps their stored profile.
type LoginRequest struct {
	Email      string      `json:"email" binding:"required"`
	Name       string      `json:"name"`
	Role       models.Role `json:"role"`
	Department string      `json:"department"`
}

// AuthHandler holds dependencies
type AuthHandler struct {
	identity   *identity.Service
	sessions   *sessions.Service
	tokens     *tokens.Manager
	sessionTTL time.Duration
}

func NewAuthHandler(id *identity.Service, s *sessions.Service, t *tokens.Manager, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{identity: id, sessions: s, tokens: t, sessionTTL: sessionTTL}
}

// Register routes under /auth
func (h *AuthHandler) Register(rg *gin.RouterGroup) {
	a := rg.Group("/auth")
	a.POST("/login", h.Login)
	a.POST("/logout", h.Logout)
	a.GET("/me", middleware.RequireIdentity(), h.Me)
}

// Login resolves the email to a user (creating one on first sign-in),
// caches the identity in a session, and returns an access token for it.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.Logins.WithLabelValues("rejected").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	u, err := h.identity.Resolve(c.Request.Context(), req.Email, models.UserDraft{
		Name:       req.Name,
		Role:       req.Role,
		Department: req.Department,
	})
	if err != nil {
		metrics.Logins.WithLabelValues("failed").Inc()
		writeError(c, err)
		return
	}

	sess, err := h.sessions.CreateSession(c.Request.Context(), *u, h.sessionTTL)
	if err != nil {
		metrics.Logins.WithLabelValues("failed").Inc()
		logger.Errorf("create session for %s: %v", u.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not establish session"})
		return
	}
	access, err := h.tokens.Generate(*u, sess.Token)
	if err != nil {
		metrics.Logins.WithLabelValues("failed").Inc()
		logger.Errorf("sign access token for %s: %v", u.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not establish session"})
		return
	}

	metrics.Logins.WithLabelValues("ok").Inc()
	logger.Infof("login: user=%s role=%s", u.ID, u.Role)
	c.JSON(http.StatusOK, gin.H{"access_token": access, "user": u})
}

// Logout destroys the session behind the presented token. The delete is the
// whole logout: any access token bound to that session stops resolving.
func (h *AuthHandler) Logout(c *gin.Context) {
	raw := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if raw == "" || raw == c.GetHeader("Authorization") {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
		return
	}
	claims, err := h.tokens.Parse(raw)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}
	if err := h.sessions.Destroy(c.Request.Context(), claims.SessionID); err != nil {
		logger.Errorf("destroy session %s: %v", claims.SessionID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "logout failed"})
		return
	}
	c.Status(http.StatusNoContent)
}

// Me returns the identity the current token resolves to.
func (h *AuthHandler) Me(c *gin.Context) {
	u, _ := middleware.CurrentUser(c)
	c.JSON(http.StatusOK, gin.H{"user": u})
}
