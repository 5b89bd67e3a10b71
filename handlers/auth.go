// handlers/auth.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fundilink/backend"
	"fundilink/session"
)

// AuthHandler proxies login and registration upstream and maintains the
// local session around them.
type AuthHandler struct {
	API      *backend.Client
	Sessions *session.Manager
	Logger   *zap.Logger
}

func NewAuthHandler(api *backend.Client, sessions *session.Manager, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{API: api, Sessions: sessions, Logger: logger}
}

// sessionBody is the common answer shape after login or registration. The
// post-login action, when present, tells the caller to resume whatever the
// visitor was doing before the login wall (e.g. replay a stashed search).
func (h *AuthHandler) sessionBody(c *gin.Context, grant *backend.TokenGrant) gin.H {
	body := gin.H{"user": grant.User}
	if action := h.Sessions.TakePostLoginAction(c.Request.Context()); action != "" {
		body["post_login_action"] = action
	}
	return body
}

// Login handles POST /api/session/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var creds backend.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}

	grant, err := h.API.Login(c.Request.Context(), creds)
	if err != nil {
		h.Logger.Warn("Login: upstream rejected credentials", zap.Error(err))
		respondError(c, err)
		return
	}
	if err := h.Sessions.Login(c.Request.Context(), grant.AccessToken, grant.User); err != nil {
		h.Logger.Error("Login: failed to persist session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "session error", "message": "Could not save your session."})
		return
	}
	c.JSON(http.StatusOK, h.sessionBody(c, grant))
}

// Register handles POST /api/session/register. The upstream logs the new
// account straight in, so the session is established here too.
func (h *AuthHandler) Register(c *gin.Context) {
	var reg backend.Registration
	if err := c.ShouldBindJSON(&reg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}

	grant, err := h.API.Register(c.Request.Context(), reg)
	if err != nil {
		h.Logger.Warn("Register: upstream rejected registration", zap.Error(err))
		respondError(c, err)
		return
	}
	if err := h.Sessions.Login(c.Request.Context(), grant.AccessToken, grant.User); err != nil {
		h.Logger.Error("Register: failed to persist session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "session error", "message": "Could not save your session."})
		return
	}
	c.JSON(http.StatusOK, h.sessionBody(c, grant))
}

// Logout handles POST /api/session/logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	redirect := h.Sessions.Logout(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"redirect_to": redirect})
}

// SessionInfo handles GET /api/session.
func (h *AuthHandler) SessionInfo(c *gin.Context) {
	h.Sessions.Refresh(c.Request.Context())
	if !h.Sessions.IsAuthenticated() {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"authenticated": true,
		"user":          h.Sessions.CurrentUser(),
	})
}
