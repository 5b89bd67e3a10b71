// handlers/dashboard.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fundilink/dashboard"
	"fundilink/models"
	"fundilink/utils"
)

// DashboardHandler serves the polled snapshots and the dashboard actions.
type DashboardHandler struct {
	Client   *dashboard.ClientDashboard
	Provider *dashboard.ProviderDashboard
	Logger   *zap.Logger
}

func NewDashboardHandler(client *dashboard.ClientDashboard, provider *dashboard.ProviderDashboard, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{Client: client, Provider: provider, Logger: logger}
}

func requestIDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid request id", "the id must be a positive integer")
		return 0, false
	}
	return id, true
}

// ClientSnapshot handles GET /api/dashboard/client.
func (h *DashboardHandler) ClientSnapshot(c *gin.Context) {
	c.JSON(http.StatusOK, h.Client.Snapshot())
}

// ProviderSnapshot handles GET /api/dashboard/provider.
func (h *DashboardHandler) ProviderSnapshot(c *gin.Context) {
	c.JSON(http.StatusOK, h.Provider.Snapshot())
}

// CancelRequest handles POST /api/dashboard/client/requests/:id/cancel.
func (h *DashboardHandler) CancelRequest(c *gin.Context) {
	id, ok := requestIDParam(c)
	if !ok {
		return
	}
	if err := h.Client.CancelRequest(c.Request.Context(), id); err != nil {
		h.Logger.Error("CancelRequest: action failed", zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Request cancelled."})
}

// StartConversation handles POST /api/dashboard/client/conversations.
func (h *DashboardHandler) StartConversation(c *gin.Context) {
	var body struct {
		ProviderID int `json:"provider_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}
	sessionID, err := h.Client.StartConversation(c.Request.Context(), body.ProviderID)
	if err != nil {
		h.Logger.Error("StartConversation: action failed", zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session_id": sessionID})
}

// AcceptRequest handles POST /api/dashboard/provider/requests/:id/accept.
func (h *DashboardHandler) AcceptRequest(c *gin.Context) {
	id, ok := requestIDParam(c)
	if !ok {
		return
	}
	if err := h.Provider.AcceptRequest(c.Request.Context(), id); err != nil {
		h.Logger.Error("AcceptRequest: action failed", zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Request accepted."})
}

// DeclineRequest handles POST /api/dashboard/provider/requests/:id/decline.
func (h *DashboardHandler) DeclineRequest(c *gin.Context) {
	id, ok := requestIDParam(c)
	if !ok {
		return
	}
	if err := h.Provider.DeclineRequest(c.Request.Context(), id); err != nil {
		h.Logger.Error("DeclineRequest: action failed", zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Request declined."})
}

// GetProfile handles GET /api/dashboard/provider/profile.
func (h *DashboardHandler) GetProfile(c *gin.Context) {
	profile, err := h.Provider.Profile(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfile handles PUT /api/dashboard/provider/profile.
func (h *DashboardHandler) UpdateProfile(c *gin.Context) {
	var profile models.ProviderProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}
	if err := h.Provider.UpdateProfile(c.Request.Context(), profile); err != nil {
		h.Logger.Error("UpdateProfile: save failed", zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated."})
}

// GetServices handles GET /api/dashboard/provider/services.
func (h *DashboardHandler) GetServices(c *gin.Context) {
	services, err := h.Provider.Services(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, services)
}

// UpdateServices handles PUT /api/dashboard/provider/services.
func (h *DashboardHandler) UpdateServices(c *gin.Context) {
	var services models.ProviderServices
	if err := c.ShouldBindJSON(&services); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}
	if err := h.Provider.UpdateServices(c.Request.Context(), services); err != nil {
		h.Logger.Error("UpdateServices: save failed", zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Services updated."})
}
