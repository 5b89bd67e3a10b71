// handlers/chat.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fundilink/chat"
)

// ChatHandler exposes the client-provider conversation flow.
type ChatHandler struct {
	Svc    *chat.Service
	Logger *zap.Logger
}

func NewChatHandler(svc *chat.Service, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{Svc: svc, Logger: logger}
}

// GetMessages handles GET /api/chat/:sessionID.
func (h *ChatHandler) GetMessages(c *gin.Context) {
	view, err := h.Svc.LoadMessages(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.Logger.Error("GetMessages: load failed", zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// SendMessage handles POST /api/chat/send and answers with the reloaded
// conversation.
func (h *ChatHandler) SendMessage(c *gin.Context) {
	var body struct {
		ProviderID int    `json:"provider_id" binding:"required"`
		Message    string `json:"message" binding:"required"`
		SessionID  string `json:"session_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}

	view, err := h.Svc.SendMessage(c.Request.Context(), body.ProviderID, body.Message, body.SessionID)
	if err != nil {
		h.Logger.Error("SendMessage: send failed", zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
