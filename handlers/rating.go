// handlers/rating.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fundilink/rating"
)

// RatingHandler exposes provider review submission.
type RatingHandler struct {
	Svc    *rating.Service
	Logger *zap.Logger
}

func NewRatingHandler(svc *rating.Service, logger *zap.Logger) *RatingHandler {
	return &RatingHandler{Svc: svc, Logger: logger}
}

// PreviewRating handles POST /api/ratings/preview, returning the control
// state for the chosen stars without submitting anything.
func (h *RatingHandler) PreviewRating(c *gin.Context) {
	var body struct {
		ProviderID int    `json:"provider_id"`
		Stars      int    `json:"stars"`
		Comment    string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rating.BuildView(body.ProviderID, body.Stars, body.Comment))
}

// SubmitRating handles POST /api/ratings.
func (h *RatingHandler) SubmitRating(c *gin.Context) {
	var body struct {
		ProviderID int    `json:"provider_id" binding:"required"`
		Stars      int    `json:"stars" binding:"required"`
		Comment    string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}

	if err := h.Svc.SubmitRating(c.Request.Context(), body.ProviderID, body.Stars, body.Comment); err != nil {
		h.Logger.Error("SubmitRating: submission failed", zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Thank you for your review!"})
}
