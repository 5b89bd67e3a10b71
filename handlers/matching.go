// handlers/matching.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fundilink/backend"
	"fundilink/matching"
	"fundilink/models"
)

// MatchingHandler exposes the provider search, filter and sort pipeline.
type MatchingHandler struct {
	Svc    *matching.Service
	Logger *zap.Logger
}

func NewMatchingHandler(svc *matching.Service, logger *zap.Logger) *MatchingHandler {
	return &MatchingHandler{Svc: svc, Logger: logger}
}

type providerListResponse struct {
	Providers []providerView `json:"providers"`
	Count     int            `json:"count"`
}

// providerView decorates a match with its display strings so callers render
// distance and response time consistently.
type providerView struct {
	models.ProviderMatch
	DistanceLabel     string `json:"distance_label"`
	ResponseTimeLabel string `json:"response_time_label"`
}

func buildProviderList(matches []models.ProviderMatch) providerListResponse {
	views := make([]providerView, 0, len(matches))
	for _, m := range matches {
		views = append(views, providerView{
			ProviderMatch:     m,
			DistanceLabel:     matching.FormatDistance(m.DistanceKm),
			ResponseTimeLabel: matching.FormatResponseTime(m.ResponseTime),
		})
	}
	return providerListResponse{Providers: views, Count: len(views)}
}

// FindProviders handles POST /api/matching/search. An unauthenticated call
// answers 401 with login_required so the page can show the prompt; the
// search itself is stashed for replay after login.
func (h *MatchingHandler) FindProviders(c *gin.Context) {
	var body struct {
		Detection   models.DetectionResult `json:"detection" binding:"required"`
		Description string                 `json:"description"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}

	matches, err := h.Svc.FindProviders(c.Request.Context(), body.Detection, body.Description)
	if err != nil {
		if errors.Is(err, backend.ErrAuthRequired) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "login_required",
				"message": "Please log in to see matching providers. Your search has been saved.",
			})
			return
		}
		h.Logger.Error("FindProviders: search failed", zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, buildProviderList(matches))
}

// ReplaySearch handles POST /api/matching/replay, executing a search that
// was stashed before login. 204 when there was nothing to replay.
func (h *MatchingHandler) ReplaySearch(c *gin.Context) {
	matches, replayed, err := h.Svc.ReplayPendingSearch(c.Request.Context())
	if err != nil {
		h.Logger.Error("ReplaySearch: replay failed", zap.Error(err))
		respondError(c, err)
		return
	}
	if !replayed {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, buildProviderList(matches))
}

// ApplyFilters handles POST /api/matching/filters with new constraints.
func (h *MatchingHandler) ApplyFilters(c *gin.Context) {
	var constraints models.SearchConstraints
	if err := c.ShouldBindJSON(&constraints); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}

	matches, err := h.Svc.ApplyFilters(c.Request.Context(), constraints)
	if err != nil {
		h.Logger.Error("ApplyFilters: filter query failed", zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, buildProviderList(matches))
}

// ApplySort handles POST /api/matching/sort. Purely local; no upstream call.
func (h *MatchingHandler) ApplySort(c *gin.Context) {
	var body struct {
		Key string `json:"key" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, buildProviderList(h.Svc.ApplySort(body.Key)))
}

// GetProviders handles GET /api/matching/providers, returning the cached
// result set without touching the upstream.
func (h *MatchingHandler) GetProviders(c *gin.Context) {
	c.JSON(http.StatusOK, buildProviderList(h.Svc.Matches()))
}
