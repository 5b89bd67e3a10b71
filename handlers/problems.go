// handlers/problems.go
package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fundilink/backend"
	"fundilink/intake"
)

// IntakeHandler exposes the problem intake flow.
type IntakeHandler struct {
	Svc    *intake.Service
	Logger *zap.Logger
}

func NewIntakeHandler(svc *intake.Service, logger *zap.Logger) *IntakeHandler {
	return &IntakeHandler{Svc: svc, Logger: logger}
}

// AnalyzeProblem handles POST /api/problems/analyze. The description alone
// goes upstream so the classifier can suggest a category.
func (h *IntakeHandler) AnalyzeProblem(c *gin.Context) {
	var body struct {
		Description string `json:"description" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}

	view, err := h.Svc.Analyze(c.Request.Context(), body.Description)
	if err != nil {
		h.Logger.Error("AnalyzeProblem: analysis failed", zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// SubmitProblem handles POST /api/problems/submit. Accepts a multipart form
// so photos can ride along with the description.
func (h *IntakeHandler) SubmitProblem(c *gin.Context) {
	description := c.PostForm("description")
	category := c.PostForm("category")
	sessionID := c.PostForm("session_id")

	var images []backend.ImageAttachment
	if form, err := c.MultipartForm(); err == nil && form != nil {
		for _, header := range form.File["images"] {
			file, openErr := header.Open()
			if openErr != nil {
				continue
			}
			data, readErr := io.ReadAll(file)
			file.Close()
			if readErr != nil {
				continue
			}
			images = append(images, backend.ImageAttachment{Filename: header.Filename, Data: data})
		}
	}

	detection, err := h.Svc.Submit(c.Request.Context(), description, category, sessionID, images)
	if err != nil {
		h.Logger.Error("SubmitProblem: submission failed", zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detection)
}
