// handlers/signup.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fundilink/signup"
)

// SignupHandler exposes the provider onboarding wizard.
type SignupHandler struct {
	Wizard *signup.Wizard
	Logger *zap.Logger
}

func NewSignupHandler(wizard *signup.Wizard, logger *zap.Logger) *SignupHandler {
	return &SignupHandler{Wizard: wizard, Logger: logger}
}

// stateResponse is the wizard view after any mutation: current step,
// progress, field values and the tri-state of every category checkbox.
func (h *SignupHandler) stateResponse() gin.H {
	return gin.H{
		"step":       h.Wizard.CurrentStep(),
		"progress":   h.Wizard.Progress(),
		"form":       h.Wizard.Form(),
		"selections": h.Wizard.SelectionStates(),
	}
}

// StartSignup handles POST /api/signup/start: entry checks plus restore of
// any saved progress.
func (h *SignupHandler) StartSignup(c *gin.Context) {
	outcome := h.Wizard.Start(c.Request.Context())
	if outcome.Status != signup.EntryOK {
		c.JSON(http.StatusOK, outcome)
		return
	}
	resp := h.stateResponse()
	resp["entry"] = outcome
	c.JSON(http.StatusOK, resp)
}

// GetState handles GET /api/signup/state.
func (h *SignupHandler) GetState(c *gin.Context) {
	c.JSON(http.StatusOK, h.stateResponse())
}

// UpdateFields handles PUT /api/signup/fields with a name→value map.
func (h *SignupHandler) UpdateFields(c *gin.Context) {
	var fields map[string]string
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}
	for name, value := range fields {
		h.Wizard.SetField(name, value)
	}
	c.JSON(http.StatusOK, h.stateResponse())
}

// NextStep handles POST /api/signup/next. Blocking errors come back as a 422
// with the step unchanged; warnings are attached to the response but never
// stop the advance.
func (h *SignupHandler) NextStep(c *gin.Context) {
	step, errs, warns := h.Wizard.NextStep(c.Request.Context())
	if len(errs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"step": step, "errors": errs, "warnings": warns})
		return
	}
	resp := h.stateResponse()
	if len(warns) > 0 {
		resp["warnings"] = warns
	}
	c.JSON(http.StatusOK, resp)
}

// PrevStep handles POST /api/signup/prev.
func (h *SignupHandler) PrevStep(c *gin.Context) {
	h.Wizard.PrevStep(c.Request.Context())
	c.JSON(http.StatusOK, h.stateResponse())
}

// ToggleCategory handles POST /api/signup/categories/toggle.
func (h *SignupHandler) ToggleCategory(c *gin.Context) {
	var body struct {
		Category string `json:"category" binding:"required"`
		Selected bool   `json:"selected"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}
	if err := h.Wizard.ToggleCategory(c.Request.Context(), body.Category, body.Selected); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid selection", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.stateResponse())
}

// ToggleService handles POST /api/signup/services/toggle.
func (h *SignupHandler) ToggleService(c *gin.Context) {
	var body struct {
		Category string `json:"category" binding:"required"`
		Service  string `json:"service" binding:"required"`
		Selected bool   `json:"selected"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}
	if err := h.Wizard.ToggleService(c.Request.Context(), body.Category, body.Service, body.Selected); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid selection", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.stateResponse())
}

// SubmitApplication handles POST /api/signup/submit.
func (h *SignupHandler) SubmitApplication(c *gin.Context) {
	outcome, err := h.Wizard.Submit(c.Request.Context())
	if err != nil {
		h.Logger.Error("SubmitApplication: submission failed", zap.Error(err))
		respondError(c, err)
		return
	}
	if !outcome.Success {
		c.JSON(http.StatusUnprocessableEntity, outcome)
		return
	}
	c.JSON(http.StatusOK, outcome)
}

// ResetSignup handles POST /api/signup/reset.
func (h *SignupHandler) ResetSignup(c *gin.Context) {
	h.Wizard.Reset(c.Request.Context())
	c.JSON(http.StatusOK, h.stateResponse())
}
