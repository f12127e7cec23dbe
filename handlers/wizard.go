package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sahara/models"
	"sahara/services/wizard"
	"sahara/utils"
)

// WizardHandler exposes the multi-step booking flow.
type WizardHandler struct {
	Service wizard.WizardService
	Logger  *zap.Logger
}

// NewWizardHandler wires a WizardHandler.
func NewWizardHandler(svc wizard.WizardService, logger *zap.Logger) *WizardHandler {
	return &WizardHandler{Service: svc, Logger: logger}
}

// StartSession opens a new wizard session, optionally pre-selecting an
// experience.
func (h *WizardHandler) StartSession(c *gin.Context) {
	var input struct {
		ExperienceID string `json:"experienceId"`
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input")
			return
		}
	}

	session, err := h.Service.StartSession(input.ExperienceID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	h.Logger.Debug("wizard session started", zap.String("sessionId", session.SessionID))
	c.JSON(http.StatusCreated, session)
}

// GetSession returns the current state of a flow.
func (h *WizardHandler) GetSession(c *gin.Context) {
	session, err := h.Service.GetSession(c.Param("sessionID"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// SubmitStep applies form state and navigates between steps. Validation
// failures come back as field-level messages with a 200; the step simply does
// not advance.
func (h *WizardHandler) SubmitStep(c *gin.Context) {
	var input struct {
		Action string            `json:"action"`
		Form   models.WizardForm `json:"form"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input")
		return
	}

	result, err := h.Service.SubmitStep(c.Param("sessionID"), input.Form, input.Action)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Confirm runs the payment simulation and persists the booking.
func (h *WizardHandler) Confirm(c *gin.Context) {
	result, err := h.Service.Confirm(c.Param("sessionID"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	h.Logger.Info("wizard booking confirmed",
		zap.String("bookingId", result.Booking.ID),
		zap.Float64("total", result.Summary.Total),
	)
	c.JSON(http.StatusCreated, result)
}

// CancelSession abandons a flow.
func (h *WizardHandler) CancelSession(c *gin.Context) {
	if err := h.Service.Cancel(c.Param("sessionID")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Session cancelled"})
}
