package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sahara/services/contact"
	"sahara/utils"
)

// ContactHandler exposes the public contact form and its admin operations.
type ContactHandler struct {
	Service contact.ContactService
	Logger  *zap.Logger
}

// NewContactHandler wires a ContactHandler.
func NewContactHandler(svc contact.ContactService, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{Service: svc, Logger: logger}
}

// CreateContact handles the public contact form submission.
func (h *ContactHandler) CreateContact(c *gin.Context) {
	var input contact.CreateContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Please include name, email, and message")
		return
	}

	created, err := h.Service.CreateContact(input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	h.Logger.Info("contact message received", zap.String("id", created.ID))
	c.JSON(http.StatusCreated, created)
}

// ListContacts returns all messages, newest first.
func (h *ContactHandler) ListContacts(c *gin.Context) {
	contacts, err := h.Service.ListContacts()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, contacts)
}

// DeleteContact hard-deletes a message.
func (h *ContactHandler) DeleteContact(c *gin.Context) {
	if err := h.Service.DeleteContact(c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Contact removed"})
}
